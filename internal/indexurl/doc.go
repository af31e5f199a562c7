// Package indexurl resolves the package index URL pip would use, without
// running pip. It walks pip's configuration files from the most to the least
// specific (virtualenv, user, global, XDG_CONFIG_DIRS, PIP_CONFIG_FILE) and
// returns the first non-empty global.index-url with trailing slashes removed,
// or DefaultIndexURL.
//
// Setting PIP_CONFIG_FILE to the null device disables every file.
// Files that exist but cannot be parsed are logged and skipped.
package indexurl
