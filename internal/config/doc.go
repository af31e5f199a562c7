// Package config loads the indexurl command's own settings (logging and
// output format) from a YAML file, INDEXURL_* environment variables and CLI
// flags, with precedence: CLI flags > Environment variables > YAML config >
// Defaults. pip's configuration files are read by package indexurl, not here.
package config
