// Package application wires configuration, logging and the index URL
// resolver together and renders the result as text, JSON or YAML.
package application
