// Package cmd provides the eval and repl subcommands for the arith
// interpreter.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the
	// path to the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the
	// path to the configuration file.
	ConfigIdentifier = "config"
)
