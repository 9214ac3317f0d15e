// Package app wires application dependencies for the CLI.
//
// It resolves Config with viper (defaults, config.yaml, CRXKIT_* environment,
// flags), builds the logger, the key store and the extension service, and
// exposes them through App for commands to use.
package app
