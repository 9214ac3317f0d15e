// Package commands defines the crxkit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen   Generate and store the extension signing key
//   - pubkey   Print the public key (der, pem or base64 der)
//   - id       Print extension IDs for keys or unpacked install paths
//   - sign     Sign a file with the signing key
//   - verify   Verify a signature against the signing key
//
// # Implementation
//
// The root command resolves configuration and builds the app context (logger,
// key store, extension service) before any subcommand runs.
package commands
