// Package store provides file-based persistence for crxkit's signing key.
//
// KeyFileStore keeps a single RSA private key under the configured home
// directory, either as plain PEM or sealed with a passphrase (scrypt and
// XChaCha20-Poly1305). Files are written atomically with 0600 permissions and
// all methods are safe for concurrent use.
package store
