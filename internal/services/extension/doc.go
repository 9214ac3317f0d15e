// Package extension composes key management, identifier derivation and signing
// into the operations a packager needs.
//
// It loads or creates the signing key through a domain.KeyStore, exports the
// public key, derives the extension ID from the DER public key and signs
// package content.
package extension
