package domain

import "errors"

// Sentinel errors shared across packages. Check them with errors.Is.
var (
	// ErrInvalidInput indicates content that is neither a string nor a byte slice.
	ErrInvalidInput = errors.New("content must be a string or a byte slice")

	// ErrMissingKey indicates an absent or empty private key argument.
	ErrMissingKey = errors.New("private key is not defined or is empty")

	// ErrInvalidFormat indicates a public key format other than der or pem.
	ErrInvalidFormat = errors.New(`allowed public key formats are "der" (default) or "pem"`)

	// ErrInvalidKey indicates key material that does not parse as an RSA key.
	ErrInvalidKey = errors.New("invalid RSA key")

	// ErrSignatureMismatch indicates a signature that does not verify.
	ErrSignatureMismatch = errors.New("signature does not match content")

	// ErrKeyExists is returned when saving over an existing key without overwrite.
	ErrKeyExists = errors.New("private key already exists")

	// ErrKeyNotFound is returned when no stored key is present.
	ErrKeyNotFound = errors.New("private key not found")

	// ErrWrongPassphrase is returned when a sealed key cannot be opened.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")
)
