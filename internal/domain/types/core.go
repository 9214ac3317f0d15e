package types

// Identifier is the 32-character [a-p] name derived from content, used as an
// extension's public ID.
type Identifier string

// String returns the string form of the identifier.
func (id Identifier) String() string { return string(id) }

// KeyFormat selects the encoding of an exported public key.
type KeyFormat string

const (
	// FormatDER is binary SubjectPublicKeyInfo. It is the default.
	FormatDER KeyFormat = "der"
	// FormatPEM is SubjectPublicKeyInfo wrapped in a "PUBLIC KEY" PEM block.
	FormatPEM KeyFormat = "pem"
)

// String returns the string form of the format.
func (f KeyFormat) String() string { return string(f) }

// Signature is a raw RSA-PKCS#1v1.5 signature.
type Signature []byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s }
