package types

// PrivateKeyPEM is an RSA private key in PKCS#1 PEM text form.
type PrivateKeyPEM string

// String returns the PEM text.
func (k PrivateKeyPEM) String() string { return string(k) }

// Bytes returns the PEM text as a []byte.
func (k PrivateKeyPEM) Bytes() []byte { return []byte(k) }

// PublicKey is an exported RSA public key, DER or PEM encoded.
type PublicKey []byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p }
