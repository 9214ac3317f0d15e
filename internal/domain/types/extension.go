package types

// KeyInfo describes a private key together with the values a packager needs
// from it.
type KeyInfo struct {
	PrivateKey  PrivateKeyPEM `json:"-"`
	PublicKey   PublicKey     `json:"public_key"`
	ExtensionID Identifier    `json:"extension_id"`
}
