package interfaces

import domaintypes "crxkit/internal/domain/types"

// KeyStore persists the local extension signing key.
//
// An empty passphrase stores the key as plain PEM.
type KeyStore interface {
	SavePrivateKey(passphrase string, key domaintypes.PrivateKeyPEM, overwrite bool) (path string, err error)
	LoadPrivateKey(passphrase string) (domaintypes.PrivateKeyPEM, error)
	HasPrivateKey() (bool, error)
}
