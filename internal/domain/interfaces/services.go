package interfaces

import (
	"context"

	domaintypes "crxkit/internal/domain/types"
)

// ExtensionService creates signing keys and derives the values needed to
// package and sign an extension.
type ExtensionService interface {
	CreateKey(ctx context.Context, passphrase string, overwrite bool) (domaintypes.KeyInfo, error)
	LoadKey(ctx context.Context, passphrase string) (domaintypes.KeyInfo, error)
	DescribeKey(ctx context.Context, key domaintypes.PrivateKeyPEM) (domaintypes.KeyInfo, error)
	PublicKey(ctx context.Context, key domaintypes.PrivateKeyPEM, format domaintypes.KeyFormat) (domaintypes.PublicKey, error)
	IdentifierForPath(path string) domaintypes.Identifier
	Sign(key domaintypes.PrivateKeyPEM, content []byte) (domaintypes.Signature, error)
	Verify(ctx context.Context, key domaintypes.PrivateKeyPEM, content []byte, sig domaintypes.Signature) error
}
