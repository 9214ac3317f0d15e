package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"crxkit/internal/domain"
	"crxkit/internal/services/extension"
	"crxkit/internal/store"
)

// New constructs the dependency graph from cfg.
func New(cfg Config, log zerolog.Logger) *App {
	keys := store.NewKeyFileStore(cfg.Home)
	return &App{
		Config:    cfg,
		Log:       log,
		Keys:      keys,
		Extension: extension.New(keys, log),
	}
}

// PrivateKey returns the signing key: the explicit --key file when set,
// otherwise the stored key.
func (a *App) PrivateKey() (domain.PrivateKeyPEM, error) {
	if a.Config.KeyFile != "" {
		return store.ReadKeyFile(a.Config.KeyFile)
	}
	return a.Keys.LoadPrivateKey(a.Config.Passphrase)
}

// KeyInfo describes the signing key returned by PrivateKey.
func (a *App) KeyInfo(ctx context.Context) (domain.KeyInfo, error) {
	key, err := a.PrivateKey()
	if err != nil {
		return domain.KeyInfo{}, err
	}
	info, err := a.Extension.DescribeKey(ctx, key)
	if err != nil {
		return domain.KeyInfo{}, fmt.Errorf("load signing key: %w", err)
	}
	return info, nil
}
