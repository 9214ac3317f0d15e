package extension

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"crxkit/internal/crypto"
	"crxkit/internal/domain"
)

// Service manages the extension signing key using a backing store.
type Service struct {
	store domain.KeyStore
	log   zerolog.Logger
}

// New returns an extension service backed by the given store.
func New(s domain.KeyStore, log zerolog.Logger) *Service {
	return &Service{store: s, log: log.With().Str("component", "extension").Logger()}
}

// CreateKey generates a new signing key, stores it (sealed when passphrase is
// set) and returns its public key and extension ID.
func (s *Service) CreateKey(ctx context.Context, passphrase string, overwrite bool) (domain.KeyInfo, error) {
	if !overwrite {
		present, err := s.store.HasPrivateKey()
		if err != nil {
			return domain.KeyInfo{}, err
		}
		if present {
			return domain.KeyInfo{}, domain.ErrKeyExists
		}
	}

	s.log.Debug().Int("bits", crypto.KeyBits).Msg("generating private key")
	key, err := crypto.GeneratePrivateKey(ctx)
	if err != nil {
		return domain.KeyInfo{}, err
	}

	info, err := s.DescribeKey(ctx, key)
	if err != nil {
		return domain.KeyInfo{}, err
	}
	path, err := s.store.SavePrivateKey(passphrase, key, overwrite)
	if err != nil {
		return domain.KeyInfo{}, err
	}
	s.log.Debug().
		Str("path", path).
		Bool("sealed", passphrase != "").
		Str("extension_id", info.ExtensionID.String()).
		Msg("private key stored")
	return info, nil
}

// LoadKey reads the stored key and describes it.
func (s *Service) LoadKey(ctx context.Context, passphrase string) (domain.KeyInfo, error) {
	key, err := s.store.LoadPrivateKey(passphrase)
	if err != nil {
		return domain.KeyInfo{}, err
	}
	return s.DescribeKey(ctx, key)
}

// DescribeKey derives the DER public key and extension ID of key.
func (s *Service) DescribeKey(ctx context.Context, key domain.PrivateKeyPEM) (domain.KeyInfo, error) {
	pub, err := crypto.GeneratePublicKey(ctx, key, domain.FormatDER)
	if err != nil {
		return domain.KeyInfo{}, fmt.Errorf("derive public key: %w", err)
	}
	return domain.KeyInfo{
		PrivateKey:  key,
		PublicKey:   pub,
		ExtensionID: crypto.DeriveIdentifier(pub),
	}, nil
}

// PublicKey exports the public half of key in format.
func (s *Service) PublicKey(ctx context.Context, key domain.PrivateKeyPEM, format domain.KeyFormat) (domain.PublicKey, error) {
	return crypto.GeneratePublicKey(ctx, key, format)
}

// IdentifierForPath returns the ID the browser assigns to an unpacked
// extension loaded from path.
func (s *Service) IdentifierForPath(path string) domain.Identifier {
	id := crypto.DeriveIdentifierFromPath(path)
	s.log.Debug().Str("path", path).Str("extension_id", id.String()).Msg("derived path identifier")
	return id
}

// Sign signs content with key.
func (s *Service) Sign(key domain.PrivateKeyPEM, content []byte) (domain.Signature, error) {
	sig, err := crypto.Sign(content, key)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("content_bytes", len(content)).Int("signature_bytes", len(sig)).Msg("signed content")
	return sig, nil
}

// Verify checks sig over content against the public half of key.
func (s *Service) Verify(ctx context.Context, key domain.PrivateKeyPEM, content []byte, sig domain.Signature) error {
	pub, err := crypto.GeneratePublicKey(ctx, key, domain.FormatDER)
	if err != nil {
		return err
	}
	return crypto.Verify(content, pub, sig)
}

// Compile-time assertion that Service implements domain.ExtensionService.
var _ domain.ExtensionService = (*Service)(nil)
