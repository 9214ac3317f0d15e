package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"crxkit/internal/crypto"
	"crxkit/internal/domain"
)

const (
	plainKeyFilename  = "key.pem"
	sealedKeyFilename = "key.pem.enc"
)

// KeyFileStore persists the extension signing key under a home directory.
//
// A key saved with a passphrase is sealed to key.pem.enc; without one it is
// written as plain PEM to key.pem, readable by other packaging tools.
type KeyFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir.
func NewKeyFileStore(dir string) *KeyFileStore {
	return &KeyFileStore{dir: dir}
}

func (s *KeyFileStore) plainPath() string  { return filepath.Join(s.dir, plainKeyFilename) }
func (s *KeyFileStore) sealedPath() string { return filepath.Join(s.dir, sealedKeyFilename) }

// SavePrivateKey writes key to disk and returns the file it was written to.
// Without overwrite an existing key is left untouched and ErrKeyExists returned.
func (s *KeyFileStore) SavePrivateKey(passphrase string, key domain.PrivateKeyPEM, overwrite bool) (string, error) {
	if key == "" {
		return "", domain.ErrMissingKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !overwrite {
		present, err := s.hasKey()
		if err != nil {
			return "", err
		}
		if present {
			return "", domain.ErrKeyExists
		}
	}

	path, stale := s.plainPath(), s.sealedPath()
	data := key.Bytes()
	if passphrase != "" {
		path, stale = stale, path
		n, r, p := scryptParamsDefault()
		raw := key.Bytes()
		sealed, err := seal(passphrase, raw, n, r, p)
		crypto.Wipe(raw)
		if err != nil {
			return "", fmt.Errorf("seal private key: %w", err)
		}
		data = sealed
	}

	if err := writeFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write private key: %w", err)
	}
	if err := os.Remove(stale); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("remove previous private key: %w", err)
	}
	return path, nil
}

// LoadPrivateKey returns the stored key, opening the sealed file when present.
func (s *KeyFileStore) LoadPrivateKey(passphrase string) (domain.PrivateKeyPEM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := readFile(s.sealedPath())
	if err != nil {
		return "", err
	}
	if sealed != nil {
		if passphrase == "" {
			return "", fmt.Errorf("%w: key is passphrase protected", domain.ErrWrongPassphrase)
		}
		pt, err := open(passphrase, sealed)
		if err != nil {
			return "", err
		}
		defer crypto.Wipe(pt)
		return domain.PrivateKeyPEM(pt), nil
	}

	plain, err := readFile(s.plainPath())
	if err != nil {
		return "", err
	}
	if plain == nil {
		return "", fmt.Errorf("%w in %s", domain.ErrKeyNotFound, s.dir)
	}
	return domain.PrivateKeyPEM(plain), nil
}

// HasPrivateKey reports whether a key, plain or sealed, is stored.
func (s *KeyFileStore) HasPrivateKey() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasKey()
}

func (s *KeyFileStore) hasKey() (bool, error) {
	for _, p := range []string{s.sealedPath(), s.plainPath()} {
		ok, err := exists(p)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
