package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"crxkit/internal/crypto"
	"crxkit/internal/domain"
)

// sealedFormatVersion is the newest on-disk envelope version this code reads.
const sealedFormatVersion = 1

// sealedAD binds the ciphertext to its purpose.
var sealedAD = []byte("crxkit private key v1")

// sealedKey is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealedKey struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// seal derives a key from passphrase and encrypts raw into a JSON envelope.
func seal(passphrase string, raw []byte, n, r, p int) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	kek, err := scrypt.Key([]byte(passphrase), salt, n, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(kek)

	aead, err := chacha20poly1305.NewX(kek)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return json.Marshal(sealedKey{
		V:      sealedFormatVersion,
		Salt:   salt,
		N:      n,
		R:      r,
		P:      p,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, raw, sealedAD),
	})
}

// open reverses seal.
func open(passphrase string, b []byte) ([]byte, error) {
	var env sealedKey
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode key envelope: %w", err)
	}
	if env.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported key envelope version %d", env.V)
	}

	kek, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(kek)

	aead, err := chacha20poly1305.NewX(kek)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, domain.ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, sealedAD)
	if err != nil {
		return nil, domain.ErrWrongPassphrase
	}
	return pt, nil
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (n, r, p int) { return 1 << 15, 8, 1 }
