package crypto

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"crxkit/internal/domain"
)

// KeyBits is the modulus size of generated keys.
const KeyBits = 2048

// KeyResult is the outcome of an asynchronous key generation.
// Exactly one of Key and Err is set.
type KeyResult struct {
	Key domain.PrivateKeyPEM
	Err error
}

// GeneratePrivateKeyAsync starts generating a new RSA key on its own
// goroutine. The returned channel yields exactly one result and is then closed.
func GeneratePrivateKeyAsync() <-chan KeyResult {
	ch := make(chan KeyResult, 1)
	go func() {
		defer close(ch)
		key, err := generatePrivateKey()
		if err != nil {
			ch <- KeyResult{Err: err}
			return
		}
		ch <- KeyResult{Key: key}
	}()
	return ch
}

// GeneratePrivateKey returns a new 2048-bit RSA key as PKCS#1 PEM.
//
// Generation runs in the background. If ctx ends first, ctx.Err() is returned
// and the pending key is discarded.
func GeneratePrivateKey(ctx context.Context) (domain.PrivateKeyPEM, error) {
	select {
	case res := <-GeneratePrivateKeyAsync():
		return res.Key, res.Err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func generatePrivateKey() (domain.PrivateKeyPEM, error) {
	key, err := rsa.GenerateKey(rand.Reader, KeyBits)
	if err != nil {
		return "", fmt.Errorf("generate rsa key: %w", err)
	}
	der := x509.MarshalPKCS1PrivateKey(key)
	defer Wipe(der)
	return domain.PrivateKeyPEM(encodePEM(pemPKCS1Private, der)), nil
}

// GeneratePublicKey exports the public half of privateKey as
// SubjectPublicKeyInfo in the requested format. An empty format means DER.
func GeneratePublicKey(ctx context.Context, privateKey domain.PrivateKeyPEM, format domain.KeyFormat) (domain.PublicKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if privateKey == "" {
		return nil, fmt.Errorf("impossible to generate a public key: %w", domain.ErrMissingKey)
	}
	if format == "" {
		format = domain.FormatDER
	}
	if format != domain.FormatDER && format != domain.FormatPEM {
		return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidFormat, format)
	}

	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}
	if format == domain.FormatPEM {
		return domain.PublicKey(encodePEM(pemPublic, der)), nil
	}
	return domain.PublicKey(der), nil
}

// ParsePrivateKey decodes an RSA private key. PKCS#1 and PKCS#8 are accepted,
// either PEM armoured or as bare DER.
func ParsePrivateKey(privateKey domain.PrivateKeyPEM) (*rsa.PrivateKey, error) {
	if privateKey == "" {
		return nil, domain.ErrMissingKey
	}
	der := privateKey.Bytes()
	if block, _ := pem.Decode(der); block != nil {
		switch block.Type {
		case pemPKCS1Private, pemPKCS8Private:
			der = block.Bytes
		default:
			return nil, fmt.Errorf("%w: unexpected PEM block %q", domain.ErrInvalidKey, block.Type)
		}
	}

	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidKey, err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key (%T)", domain.ErrInvalidKey, parsed)
	}
	return key, nil
}

// ParsePublicKey decodes a SubjectPublicKeyInfo RSA public key, PEM or DER.
func ParsePublicKey(publicKey domain.PublicKey) (*rsa.PublicKey, error) {
	if len(publicKey) == 0 {
		return nil, errors.New("public key is empty")
	}
	der := publicKey.Slice()
	if block, _ := pem.Decode(der); block != nil {
		if block.Type != pemPublic {
			return nil, fmt.Errorf("%w: unexpected PEM block %q", domain.ErrInvalidKey, block.Type)
		}
		der = block.Bytes
	}
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidKey, err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key (%T)", domain.ErrInvalidKey, parsed)
	}
	return key, nil
}
