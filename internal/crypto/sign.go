package crypto

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // the package format mandates SHA-1
	"fmt"

	"crxkit/internal/domain"
)

// Sign returns the RSA-PKCS#1v1.5 signature of the SHA-1 digest of content.
// The signature is deterministic for a given key and content.
func Sign[T Content](content T, privateKey domain.PrivateKeyPEM) (domain.Signature, error) {
	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	digest := sha1.Sum([]byte(content)) //nolint:gosec
	sig, err := rsa.SignPKCS1v15(nil, key, crypto.SHA1, digest[:])
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return domain.Signature(sig), nil
}

// Verify checks sig over content against publicKey (DER or PEM).
func Verify[T Content](content T, publicKey domain.PublicKey, sig domain.Signature) error {
	key, err := ParsePublicKey(publicKey)
	if err != nil {
		return err
	}
	digest := sha1.Sum([]byte(content)) //nolint:gosec
	if err := rsa.VerifyPKCS1v15(key, crypto.SHA1, digest[:], sig); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSignatureMismatch, err)
	}
	return nil
}
