// Package crypto holds the extension identity primitives used by crxkit.
//
// Contents
//
//   - Identifier derivation from content or an install path (DeriveIdentifier,
//     DeriveIdentifierAny, DeriveIdentifierFromPath)
//   - RSA key generation and public key export (GeneratePrivateKey,
//     GeneratePrivateKeyAsync, GeneratePublicKey, ParsePrivateKey, ParsePublicKey)
//   - RSA-PKCS#1v1.5 / SHA-1 signing and verification (Sign, Verify)
//   - UTF-16LE path encoding (EncodeUTF16LE)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Every function is stateless and safe for concurrent use. Nothing in this
// package logs; callers report failures. Hash and RSA primitives come from
// crypto/rsa and github.com/minio/sha256-simd.
package crypto
