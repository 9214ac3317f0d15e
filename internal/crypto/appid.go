package crypto

import (
	"encoding/hex"
	"fmt"

	"github.com/minio/sha256-simd"

	"crxkit/internal/domain"
)

// IdentifierLength is the number of characters in a derived identifier.
const IdentifierLength = 32

// Content is anything whose bytes can be hashed or signed directly.
type Content interface {
	~string | ~[]byte
}

// nibbleLetters maps a hex digit value v to the base-26 digit of v+10.
// v+10 stays within 10..25, so every entry is exactly one letter in a..p.
var nibbleLetters = [16]byte{
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h',
	'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p',
}

// DeriveIdentifier returns the 32-character [a-p] identifier of content.
//
// The identifier is the lowercase hex SHA-256 digest with each hex digit
// shifted by ten and written in base 26, truncated to 32 characters.
func DeriveIdentifier[T Content](content T) domain.Identifier {
	sum := sha256.Sum256([]byte(content))
	digest := hex.EncodeToString(sum[:])

	out := make([]byte, len(digest))
	for i := 0; i < len(digest); i++ {
		out[i] = nibbleLetters[hexValue(digest[i])]
	}
	return domain.Identifier(out[:IdentifierLength])
}

// DeriveIdentifierAny is DeriveIdentifier for callers holding an untyped value.
// Only strings and byte slices are accepted.
func DeriveIdentifierAny(content any) (domain.Identifier, error) {
	switch c := content.(type) {
	case string:
		return DeriveIdentifier(c), nil
	case []byte:
		return DeriveIdentifier(c), nil
	case domain.PublicKey:
		return DeriveIdentifier(c), nil
	default:
		return "", fmt.Errorf("%w: got %T", domain.ErrInvalidInput, content)
	}
}

// DeriveIdentifierFromPath returns the identifier for an unpacked extension
// installed at path.
//
// Windows drive paths ("C:\...") are hashed as UTF-16LE with the drive letter
// upper-cased, matching how the browser hashes its native wide-string paths.
// Every other path is hashed as UTF-8.
func DeriveIdentifierFromPath(path string) domain.Identifier {
	if !isWindowsDrivePath(path) {
		return DeriveIdentifier(path)
	}
	return DeriveIdentifier(EncodeUTF16LE(upperDriveLetter(path)))
}

// isWindowsDrivePath reports whether path starts with a drive designator.
//
// The accepted range is byte 65 ('A') to 122 ('z') inclusive, which also lets
// through [ \ ] ^ _ and the backtick. IDs already issued depend on it.
func isWindowsDrivePath(path string) bool {
	if len(path) < 2 {
		return false
	}
	c := path[0]
	return c >= 65 && c <= 122 && path[1] == ':'
}

func upperDriveLetter(path string) string {
	c := path[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return string(c) + path[1:]
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
