package crypto

import (
	"encoding/base64"
	"encoding/pem"

	"golang.org/x/text/encoding/unicode"
)

const (
	pemPKCS1Private = "RSA PRIVATE KEY"
	pemPKCS8Private = "PRIVATE KEY"
	pemPublic       = "PUBLIC KEY"
)

// utf16LE writes little-endian code units with no byte-order mark.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// EncodeUTF16LE re-encodes s as UTF-16LE bytes without a BOM.
// Invalid UTF-8 sequences are written as U+FFFD.
func EncodeUTF16LE(s string) []byte {
	// The encoder substitutes U+FFFD for bad input; it cannot fail on a whole string.
	b, _ := utf16LE.NewEncoder().Bytes([]byte(s))
	return b
}

func encodePEM(blockType string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}
