package domain

import (
	interfaces "crxkit/internal/domain/interfaces"
	types "crxkit/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Identifier    = types.Identifier
	KeyFormat     = types.KeyFormat
	Signature     = types.Signature
	PrivateKeyPEM = types.PrivateKeyPEM
	PublicKey     = types.PublicKey
	KeyInfo       = types.KeyInfo
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ExtensionService = interfaces.ExtensionService
	KeyStore         = interfaces.KeyStore
)

const (
	FormatDER = types.FormatDER
	FormatPEM = types.FormatPEM
)
