package app

import (
	"github.com/rs/zerolog"

	"crxkit/internal/domain"
)

// App is what CLI commands operate on.
type App struct {
	Config    Config
	Log       zerolog.Logger
	Keys      domain.KeyStore
	Extension domain.ExtensionService
}
