package handler

import (
	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/handler/http"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/mockdata"
)

// Handlers groups the transports of the placeholder backend.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(catalog *mockdata.Catalog, cfg *config.MockServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if catalog == nil {
		return nil, errNoCatalog
	}

	handlers := &Handlers{}
	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(catalog, cfg.Auth, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
