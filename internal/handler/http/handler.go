package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/mockdata"
	"github.com/MKhiriev/kardash/internal/utils"
)

// Handler serves the KARDASH API over an in-memory catalog.
type Handler struct {
	catalog  *mockdata.Catalog
	auth     config.MockServerAuth
	validate *validator.Validate
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(catalog *mockdata.Catalog, auth config.MockServerAuth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		catalog:  catalog,
		auth:     auth,
		validate: newValidator(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}
