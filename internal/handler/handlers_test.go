package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/mockdata"
)

func newTestCatalog(t *testing.T) *mockdata.Catalog {
	t.Helper()
	catalog, err := mockdata.NewCatalog(nil)
	require.NoError(t, err)
	return catalog
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := &config.MockServerConfig{
		Server: config.Server{HTTPAddress: ":8000"},
		Auth:   config.MockServerAuth{TokenSignKey: "k", TokenIssuer: "kardash", TokenDuration: time.Hour},
	}

	h, err := NewHandlers(newTestCatalog(t), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestCatalog(t), &config.MockServerConfig{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

func TestNewHandlers_NoCatalog(t *testing.T) {
	cfg := &config.MockServerConfig{Server: config.Server{HTTPAddress: ":8000"}}

	h, err := NewHandlers(nil, cfg, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoCatalog)
}
