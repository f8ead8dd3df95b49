package config

import (
	"fmt"
	"time"
)

// MockServerAuth holds the token issuing settings of the placeholder backend.
type MockServerAuth struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// MockServerConfig is the configuration view of the placeholder backend.
type MockServerConfig struct {
	Server   Server
	Auth     MockServerAuth
	LogLevel string
}

// GetMockServerConfig builds and validates the placeholder backend
// configuration from the merged structured configuration.
func GetMockServerConfig(args []string) (*MockServerConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &MockServerConfig{
		Server: cfg.Server,
		Auth: MockServerAuth{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		LogLevel: cfg.App.LogLevel,
	}

	return serverCfg, serverCfg.validate()
}
