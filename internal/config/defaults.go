package config

import "time"

// Built-in defaults. The client works against a locally started backend out
// of the box.
const (
	DefaultAdapterAddress = "http://localhost:8000"
	DefaultServerAddress  = "localhost:8000"
	DefaultDSN            = "kardash.db"
	DefaultTokenSlot      = "kardash_token"
	DefaultTokenIssuer    = "kardash"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultPollInterval   = 30 * time.Second
	DefaultServerTimeout  = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSlot:     DefaultTokenSlot,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      "info",
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: DefaultAdapterAddress,
		},
		Workers: Workers{
			PollInterval: DefaultPollInterval,
		},
	}
}
