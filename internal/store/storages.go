package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/logger"
)

// ClientStorages groups the client-side storage layer.
type ClientStorages struct {
	// Slots is the raw slot repository.
	Slots SlotRepository
	// Sessions owns the persisted session token.
	Sessions *SessionStore

	db *DB
}

// NewClientStorages opens the session database at cfg.DB.DSN, migrates it
// and wires the session store to the configured token slot.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, app config.ClientApp, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	slots := NewSlotRepository(db, logger)
	return &ClientStorages{
		Slots:    slots,
		Sessions: NewSessionStore(slots, app.TokenSlot, logger),
		db:       db,
	}, nil
}

// Close releases the database connection.
func (c *ClientStorages) Close() error {
	return c.db.Close()
}
