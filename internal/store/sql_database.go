package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/migrations"
)

// DB is the client's local SQLite connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		db.logger.Debug().Ints64("versions", applied).Msg("applied session db migrations")
	}
	return nil
}
