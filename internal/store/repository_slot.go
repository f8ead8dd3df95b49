package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/kardash/internal/logger"
)

type slotRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSlotRepository returns a [SlotRepository] over db.
func NewSlotRepository(db *DB, logger *logger.Logger) SlotRepository {
	return &slotRepository{db: db, logger: logger, now: time.Now}
}

func (s *slotRepository) Get(ctx context.Context, name string) (Slot, error) {
	if strings.TrimSpace(name) == "" {
		return Slot{}, ErrEmptySlotName
	}

	query, args, err := buildGetSlotQuery(name)
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var slot Slot
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&slot.Name, &slot.Value, &slot.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Slot{}, ErrSlotNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "slotRepository.Get").
			Str("slot", name).
			Msg("failed to read session slot")
		return Slot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return slot, nil
}

func (s *slotRepository) Put(ctx context.Context, name, value string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptySlotName
	}

	query, args, err := buildPutSlotQuery(name, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "slotRepository.Put").
			Str("slot", name).
			Msg("failed to upsert session slot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *slotRepository) Delete(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptySlotName
	}

	query, args, err := buildDeleteSlotQuery(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "slotRepository.Delete").
			Str("slot", name).
			Msg("failed to delete session slot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
