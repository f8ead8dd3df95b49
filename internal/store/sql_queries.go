package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const sessionSlotsTable = "session_slots"

var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetSlotQuery(name string) (string, []any, error) {
	return sqliteBuilder.
		Select("name", "value", "updated_at").
		From(sessionSlotsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildPutSlotQuery(name, value string, now time.Time) (string, []any, error) {
	return sqliteBuilder.
		Insert(sessionSlotsTable).
		Columns("name", "value", "updated_at").
		Values(name, value, now).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSlotQuery(name string) (string, []any, error) {
	return sqliteBuilder.
		Delete(sessionSlotsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
