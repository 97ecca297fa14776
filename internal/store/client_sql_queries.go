package store

import (
	sq "github.com/Masterminds/squirrel"
)

// qb is the shared statement builder for the slots table. SQLite uses
// question-mark placeholders, squirrel's default.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectSlotQuery(slot string) (string, []any, error) {
	return qb.
		Select("value").
		From("slots").
		Where(sq.Eq{"name": slot}).
		ToSql()
}

func upsertSlotQuery(slot string, value []byte) (string, []any, error) {
	return qb.
		Insert("slots").
		Columns("name", "value", "updated_at").
		Values(slot, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func deleteSlotsQuery(slots []string) (string, []any, error) {
	return qb.
		Delete("slots").
		Where(sq.Eq{"name": slots}).
		ToSql()
}
