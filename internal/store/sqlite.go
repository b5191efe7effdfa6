package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// sqliteKV keeps blobs in the kv table (see internal/database/sql).
type sqliteKV struct {
	db *sql.DB
}

// NewSQLite returns a KV backed by db. Migrations must already be applied.
func NewSQLite(db *sql.DB) KV {
	return &sqliteKV{db: db}
}

func (s *sqliteKV) Get(ctx context.Context, key string) ([]byte, error) {
	q, args, err := builder.Select("value").From("kv").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, err
	}
	var v []byte
	if err := s.db.QueryRowContext(ctx, q, args...).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *sqliteKV) Put(ctx context.Context, key string, value []byte) error {
	q, args, err := builder.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC().Format(time.RFC3339)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, q, args...)
	return err
}
