package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ KV = &KVPostgres{}

// KVPostgres implements the KV substrate on a single kv_entries table.
// Values are opaque bytes rather than jsonb so that a corrupt payload
// is a read-side concern (treated as an empty collection) instead of a
// write-time rejection.
type KVPostgres struct {
	db *pgxpool.Pool
}

func NewKVPostgres(db *pgxpool.Pool) *KVPostgres {
	return &KVPostgres{db: db}
}

func (r *KVPostgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRow(ctx,
		`SELECT value FROM kv_entries WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (r *KVPostgres) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO kv_entries (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
