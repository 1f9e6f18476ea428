package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Get returns the blob stored under key.
func (d *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var blob string
	err := d.sql.QueryRowContext(ctx,
		"SELECT blob FROM snapshots WHERE key = $1;", key,
	).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(blob), true, nil
}

// Set upserts the blob under key.
func (d *DB) Set(ctx context.Context, key string, blob []byte) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO snapshots(key, blob, updated_at) VALUES($1, $2, $3) ON CONFLICT (key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = EXCLUDED.updated_at;",
		key, string(blob), time.Now().UTC(),
	)
	return err
}
