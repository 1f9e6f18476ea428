// Package sqlite implements the snapshot blob store on a local SQLite file,
// for single-node installs and the babyctl CLI.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"babylog/internal/domain"
)

const createSnapshotsTableSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
  key TEXT PRIMARY KEY,
  blob TEXT NOT NULL,
  updated_at DATETIME NOT NULL
)`

// DB wraps a *sql.DB over a SQLite file.
type DB struct {
	sql *sql.DB
}

var _ domain.SnapshotRepository = (*DB)(nil)

// Open creates the parent directory if needed, opens the database file and
// runs migrations.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	s, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := s.Ping(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := s.Exec(createSnapshotsTableSQL); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &DB{sql: s}, nil
}

// Close closes the database file.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Get returns the blob stored under key.
func (d *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var blob string
	err := d.sql.QueryRowContext(ctx, "SELECT blob FROM snapshots WHERE key = ?;", key).Scan(&blob)
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
		"INSERT INTO snapshots(key, blob, updated_at) VALUES(?, ?, ?) ON CONFLICT(key) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at;",
		key, string(blob), time.Now().UTC())
	return err
}
