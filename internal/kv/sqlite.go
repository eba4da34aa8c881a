package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/pkordes/adventure-checklist/migrations"
)

// SQLiteStore keeps blobs in a local SQLite file. It is the default backend
// for a personal install.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path, applies the
// SQLite migrations and returns a ready store. Close releases the file.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("kv.OpenSQLite: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kv.OpenSQLite: open: %w", err)
	}
	// One writer at a time; SQLite serialises writes anyway.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA busy_timeout = 5000", "PRAGMA journal_mode = WAL"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Debug("sqlite pragma failed", "pragma", pragma, "error", err)
		}
	}

	if err := migrations.Up(ctx, db, goose.DialectSQLite3); err != nil {
		db.Close()
		return nil, fmt.Errorf("kv.OpenSQLite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an already-migrated *sql.DB.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_blobs WHERE key = ?`

	var value []byte
	if err := s.db.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("kv.SQLiteStore.Get: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("kv.SQLiteStore.Get: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value      = excluded.value,
		    updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("kv.SQLiteStore.Put: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM kv_blobs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("kv.SQLiteStore.Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("kv.SQLiteStore.Delete: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("kv.SQLiteStore.Delete: %w", ErrNotFound)
	}
	return nil
}
