package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps blobs in the kv_blobs table. The schema comes from
// migrations.Postgres().
type PostgresStore struct {
	db db
}

// NewPostgresStore constructs a PostgresStore.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresStore(db db) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_blobs WHERE key = @key`

	var value []byte
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("kv.PostgresStore.Get: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("kv.PostgresStore.Get: %w", err)
	}
	return value, nil
}

// Put upserts the row in a single statement.
func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_blobs (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = now()`

	if _, err := s.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value}); err != nil {
		return fmt.Errorf("kv.PostgresStore.Put: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_blobs WHERE key = @key`

	tag, err := s.db.Exec(ctx, q, pgx.NamedArgs{"key": key})
	if err != nil {
		return fmt.Errorf("kv.PostgresStore.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("kv.PostgresStore.Delete: %w", ErrNotFound)
	}
	return nil
}
