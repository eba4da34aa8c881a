// Package testutil provides shared helpers for integration tests.
// Helpers for external services skip automatically when the required
// environment variables are not set, so unit tests run without Postgres or
// Redis. SQLite helpers always run against a file in t.TempDir().
package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite" // registers "sqlite" driver for database/sql
)

// NewPool opens a *pgxpool.Pool connected to the database specified by the
// TEST_DATABASE_URL environment variable.
//
// The test is skipped automatically if TEST_DATABASE_URL is not set.
// The pool is closed automatically when the test (and all its subtests) finish.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireEnv(t, "TEST_DATABASE_URL")

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens a *sql.DB connected to TEST_DATABASE_URL using the pgx
// database/sql driver. Use it when goose needs a *sql.DB.
// The connection is closed automatically when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := requireEnv(t, "TEST_DATABASE_URL")

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// MustOpenSQLDB opens a *sql.DB for the given Postgres DSN and panics on any
// error. Use this in TestMain functions where no *testing.T is available.
// Callers are responsible for closing the returned *sql.DB.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: open: " + err.Error())
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		panic("testutil.MustOpenSQLDB: ping: " + err.Error())
	}
	return db
}

// SQLitePath returns a database file path inside the test's temp directory.
func SQLitePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "adventures.db")
}

// NewSQLiteDB opens an empty SQLite database in the test's temp directory.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", SQLitePath(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLiteDB: open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// NewRedisClient connects to the Redis server at TEST_REDIS_ADDR, skipping
// the test when the variable is not set. The client is closed on cleanup.
func NewRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := requireEnv(t, "TEST_REDIS_ADDR")

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Fatalf("testutil.NewRedisClient: ping: %v", err)
	}

	t.Cleanup(func() { client.Close() })
	return client
}

// requireEnv returns the value of the named environment variable, skipping
// the test if it is not set.
func requireEnv(t *testing.T, key string) string {
	t.Helper()
	v := os.Getenv(key)
	if v == "" {
		t.Skipf("%s not set; skipping integration test", key)
	}
	return v
}
