// Package kv is the key-value layer underneath the record store. A Store
// holds opaque blobs under string keys and replaces a value in a single
// atomic write. Backends: in-process memory, SQLite, Postgres and Redis.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get and Delete when the key has no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is the contract every backend satisfies.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value. Readers
	// observe either the old or the new value, never a partial write.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Returns ErrNotFound if there was nothing to remove.
	Delete(ctx context.Context, key string) error
}

// compile-time checks: every backend satisfies Store.
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*PostgresStore)(nil)
	_ Store = (*RedisStore)(nil)
)
