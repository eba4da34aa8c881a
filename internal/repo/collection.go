// Package repo is the record store for the Adventure Checklist application.
// Each collection (adventures, templates) is persisted as one JSON array under
// a fixed key in a kv.Store. There is no indexing and no partial update: every
// mutation loads the whole collection, changes it, and writes it back.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/kv"
)

// Keys under which the collections are stored.
const (
	AdventuresKey = "adventures"
	TemplatesKey  = "templates"
)

// Record is implemented by every type stored in a Collection.
type Record interface {
	RecordID() uuid.UUID
}

// Status describes the outcome of loading a collection.
type Status int

const (
	// StatusOK means the blob existed and decoded cleanly.
	StatusOK Status = iota
	// StatusNotFound means nothing is stored under the key yet.
	StatusNotFound
	// StatusCorrupt means a blob exists but could not be decoded.
	StatusCorrupt
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusCorrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// LoadResult is the decoded collection plus how it was obtained. Items is
// never nil; it is empty for StatusNotFound and StatusCorrupt.
type LoadResult[T Record] struct {
	Items  []T
	Status Status
}

// Repo defines the persistence operations on one collection.
// The service layer depends on this interface, not on Collection, so services
// can be unit-tested with a mock.
type Repo[T Record] interface {
	// Load decodes the whole collection. The error is reserved for backend
	// failures; a missing or undecodable blob is reported through Status.
	Load(ctx context.Context) (LoadResult[T], error)

	// Save encodes and writes the whole collection. On an encode or write
	// failure the previously stored collection is left untouched.
	Save(ctx context.Context, items []T) error

	// Get returns the record with the given ID or domain.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (T, error)

	// Upsert replaces the record with the same ID, or appends it.
	Upsert(ctx context.Context, record T) (T, error)

	// Delete removes the record with the given ID.
	// Returns domain.ErrNotFound if no record has that ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Update runs fn on the current collection and saves what it returns,
	// holding the collection lock for the whole read-modify-write. When fn
	// returns an error nothing is saved.
	Update(ctx context.Context, fn func(LoadResult[T]) ([]T, error)) ([]T, error)
}

// Collection is the kv-backed implementation of Repo.
type Collection[T Record] struct {
	store kv.Store
	key   string
	log   *slog.Logger

	// mu serialises read-modify-write cycles within this process.
	mu sync.Mutex
}

// NewCollection binds a collection of T to key in store. A nil logger
// falls back to slog.Default().
func NewCollection[T Record](store kv.Store, key string, log *slog.Logger) *Collection[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Collection[T]{store: store, key: key, log: log}
}

func (c *Collection[T]) Load(ctx context.Context) (LoadResult[T], error) {
	res, err := c.load(ctx)
	if err != nil {
		return LoadResult[T]{}, fmt.Errorf("repo.Collection.Load: %w", err)
	}
	return res, nil
}

func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.save(ctx, items); err != nil {
		return fmt.Errorf("repo.Collection.Save: %w", err)
	}
	return nil
}

func (c *Collection[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T

	res, err := c.load(ctx)
	if err != nil {
		return zero, fmt.Errorf("repo.Collection.Get: %w", err)
	}
	for _, r := range res.Items {
		if r.RecordID() == id {
			return r, nil
		}
	}
	return zero, fmt.Errorf("repo.Collection.Get: %s %s: %w", c.key, id, domain.ErrNotFound)
}

func (c *Collection[T]) Upsert(ctx context.Context, record T) (T, error) {
	_, err := c.Update(ctx, func(res LoadResult[T]) ([]T, error) {
		items := res.Items
		for i, r := range items {
			if r.RecordID() == record.RecordID() {
				items[i] = record
				return items, nil
			}
		}
		return append(items, record), nil
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("repo.Collection.Upsert: %w", err)
	}
	return record, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := c.Update(ctx, func(res LoadResult[T]) ([]T, error) {
		out := make([]T, 0, len(res.Items))
		for _, r := range res.Items {
			if r.RecordID() != id {
				out = append(out, r)
			}
		}
		if len(out) == len(res.Items) {
			return nil, fmt.Errorf("%s %s: %w", c.key, id, domain.ErrNotFound)
		}
		return out, nil
	})
	if err != nil {
		return fmt.Errorf("repo.Collection.Delete: %w", err)
	}
	return nil
}

func (c *Collection[T]) Update(ctx context.Context, fn func(LoadResult[T]) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	items, err := fn(res)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// load reads and decodes the blob. Decode failures are logged and reported
// as StatusCorrupt rather than returned.
func (c *Collection[T]) load(ctx context.Context) (LoadResult[T], error) {
	data, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return LoadResult[T]{Items: []T{}, Status: StatusNotFound}, nil
		}
		return LoadResult[T]{}, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.WarnContext(ctx, "stored collection is corrupt; treating as empty",
			"key", c.key,
			"error", err,
		)
		return LoadResult[T]{Items: []T{}, Status: StatusCorrupt}, nil
	}
	if items == nil {
		items = []T{}
	}
	return LoadResult[T]{Items: items, Status: StatusOK}, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		c.log.ErrorContext(ctx, "encode collection failed; keeping previous value",
			"key", c.key,
			"error", err,
		)
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	return c.store.Put(ctx, c.key, data)
}
