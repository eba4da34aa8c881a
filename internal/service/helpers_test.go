package service_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/kv"
	"github.com/pkordes/adventure-checklist/internal/repo"
)

// mockAdventureRepo is a hand-written test double for repo.AdventureRepo.
// Each method is a function field; set only the ones your test needs.
type mockAdventureRepo struct {
	load   func(ctx context.Context) (repo.LoadResult[domain.Adventure], error)
	save   func(ctx context.Context, items []domain.Adventure) error
	get    func(ctx context.Context, id uuid.UUID) (domain.Adventure, error)
	upsert func(ctx context.Context, a domain.Adventure) (domain.Adventure, error)
	delete func(ctx context.Context, id uuid.UUID) error
	update func(ctx context.Context, fn func(repo.LoadResult[domain.Adventure]) ([]domain.Adventure, error)) ([]domain.Adventure, error)
}

func (m *mockAdventureRepo) Load(ctx context.Context) (repo.LoadResult[domain.Adventure], error) {
	return m.load(ctx)
}
func (m *mockAdventureRepo) Save(ctx context.Context, items []domain.Adventure) error {
	return m.save(ctx, items)
}
func (m *mockAdventureRepo) Get(ctx context.Context, id uuid.UUID) (domain.Adventure, error) {
	return m.get(ctx, id)
}
func (m *mockAdventureRepo) Upsert(ctx context.Context, a domain.Adventure) (domain.Adventure, error) {
	return m.upsert(ctx, a)
}
func (m *mockAdventureRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockAdventureRepo) Update(ctx context.Context, fn func(repo.LoadResult[domain.Adventure]) ([]domain.Adventure, error)) ([]domain.Adventure, error) {
	return m.update(ctx, fn)
}

// compile-time check: mockAdventureRepo must satisfy repo.AdventureRepo.
var _ repo.AdventureRepo = (*mockAdventureRepo)(nil)

// countingStore wraps a kv.Store and counts writes.
type countingStore struct {
	kv.Store
	puts atomic.Int64
}

func (c *countingStore) Put(ctx context.Context, key string, value []byte) error {
	c.puts.Add(1)
	return c.Store.Put(ctx, key, value)
}

// memRepos returns adventure and template repos sharing one memory store.
func memRepos() (repo.AdventureRepo, repo.TemplateRepo, *kv.MemoryStore) {
	store := kv.NewMemoryStore()
	return repo.NewAdventureRepo(store, nil), repo.NewTemplateRepo(store, nil), store
}

func validNewAdventure() domain.NewAdventure {
	return domain.NewAdventure{
		Destination: "Yosemite",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		TripType:    domain.TripTypeCamping,
	}
}

func itemNames(items []domain.ChecklistItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}
