package repo_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/kv"
	"github.com/pkordes/adventure-checklist/internal/repo"
	"github.com/pkordes/adventure-checklist/testutil"
)

// adventureFixture returns a domain.Adventure with sensible defaults.
// Callers can override individual fields after calling this function.
func adventureFixture(name string) domain.Adventure {
	return domain.Adventure{
		ID:              uuid.New(),
		Name:            name,
		Destination:     "Yosemite",
		StartDate:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		TripType:        domain.TripTypeCamping,
		IsInternational: false,
		ChecklistItems: []domain.ChecklistItem{
			domain.NewChecklistItem("Tent + stakes"),
			{ID: uuid.New(), Name: "Headlamp / flashlight", IsChecked: true},
		},
	}
}

// failingStore is a kv.Store whose operations fail with err when set.
type failingStore struct {
	kv.Store
	getErr error
	putErr error
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Store.Get(ctx, key)
}

func (f *failingStore) Put(ctx context.Context, key string, value []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.Store.Put(ctx, key, value)
}

func TestCollection_Load_NotFound(t *testing.T) {
	r := repo.NewAdventureRepo(kv.NewMemoryStore(), nil)

	res, err := r.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, repo.StatusNotFound, res.Status)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestCollection_Load_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Put(ctx, repo.AdventuresKey, []byte(`{not json`)))
	r := repo.NewAdventureRepo(store, nil)

	res, err := r.Load(ctx)

	require.NoError(t, err, "corruption is a status, not an error")
	assert.Equal(t, repo.StatusCorrupt, res.Status)
	assert.Empty(t, res.Items)
}

func TestCollection_Load_BackendError(t *testing.T) {
	boom := errors.New("disk on fire")
	r := repo.NewAdventureRepo(&failingStore{Store: kv.NewMemoryStore(), getErr: boom}, nil)

	_, err := r.Load(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestCollection_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r := repo.NewAdventureRepo(kv.NewMemoryStore(), nil)
	want := []domain.Adventure{adventureFixture("one"), adventureFixture("two")}

	require.NoError(t, r.Save(ctx, want))
	res, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, repo.StatusOK, res.Status)
	if diff := cmp.Diff(want, res.Items); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_Save_FailureKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	fs := &failingStore{Store: kv.NewMemoryStore()}
	r := repo.NewAdventureRepo(fs, nil)
	first := []domain.Adventure{adventureFixture("kept")}
	require.NoError(t, r.Save(ctx, first))

	fs.putErr = errors.New("write failed")
	err := r.Save(ctx, []domain.Adventure{adventureFixture("lost")})
	require.Error(t, err)

	fs.putErr = nil
	res, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "kept", res.Items[0].Name)
}

func TestCollection_Upsert_AppendsThenReplaces(t *testing.T) {
	ctx := context.Background()
	r := repo.NewAdventureRepo(kv.NewMemoryStore(), nil)
	a := adventureFixture("first")
	b := adventureFixture("second")

	_, err := r.Upsert(ctx, a)
	require.NoError(t, err)
	_, err = r.Upsert(ctx, b)
	require.NoError(t, err)

	a.Name = "first, renamed"
	_, err = r.Upsert(ctx, a)
	require.NoError(t, err)

	res, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "first, renamed", res.Items[0].Name, "replacement keeps position")
	assert.Equal(t, "second", res.Items[1].Name)
}

func TestCollection_Get(t *testing.T) {
	ctx := context.Background()
	r := repo.NewAdventureRepo(kv.NewMemoryStore(), nil)
	a := adventureFixture("trip")
	_, err := r.Upsert(ctx, a)
	require.NoError(t, err)

	got, err := r.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Name, got.Name)

	_, err = r.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollection_Delete(t *testing.T) {
	ctx := context.Background()
	r := repo.NewAdventureRepo(kv.NewMemoryStore(), nil)
	a, b := adventureFixture("a"), adventureFixture("b")
	require.NoError(t, r.Save(ctx, []domain.Adventure{a, b}))

	require.NoError(t, r.Delete(ctx, a.ID))

	res, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, b.ID, res.Items[0].ID)

	assert.ErrorIs(t, r.Delete(ctx, a.ID), domain.ErrNotFound)
}

func TestCollection_Update_ErrorSavesNothing(t *testing.T) {
	ctx := context.Background()
	r := repo.NewAdventureRepo(kv.NewMemoryStore(), nil)
	require.NoError(t, r.Save(ctx, []domain.Adventure{adventureFixture("a")}))
	stop := errors.New("stop")

	_, err := r.Update(ctx, func(res repo.LoadResult[domain.Adventure]) ([]domain.Adventure, error) {
		return nil, stop
	})
	require.ErrorIs(t, err, stop)

	res, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
}

// TestCollection_RandomOps_RoundTrip applies a random sequence of upserts and
// deletes and checks that Load always returns exactly the model collection.
func TestCollection_RandomOps_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := kv.OpenSQLite(ctx, testutil.SQLitePath(t))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	r := repo.NewAdventureRepo(s, nil)
	rng := rand.New(rand.NewSource(42))
	var model []domain.Adventure

	for i := 0; i < 60; i++ {
		switch op := rng.Intn(3); {
		case op == 0 && len(model) > 0:
			idx := rng.Intn(len(model))
			require.NoError(t, r.Delete(ctx, model[idx].ID))
			model = append(model[:idx:idx], model[idx+1:]...)
		case op == 1 && len(model) > 0:
			idx := rng.Intn(len(model))
			model[idx].ChecklistItems, _ = domain.AddItem(model[idx].ChecklistItems, "extra")
			_, err := r.Upsert(ctx, model[idx])
			require.NoError(t, err)
		default:
			a := adventureFixture("trip")
			_, err := r.Upsert(ctx, a)
			require.NoError(t, err)
			model = append(model, a)
		}

		res, err := r.Load(ctx)
		require.NoError(t, err)
		if model == nil {
			assert.Empty(t, res.Items)
			continue
		}
		if diff := cmp.Diff(model, res.Items); diff != "" {
			t.Fatalf("step %d: collection mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ok", repo.StatusOK.String())
	assert.Equal(t, "not_found", repo.StatusNotFound.String())
	assert.Equal(t, "corrupt", repo.StatusCorrupt.String())
}
