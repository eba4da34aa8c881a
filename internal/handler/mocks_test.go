package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/handler"
	"github.com/pkordes/adventure-checklist/internal/photo"
)

// Test doubles for the Servicer interfaces.
// Set only the method fields your test needs.

type mockAdventureServicer struct {
	create         func(ctx context.Context, in domain.NewAdventure) (domain.Adventure, error)
	getByID        func(ctx context.Context, id uuid.UUID) (domain.Adventure, error)
	listPaged      func(ctx context.Context, p domain.PaginationParams) ([]domain.Adventure, int64, error)
	update         func(ctx context.Context, a domain.Adventure) (domain.Adventure, error)
	delete         func(ctx context.Context, id uuid.UUID) error
	saveAsTemplate func(ctx context.Context, id uuid.UUID, name string) (domain.Template, error)
}

func (m *mockAdventureServicer) Create(ctx context.Context, in domain.NewAdventure) (domain.Adventure, error) {
	return m.create(ctx, in)
}
func (m *mockAdventureServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Adventure, error) {
	return m.getByID(ctx, id)
}
func (m *mockAdventureServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Adventure, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockAdventureServicer) Update(ctx context.Context, a domain.Adventure) (domain.Adventure, error) {
	return m.update(ctx, a)
}
func (m *mockAdventureServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockAdventureServicer) SaveAsTemplate(ctx context.Context, id uuid.UUID, name string) (domain.Template, error) {
	return m.saveAsTemplate(ctx, id, name)
}

type mockTemplateServicer struct {
	list       func(ctx context.Context) ([]domain.Template, error)
	listCustom func(ctx context.Context) ([]domain.Template, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Template, error)
	create     func(ctx context.Context, name string) (domain.Template, error)
	rename     func(ctx context.Context, id uuid.UUID, name string) (domain.Template, error)
	delete     func(ctx context.Context, id uuid.UUID) error
	reset      func(ctx context.Context) ([]domain.Template, error)
}

func (m *mockTemplateServicer) List(ctx context.Context) ([]domain.Template, error) {
	return m.list(ctx)
}
func (m *mockTemplateServicer) ListCustom(ctx context.Context) ([]domain.Template, error) {
	return m.listCustom(ctx)
}
func (m *mockTemplateServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Template, error) {
	return m.getByID(ctx, id)
}
func (m *mockTemplateServicer) Create(ctx context.Context, name string) (domain.Template, error) {
	return m.create(ctx, name)
}
func (m *mockTemplateServicer) Rename(ctx context.Context, id uuid.UUID, name string) (domain.Template, error) {
	return m.rename(ctx, id, name)
}
func (m *mockTemplateServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockTemplateServicer) Reset(ctx context.Context) ([]domain.Template, error) {
	return m.reset(ctx)
}

type mockChecklistServicer struct {
	get          func(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID) (domain.Checklist, error)
	addItem      func(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID, name string) (domain.Checklist, error)
	toggleItem   func(ctx context.Context, kind domain.OwnerKind, ownerID, itemID uuid.UUID) (domain.Checklist, error)
	removeItem   func(ctx context.Context, kind domain.OwnerKind, ownerID, itemID uuid.UUID) (domain.Checklist, error)
	removeItemAt func(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID, index int) (domain.Checklist, error)
}

func (m *mockChecklistServicer) Get(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID) (domain.Checklist, error) {
	return m.get(ctx, kind, ownerID)
}
func (m *mockChecklistServicer) AddItem(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID, name string) (domain.Checklist, error) {
	return m.addItem(ctx, kind, ownerID, name)
}
func (m *mockChecklistServicer) ToggleItem(ctx context.Context, kind domain.OwnerKind, ownerID, itemID uuid.UUID) (domain.Checklist, error) {
	return m.toggleItem(ctx, kind, ownerID, itemID)
}
func (m *mockChecklistServicer) RemoveItem(ctx context.Context, kind domain.OwnerKind, ownerID, itemID uuid.UUID) (domain.Checklist, error) {
	return m.removeItem(ctx, kind, ownerID, itemID)
}
func (m *mockChecklistServicer) RemoveItemAt(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID, index int) (domain.Checklist, error) {
	return m.removeItemAt(ctx, kind, ownerID, index)
}

type mockExportServicer struct {
	export func(ctx context.Context, adventureID uuid.UUID) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, adventureID uuid.UUID) ([]domain.ExportRow, error) {
	return m.export(ctx, adventureID)
}

type mockPhotoServicer struct {
	lookup func(ctx context.Context, destination string) photo.Image
}

func (m *mockPhotoServicer) Lookup(ctx context.Context, destination string) photo.Image {
	return m.lookup(ctx, destination)
}

// compile-time checks: every mock must satisfy its handler interface.
var (
	_ handler.AdventureServicer = (*mockAdventureServicer)(nil)
	_ handler.TemplateServicer  = (*mockTemplateServicer)(nil)
	_ handler.ChecklistServicer = (*mockChecklistServicer)(nil)
	_ handler.ExportServicer    = (*mockExportServicer)(nil)
	_ handler.PhotoServicer     = (*mockPhotoServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// deps collects the mocks a test wires into the Server. Nil fields stay nil.
type deps struct {
	adventures *mockAdventureServicer
	templates  *mockTemplateServicer
	checklists *mockChecklistServicer
	export     *mockExportServicer
	photos     *mockPhotoServicer
}

// newHTTPHandler wires a Server with the given mocks into the chi router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(d deps) http.Handler {
	var (
		a handler.AdventureServicer
		t handler.TemplateServicer
		c handler.ChecklistServicer
		e handler.ExportServicer
		p handler.PhotoServicer
	)
	if d.adventures != nil {
		a = d.adventures
	}
	if d.templates != nil {
		t = d.templates
	}
	if d.checklists != nil {
		c = d.checklists
	}
	if d.export != nil {
		e = d.export
	}
	if d.photos != nil {
		p = d.photos
	}
	return handler.NewServer(a, t, c, e, p).Routes()
}

func adventureFixture() domain.Adventure {
	return domain.Adventure{
		ID:              uuid.New(),
		Name:            "Camping Trip to Yosemite",
		Destination:     "Yosemite",
		StartDate:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		TripType:        domain.TripTypeCamping,
		IsInternational: false,
		ChecklistItems: []domain.ChecklistItem{
			{ID: uuid.New(), Name: "Tent"},
			{ID: uuid.New(), Name: "Stove", IsChecked: true},
		},
	}
}

func templateFixture(name string) domain.Template {
	return domain.Template{
		ID:             uuid.New(),
		Name:           name,
		TripType:       domain.TripTypeCustom,
		ChecklistItems: []domain.ChecklistItem{{ID: uuid.New(), Name: "Snacks"}},
		CreationDate:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body *bytes.Buffer) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}
