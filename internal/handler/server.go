// Package handler implements the HTTP handlers for the Adventure Checklist API.
// All handlers are methods on Server; Routes wires them onto a chi router.
// Methods are split into resource files (adventure.go, template.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/photo"
	"github.com/pkordes/adventure-checklist/openapi"
)

// AdventureServicer defines the adventure operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching storage or the service layer.
type AdventureServicer interface {
	Create(ctx context.Context, in domain.NewAdventure) (domain.Adventure, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Adventure, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Adventure, int64, error)
	Update(ctx context.Context, a domain.Adventure) (domain.Adventure, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SaveAsTemplate(ctx context.Context, id uuid.UUID, name string) (domain.Template, error)
}

// TemplateServicer defines the template catalog operations.
type TemplateServicer interface {
	List(ctx context.Context) ([]domain.Template, error)
	ListCustom(ctx context.Context) ([]domain.Template, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Template, error)
	Create(ctx context.Context, name string) (domain.Template, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (domain.Template, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reset(ctx context.Context) ([]domain.Template, error)
}

// ChecklistServicer defines the checklist mutations shared by adventures and
// templates.
type ChecklistServicer interface {
	Get(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID) (domain.Checklist, error)
	AddItem(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID, name string) (domain.Checklist, error)
	ToggleItem(ctx context.Context, kind domain.OwnerKind, ownerID, itemID uuid.UUID) (domain.Checklist, error)
	RemoveItem(ctx context.Context, kind domain.OwnerKind, ownerID, itemID uuid.UUID) (domain.Checklist, error)
	RemoveItemAt(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID, index int) (domain.Checklist, error)
}

// ExportServicer defines the export operation.
type ExportServicer interface {
	Export(ctx context.Context, adventureID uuid.UUID) ([]domain.ExportRow, error)
}

// PhotoServicer looks up destination photos. Lookup never fails; it degrades
// to a placeholder image.
type PhotoServicer interface {
	Lookup(ctx context.Context, destination string) photo.Image
}

// Server holds the dependencies of every handler.
// Wire it in main.go via r.Mount("/", server.Routes()).
type Server struct {
	adventures AdventureServicer
	templates  TemplateServicer
	checklists ChecklistServicer
	export     ExportServicer
	photos     PhotoServicer
}

// NewServer constructs the Server with all its dependencies.
// Any dependency may be nil in tests that do not exercise its routes.
func NewServer(adventures AdventureServicer, templates TemplateServicer, checklists ChecklistServicer, export ExportServicer, photos PhotoServicer) *Server {
	return &Server{
		adventures: adventures,
		templates:  templates,
		checklists: checklists,
		export:     export,
		photos:     photos,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}

// Routes returns the API routes. Cross-cutting middleware (request IDs,
// logging, CORS, body limits) is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeValidation, "method not allowed")
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", openapi.Handler)

	r.Route("/adventures", func(r chi.Router) {
		r.Get("/", s.ListAdventures)
		r.Post("/", s.CreateAdventure)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetAdventure)
			r.Put("/", s.UpdateAdventure)
			r.Delete("/", s.DeleteAdventure)
			r.Get("/photo", s.GetAdventurePhoto)
			r.Get("/export", s.GetExport)
			r.Post("/template", s.SaveAdventureAsTemplate)
			s.itemRoutes(r, domain.OwnerAdventure)
		})
	})

	r.Route("/templates", func(r chi.Router) {
		r.Get("/", s.ListTemplates)
		r.Post("/", s.CreateTemplate)
		r.Post("/reset", s.ResetTemplates)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTemplate)
			r.Put("/", s.RenameTemplate)
			r.Delete("/", s.DeleteTemplate)
			s.itemRoutes(r, domain.OwnerTemplate)
		})
	})

	return r
}

// itemRoutes registers the checklist routes under an owner's /{id} route.
func (s *Server) itemRoutes(r chi.Router, kind domain.OwnerKind) {
	r.Get("/items", s.GetChecklist(kind))
	r.Post("/items", s.AddItem(kind))
	r.Post("/items/{itemID}/toggle", s.ToggleItem(kind))
	r.Delete("/items/{itemID}", s.RemoveItem(kind))
	r.Delete("/items/at/{index}", s.RemoveItemAt(kind))
}
