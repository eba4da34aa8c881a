package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/adventure-checklist/internal/catalog"
	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/repo"
)

// TemplateService implements business logic for Template operations.
// Every read of the whole collection goes through default-template seeding.
type TemplateService struct {
	templates repo.TemplateRepo
	log       *slog.Logger
	now       func() time.Time
}

// NewTemplateService constructs a TemplateService backed by the provided TemplateRepo.
func NewTemplateService(templates repo.TemplateRepo, log *slog.Logger) *TemplateService {
	if log == nil {
		log = slog.Default()
	}
	return &TemplateService{templates: templates, log: log, now: utcNow}
}

// List returns every template, built-in and user-created, in stored order.
// Missing default templates are re-created first.
func (s *TemplateService) List(ctx context.Context) ([]domain.Template, error) {
	items, err := loadSeededTemplates(ctx, s.templates, s.log, s.now)
	if err != nil {
		return nil, fmt.Errorf("service.TemplateService.List: %w", err)
	}
	return items, nil
}

// ListCustom returns only user-created templates, newest first.
func (s *TemplateService) ListCustom(ctx context.Context) ([]domain.Template, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TemplateService.ListCustom: %w", err)
	}
	out := make([]domain.Template, 0, len(all))
	for _, t := range all {
		if !domain.IsDefaultTemplateName(t.Name) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreationDate.After(out[j].CreationDate)
	})
	return out, nil
}

// GetByID returns a single template by ID.
func (s *TemplateService) GetByID(ctx context.Context, id uuid.UUID) (domain.Template, error) {
	t, err := s.templates.Get(ctx, id)
	if err != nil {
		return domain.Template{}, fmt.Errorf("service.TemplateService.GetByID: %w", err)
	}
	return t, nil
}

// Create persists a new, empty user template with trip type Custom.
func (s *TemplateService) Create(ctx context.Context, name string) (domain.Template, error) {
	name, err := validateName(name)
	if err != nil {
		return domain.Template{}, fmt.Errorf("service.TemplateService.Create: %w", err)
	}
	t := domain.Template{
		ID:             uuid.New(),
		Name:           name,
		TripType:       domain.TripTypeCustom,
		ChecklistItems: []domain.ChecklistItem{},
		CreationDate:   s.now(),
	}
	if _, err := s.templates.Upsert(ctx, t); err != nil {
		return domain.Template{}, fmt.Errorf("service.TemplateService.Create: %w", err)
	}
	return t, nil
}

// Rename changes a template's name, leaving its checklist untouched.
func (s *TemplateService) Rename(ctx context.Context, id uuid.UUID, name string) (domain.Template, error) {
	name, err := validateName(name)
	if err != nil {
		return domain.Template{}, fmt.Errorf("service.TemplateService.Rename: %w", err)
	}
	var renamed domain.Template
	_, err = s.templates.Update(ctx, func(res repo.LoadResult[domain.Template]) ([]domain.Template, error) {
		for i := range res.Items {
			if res.Items[i].ID == id {
				res.Items[i].Name = name
				renamed = res.Items[i]
				return res.Items, nil
			}
		}
		return nil, fmt.Errorf("template %s: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return domain.Template{}, fmt.Errorf("service.TemplateService.Rename: %w", err)
	}
	return renamed, nil
}

// Delete removes a template by ID. Deleted defaults come back on the next List.
func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.templates.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TemplateService.Delete: %w", err)
	}
	return nil
}

// Reset discards every template, including user-created ones, and stores a
// fresh default catalog.
func (s *TemplateService) Reset(ctx context.Context) ([]domain.Template, error) {
	defaults := catalog.Defaults(s.now())
	if err := s.templates.Save(ctx, defaults); err != nil {
		return nil, fmt.Errorf("service.TemplateService.Reset: %w", err)
	}
	s.log.InfoContext(ctx, "templates reset to defaults", "count", len(defaults))
	return defaults, nil
}

// validateName trims name and rejects it when empty.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return name, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
