// Package service contains the business logic for the Adventure Checklist
// application. Services validate inputs, enforce business rules, and
// orchestrate repo calls. They depend on repo interfaces, not on a store.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/repo"
)

// AdventureService implements business logic for Adventure operations.
// It holds the templates repo because a new adventure's checklist is copied
// from a template, and an adventure can be saved back as a template.
type AdventureService struct {
	adventures repo.AdventureRepo
	templates  repo.TemplateRepo
	log        *slog.Logger
	now        func() time.Time
}

// NewAdventureService constructs an AdventureService backed by the provided repos.
func NewAdventureService(adventures repo.AdventureRepo, templates repo.TemplateRepo, log *slog.Logger) *AdventureService {
	if log == nil {
		log = slog.Default()
	}
	return &AdventureService{adventures: adventures, templates: templates, log: log, now: utcNow}
}

// Create validates the input, copies the checklist from the chosen template
// (or from the default template for the trip type and scope) and persists the
// new adventure. Copied items get fresh IDs and start unchecked.
// Returns domain.ErrValidation for invalid input and domain.ErrNotFound when
// an explicit TemplateID does not exist.
func (s *AdventureService) Create(ctx context.Context, in domain.NewAdventure) (domain.Adventure, error) {
	a := domain.Adventure{
		ID:              uuid.New(),
		Name:            in.Name,
		Destination:     in.Destination,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		TripType:        in.TripType,
		IsInternational: in.IsInternational,
	}
	a, err := normalizeAdventure(a)
	if err != nil {
		return domain.Adventure{}, fmt.Errorf("service.AdventureService.Create: %w", err)
	}

	items, err := s.seedItems(ctx, in)
	if err != nil {
		return domain.Adventure{}, fmt.Errorf("service.AdventureService.Create: %w", err)
	}
	a.ChecklistItems = items

	if _, err := s.adventures.Upsert(ctx, a); err != nil {
		return domain.Adventure{}, fmt.Errorf("service.AdventureService.Create: %w", err)
	}
	s.log.InfoContext(ctx, "adventure created",
		"adventure_id", a.ID,
		"trip_type", a.TripType,
		"items", len(a.ChecklistItems),
	)
	return a, nil
}

// seedItems picks the template a new adventure's checklist is copied from.
func (s *AdventureService) seedItems(ctx context.Context, in domain.NewAdventure) ([]domain.ChecklistItem, error) {
	if in.TemplateID != nil {
		t, err := s.templates.Get(ctx, *in.TemplateID)
		if err != nil {
			return nil, err
		}
		return domain.CopyItems(t.ChecklistItems), nil
	}

	all, err := loadSeededTemplates(ctx, s.templates, s.log, s.now)
	if err != nil {
		return nil, err
	}
	name := domain.DefaultTemplateName(domain.ScopeOf(in.IsInternational), in.TripType)
	for _, t := range all {
		if t.Name == name {
			return domain.CopyItems(t.ChecklistItems), nil
		}
	}
	return []domain.ChecklistItem{}, nil
}

// GetByID returns a single adventure by ID.
func (s *AdventureService) GetByID(ctx context.Context, id uuid.UUID) (domain.Adventure, error) {
	a, err := s.adventures.Get(ctx, id)
	if err != nil {
		return domain.Adventure{}, fmt.Errorf("service.AdventureService.GetByID: %w", err)
	}
	return a, nil
}

// List returns all adventures in stored order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *AdventureService) List(ctx context.Context) ([]domain.Adventure, error) {
	res, err := s.adventures.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.AdventureService.List: %w", err)
	}
	logCorrupt(ctx, s.log, repo.AdventuresKey, res.Status)
	return res.Items, nil
}

// ListPaged returns one page of adventures and the total count.
func (s *AdventureService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Adventure, int64, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("service.AdventureService.ListPaged: %w", err)
	}
	start, end := p.Bounds(len(all))
	return all[start:end], int64(len(all)), nil
}

// Update validates and overwrites an adventure's metadata. The stored
// checklist is kept; checklist changes go through ChecklistService.
func (s *AdventureService) Update(ctx context.Context, a domain.Adventure) (domain.Adventure, error) {
	a, err := normalizeAdventure(a)
	if err != nil {
		return domain.Adventure{}, fmt.Errorf("service.AdventureService.Update: %w", err)
	}

	var updated domain.Adventure
	_, err = s.adventures.Update(ctx, func(res repo.LoadResult[domain.Adventure]) ([]domain.Adventure, error) {
		for i := range res.Items {
			if res.Items[i].ID == a.ID {
				a.ChecklistItems = res.Items[i].ChecklistItems
				res.Items[i] = a
				updated = a
				return res.Items, nil
			}
		}
		return nil, fmt.Errorf("adventure %s: %w", a.ID, domain.ErrNotFound)
	})
	if err != nil {
		return domain.Adventure{}, fmt.Errorf("service.AdventureService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an adventure by ID.
func (s *AdventureService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.adventures.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.AdventureService.Delete: %w", err)
	}
	return nil
}

// SaveAsTemplate stores a copy of an adventure's checklist as a new user
// template with the adventure's trip type. Items are copied unchecked.
func (s *AdventureService) SaveAsTemplate(ctx context.Context, id uuid.UUID, name string) (domain.Template, error) {
	name, err := validateName(name)
	if err != nil {
		return domain.Template{}, fmt.Errorf("service.AdventureService.SaveAsTemplate: %w", err)
	}
	a, err := s.adventures.Get(ctx, id)
	if err != nil {
		return domain.Template{}, fmt.Errorf("service.AdventureService.SaveAsTemplate: %w", err)
	}

	t := domain.Template{
		ID:             uuid.New(),
		Name:           name,
		TripType:       a.TripType,
		ChecklistItems: domain.CopyItems(a.ChecklistItems),
		CreationDate:   s.now(),
	}
	if _, err := s.templates.Upsert(ctx, t); err != nil {
		return domain.Template{}, fmt.Errorf("service.AdventureService.SaveAsTemplate: %w", err)
	}
	return t, nil
}

// normalizeAdventure enforces business rules common to Create and Update:
//   - Destination must be non-empty (whitespace-only is rejected).
//   - TripType must be one of the four adventure trip types.
//   - StartDate is required; EndDate defaults to StartDate and must not be before it.
//
// Dates are truncated to calendar days in UTC and an empty name becomes
// "<TripType> Trip to <Destination>".
func normalizeAdventure(a domain.Adventure) (domain.Adventure, error) {
	a.Destination = strings.TrimSpace(a.Destination)
	a.Name = strings.TrimSpace(a.Name)

	if a.Destination == "" {
		return a, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if !a.TripType.Valid() {
		return a, fmt.Errorf("%w: trip type must be one of Camping, Snowboarding, City, Business", domain.ErrValidation)
	}
	if a.StartDate.IsZero() {
		return a, fmt.Errorf("%w: start date is required", domain.ErrValidation)
	}
	a.StartDate = calendarDay(a.StartDate)
	if a.EndDate.IsZero() {
		a.EndDate = a.StartDate
	}
	a.EndDate = calendarDay(a.EndDate)
	if a.EndDate.Before(a.StartDate) {
		return a, fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}
	if a.Name == "" {
		a.Name = domain.DefaultAdventureName(a.TripType, a.Destination)
	}
	return a, nil
}

// calendarDay returns midnight UTC of t's calendar date in t's own location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
