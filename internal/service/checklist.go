package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/repo"
)

// ChecklistService applies the checklist mutation policy to the checklist of
// an adventure or a template and persists the whole owning record after
// every change.
type ChecklistService struct {
	adventures repo.AdventureRepo
	templates  repo.TemplateRepo
}

// NewChecklistService constructs a ChecklistService backed by the provided repos.
func NewChecklistService(adventures repo.AdventureRepo, templates repo.TemplateRepo) *ChecklistService {
	return &ChecklistService{adventures: adventures, templates: templates}
}

// Get returns the owner's checklist with its progress.
func (s *ChecklistService) Get(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID) (domain.Checklist, error) {
	var (
		items []domain.ChecklistItem
		err   error
	)
	switch kind {
	case domain.OwnerAdventure:
		var a domain.Adventure
		a, err = s.adventures.Get(ctx, ownerID)
		items = a.ChecklistItems
	case domain.OwnerTemplate:
		var t domain.Template
		t, err = s.templates.Get(ctx, ownerID)
		items = t.ChecklistItems
	default:
		err = unknownOwner(kind)
	}
	if err != nil {
		return domain.Checklist{}, fmt.Errorf("service.ChecklistService.Get: %w", err)
	}
	return domain.NewChecklist(kind, ownerID, items), nil
}

// AddItem puts a new unchecked item at the head of the checklist.
// Returns domain.ErrValidation if name is blank.
func (s *ChecklistService) AddItem(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID, name string) (domain.Checklist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Checklist{}, fmt.Errorf("service.ChecklistService.AddItem: %w: item name is required", domain.ErrValidation)
	}
	c, err := s.mutate(ctx, kind, ownerID, func(items []domain.ChecklistItem) ([]domain.ChecklistItem, error) {
		out, _ := domain.AddItem(items, name)
		return out, nil
	})
	if err != nil {
		return domain.Checklist{}, fmt.Errorf("service.ChecklistService.AddItem: %w", err)
	}
	return c, nil
}

// ToggleItem flips an item and moves checked items below unchecked ones.
func (s *ChecklistService) ToggleItem(ctx context.Context, kind domain.OwnerKind, ownerID, itemID uuid.UUID) (domain.Checklist, error) {
	c, err := s.mutate(ctx, kind, ownerID, func(items []domain.ChecklistItem) ([]domain.ChecklistItem, error) {
		return domain.ToggleItem(items, itemID)
	})
	if err != nil {
		return domain.Checklist{}, fmt.Errorf("service.ChecklistService.ToggleItem: %w", err)
	}
	return c, nil
}

// RemoveItem deletes the item with the given ID.
func (s *ChecklistService) RemoveItem(ctx context.Context, kind domain.OwnerKind, ownerID, itemID uuid.UUID) (domain.Checklist, error) {
	c, err := s.mutate(ctx, kind, ownerID, func(items []domain.ChecklistItem) ([]domain.ChecklistItem, error) {
		return domain.RemoveItem(items, itemID)
	})
	if err != nil {
		return domain.Checklist{}, fmt.Errorf("service.ChecklistService.RemoveItem: %w", err)
	}
	return c, nil
}

// RemoveItemAt deletes the item at a zero-based position.
func (s *ChecklistService) RemoveItemAt(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID, index int) (domain.Checklist, error) {
	c, err := s.mutate(ctx, kind, ownerID, func(items []domain.ChecklistItem) ([]domain.ChecklistItem, error) {
		return domain.RemoveItemAt(items, index)
	})
	if err != nil {
		return domain.Checklist{}, fmt.Errorf("service.ChecklistService.RemoveItemAt: %w", err)
	}
	return c, nil
}

func (s *ChecklistService) mutate(ctx context.Context, kind domain.OwnerKind, ownerID uuid.UUID, fn func([]domain.ChecklistItem) ([]domain.ChecklistItem, error)) (domain.Checklist, error) {
	var (
		items []domain.ChecklistItem
		err   error
	)
	switch kind {
	case domain.OwnerAdventure:
		items, err = mutateOwner(ctx, s.adventures, ownerID,
			func(a domain.Adventure) []domain.ChecklistItem { return a.ChecklistItems },
			func(a *domain.Adventure, it []domain.ChecklistItem) { a.ChecklistItems = it },
			fn)
	case domain.OwnerTemplate:
		items, err = mutateOwner(ctx, s.templates, ownerID,
			func(t domain.Template) []domain.ChecklistItem { return t.ChecklistItems },
			func(t *domain.Template, it []domain.ChecklistItem) { t.ChecklistItems = it },
			fn)
	default:
		err = unknownOwner(kind)
	}
	if err != nil {
		return domain.Checklist{}, err
	}
	return domain.NewChecklist(kind, ownerID, items), nil
}

// mutateOwner rewrites the checklist of one record inside a single
// read-modify-write of its collection.
func mutateOwner[T repo.Record](
	ctx context.Context,
	r repo.Repo[T],
	ownerID uuid.UUID,
	get func(T) []domain.ChecklistItem,
	set func(*T, []domain.ChecklistItem),
	fn func([]domain.ChecklistItem) ([]domain.ChecklistItem, error),
) ([]domain.ChecklistItem, error) {
	var result []domain.ChecklistItem
	_, err := r.Update(ctx, func(res repo.LoadResult[T]) ([]T, error) {
		for i := range res.Items {
			if res.Items[i].RecordID() != ownerID {
				continue
			}
			items, err := fn(get(res.Items[i]))
			if err != nil {
				return nil, err
			}
			set(&res.Items[i], items)
			result = items
			return res.Items, nil
		}
		return nil, fmt.Errorf("%s %s: %w", ownerKindOf[T](), ownerID, domain.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func ownerKindOf[T repo.Record]() domain.OwnerKind {
	var zero T
	if _, ok := any(zero).(domain.Template); ok {
		return domain.OwnerTemplate
	}
	return domain.OwnerAdventure
}

func unknownOwner(kind domain.OwnerKind) error {
	return fmt.Errorf("%w: unknown checklist owner %q", domain.ErrValidation, kind)
}
