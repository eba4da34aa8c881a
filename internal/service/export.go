package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/repo"
)

// ExportService flattens an adventure's checklist into export rows.
type ExportService struct {
	adventures repo.AdventureRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(adventures repo.AdventureRepo) *ExportService {
	return &ExportService{adventures: adventures}
}

// Export returns one ExportRow per checklist item, in checklist order.
// An adventure with no items contributes one row with empty item fields.
func (s *ExportService) Export(ctx context.Context, adventureID uuid.UUID) ([]domain.ExportRow, error) {
	a, err := s.adventures.Get(ctx, adventureID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	base := domain.ExportRow{
		AdventureID:     a.ID.String(),
		AdventureName:   a.Name,
		Destination:     a.Destination,
		TripType:        string(a.TripType),
		IsInternational: a.IsInternational,
		StartDate:       a.StartDate,
		EndDate:         a.EndDate,
	}
	if len(a.ChecklistItems) == 0 {
		return []domain.ExportRow{base}, nil
	}

	rows := make([]domain.ExportRow, 0, len(a.ChecklistItems))
	for i, it := range a.ChecklistItems {
		row := base
		row.Position = i + 1
		row.ItemName = it.Name
		row.IsChecked = it.IsChecked
		rows = append(rows, row)
	}
	return rows, nil
}
