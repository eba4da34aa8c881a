package domain

import "github.com/google/uuid"

// ChecklistItem is a single packable item. Items are owned by exactly one
// adventure or template and are always handled by value.
type ChecklistItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsChecked bool      `json:"isChecked"`
}

// NewChecklistItem returns an unchecked item with a freshly generated ID.
func NewChecklistItem(name string) ChecklistItem {
	return ChecklistItem{ID: uuid.New(), Name: name}
}
