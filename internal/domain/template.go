package domain

import (
	"time"

	"github.com/google/uuid"
)

// Template is a reusable, named checklist blueprint. Built-in templates come
// from the default catalog; user templates start empty or are saved from an
// adventure. Built-ins are recognised purely by name.
type Template struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	TripType       TripType        `json:"tripType"`
	ChecklistItems []ChecklistItem `json:"checklistItems"`
	CreationDate   time.Time       `json:"creationDate"`
}

// RecordID returns the template's ID.
func (t Template) RecordID() uuid.UUID { return t.ID }

// ItemsCount is the number of items on the template's checklist.
func (t Template) ItemsCount() int { return len(t.ChecklistItems) }
