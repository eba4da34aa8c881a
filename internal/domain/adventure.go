// Package domain contains the core data types for the Adventure Checklist
// application and the pure checklist rules that operate on them.
// It depends only on uuid and is imported by every other internal package.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Adventure is a single trip with its own packing checklist.
// StartDate and EndDate are calendar dates stored as midnight UTC.
type Adventure struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Destination     string          `json:"destination"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	TripType        TripType        `json:"tripType"`
	IsInternational bool            `json:"isInternational"`
	ChecklistItems  []ChecklistItem `json:"checklistItems"`
}

// RecordID returns the adventure's ID. It lets the generic record store
// address adventures by identity.
func (a Adventure) RecordID() uuid.UUID { return a.ID }

// DefaultAdventureName is the name given to an adventure created without one,
// e.g. "Camping Trip to Yosemite".
func DefaultAdventureName(tripType TripType, destination string) string {
	return fmt.Sprintf("%s Trip to %s", tripType, destination)
}

// NewAdventure carries the input of the "new adventure" flow.
// TemplateID is nil when the checklist should come from the default template
// matching TripType and IsInternational.
type NewAdventure struct {
	Name            string
	Destination     string
	StartDate       time.Time
	EndDate         time.Time
	TripType        TripType
	IsInternational bool
	TemplateID      *uuid.UUID
}
