package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// The functions in this file implement the checklist mutation policy.
// None of them modify their input; each returns a freshly allocated slice.

// AddItem inserts a new unchecked item at the head of the checklist, so the
// most recently added item is listed first.
func AddItem(items []ChecklistItem, name string) ([]ChecklistItem, ChecklistItem) {
	item := NewChecklistItem(name)
	out := make([]ChecklistItem, 0, len(items)+1)
	out = append(out, item)
	out = append(out, items...)
	return out, item
}

// ToggleItem flips the checked state of the item with the given ID and then
// partitions the checklist into unchecked items followed by checked items,
// preserving relative order within each group.
// Returns ErrNotFound if no item has that ID.
func ToggleItem(items []ChecklistItem, id uuid.UUID) ([]ChecklistItem, error) {
	idx := IndexOf(items, id)
	if idx < 0 {
		return nil, fmt.Errorf("checklist item %s: %w", id, ErrNotFound)
	}
	out := clone(items)
	out[idx].IsChecked = !out[idx].IsChecked
	return Partition(out), nil
}

// RemoveItemAt removes the item at position index. The remaining items keep
// their order and checked state; no re-partitioning happens.
func RemoveItemAt(items []ChecklistItem, index int) ([]ChecklistItem, error) {
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("checklist position %d: %w", index, ErrNotFound)
	}
	out := make([]ChecklistItem, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}

// RemoveItem removes the item with the given ID.
func RemoveItem(items []ChecklistItem, id uuid.UUID) ([]ChecklistItem, error) {
	idx := IndexOf(items, id)
	if idx < 0 {
		return nil, fmt.Errorf("checklist item %s: %w", id, ErrNotFound)
	}
	return RemoveItemAt(items, idx)
}

// Partition returns the items reordered as [unchecked..., checked...].
// The sort is stable.
func Partition(items []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, 0, len(items))
	for _, it := range items {
		if !it.IsChecked {
			out = append(out, it)
		}
	}
	for _, it := range items {
		if it.IsChecked {
			out = append(out, it)
		}
	}
	return out
}

// CopyItems deep-copies a checklist for a new owner: every copy gets a new ID
// and starts unchecked. Order is preserved.
func CopyItems(items []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, len(items))
	for i, it := range items {
		out[i] = NewChecklistItem(it.Name)
	}
	return out
}

// IndexOf returns the position of the item with the given ID, or -1.
func IndexOf(items []ChecklistItem, id uuid.UUID) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func clone(items []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, len(items))
	copy(out, items)
	return out
}

// Progress summarises how much of a checklist is packed.
type Progress struct {
	Checked int `json:"checked"`
	Total   int `json:"total"`
}

// ProgressOf counts checked items.
func ProgressOf(items []ChecklistItem) Progress {
	p := Progress{Total: len(items)}
	for _, it := range items {
		if it.IsChecked {
			p.Checked++
		}
	}
	return p
}

// Fraction is Checked/Total, or 0 for an empty checklist.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Checked) / float64(p.Total)
}

// Label renders the progress as shown to the user, e.g. "3 of 4 items packed".
func (p Progress) Label() string {
	return fmt.Sprintf("%d of %d items packed", p.Checked, p.Total)
}

// Checklist is a checklist together with its owner and derived progress.
type Checklist struct {
	OwnerKind OwnerKind
	OwnerID   uuid.UUID
	Items     []ChecklistItem
	Progress  Progress
}

// NewChecklist derives progress for items owned by the given record.
func NewChecklist(kind OwnerKind, ownerID uuid.UUID, items []ChecklistItem) Checklist {
	if items == nil {
		items = []ChecklistItem{}
	}
	return Checklist{OwnerKind: kind, OwnerID: ownerID, Items: items, Progress: ProgressOf(items)}
}
