package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

// items builds an unchecked checklist from names, e.g. items("A", "B").
func items(names ...string) []domain.ChecklistItem {
	out := make([]domain.ChecklistItem, len(names))
	for i, n := range names {
		out[i] = domain.NewChecklistItem(n)
	}
	return out
}

func names(list []domain.ChecklistItem) []string {
	out := make([]string, len(list))
	for i, it := range list {
		out[i] = it.Name
	}
	return out
}

func TestAddItem_InsertsAtHead(t *testing.T) {
	list := items("A", "B")

	got, added := domain.AddItem(list, "C")

	assert.Equal(t, []string{"C", "A", "B"}, names(got))
	assert.Equal(t, "C", added.Name)
	assert.False(t, added.IsChecked)
	assert.NotEqual(t, uuid.Nil, added.ID)
	assert.Len(t, list, 2, "input must not be modified")
}

func TestToggleItem_MovesCheckedToBottom(t *testing.T) {
	list := items("A", "B", "C", "D")

	got, err := domain.ToggleItem(list, list[1].ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "B"}, names(got))
	assert.True(t, got[3].IsChecked)
	assert.False(t, list[1].IsChecked, "input must not be modified")
}

func TestToggleItem_PreservesOrderOfBothPartitions(t *testing.T) {
	list := items("A", "B", "C", "D", "E")

	got, err := domain.ToggleItem(list, list[3].ID) // D
	require.NoError(t, err)
	got, err = domain.ToggleItem(got, list[0].ID) // A
	require.NoError(t, err)

	// A was toggled after D but sits before it: the checked partition keeps
	// the relative order the items had before the toggle.
	assert.Equal(t, []string{"B", "C", "E", "A", "D"}, names(got))
}

func TestToggleItem_Uncheck(t *testing.T) {
	list := items("A", "B", "C")
	got, err := domain.ToggleItem(list, list[0].ID)
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C", "A"}, names(got))

	got, err = domain.ToggleItem(got, list[0].ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, names(got))
	assert.False(t, got[2].IsChecked)
}

func TestToggleItem_UnknownID(t *testing.T) {
	_, err := domain.ToggleItem(items("A"), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveItemAt_KeepsOthersUnchanged(t *testing.T) {
	list := items("A", "B", "C", "D")
	list[2].IsChecked = true

	got, err := domain.RemoveItemAt(list, 1)

	require.NoError(t, err)
	want := []domain.ChecklistItem{list[0], list[2], list[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RemoveItemAt mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveItemAt_OutOfRange(t *testing.T) {
	list := items("A")

	_, err := domain.RemoveItemAt(list, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = domain.RemoveItemAt(list, -1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveItem_ByID(t *testing.T) {
	list := items("A", "B", "C")

	got, err := domain.RemoveItem(list, list[2].ID)

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names(got))

	_, err = domain.RemoveItem(list, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPartition_Stable(t *testing.T) {
	list := items("A", "B", "C", "D")
	list[0].IsChecked = true
	list[2].IsChecked = true

	got := domain.Partition(list)

	assert.Equal(t, []string{"B", "D", "A", "C"}, names(got))
}

func TestCopyItems_FreshIDsUnchecked(t *testing.T) {
	list := items("A", "B")
	list[1].IsChecked = true

	got := domain.CopyItems(list)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"A", "B"}, names(got))
	for i := range got {
		assert.NotEqual(t, list[i].ID, got[i].ID)
		assert.False(t, got[i].IsChecked)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		checked  int
		total    int
		fraction float64
		label    string
	}{
		{"empty", 0, 0, 0, "0 of 0 items packed"},
		{"none packed", 0, 4, 0, "0 of 4 items packed"},
		{"three of four", 3, 4, 0.75, "3 of 4 items packed"},
		{"all packed", 2, 2, 1, "2 of 2 items packed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			list := make([]domain.ChecklistItem, tc.total)
			for i := range list {
				list[i] = domain.NewChecklistItem("x")
				list[i].IsChecked = i < tc.checked
			}

			p := domain.ProgressOf(list)

			assert.Equal(t, tc.checked, p.Checked)
			assert.Equal(t, tc.total, p.Total)
			assert.InDelta(t, tc.fraction, p.Fraction(), 1e-9)
			assert.Equal(t, tc.label, p.Label())
		})
	}
}
