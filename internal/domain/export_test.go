package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

func exportRow() domain.ExportRow {
	return domain.ExportRow{
		AdventureID:     "a1",
		AdventureName:   "Business Trip to Berlin",
		Destination:     "Berlin",
		TripType:        "Business",
		IsInternational: false,
		StartDate:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Position:        3,
		ItemName:        "Laptop + charger",
		IsChecked:       true,
	}
}

func TestExportRow_CSVRecord(t *testing.T) {
	rec := exportRow().CSVRecord()

	require.Len(t, rec, len(domain.ExportCSVHeader))
	assert.Equal(t, []string{
		"a1", "Business Trip to Berlin", "Berlin", "Business", "false",
		"2025-03-10", "2025-03-12", "3", "Laptop + charger", "true",
	}, rec)
}

func TestExportRow_CSVRecord_NoItem(t *testing.T) {
	row := exportRow()
	row.Position, row.ItemName, row.IsChecked = 0, "", false

	rec := row.CSVRecord()

	assert.Equal(t, []string{"", "", ""}, rec[7:])
}

func TestExportRow_CSVRecord_FiveDigitYear(t *testing.T) {
	row := exportRow()
	row.EndDate = time.Date(10000, 1, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "10000-01-02", row.CSVRecord()[6])
}
