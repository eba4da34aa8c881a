package domain

import (
	"strconv"
	"time"
)

// ExportRow is a single row in an adventure's checklist export.
// It is a flat, denormalized view: one row per checklist item, with adventure
// fields repeated on every row. An adventure with an empty checklist yields
// one row with zero values for the item fields.
type ExportRow struct {
	// Adventure fields, repeated for every item.
	AdventureID     string
	AdventureName   string
	Destination     string
	TripType        string
	IsInternational bool
	StartDate       time.Time // calendar date, midnight UTC
	EndDate         time.Time // calendar date, midnight UTC

	// Item fields, zero values when the checklist is empty.
	Position  int // 1-based; 0 when there is no item
	ItemName  string
	IsChecked bool
}

// ExportCSVHeader is the header row of every CSV export. CSVRecord returns
// the columns in the same order.
var ExportCSVHeader = []string{
	"adventure_id", "adventure_name", "destination", "trip_type", "is_international",
	"start_date", "end_date", "position", "item_name", "is_checked",
}

// CSVRecord encodes r as one CSV record. Item columns are empty on a row
// without an item.
func (r ExportRow) CSVRecord() []string {
	rec := []string{
		r.AdventureID,
		r.AdventureName,
		r.Destination,
		r.TripType,
		strconv.FormatBool(r.IsInternational),
		r.StartDate.Format(time.DateOnly),
		r.EndDate.Format(time.DateOnly),
		"", "", "",
	}
	if r.Position > 0 {
		rec[7] = strconv.Itoa(r.Position)
		rec[8] = r.ItemName
		rec[9] = strconv.FormatBool(r.IsChecked)
	}
	return rec
}
