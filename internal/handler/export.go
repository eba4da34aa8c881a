// Package handler: export.go implements GET /adventures/{id}/export.
// Returns the adventure's checklist as a flat table, one row per item.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

// ExportRow is the JSON form of one export row. Item fields are omitted on
// the single row of an adventure with an empty checklist.
type ExportRow struct {
	AdventureId     openapi_types.UUID `json:"adventureId"`
	AdventureName   string             `json:"adventureName"`
	Destination     string             `json:"destination"`
	TripType        string             `json:"tripType"`
	IsInternational bool               `json:"isInternational"`
	StartDate       openapi_types.Date `json:"startDate"`
	EndDate         openapi_types.Date `json:"endDate"`
	Position        *int               `json:"position,omitempty"`
	ItemName        *string            `json:"itemName,omitempty"`
	IsChecked       *bool              `json:"isChecked,omitempty"`
}

// GetExport handles GET /adventures/{id}/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rows, err := s.export.Export(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, adventureNotFound)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "csv":
		writeCSV(w, id, rows)
	case "", "json":
		out := make([]ExportRow, 0, len(rows))
		for _, row := range rows {
			out = append(out, domainRowToResponse(row))
		}
		writeJSON(w, http.StatusOK, out)
	default:
		writeError(w, http.StatusUnprocessableEntity, codeValidation, "format must be one of json, csv")
	}
}

// writeCSV encodes rows as CSV with a header row.
func writeCSV(w http.ResponseWriter, id uuid.UUID, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(domain.ExportCSVHeader)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(row.CSVRecord())
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="adventure-%s.csv"`, id))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// domainRowToResponse maps a domain.ExportRow to the JSON ExportRow.
// Rows with Position 0 carry no item.
func domainRowToResponse(r domain.ExportRow) ExportRow {
	id, _ := uuid.Parse(r.AdventureID)
	row := ExportRow{
		AdventureId:     id,
		AdventureName:   r.AdventureName,
		Destination:     r.Destination,
		TripType:        r.TripType,
		IsInternational: r.IsInternational,
		StartDate:       openapi_types.Date{Time: r.StartDate},
		EndDate:         openapi_types.Date{Time: r.EndDate},
	}
	if r.Position > 0 {
		pos, name, checked := r.Position, r.ItemName, r.IsChecked
		row.Position = &pos
		row.ItemName = &name
		row.IsChecked = &checked
	}
	return row
}
