package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

// Wire types. Field names follow openapi/openapi.yaml.

// ChecklistItem is one entry of a checklist on the wire.
type ChecklistItem struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	IsChecked bool               `json:"isChecked"`
}

// Progress is the packed/total summary of a checklist.
type Progress struct {
	Checked  int     `json:"checked"`
	Total    int     `json:"total"`
	Fraction float64 `json:"fraction"`
	Label    string  `json:"label"`
}

// Adventure is the wire form of domain.Adventure.
type Adventure struct {
	Id              openapi_types.UUID `json:"id"`
	Name            string             `json:"name"`
	Destination     string             `json:"destination"`
	StartDate       openapi_types.Date `json:"startDate"`
	EndDate         openapi_types.Date `json:"endDate"`
	TripType        string             `json:"tripType"`
	IsInternational bool               `json:"isInternational"`
	ChecklistItems  []ChecklistItem    `json:"checklistItems"`
	Progress        Progress           `json:"progress"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// AdventureList is the body of GET /adventures.
type AdventureList struct {
	Data       []Adventure `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Template is the wire form of domain.Template.
type Template struct {
	Id             openapi_types.UUID `json:"id"`
	Name           string             `json:"name"`
	TripType       string             `json:"tripType"`
	IsDefault      bool               `json:"isDefault"`
	ItemsCount     int                `json:"itemsCount"`
	ChecklistItems []ChecklistItem    `json:"checklistItems"`
	CreationDate   time.Time          `json:"creationDate"`
}

// Checklist is the body of every /items endpoint.
type Checklist struct {
	Owner    string             `json:"owner"`
	OwnerId  openapi_types.UUID `json:"ownerId"`
	Items    []ChecklistItem    `json:"items"`
	Progress Progress           `json:"progress"`
}

// CreateAdventureRequest is the body of POST /adventures.
// An omitted name becomes "<tripType> Trip to <destination>"; an omitted
// endDate equals startDate. TemplateId selects the template the checklist is
// copied from; the default template for tripType and scope is used otherwise.
type CreateAdventureRequest struct {
	Name            string              `json:"name" validate:"max=200"`
	Destination     string              `json:"destination" validate:"required,max=200"`
	StartDate       openapi_types.Date  `json:"startDate"`
	EndDate         *openapi_types.Date `json:"endDate,omitempty"`
	TripType        string              `json:"tripType" validate:"required,oneof=Camping Snowboarding City Business"`
	IsInternational bool                `json:"isInternational"`
	TemplateId      *openapi_types.UUID `json:"templateId,omitempty"`
}

// UpdateAdventureRequest is the body of PUT /adventures/{id}.
type UpdateAdventureRequest struct {
	Name            string              `json:"name" validate:"max=200"`
	Destination     string              `json:"destination" validate:"required,max=200"`
	StartDate       openapi_types.Date  `json:"startDate"`
	EndDate         *openapi_types.Date `json:"endDate,omitempty"`
	TripType        string              `json:"tripType" validate:"required,oneof=Camping Snowboarding City Business"`
	IsInternational bool                `json:"isInternational"`
}

// NameRequest is the body of every endpoint that takes a single name:
// creating or renaming a template, saving an adventure as a template and
// adding a checklist item.
type NameRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// --- request decoding -------------------------------------------------------

var validate = newValidator()

// newValidator reports field names by their JSON tag so messages match the
// request body the client sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeBody decodes and validates a JSON request body into dst.
// On failure it writes the error response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, codeValidation, "request body too large")
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusUnprocessableEntity, codeValidation, "request body is required")
		default:
			writeError(w, http.StatusUnprocessableEntity, codeValidation, "invalid request body: "+err.Error())
		}
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusUnprocessableEntity, codeValidation, validationMessage(err))
		return false
	}
	return true
}

// validationMessage renders the first validator failure as a sentence.
func validationMessage(err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return err.Error()
	}
	fe := ves[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}

// pathUUID parses a UUID path parameter. On failure it writes a 422 and
// returns false.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, codeValidation, name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter. A missing parameter
// yields nil; a malformed one writes a 422 and returns false.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, codeValidation, name+" must be an integer")
		return nil, false
	}
	return &n, true
}

// --- mapping helpers --------------------------------------------------------

func itemsToResponse(items []domain.ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, len(items))
	for i, it := range items {
		out[i] = ChecklistItem{Id: it.ID, Name: it.Name, IsChecked: it.IsChecked}
	}
	return out
}

func progressToResponse(p domain.Progress) Progress {
	return Progress{Checked: p.Checked, Total: p.Total, Fraction: p.Fraction(), Label: p.Label()}
}

func adventureToResponse(a domain.Adventure) Adventure {
	return Adventure{
		Id:              a.ID,
		Name:            a.Name,
		Destination:     a.Destination,
		StartDate:       openapi_types.Date{Time: a.StartDate},
		EndDate:         openapi_types.Date{Time: a.EndDate},
		TripType:        string(a.TripType),
		IsInternational: a.IsInternational,
		ChecklistItems:  itemsToResponse(a.ChecklistItems),
		Progress:        progressToResponse(domain.ProgressOf(a.ChecklistItems)),
	}
}

func templateToResponse(t domain.Template) Template {
	return Template{
		Id:             t.ID,
		Name:           t.Name,
		TripType:       string(t.TripType),
		IsDefault:      domain.IsDefaultTemplateName(t.Name),
		ItemsCount:     t.ItemsCount(),
		ChecklistItems: itemsToResponse(t.ChecklistItems),
		CreationDate:   t.CreationDate,
	}
}

func checklistToResponse(c domain.Checklist) Checklist {
	return Checklist{
		Owner:    string(c.OwnerKind),
		OwnerId:  c.OwnerID,
		Items:    itemsToResponse(c.Items),
		Progress: progressToResponse(c.Progress),
	}
}

// endDateOf returns the optional end date, or the zero time when omitted.
func endDateOf(d *openapi_types.Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
