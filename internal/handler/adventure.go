package handler

import (
	"net/http"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

const adventureNotFound = "adventure not found"

// CreateAdventure handles POST /adventures.
func (s *Server) CreateAdventure(w http.ResponseWriter, r *http.Request) {
	var body CreateAdventureRequest
	if !decodeBody(w, r, &body) {
		return
	}

	in := domain.NewAdventure{
		Name:            body.Name,
		Destination:     body.Destination,
		StartDate:       body.StartDate.Time,
		EndDate:         endDateOf(body.EndDate),
		TripType:        domain.TripType(body.TripType),
		IsInternational: body.IsInternational,
		TemplateID:      body.TemplateId,
	}
	created, err := s.adventures.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "template not found")
		return
	}
	writeJSON(w, http.StatusCreated, adventureToResponse(created))
}

// ListAdventures handles GET /adventures.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListAdventures(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	params := domain.NewPaginationParams(page, limit)
	adventures, total, err := s.adventures.ListPaged(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err, adventureNotFound)
		return
	}

	data := make([]Adventure, len(adventures))
	for i, a := range adventures {
		data[i] = adventureToResponse(a)
	}
	writeJSON(w, http.StatusOK, AdventureList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetAdventure handles GET /adventures/{id}.
func (s *Server) GetAdventure(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	a, err := s.adventures.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, adventureNotFound)
		return
	}
	writeJSON(w, http.StatusOK, adventureToResponse(a))
}

// UpdateAdventure handles PUT /adventures/{id}. Only metadata changes; the
// checklist is edited through the /items routes.
func (s *Server) UpdateAdventure(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body UpdateAdventureRequest
	if !decodeBody(w, r, &body) {
		return
	}

	updated, err := s.adventures.Update(r.Context(), domain.Adventure{
		ID:              id,
		Name:            body.Name,
		Destination:     body.Destination,
		StartDate:       body.StartDate.Time,
		EndDate:         endDateOf(body.EndDate),
		TripType:        domain.TripType(body.TripType),
		IsInternational: body.IsInternational,
	})
	if err != nil {
		writeServiceError(w, r, err, adventureNotFound)
		return
	}
	writeJSON(w, http.StatusOK, adventureToResponse(updated))
}

// DeleteAdventure handles DELETE /adventures/{id}.
func (s *Server) DeleteAdventure(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.adventures.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, adventureNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveAdventureAsTemplate handles POST /adventures/{id}/template.
func (s *Server) SaveAdventureAsTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body NameRequest
	if !decodeBody(w, r, &body) {
		return
	}
	t, err := s.adventures.SaveAsTemplate(r.Context(), id, body.Name)
	if err != nil {
		writeServiceError(w, r, err, adventureNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, templateToResponse(t))
}

// GetAdventurePhoto handles GET /adventures/{id}/photo. The response is the
// destination photo, or a placeholder image when none can be fetched.
func (s *Server) GetAdventurePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	a, err := s.adventures.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, adventureNotFound)
		return
	}

	img := s.photos.Lookup(r.Context(), a.Destination)
	w.Header().Set("Content-Type", img.ContentType)
	if img.Placeholder {
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("X-Photo-Placeholder", "true")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=86400")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}
