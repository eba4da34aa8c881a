package handler

import (
	"net/http"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

const templateNotFound = "template not found"

// ListTemplates handles GET /templates. With ?custom=true only user-created
// templates are returned, newest first.
func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	var (
		templates []domain.Template
		err       error
	)
	if r.URL.Query().Get("custom") == "true" {
		templates, err = s.templates.ListCustom(r.Context())
	} else {
		templates, err = s.templates.List(r.Context())
	}
	if err != nil {
		writeServiceError(w, r, err, templateNotFound)
		return
	}
	writeJSON(w, http.StatusOK, templatesToResponse(templates))
}

// CreateTemplate handles POST /templates. New templates start empty.
func (s *Server) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var body NameRequest
	if !decodeBody(w, r, &body) {
		return
	}
	t, err := s.templates.Create(r.Context(), body.Name)
	if err != nil {
		writeServiceError(w, r, err, templateNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, templateToResponse(t))
}

// ResetTemplates handles POST /templates/reset, replacing every template
// with the default catalog.
func (s *Server) ResetTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.templates.Reset(r.Context())
	if err != nil {
		writeServiceError(w, r, err, templateNotFound)
		return
	}
	writeJSON(w, http.StatusOK, templatesToResponse(templates))
}

// GetTemplate handles GET /templates/{id}.
func (s *Server) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	t, err := s.templates.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, templateNotFound)
		return
	}
	writeJSON(w, http.StatusOK, templateToResponse(t))
}

// RenameTemplate handles PUT /templates/{id}.
func (s *Server) RenameTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var body NameRequest
	if !decodeBody(w, r, &body) {
		return
	}
	t, err := s.templates.Rename(r.Context(), id, body.Name)
	if err != nil {
		writeServiceError(w, r, err, templateNotFound)
		return
	}
	writeJSON(w, http.StatusOK, templateToResponse(t))
}

// DeleteTemplate handles DELETE /templates/{id}.
func (s *Server) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.templates.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, templateNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func templatesToResponse(templates []domain.Template) []Template {
	out := make([]Template, len(templates))
	for i, t := range templates {
		out[i] = templateToResponse(t)
	}
	return out
}
