package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

// ownerNotFound names the missing record for a checklist route.
func ownerNotFound(kind domain.OwnerKind) string {
	if kind == domain.OwnerTemplate {
		return "template or item not found"
	}
	return "adventure or item not found"
}

// GetChecklist handles GET /{owner}/{id}/items.
func (s *Server) GetChecklist(kind domain.OwnerKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, "id")
		if !ok {
			return
		}
		c, err := s.checklists.Get(r.Context(), kind, id)
		s.writeChecklist(w, r, kind, http.StatusOK, c, err)
	}
}

// AddItem handles POST /{owner}/{id}/items. The new item goes to the head
// of the checklist, unchecked.
func (s *Server) AddItem(kind domain.OwnerKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, "id")
		if !ok {
			return
		}
		var body NameRequest
		if !decodeBody(w, r, &body) {
			return
		}
		c, err := s.checklists.AddItem(r.Context(), kind, id, body.Name)
		s.writeChecklist(w, r, kind, http.StatusCreated, c, err)
	}
}

// ToggleItem handles POST /{owner}/{id}/items/{itemID}/toggle.
func (s *Server) ToggleItem(kind domain.OwnerKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, "id")
		if !ok {
			return
		}
		itemID, ok := pathUUID(w, r, "itemID")
		if !ok {
			return
		}
		c, err := s.checklists.ToggleItem(r.Context(), kind, id, itemID)
		s.writeChecklist(w, r, kind, http.StatusOK, c, err)
	}
}

// RemoveItem handles DELETE /{owner}/{id}/items/{itemID}.
func (s *Server) RemoveItem(kind domain.OwnerKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, "id")
		if !ok {
			return
		}
		itemID, ok := pathUUID(w, r, "itemID")
		if !ok {
			return
		}
		c, err := s.checklists.RemoveItem(r.Context(), kind, id, itemID)
		s.writeChecklist(w, r, kind, http.StatusOK, c, err)
	}
}

// RemoveItemAt handles DELETE /{owner}/{id}/items/at/{index}, where index is
// the zero-based position in the current display order.
func (s *Server) RemoveItemAt(kind domain.OwnerKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, "id")
		if !ok {
			return
		}
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, codeValidation, "index must be an integer")
			return
		}
		c, err := s.checklists.RemoveItemAt(r.Context(), kind, id, index)
		s.writeChecklist(w, r, kind, http.StatusOK, c, err)
	}
}

func (s *Server) writeChecklist(w http.ResponseWriter, r *http.Request, kind domain.OwnerKind, status int, c domain.Checklist, err error) {
	if err != nil {
		writeServiceError(w, r, err, ownerNotFound(kind))
		return
	}
	writeJSON(w, status, checklistToResponse(c))
}
