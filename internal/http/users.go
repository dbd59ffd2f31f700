package httpapp

import (
	"net/http"

	"github.com/cesargomez89/audiovault/internal/http/dto"
)

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.caller(r))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req dto.UserUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondValidation(w, errs)
		return
	}

	// Usernames are unique; renaming onto another user's name is a
	// validation failure, not a store error.
	if req.Username != nil {
		existing, found, err := h.Store.GetUserByUsername(*req.Username)
		if err != nil {
			h.respondServiceError(w, err)
			return
		}
		if found && existing.ID != h.caller(r).ID {
			h.respondValidation(w, []dto.ValidationError{{Field: "username", Message: "is already taken"}})
			return
		}
	}

	updated, found, err := h.Store.UpdateUser(h.caller(r).ID, req.ToPatch())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	if !found {
		h.respondError(w, http.StatusNotFound, "not found")
		return
	}
	h.respondJSON(w, http.StatusOK, updated)
}
