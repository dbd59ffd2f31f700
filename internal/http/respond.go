package httpapp

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/audiovault/internal/app"
	"github.com/cesargomez89/audiovault/internal/domain"
	"github.com/cesargomez89/audiovault/internal/http/dto"
)

type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, errorResponse{Error: message})
}

func (h *Handler) respondValidation(w http.ResponseWriter, errs []dto.ValidationError) {
	h.respondJSON(w, http.StatusBadRequest, errorResponse{
		Error:   "validation failed",
		Details: dto.ToMap(errs),
	})
}

// respondServiceError maps service and sentinel errors onto status codes.
// Anything unrecognized is a 500 and gets logged.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		h.respondError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, app.ErrUnsupportedMediaType):
		h.respondError(w, http.StatusBadRequest, "unsupported media type")
	case errors.Is(err, app.ErrFileTooLarge):
		h.respondError(w, http.StatusBadRequest, "file exceeds the upload size limit")
	default:
		h.Logger.Error("Request failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// idParam parses the named chi URL parameter as a positive integer. It
// writes the 400 itself; callers just return on !ok.
func (h *Handler) idParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
