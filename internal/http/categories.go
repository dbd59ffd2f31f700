package httpapp

import (
	"net/http"

	"github.com/cesargomez89/audiovault/internal/domain"
	"github.com/cesargomez89/audiovault/internal/http/dto"
)

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListCategoriesByOwner(h.caller(r).ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondValidation(w, errs)
		return
	}

	category := &domain.Category{
		Name:   req.Name,
		Icon:   req.Icon,
		Color:  req.Color,
		UserID: h.caller(r).ID,
	}
	if err := h.Store.CreateCategory(category); err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, category)
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := h.ownedCategory(w, r)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := h.ownedCategory(w, r)
	if !ok {
		return
	}

	var req dto.CategoryUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondValidation(w, errs)
		return
	}

	updated, found, err := h.Store.UpdateCategory(category.ID, req.ToPatch())
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

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := h.ownedCategory(w, r)
	if !ok {
		return
	}

	removed, err := h.Store.DeleteCategory(category.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	if !removed {
		h.respondError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedCategory loads the category from the {id} parameter and enforces
// ownership. It writes the error response itself.
func (h *Handler) ownedCategory(w http.ResponseWriter, r *http.Request) (*domain.Category, bool) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return nil, false
	}

	category, found, err := h.Store.GetCategory(id)
	if err != nil {
		h.respondServiceError(w, err)
		return nil, false
	}
	if !found {
		h.respondError(w, http.StatusNotFound, "not found")
		return nil, false
	}
	if category.UserID != h.caller(r).ID {
		h.respondError(w, http.StatusForbidden, "forbidden")
		return nil, false
	}
	return category, true
}
