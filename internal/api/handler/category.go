// internal/api/handler/category.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"spendwise/internal/api/types"
	"spendwise/internal/domain"
	"spendwise/internal/service"
	"spendwise/internal/util"
)

// CategoryHandler handles HTTP requests related to category operations.
type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
		logger:  logger,
	}
}

// CategoryRequest represents the request body for category mutations.
type CategoryRequest struct {
	Name string              `json:"name"`
	Type domain.CategoryType `json:"type"`
}

// List handles the list categories request.
// GET /categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	categories, err := h.service.List(r.Context(), owner)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, categories)
}

// Create handles the create category request.
// POST /categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	category, err := h.service.Create(r.Context(), owner, req.Name, req.Type)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, category)
}

// Update handles the rename category request.
// PUT /categories/{categoryID}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	category, err := h.service.Rename(r.Context(), owner, categoryID, req.Name)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, category)
}

// Delete handles the delete category request.
// DELETE /categories/{categoryID}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	if err := h.service.Delete(r.Context(), owner, categoryID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.MessageResponse{Message: "Category deleted"})
}
