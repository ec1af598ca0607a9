// internal/api/handler/budget.go
package handler

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"spendwise/internal/api/types"
	"spendwise/internal/domain"
	"spendwise/internal/service"
	"spendwise/internal/util"
)

// BudgetHandler handles HTTP requests for budget CRUD and budget status.
type BudgetHandler struct {
	budgets service.BudgetService
	reports service.ReportService
	logger  *slog.Logger
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgets service.BudgetService, reports service.ReportService, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgets: budgets,
		reports: reports,
		logger:  logger,
	}
}

// BudgetRequest represents the request body for creating a budget.
type BudgetRequest struct {
	Amount     decimal.Decimal     `json:"amount"`
	Period     domain.BudgetPeriod `json:"period"`
	CategoryID int64               `json:"categoryId"`
	StartDate  domain.Date         `json:"startDate"`
	EndDate    domain.Date         `json:"endDate"`
}

// BudgetStatusResponse mirrors domain.BudgetStatus with a nullable
// percentage: a zero-limit budget has no finite percentage and is rendered
// as null.
type BudgetStatusResponse struct {
	BudgetID   int64           `json:"budgetId"`
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage *float64        `json:"percentage"`
}

// List handles the list budgets request.
// GET /budgets
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	budgets, err := h.budgets.List(r.Context(), owner)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, budgets)
}

// Create handles the create budget request.
// POST /budgets
func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	var req BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	budget, err := h.budgets.Create(r.Context(), owner, service.BudgetInput{
		Amount:     req.Amount,
		Period:     req.Period,
		CategoryID: req.CategoryID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, budget)
}

// Delete handles the delete budget request.
// DELETE /budgets/{budgetID}
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	budgetID, err := strconv.ParseInt(chi.URLParam(r, "budgetID"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	if err := h.budgets.Delete(r.Context(), owner, budgetID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.MessageResponse{Message: "Budget deleted"})
}

// Status handles the budget status request: consumption of every budget
// whose window covers today, keyed by category name.
// GET /budgets/status
func (h *BudgetHandler) Status(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	status, err := h.reports.BudgetStatus(r.Context(), owner, domain.DateOf(time.Now()))
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	response := make(map[string]BudgetStatusResponse, len(status))
	for name, s := range status {
		entry := BudgetStatusResponse{
			BudgetID:  s.BudgetID,
			Category:  s.Category,
			Limit:     s.Limit,
			Spent:     s.Spent,
			Remaining: s.Remaining,
		}
		if !math.IsInf(s.Percentage, 0) && !math.IsNaN(s.Percentage) {
			pct := s.Percentage
			entry.Percentage = &pct
		}
		response[name] = entry
	}

	respondWithJSON(h.logger, w, http.StatusOK, response)
}
