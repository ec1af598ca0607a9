// internal/api/handler/transaction.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"spendwise/internal/api/types"
	"spendwise/internal/domain"
	"spendwise/internal/repository"
	"spendwise/internal/service"
	"spendwise/internal/util"
)

// TransactionHandler handles HTTP requests for ledger mutations and listings.
type TransactionHandler struct {
	service service.LedgerService
	logger  *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc service.LedgerService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: svc,
		logger:  logger,
	}
}

// TransactionRequest represents the request body for creating or updating a
// transaction.
type TransactionRequest struct {
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description"`
	Type            domain.TransactionType `json:"type"`
	CategoryID      int64                  `json:"categoryId"`
	WalletID        int64                  `json:"walletId"`
	TransactionDate domain.Date            `json:"transactionDate"`
	BillImageURL    *string                `json:"billImageUrl"`
}

func (req TransactionRequest) input() service.TransactionInput {
	return service.TransactionInput{
		Amount:          req.Amount,
		Description:     req.Description,
		Type:            req.Type,
		CategoryID:      req.CategoryID,
		WalletID:        req.WalletID,
		TransactionDate: req.TransactionDate,
		BillImageURL:    req.BillImageURL,
	}
}

// EntityRef is an embedded {id, name} reference in a transaction response.
type EntityRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TransactionResponse is the structured transaction shape the API returns.
type TransactionResponse struct {
	ID              int64                  `json:"id"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description"`
	Type            domain.TransactionType `json:"type"`
	TransactionDate domain.Date            `json:"transactionDate"`
	BillImageURL    *string                `json:"billImageUrl"`
	Category        EntityRef              `json:"category"`
	Wallet          EntityRef              `json:"wallet"`
}

func newTransactionResponse(d *domain.TransactionDetail) TransactionResponse {
	return TransactionResponse{
		ID:              d.ID,
		Amount:          d.Amount,
		Description:     d.Description,
		Type:            d.Type,
		TransactionDate: d.TransactionDate,
		BillImageURL:    d.BillImageURL,
		Category:        EntityRef{ID: d.CategoryID, Name: d.CategoryName},
		Wallet:          EntityRef{ID: d.WalletID, Name: d.WalletName},
	}
}

// List handles the filtered transaction listing request.
// GET /transactions?type&categoryId&walletId&startDate&endDate&limit
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	filter, err := parseTransactionFilter(r)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	transactions, err := h.service.List(r.Context(), owner, filter)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, newTransactionResponse(&transactions[i]))
	}
	respondWithJSON(h.logger, w, http.StatusOK, responses)
}

func parseTransactionFilter(r *http.Request) (repository.TransactionFilter, error) {
	var filter repository.TransactionFilter
	query := r.URL.Query()

	if v := query.Get("type"); v != "" {
		txType := domain.TransactionType(v)
		if !txType.Valid() {
			return filter, util.ErrInvalidInput
		}
		filter.Type = &txType
	}
	if v := query.Get("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, util.ErrInvalidInput
		}
		filter.CategoryID = &id
	}
	if v := query.Get("walletId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, util.ErrInvalidInput
		}
		filter.WalletID = &id
	}
	// Date bounds only apply as a pair, matching the API contract.
	if startStr, endStr := query.Get("startDate"), query.Get("endDate"); startStr != "" && endStr != "" {
		start, err := domain.ParseDate(startStr)
		if err != nil {
			return filter, util.ErrInvalidInput
		}
		end, err := domain.ParseDate(endStr)
		if err != nil {
			return filter, util.ErrInvalidInput
		}
		filter.StartDate = &start
		filter.EndDate = &end
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, util.ErrInvalidInput
		}
		filter.Limit = limit
	}

	return filter, nil
}

// Create handles the create transaction request.
// POST /transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	detail, err := h.service.Create(r.Context(), owner, req.input())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, newTransactionResponse(detail))
}

// Update handles the update transaction request.
// PUT /transactions/{transactionID}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	transactionID, err := strconv.ParseInt(chi.URLParam(r, "transactionID"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	detail, err := h.service.Update(r.Context(), owner, transactionID, req.input())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, newTransactionResponse(detail))
}

// Delete handles the delete transaction request.
// DELETE /transactions/{transactionID}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	transactionID, err := strconv.ParseInt(chi.URLParam(r, "transactionID"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	if err := h.service.Delete(r.Context(), owner, transactionID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.MessageResponse{Message: "Transaction deleted"})
}
