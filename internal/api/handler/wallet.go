// internal/api/handler/wallet.go
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
	"spendwise/internal/service"
	"spendwise/internal/util"
)

// WalletHandler handles HTTP requests related to wallet operations.
type WalletHandler struct {
	service service.WalletService
	logger  *slog.Logger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(svc service.WalletService, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{
		service: svc,
		logger:  logger,
	}
}

// WalletRequest represents the request body for creating or updating a wallet.
type WalletRequest struct {
	Name    string            `json:"name"`
	Type    domain.WalletType `json:"type"`
	Balance decimal.Decimal   `json:"balance"`
}

// List handles the list wallets request.
// GET /wallets
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	wallets, err := h.service.List(r.Context(), owner)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, wallets)
}

// Create handles the create wallet request.
// POST /wallets
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	var req WalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	wallet, err := h.service.Create(r.Context(), owner, service.WalletInput{
		Name:    req.Name,
		Type:    req.Type,
		Balance: req.Balance,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, wallet)
}

// Update handles the update wallet request.
// PUT /wallets/{walletID}
func (h *WalletHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	walletID, err := strconv.ParseInt(chi.URLParam(r, "walletID"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	var req WalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	wallet, err := h.service.Update(r.Context(), owner, walletID, service.WalletInput{
		Name:    req.Name,
		Type:    req.Type,
		Balance: req.Balance,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, wallet)
}

// Delete handles the delete wallet request.
// DELETE /wallets/{walletID}
func (h *WalletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	walletID, err := strconv.ParseInt(chi.URLParam(r, "walletID"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	if err := h.service.Delete(r.Context(), owner, walletID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.MessageResponse{Message: "Wallet deleted"})
}
