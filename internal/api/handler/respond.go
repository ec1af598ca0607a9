// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"spendwise/internal/api/middleware"
	"spendwise/internal/api/types"
	"spendwise/internal/util"
)

// DefaultTimeout bounds request handling at the router level.
const DefaultTimeout = 60 * time.Second

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors onto HTTP status codes. Ledger
// failures reach here only after their transaction has been rolled back.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = "invalid input provided"
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = "Unauthorized"
	case util.IsError(err, util.ErrDefaultCategory):
		statusCode = http.StatusBadRequest
		message = "Cannot delete default categories"
	case util.IsError(err, util.ErrDuplicateEmail):
		statusCode = http.StatusBadRequest
		message = "Email already registered"
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusBadRequest
		message = "Invalid credentials"
	// Add more specific error mappings as needed
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, types.ErrorResponse{Error: message})
}

// ownerID pulls the authenticated user id from the request context. The
// authenticator guarantees it on protected routes; a miss means a wiring bug.
func ownerID(logger *slog.Logger, w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(logger, w, util.ErrUnauthorized)
		return 0, false
	}
	return id, true
}
