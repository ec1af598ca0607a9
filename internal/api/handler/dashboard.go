// internal/api/handler/dashboard.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"spendwise/internal/service"
)

// DashboardHandler handles the dashboard summary request.
type DashboardHandler struct {
	service service.ReportService
	logger  *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc service.ReportService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: svc,
		logger:  logger,
	}
}

// Summary handles the dashboard summary request.
// GET /dashboard/summary
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(h.logger, w, r)
	if !ok {
		return
	}

	summary, err := h.service.DashboardSummary(r.Context(), owner, time.Now())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, summary)
}
