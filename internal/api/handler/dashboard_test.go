// internal/api/handler/dashboard_test.go
package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spendwise/internal/api/handler"
	authmw "spendwise/internal/api/middleware"
	"spendwise/internal/domain"
	"spendwise/internal/service"
)

func newDashboardRouter(svc service.ReportService) http.Handler {
	h := handler.NewDashboardHandler(svc, testLogger())
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(authmw.Authenticator(testSecret))
		r.Get("/dashboard/summary", h.Summary)
	})
	return r
}

func TestDashboardSummaryHandler(t *testing.T) {
	svc := new(MockReportService)
	router := newDashboardRouter(svc)

	summary := &domain.DashboardSummary{
		TotalBalance:    decimal.NewFromInt(180000),
		TotalIncome:     decimal.NewFromInt(500000),
		TotalExpenses:   decimal.NewFromInt(320000),
		MonthlyIncome:   decimal.NewFromInt(100000),
		MonthlyExpenses: decimal.NewFromInt(60000),
		RemainingBudget: decimal.NewFromInt(40000),
		AI: domain.HealthReport{
			HealthScore: 100,
			Personality: "Disciplined Saver",
			Insights:    []string{"You saved 30%+ of your income this month. Great job!"},
			SavingsRate: 40,
		},
	}
	svc.On("DashboardSummary", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).
		Return(summary, nil).Once()

	req := authed(t, httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil), 1)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		TotalBalance decimal.Decimal `json:"totalBalance"`
		AI           struct {
			HealthScore int      `json:"healthScore"`
			Personality string   `json:"personality"`
			Insights    []string `json:"insights"`
			SavingsRate int      `json:"savingsRate"`
		} `json:"ai"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.TotalBalance.Equal(decimal.NewFromInt(180000)))
	assert.Equal(t, 100, res.AI.HealthScore)
	assert.Equal(t, "Disciplined Saver", res.AI.Personality)
	assert.Len(t, res.AI.Insights, 1)
	assert.Equal(t, 40, res.AI.SavingsRate)
	svc.AssertExpectations(t)
}

func TestDashboardRequiresAuth(t *testing.T) {
	svc := new(MockReportService)
	router := newDashboardRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "DashboardSummary", mock.Anything, mock.Anything, mock.Anything)
}
