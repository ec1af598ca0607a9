// internal/api/handler/mocks_test.go
package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"spendwise/internal/domain"
	"spendwise/internal/repository"
	"spendwise/internal/service"
	"spendwise/internal/util"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// bearer builds a valid Authorization header value for userID.
func bearer(t *testing.T, userID int64) string {
	t.Helper()
	token, err := util.GenerateToken(testSecret, userID, "user@example.com", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func authed(t *testing.T, req *http.Request, userID int64) *http.Request {
	t.Helper()
	req.Header.Set("Authorization", bearer(t, userID))
	return req
}

// MockLedgerService is a mock implementation of service.LedgerService.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Create(ctx context.Context, ownerID int64, input service.TransactionInput) (*domain.TransactionDetail, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDetail), args.Error(1)
}

func (m *MockLedgerService) Update(ctx context.Context, ownerID, transactionID int64, input service.TransactionInput) (*domain.TransactionDetail, error) {
	args := m.Called(ctx, ownerID, transactionID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDetail), args.Error(1)
}

func (m *MockLedgerService) Delete(ctx context.Context, ownerID, transactionID int64) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

func (m *MockLedgerService) List(ctx context.Context, ownerID int64, filter repository.TransactionFilter) ([]domain.TransactionDetail, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionDetail), args.Error(1)
}

// MockBudgetService is a mock implementation of service.BudgetService.
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) List(ctx context.Context, ownerID int64) ([]domain.BudgetWithCategory, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetWithCategory), args.Error(1)
}

func (m *MockBudgetService) Create(ctx context.Context, ownerID int64, input service.BudgetInput) (*domain.Budget, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) Delete(ctx context.Context, ownerID, budgetID int64) error {
	args := m.Called(ctx, ownerID, budgetID)
	return args.Error(0)
}

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) SumByType(ctx context.Context, ownerID int64, start, end *domain.Date) (domain.TypeTotals, error) {
	args := m.Called(ctx, ownerID, start, end)
	return args.Get(0).(domain.TypeTotals), args.Error(1)
}

func (m *MockReportService) BudgetStatus(ctx context.Context, ownerID int64, asOf domain.Date) (map[string]domain.BudgetStatus, error) {
	args := m.Called(ctx, ownerID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.BudgetStatus), args.Error(1)
}

func (m *MockReportService) DashboardSummary(ctx context.Context, ownerID int64, now time.Time) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, ownerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}
