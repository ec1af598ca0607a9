// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"spendwise/internal/domain"

	"github.com/shopspring/decimal"
)

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
// StartDate and EndDate only apply when both are set, matching the API
// contract.
type TransactionFilter struct {
	Type       *domain.TransactionType
	CategoryID *int64
	WalletID   *int64
	StartDate  *domain.Date
	EndDate    *domain.Date
	Limit      int
}

// TransactionRepository defines the interface for transaction data operations.
type TransactionRepository interface {
	// CreateTransaction adds a new transaction record to the database using the provided DBExecutor.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// GetTransactionByID retrieves a single transaction row.
	GetTransactionByID(ctx context.Context, q DBExecutor, id int64) (*domain.Transaction, error)
	// GetTransactionDetailByID retrieves a transaction joined with its category and wallet names.
	GetTransactionDetailByID(ctx context.Context, q DBExecutor, id int64) (*domain.TransactionDetail, error)
	// UpdateTransaction persists new field values for an existing transaction.
	UpdateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// DeleteTransaction removes a transaction row.
	DeleteTransaction(ctx context.Context, q DBExecutor, id int64) error
	// ListTransactions retrieves a user's transactions matching the filter,
	// ordered by transaction date descending.
	ListTransactions(ctx context.Context, q DBExecutor, userID int64, filter TransactionFilter) ([]domain.TransactionDetail, error)
	// SumByType sums amounts per type for a user, optionally bounded to an
	// inclusive date window. Missing types come back as zero.
	SumByType(ctx context.Context, q DBExecutor, userID int64, start, end *domain.Date) (domain.TypeTotals, error)
	// SumExpensesByCategory sums EXPENSE amounts for one category within an
	// inclusive date window.
	SumExpensesByCategory(ctx context.Context, q DBExecutor, userID, categoryID int64, start, end domain.Date) (decimal.Decimal, error)
}
