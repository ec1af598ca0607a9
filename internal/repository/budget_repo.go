// internal/repository/budget_repo.go
package repository

import (
	"context"

	"spendwise/internal/domain"
)

// BudgetRepository defines the interface for budget data operations.
type BudgetRepository interface {
	// CreateBudget adds a new budget to the database.
	CreateBudget(ctx context.Context, q DBExecutor, budget *domain.Budget) error
	// GetBudgetByID retrieves a budget by its ID.
	GetBudgetByID(ctx context.Context, q DBExecutor, id int64) (*domain.Budget, error)
	// ListBudgetsByUser retrieves all budgets owned by a user, joined with
	// their category names.
	ListBudgetsByUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.BudgetWithCategory, error)
	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, q DBExecutor, id int64) error
}
