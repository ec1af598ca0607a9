// internal/repository/postgres/budget_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"spendwise/internal/domain"
	"spendwise/internal/repository"
	"spendwise/internal/util"

	"github.com/jmoiron/sqlx"
)

// BudgetRepository implements repository.BudgetRepository for PostgreSQL.
type BudgetRepository struct {
	// Stateless; methods receive a DBExecutor directly
}

// NewBudgetRepository creates a new BudgetRepository.
func NewBudgetRepository(db *sqlx.DB) repository.BudgetRepository {
	return &BudgetRepository{}
}

// CreateBudget inserts a new budget into the database using the provided DBExecutor.
func (r *BudgetRepository) CreateBudget(ctx context.Context, q repository.DBExecutor, budget *domain.Budget) error {
	query := `INSERT INTO budgets (user_id, category_id, amount, period, start_date, end_date)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		budget.UserID, budget.CategoryID, budget.Amount, budget.Period, budget.StartDate, budget.EndDate,
	).Scan(&budget.ID)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetBudgetByID retrieves a budget by its ID using the provided DBExecutor.
func (r *BudgetRepository) GetBudgetByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Budget, error) {
	var budget domain.Budget
	query := `SELECT id, user_id, category_id, amount, period, start_date, end_date FROM budgets WHERE id = $1`
	err := q.GetContext(ctx, &budget, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get budget by ID %d: %w", id, err)
	}
	return &budget, nil
}

// ListBudgetsByUser retrieves all budgets for a user, joined with category
// names, using the provided DBExecutor.
func (r *BudgetRepository) ListBudgetsByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.BudgetWithCategory, error) {
	budgets := []domain.BudgetWithCategory{}
	query := `SELECT b.id, b.user_id, b.category_id, b.amount, b.period, b.start_date, b.end_date,
                     c.name AS category_name
              FROM budgets b
              JOIN categories c ON b.category_id = c.id
              WHERE b.user_id = $1
              ORDER BY b.id`
	if err := q.SelectContext(ctx, &budgets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list budgets for user %d: %w", userID, err)
	}
	return budgets, nil
}

// DeleteBudget removes a budget using the provided DBExecutor.
func (r *BudgetRepository) DeleteBudget(ctx context.Context, q repository.DBExecutor, id int64) error {
	result, err := q.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting budget %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
