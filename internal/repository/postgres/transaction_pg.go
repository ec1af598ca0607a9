// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"spendwise/internal/domain"
	"spendwise/internal/repository"
	"spendwise/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct {
	// Stateless; methods receive a DBExecutor directly
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

const transactionDetailColumns = `
	t.id, t.user_id, t.wallet_id, t.category_id, t.type, t.amount,
	COALESCE(t.description, '') AS description, t.transaction_date,
	t.bill_image_url, t.created_at,
	c.name AS category_name, w.name AS wallet_name`

// CreateTransaction inserts a new transaction record into the database using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (user_id, wallet_id, category_id, type, amount, description, transaction_date, bill_image_url, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	err := q.QueryRowContext(ctx, query,
		transaction.UserID,
		transaction.WalletID,
		transaction.CategoryID,
		transaction.Type,
		transaction.Amount,
		transaction.Description,
		transaction.TransactionDate,
		transaction.BillImageURL,
		transaction.CreatedAt,
	).Scan(&transaction.ID)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionByID retrieves a single transaction row using the provided DBExecutor.
func (r *TransactionRepository) GetTransactionByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Transaction, error) {
	var transaction domain.Transaction
	query := `SELECT id, user_id, wallet_id, category_id, type, amount,
              COALESCE(description, '') AS description, transaction_date, bill_image_url, created_at
              FROM transactions WHERE id = $1`
	err := q.GetContext(ctx, &transaction, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ID %d: %w", id, err)
	}
	return &transaction, nil
}

// GetTransactionDetailByID retrieves a transaction joined with its category
// and wallet names using the provided DBExecutor.
func (r *TransactionRepository) GetTransactionDetailByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.TransactionDetail, error) {
	var detail domain.TransactionDetail
	query := `SELECT ` + transactionDetailColumns + `
              FROM transactions t
              JOIN categories c ON t.category_id = c.id
              JOIN wallets w ON t.wallet_id = w.id
              WHERE t.id = $1`
	err := q.GetContext(ctx, &detail, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction detail for ID %d: %w", id, err)
	}
	return &detail, nil
}

// UpdateTransaction persists new field values for an existing transaction
// using the provided DBExecutor.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `UPDATE transactions
              SET wallet_id = $1, category_id = $2, type = $3, amount = $4,
                  description = $5, transaction_date = $6, bill_image_url = $7
              WHERE id = $8`
	result, err := q.ExecContext(ctx, query,
		transaction.WalletID,
		transaction.CategoryID,
		transaction.Type,
		transaction.Amount,
		transaction.Description,
		transaction.TransactionDate,
		transaction.BillImageURL,
		transaction.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", transaction.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating transaction %d: %w", transaction.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction row using the provided DBExecutor.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, q repository.DBExecutor, id int64) error {
	result, err := q.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting transaction %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// ListTransactions retrieves a user's transactions matching the filter using
// the provided DBExecutor, newest transaction date first.
func (r *TransactionRepository) ListTransactions(ctx context.Context, q repository.DBExecutor, userID int64, filter repository.TransactionFilter) ([]domain.TransactionDetail, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionDetailColumns + `
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		JOIN wallets w ON t.wallet_id = w.id
		WHERE t.user_id = $1`)
	args := []interface{}{userID}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		fmt.Fprintf(&sb, " AND t.type = $%d", len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		fmt.Fprintf(&sb, " AND t.category_id = $%d", len(args))
	}
	if filter.WalletID != nil {
		args = append(args, *filter.WalletID)
		fmt.Fprintf(&sb, " AND t.wallet_id = $%d", len(args))
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		args = append(args, *filter.StartDate)
		fmt.Fprintf(&sb, " AND t.transaction_date >= $%d", len(args))
		args = append(args, *filter.EndDate)
		fmt.Fprintf(&sb, " AND t.transaction_date <= $%d", len(args))
	}

	sb.WriteString(" ORDER BY t.transaction_date DESC, t.id DESC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	transactions := []domain.TransactionDetail{}
	if err := q.SelectContext(ctx, &transactions, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %d: %w", userID, err)
	}
	return transactions, nil
}

// SumByType sums amounts per transaction type using the provided DBExecutor.
// Types with no rows in the window come back as zero.
func (r *TransactionRepository) SumByType(ctx context.Context, q repository.DBExecutor, userID int64, start, end *domain.Date) (domain.TypeTotals, error) {
	query := `SELECT type, COALESCE(SUM(amount), 0) AS total
              FROM transactions WHERE user_id = $1`
	args := []interface{}{userID}
	if start != nil && end != nil {
		query += ` AND transaction_date >= $2 AND transaction_date <= $3`
		args = append(args, *start, *end)
	}
	query += ` GROUP BY type`

	rows := []struct {
		Type  domain.TransactionType `db:"type"`
		Total decimal.Decimal        `db:"total"`
	}{}
	if err := q.SelectContext(ctx, &rows, query, args...); err != nil {
		return domain.TypeTotals{}, fmt.Errorf("failed to sum transactions by type for user %d: %w", userID, err)
	}

	totals := domain.ZeroTypeTotals()
	for _, row := range rows {
		switch row.Type {
		case domain.TransactionTypeIncome:
			totals.Income = row.Total
		case domain.TransactionTypeExpense:
			totals.Expense = row.Total
		}
	}
	return totals, nil
}

// SumExpensesByCategory sums EXPENSE amounts for one category within an
// inclusive window using the provided DBExecutor.
func (r *TransactionRepository) SumExpensesByCategory(ctx context.Context, q repository.DBExecutor, userID, categoryID int64, start, end domain.Date) (decimal.Decimal, error) {
	var spent decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0)
              FROM transactions
              WHERE user_id = $1 AND category_id = $2 AND type = 'EXPENSE'
                AND transaction_date >= $3 AND transaction_date <= $4`
	err := q.GetContext(ctx, &spent, query, userID, categoryID, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for category %d: %w", categoryID, err)
	}
	return spent, nil
}
