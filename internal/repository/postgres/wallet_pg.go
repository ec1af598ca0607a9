// internal/repository/postgres/wallet_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"spendwise/internal/domain"
	"spendwise/internal/repository"
	"spendwise/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// WalletRepository implements repository.WalletRepository for PostgreSQL.
type WalletRepository struct {
	// Stateless; methods receive a DBExecutor directly
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(db *sqlx.DB) repository.WalletRepository {
	return &WalletRepository{}
}

// CreateWallet inserts a new wallet into the database using the provided DBExecutor.
func (r *WalletRepository) CreateWallet(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	query := `INSERT INTO wallets (user_id, name, type, balance, created_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, wallet.UserID, wallet.Name, wallet.Type, wallet.Balance, wallet.CreatedAt).Scan(&wallet.ID)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// GetWalletByID retrieves a wallet by its ID using the provided DBExecutor.
func (r *WalletRepository) GetWalletByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `SELECT id, user_id, name, type, balance, created_at FROM wallets WHERE id = $1`
	err := q.GetContext(ctx, &wallet, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wallet by ID %d: %w", id, err)
	}
	return &wallet, nil
}

// ListWalletsByUser retrieves all wallets for a user using the provided DBExecutor.
func (r *WalletRepository) ListWalletsByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Wallet, error) {
	wallets := []domain.Wallet{}
	query := `SELECT id, user_id, name, type, balance, created_at FROM wallets WHERE user_id = $1 ORDER BY id`
	if err := q.SelectContext(ctx, &wallets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list wallets for user %d: %w", userID, err)
	}
	return wallets, nil
}

// UpdateWallet updates a wallet's mutable fields using the provided DBExecutor.
func (r *WalletRepository) UpdateWallet(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	query := `UPDATE wallets SET name = $1, type = $2, balance = $3 WHERE id = $4`
	result, err := q.ExecContext(ctx, query, wallet.Name, wallet.Type, wallet.Balance, wallet.ID)
	if err != nil {
		return fmt.Errorf("failed to update wallet %d: %w", wallet.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating wallet %d: %w", wallet.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteWallet removes a wallet using the provided DBExecutor.
func (r *WalletRepository) DeleteWallet(ctx context.Context, q repository.DBExecutor, id int64) error {
	result, err := q.ExecContext(ctx, `DELETE FROM wallets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete wallet %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting wallet %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// ApplyWalletDelta adds a signed delta to the stored balance using the
// provided DBExecutor. The increment happens in the database so concurrent
// writers cannot lose updates.
func (r *WalletRepository) ApplyWalletDelta(ctx context.Context, q repository.DBExecutor, walletID int64, delta decimal.Decimal) error {
	query := `UPDATE wallets SET balance = balance + $1 WHERE id = $2`
	result, err := q.ExecContext(ctx, query, delta, walletID)
	if err != nil {
		return fmt.Errorf("failed to update wallet balance for ID %d: %w", walletID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating wallet balance for ID %d: %w", walletID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no rows affected when updating wallet balance for ID %d: %w", walletID, util.ErrNotFound)
	}
	return nil
}
