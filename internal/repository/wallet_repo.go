// internal/repository/wallet_repo.go
package repository

import (
	"context"

	"spendwise/internal/domain"

	"github.com/shopspring/decimal"
)

// WalletRepository defines the interface for wallet data operations.
type WalletRepository interface {
	// CreateWallet adds a new wallet to the database.
	CreateWallet(ctx context.Context, q DBExecutor, wallet *domain.Wallet) error
	// GetWalletByID retrieves a wallet by its ID.
	GetWalletByID(ctx context.Context, q DBExecutor, id int64) (*domain.Wallet, error)
	// ListWalletsByUser retrieves all wallets owned by a user.
	ListWalletsByUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Wallet, error)
	// UpdateWallet updates a wallet's name, type and balance.
	UpdateWallet(ctx context.Context, q DBExecutor, wallet *domain.Wallet) error
	// DeleteWallet removes a wallet.
	DeleteWallet(ctx context.Context, q DBExecutor, id int64) error
	// ApplyWalletDelta adds a signed delta to a wallet's stored balance with
	// an atomic in-database increment.
	ApplyWalletDelta(ctx context.Context, q DBExecutor, walletID int64, delta decimal.Decimal) error
}
