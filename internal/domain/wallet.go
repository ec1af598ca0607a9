// internal/domain/wallet.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// WalletType classifies where the money lives.
type WalletType string

const (
	WalletTypeBankAccount WalletType = "BANK_ACCOUNT"
	WalletTypeCash        WalletType = "CASH"
	WalletTypeUPI         WalletType = "UPI"
	WalletTypeCreditCard  WalletType = "CREDIT_CARD"
)

// Valid reports whether t is a known wallet type.
func (t WalletType) Valid() bool {
	switch t {
	case WalletTypeBankAccount, WalletTypeCash, WalletTypeUPI, WalletTypeCreditCard:
		return true
	}
	return false
}

// Wallet represents a user's money holding. Balance is a stored running total:
// it always equals the initial balance plus the signed sum of the wallet's
// live transactions, and is mutated only by the ledger service.
type Wallet struct {
	ID        int64           `db:"id" json:"id"`
	UserID    int64           `db:"user_id" json:"userId"`
	Name      string          `db:"name" json:"name"`
	Type      WalletType      `db:"type" json:"type"`
	Balance   decimal.Decimal `db:"balance" json:"balance"` // NUMERIC(15, 2) in DB
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// NewWallet creates a new Wallet instance.
func NewWallet(userID int64, name string, walletType WalletType, balance decimal.Decimal) *Wallet {
	return &Wallet{
		UserID:    userID,
		Name:      name,
		Type:      walletType,
		Balance:   balance,
		CreatedAt: time.Now().UTC(),
	}
}
