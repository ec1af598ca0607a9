// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// TransactionType defines the direction of a ledger entry.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Delta returns the signed balance change a transaction of this type and
// amount applies to its wallet: +amount for income, -amount for expense.
func (t TransactionType) Delta(amount decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeIncome {
		return amount
	}
	return amount.Neg()
}

// Transaction represents a single ledger entry against a wallet. Rows are
// created, updated and deleted only through the ledger service so the owning
// wallet's balance stays consistent.
type Transaction struct {
	ID              int64           `db:"id" json:"id"`
	UserID          int64           `db:"user_id" json:"userId"`
	WalletID        int64           `db:"wallet_id" json:"walletId"`
	CategoryID      int64           `db:"category_id" json:"categoryId"`
	Type            TransactionType `db:"type" json:"type"`
	Amount          decimal.Decimal `db:"amount" json:"amount"` // Always positive; Type carries the sign
	Description     string          `db:"description" json:"description"`
	TransactionDate Date            `db:"transaction_date" json:"transactionDate"`
	BillImageURL    *string         `db:"bill_image_url" json:"billImageUrl"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
}

// NewTransaction creates a new Transaction instance.
func NewTransaction(
	userID, walletID, categoryID int64,
	txType TransactionType,
	amount decimal.Decimal,
	description string,
	date Date,
	billImageURL *string,
) *Transaction {
	return &Transaction{
		UserID:          userID,
		WalletID:        walletID,
		CategoryID:      categoryID,
		Type:            txType,
		Amount:          amount,
		Description:     description,
		TransactionDate: date,
		BillImageURL:    billImageURL,
		CreatedAt:       time.Now().UTC(),
	}
}

// TransactionDetail is a transaction joined with the names of its category
// and wallet, the shape the API returns.
type TransactionDetail struct {
	Transaction
	CategoryName string `db:"category_name" json:"-"`
	WalletName   string `db:"wallet_name" json:"-"`
}
