// internal/domain/transaction_test.go
package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionTypeDelta(t *testing.T) {
	amount := decimal.NewFromInt(1500)

	assert.True(t, TransactionTypeIncome.Delta(amount).Equal(decimal.NewFromInt(1500)))
	assert.True(t, TransactionTypeExpense.Delta(amount).Equal(decimal.NewFromInt(-1500)))
}

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TransactionTypeIncome.Valid())
	assert.True(t, TransactionTypeExpense.Valid())
	assert.False(t, TransactionType("TRANSFER").Valid())
	assert.False(t, TransactionType("").Valid())
	assert.False(t, TransactionType("income").Valid(), "types are case sensitive")
}

func TestTypeTotalsBalance(t *testing.T) {
	totals := TypeTotals{Income: decimal.NewFromInt(500), Expense: decimal.NewFromInt(120)}
	assert.True(t, totals.Balance().Equal(decimal.NewFromInt(380)))

	zero := ZeroTypeTotals()
	assert.True(t, zero.Balance().IsZero())
}

func TestCategoryOwnedBy(t *testing.T) {
	ownerID := int64(1)
	otherID := int64(2)

	defCat := &Category{IsDefault: true}
	assert.True(t, defCat.OwnedBy(ownerID), "defaults are usable by everyone")

	own := &Category{UserID: &ownerID}
	assert.True(t, own.OwnedBy(ownerID))
	assert.False(t, own.OwnedBy(otherID))

	orphan := &Category{UserID: nil}
	assert.False(t, orphan.OwnedBy(ownerID))
}
