// internal/domain/budget.go
package domain

import (
	"github.com/shopspring/decimal"
)

// BudgetPeriod is informational only; the binding window is [StartDate, EndDate].
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "MONTHLY"
	BudgetPeriodWeekly  BudgetPeriod = "WEEKLY"
	BudgetPeriodYearly  BudgetPeriod = "YEARLY"
)

// Valid reports whether p is a known budget period.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case BudgetPeriodMonthly, BudgetPeriodWeekly, BudgetPeriodYearly:
		return true
	}
	return false
}

// Budget caps EXPENSE spending for one category over an inclusive date
// window. Budgets are created and deleted explicitly; they never auto-expire.
type Budget struct {
	ID         int64           `db:"id" json:"id"`
	UserID     int64           `db:"user_id" json:"userId"`
	CategoryID int64           `db:"category_id" json:"categoryId"`
	Amount     decimal.Decimal `db:"amount" json:"amount"` // Positive spending limit
	Period     BudgetPeriod    `db:"period" json:"period"`
	StartDate  Date            `db:"start_date" json:"startDate"`
	EndDate    Date            `db:"end_date" json:"endDate"`
}

// NewBudget creates a new Budget instance.
func NewBudget(userID, categoryID int64, amount decimal.Decimal, period BudgetPeriod, start, end Date) *Budget {
	return &Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Period:     period,
		StartDate:  start,
		EndDate:    end,
	}
}

// BudgetWithCategory is a budget joined with its category name.
type BudgetWithCategory struct {
	Budget
	CategoryName string `db:"category_name" json:"categoryName"`
}
