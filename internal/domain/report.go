// internal/domain/report.go
package domain

import (
	"github.com/shopspring/decimal"
)

// TypeTotals holds the summed amounts per transaction type for some window.
// Missing types default to zero.
type TypeTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// ZeroTypeTotals returns totals with both sides explicitly zero.
func ZeroTypeTotals() TypeTotals {
	return TypeTotals{Income: decimal.Zero, Expense: decimal.Zero}
}

// Balance is income minus expense.
func (t TypeTotals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// BudgetStatus describes how far one active budget has been consumed.
// Percentage is spent/limit as a percentage; with a zero limit it is +Inf and
// callers must render it accordingly.
type BudgetStatus struct {
	BudgetID   int64           `json:"budgetId"`
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
}

// HealthReport is the heuristic "ai" block of the dashboard: a 0-100 score,
// a spender personality label, and human-readable insight messages.
// SavingsRate is a whole percentage.
type HealthReport struct {
	HealthScore int      `json:"healthScore"`
	Personality string   `json:"personality"`
	Insights    []string `json:"insights"`
	SavingsRate int      `json:"savingsRate"`
}

// DashboardSummary aggregates all-time and month-bound figures for one user.
type DashboardSummary struct {
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	RemainingBudget decimal.Decimal `json:"remainingBudget"`
	AI              HealthReport    `json:"ai"`
}
