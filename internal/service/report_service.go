// internal/service/report_service.go
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"spendwise/internal/domain"
	"spendwise/internal/repository"
)

// Spender personality labels, assigned in priority order.
const (
	PersonalityDisciplinedSaver = "Disciplined Saver"
	PersonalityStrategicPlanner = "Strategic Planner"
	PersonalityImpulsiveSpender = "Impulsive Spender"
	PersonalityBalancedSpender  = "Balanced Spender"
)

// ReportService computes read-only aggregates over transactions and budgets.
// Queries for an unknown owner return zeroed results, never errors.
type ReportService interface {
	SumByType(ctx context.Context, ownerID int64, start, end *domain.Date) (domain.TypeTotals, error)
	BudgetStatus(ctx context.Context, ownerID int64, asOf domain.Date) (map[string]domain.BudgetStatus, error)
	DashboardSummary(ctx context.Context, ownerID int64, now time.Time) (*domain.DashboardSummary, error)
}

// reportService implements the ReportService interface.
type reportService struct {
	dbExecutor      repository.DBExecutor
	transactionRepo repository.TransactionRepository
	budgetRepo      repository.BudgetRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	dbExecutor repository.DBExecutor,
	transactionRepo repository.TransactionRepository,
	budgetRepo repository.BudgetRepository,
) ReportService {
	return &reportService{
		dbExecutor:      dbExecutor,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

// SumByType returns the owner's income and expense totals, optionally bounded
// to an inclusive date window.
func (s *reportService) SumByType(ctx context.Context, ownerID int64, start, end *domain.Date) (domain.TypeTotals, error) {
	totals, err := s.transactionRepo.SumByType(ctx, s.dbExecutor, ownerID, start, end)
	if err != nil {
		return domain.TypeTotals{}, fmt.Errorf("sum by type: %w", err)
	}
	return totals, nil
}

// BudgetStatus reports consumption of every budget whose window contains
// asOf, keyed by category name. Budgets outside their window are omitted
// entirely. Spent is summed over the budget's own window.
func (s *reportService) BudgetStatus(ctx context.Context, ownerID int64, asOf domain.Date) (map[string]domain.BudgetStatus, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, s.dbExecutor, ownerID)
	if err != nil {
		return nil, fmt.Errorf("budget status: %w", err)
	}

	status := make(map[string]domain.BudgetStatus)
	for _, budget := range budgets {
		if !asOf.Contains(budget.StartDate, budget.EndDate) {
			continue
		}

		spent, err := s.transactionRepo.SumExpensesByCategory(ctx, s.dbExecutor, ownerID, budget.CategoryID, budget.StartDate, budget.EndDate)
		if err != nil {
			return nil, fmt.Errorf("budget status: %w", err)
		}

		limit := budget.Amount
		percentage := math.Inf(1) // Undefined for a zero limit; callers must handle
		if !limit.IsZero() {
			percentage = spent.InexactFloat64() / limit.InexactFloat64() * 100
		}

		status[budget.CategoryName] = domain.BudgetStatus{
			BudgetID:   budget.ID,
			Category:   budget.CategoryName,
			Limit:      limit,
			Spent:      spent,
			Remaining:  limit.Sub(spent),
			Percentage: percentage,
		}
	}

	return status, nil
}

// DashboardSummary computes all-time totals, calendar-month figures, budget
// adherence and the heuristic health report for one owner.
func (s *reportService) DashboardSummary(ctx context.Context, ownerID int64, now time.Time) (*domain.DashboardSummary, error) {
	monthStart, monthEnd := monthWindow(now)
	lastStart, lastEnd := previousMonthWindow(now)

	allTime, err := s.transactionRepo.SumByType(ctx, s.dbExecutor, ownerID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: all-time totals: %w", err)
	}

	monthly, err := s.transactionRepo.SumByType(ctx, s.dbExecutor, ownerID, &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: monthly totals: %w", err)
	}

	lastMonth, err := s.transactionRepo.SumByType(ctx, s.dbExecutor, ownerID, &lastStart, &lastEnd)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: last-month totals: %w", err)
	}

	// Budget adherence is judged against the current calendar month,
	// consistent with the other month-bound figures.
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, s.dbExecutor, ownerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: budgets: %w", err)
	}
	budgetsMet := 0
	for _, budget := range budgets {
		spent, err := s.transactionRepo.SumExpensesByCategory(ctx, s.dbExecutor, ownerID, budget.CategoryID, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("dashboard summary: budget spend: %w", err)
		}
		if spent.LessThanOrEqual(budget.Amount) {
			budgetsMet++
		}
	}

	stats := monthStats{
		MonthlyIncome:     monthly.Income.InexactFloat64(),
		MonthlyExpenses:   monthly.Expense.InexactFloat64(),
		LastMonthExpenses: lastMonth.Expense.InexactFloat64(),
		BudgetsMet:        budgetsMet,
		TotalBudgets:      len(budgets),
	}

	return &domain.DashboardSummary{
		TotalBalance:    allTime.Balance(),
		TotalIncome:     allTime.Income,
		TotalExpenses:   allTime.Expense,
		MonthlyIncome:   monthly.Income,
		MonthlyExpenses: monthly.Expense,
		RemainingBudget: monthly.Balance(),
		AI:              buildHealthReport(stats),
	}, nil
}

// monthStats are the inputs of the heuristic health report.
type monthStats struct {
	MonthlyIncome     float64
	MonthlyExpenses   float64
	LastMonthExpenses float64
	BudgetsMet        int
	TotalBudgets      int
}

// buildHealthReport derives the heuristic health score, personality label and
// insight messages. The three score components are bounded at 50, 30 and 20
// and never negative, so the total stays within [0, 100] without clamping.
func buildHealthReport(s monthStats) domain.HealthReport {
	savingsRate := 0.0
	if s.MonthlyIncome > 0 {
		savingsRate = (s.MonthlyIncome - s.MonthlyExpenses) / s.MonthlyIncome
	}

	score := 0.0

	// a) Savings rate, up to 50 points; capped once the rate reaches 30%.
	if savingsRate >= 0.3 {
		score += 50
	} else if savingsRate > 0 {
		score += (savingsRate / 0.3) * 50
	}

	// b) Budget adherence, up to 30 points; a flat 20 when no budgets exist.
	if s.TotalBudgets > 0 {
		score += float64(s.BudgetsMet) / float64(s.TotalBudgets) * 30
	} else {
		score += 20
	}

	// c) Month-over-month trend, up to 20 points.
	if s.MonthlyExpenses < s.LastMonthExpenses && s.LastMonthExpenses > 0 {
		score += 20
	} else if s.LastMonthExpenses > 0 {
		score += math.Max(0, 20-(s.MonthlyExpenses/s.LastMonthExpenses)*10)
	} else {
		score += 15
	}

	personality := PersonalityBalancedSpender
	switch {
	case savingsRate >= 0.4:
		personality = PersonalityDisciplinedSaver
	case s.TotalBudgets > 0 && s.BudgetsMet == s.TotalBudgets:
		personality = PersonalityStrategicPlanner
	case s.MonthlyExpenses > s.MonthlyIncome*0.9:
		personality = PersonalityImpulsiveSpender
	}

	insights := []string{}
	if savingsRate > 0.3 {
		insights = append(insights, "You saved 30%+ of your income this month. Great job!")
	}
	if s.MonthlyExpenses > s.LastMonthExpenses && s.LastMonthExpenses > 0 {
		pct := int(math.Round((s.MonthlyExpenses/s.LastMonthExpenses - 1) * 100))
		insights = append(insights, fmt.Sprintf("Spending is up %d%% compared to last month.", pct))
	}
	if s.TotalBudgets > 0 && s.BudgetsMet < s.TotalBudgets {
		insights = append(insights, fmt.Sprintf("You have exceeded %d of your budgets.", s.TotalBudgets-s.BudgetsMet))
	}
	if s.MonthlyExpenses < s.LastMonthExpenses && s.LastMonthExpenses > 0 {
		insights = append(insights, "You are spending less than last month. Keep it up!")
	}

	return domain.HealthReport{
		HealthScore: int(math.Round(score)),
		Personality: personality,
		Insights:    insights,
		SavingsRate: int(math.Round(savingsRate * 100)),
	}
}

// monthWindow returns the first and last day of t's calendar month.
func monthWindow(t time.Time) (domain.Date, domain.Date) {
	start := domain.NewDate(t.Year(), t.Month(), 1)
	end := domain.DateOf(time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC))
	return start, end
}

// previousMonthWindow returns the first and last day of the month before t's.
func previousMonthWindow(t time.Time) (domain.Date, domain.Date) {
	start := domain.DateOf(time.Date(t.Year(), t.Month()-1, 1, 0, 0, 0, 0, time.UTC))
	end := domain.DateOf(time.Date(t.Year(), t.Month(), 0, 0, 0, 0, 0, time.UTC))
	return start, end
}
