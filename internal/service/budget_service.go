// internal/service/budget_service.go
package service

import (
	"context"
	"fmt"

	"spendwise/internal/domain"
	"spendwise/internal/repository"
	"spendwise/internal/util"

	"github.com/shopspring/decimal"
)

// BudgetInput carries client-supplied budget fields.
type BudgetInput struct {
	Amount     decimal.Decimal
	Period     domain.BudgetPeriod
	CategoryID int64
	StartDate  domain.Date
	EndDate    domain.Date
}

// BudgetService handles owner-scoped budget CRUD. Budgets never expire on
// their own; they are deleted explicitly.
type BudgetService interface {
	List(ctx context.Context, ownerID int64) ([]domain.BudgetWithCategory, error)
	Create(ctx context.Context, ownerID int64, input BudgetInput) (*domain.Budget, error)
	Delete(ctx context.Context, ownerID, budgetID int64) error
}

// budgetService implements the BudgetService interface.
type budgetService struct {
	dbExecutor   repository.DBExecutor
	budgetRepo   repository.BudgetRepository
	categoryRepo repository.CategoryRepository
}

// NewBudgetService creates a new instance of BudgetService.
func NewBudgetService(
	dbExecutor repository.DBExecutor,
	budgetRepo repository.BudgetRepository,
	categoryRepo repository.CategoryRepository,
) BudgetService {
	return &budgetService{
		dbExecutor:   dbExecutor,
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

func (in BudgetInput) validate() error {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return util.ErrInvalidInput
	}
	if !in.Period.Valid() {
		return util.ErrInvalidInput
	}
	if in.CategoryID == 0 || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return util.ErrInvalidInput
	}
	if in.EndDate.Before(in.StartDate.Time) {
		return util.ErrInvalidInput
	}
	return nil
}

func (s *budgetService) List(ctx context.Context, ownerID int64) ([]domain.BudgetWithCategory, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, s.dbExecutor, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}

func (s *budgetService) Create(ctx context.Context, ownerID int64, input BudgetInput) (*domain.Budget, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, s.dbExecutor, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("create budget: failed to get category %d: %w", input.CategoryID, err)
	}
	if !category.OwnedBy(ownerID) {
		return nil, util.ErrUnauthorized
	}

	budget := domain.NewBudget(ownerID, input.CategoryID, input.Amount, input.Period, input.StartDate, input.EndDate)
	if err := s.budgetRepo.CreateBudget(ctx, s.dbExecutor, budget); err != nil {
		return nil, fmt.Errorf("create budget: %w", err)
	}
	return budget, nil
}

func (s *budgetService) Delete(ctx context.Context, ownerID, budgetID int64) error {
	budget, err := s.budgetRepo.GetBudgetByID(ctx, s.dbExecutor, budgetID)
	if err != nil {
		return fmt.Errorf("delete budget: failed to get budget %d: %w", budgetID, err)
	}
	if budget.UserID != ownerID {
		return util.ErrUnauthorized
	}

	if err := s.budgetRepo.DeleteBudget(ctx, s.dbExecutor, budgetID); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}
