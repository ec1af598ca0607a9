// internal/service/category_service.go
package service

import (
	"context"
	"fmt"

	"spendwise/internal/domain"
	"spendwise/internal/repository"
	"spendwise/internal/util"
)

// CategoryService handles owner-scoped category CRUD. Default categories can
// never be deleted.
type CategoryService interface {
	List(ctx context.Context, ownerID int64) ([]domain.Category, error)
	Create(ctx context.Context, ownerID int64, name string, categoryType domain.CategoryType) (*domain.Category, error)
	Rename(ctx context.Context, ownerID, categoryID int64, name string) (*domain.Category, error)
	Delete(ctx context.Context, ownerID, categoryID int64) error
}

// categoryService implements the CategoryService interface.
type categoryService struct {
	dbExecutor   repository.DBExecutor
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(dbExecutor repository.DBExecutor, categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{
		dbExecutor:   dbExecutor,
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) List(ctx context.Context, ownerID int64) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategoriesForUser(ctx, s.dbExecutor, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) Create(ctx context.Context, ownerID int64, name string, categoryType domain.CategoryType) (*domain.Category, error) {
	if name == "" || !categoryType.Valid() {
		return nil, util.ErrInvalidInput
	}

	category := domain.NewCategory(ownerID, name, categoryType)
	if err := s.categoryRepo.CreateCategory(ctx, s.dbExecutor, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Rename(ctx context.Context, ownerID, categoryID int64, name string) (*domain.Category, error) {
	if name == "" {
		return nil, util.ErrInvalidInput
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, s.dbExecutor, categoryID)
	if err != nil {
		return nil, fmt.Errorf("rename category: failed to get category %d: %w", categoryID, err)
	}
	if category.UserID == nil || *category.UserID != ownerID {
		return nil, util.ErrUnauthorized
	}

	if err := s.categoryRepo.RenameCategory(ctx, s.dbExecutor, categoryID, name); err != nil {
		return nil, fmt.Errorf("rename category: %w", err)
	}
	category.Name = name
	return category, nil
}

// Delete removes a user's own category. Deleting a default category fails
// regardless of ownership.
func (s *categoryService) Delete(ctx context.Context, ownerID, categoryID int64) error {
	category, err := s.categoryRepo.GetCategoryByID(ctx, s.dbExecutor, categoryID)
	if err != nil {
		return fmt.Errorf("delete category: failed to get category %d: %w", categoryID, err)
	}
	if category.IsDefault {
		return util.ErrDefaultCategory
	}
	if category.UserID == nil || *category.UserID != ownerID {
		return util.ErrUnauthorized
	}

	if err := s.categoryRepo.DeleteCategory(ctx, s.dbExecutor, categoryID); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
