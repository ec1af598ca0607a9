// internal/repository/category_repo.go
package repository

import (
	"context"

	"spendwise/internal/domain"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	// CreateCategory adds a new category to the database.
	CreateCategory(ctx context.Context, q DBExecutor, category *domain.Category) error
	// GetCategoryByID retrieves a category by its ID.
	GetCategoryByID(ctx context.Context, q DBExecutor, id int64) (*domain.Category, error)
	// ListCategoriesForUser retrieves the user's own categories plus all defaults.
	ListCategoriesForUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Category, error)
	// RenameCategory updates a category's name.
	RenameCategory(ctx context.Context, q DBExecutor, id int64, name string) error
	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, q DBExecutor, id int64) error
}
