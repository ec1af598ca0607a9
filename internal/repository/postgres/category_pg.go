// internal/repository/postgres/category_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"spendwise/internal/domain"
	"spendwise/internal/repository"
	"spendwise/internal/util"

	"github.com/jmoiron/sqlx"
)

// CategoryRepository implements repository.CategoryRepository for PostgreSQL.
type CategoryRepository struct {
	// Stateless; methods receive a DBExecutor directly
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) repository.CategoryRepository {
	return &CategoryRepository{}
}

// CreateCategory inserts a new category into the database using the provided DBExecutor.
func (r *CategoryRepository) CreateCategory(ctx context.Context, q repository.DBExecutor, category *domain.Category) error {
	query := `INSERT INTO categories (name, type, is_default, user_id)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := q.QueryRowContext(ctx, query, category.Name, category.Type, category.IsDefault, category.UserID).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetCategoryByID retrieves a category by its ID using the provided DBExecutor.
func (r *CategoryRepository) GetCategoryByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Category, error) {
	var category domain.Category
	query := `SELECT id, name, type, is_default, user_id FROM categories WHERE id = $1`
	err := q.GetContext(ctx, &category, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return &category, nil
}

// ListCategoriesForUser retrieves the user's categories plus all defaults
// using the provided DBExecutor.
func (r *CategoryRepository) ListCategoriesForUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Category, error) {
	categories := []domain.Category{}
	query := `SELECT id, name, type, is_default, user_id FROM categories
              WHERE user_id = $1 OR is_default = TRUE
              ORDER BY id`
	if err := q.SelectContext(ctx, &categories, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list categories for user %d: %w", userID, err)
	}
	return categories, nil
}

// RenameCategory updates a category's name using the provided DBExecutor.
func (r *CategoryRepository) RenameCategory(ctx context.Context, q repository.DBExecutor, id int64, name string) error {
	result, err := q.ExecContext(ctx, `UPDATE categories SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("failed to rename category %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after renaming category %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category using the provided DBExecutor.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, q repository.DBExecutor, id int64) error {
	result, err := q.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting category %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
