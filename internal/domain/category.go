// internal/domain/category.go
package domain

// CategoryType matches the transaction direction a category is meant for.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category labels transactions. Default categories are seeded per user at
// registration and cannot be deleted.
type Category struct {
	ID        int64        `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Type      CategoryType `db:"type" json:"type"`
	IsDefault bool         `db:"is_default" json:"isDefault"`
	UserID    *int64       `db:"user_id" json:"userId"` // Nullable, set to NULL when the owner is deleted
}

// NewCategory creates a user-defined (non-default) Category.
func NewCategory(userID int64, name string, categoryType CategoryType) *Category {
	return &Category{
		Name:      name,
		Type:      categoryType,
		IsDefault: false,
		UserID:    &userID,
	}
}

// OwnedBy reports whether the category is usable by userID. Defaults are
// usable by everyone.
func (c *Category) OwnedBy(userID int64) bool {
	if c.IsDefault {
		return true
	}
	return c.UserID != nil && *c.UserID == userID
}
