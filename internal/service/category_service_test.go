// internal/service/category_service_test.go
package service

import (
	"context"
	"testing"

	"spendwise/internal/domain"
	"spendwise/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryDelete(t *testing.T) {
	ownerID := int64(1)

	t.Run("DefaultCategoryRefused", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockCategoryRepository)
		svc := NewCategoryService(new(MockDBExecutor), repo)

		// Even the owning user cannot delete a seeded default.
		def := &domain.Category{ID: 3, Name: "Salary", Type: domain.CategoryTypeIncome, IsDefault: true, UserID: &ownerID}
		repo.On("GetCategoryByID", ctx, mock.Anything, int64(3)).Return(def, nil).Once()

		err := svc.Delete(ctx, ownerID, 3)

		assert.ErrorIs(t, err, util.ErrDefaultCategory)
		repo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ForeignCategoryRefused", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockCategoryRepository)
		svc := NewCategoryService(new(MockDBExecutor), repo)

		otherID := int64(99)
		foreign := &domain.Category{ID: 4, Name: "Side Hustle", UserID: &otherID}
		repo.On("GetCategoryByID", ctx, mock.Anything, int64(4)).Return(foreign, nil).Once()

		err := svc.Delete(ctx, ownerID, 4)

		assert.ErrorIs(t, err, util.ErrUnauthorized)
	})

	t.Run("OwnCustomCategory", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockCategoryRepository)
		svc := NewCategoryService(new(MockDBExecutor), repo)

		own := &domain.Category{ID: 4, Name: "Side Hustle", UserID: &ownerID}
		repo.On("GetCategoryByID", ctx, mock.Anything, int64(4)).Return(own, nil).Once()
		repo.On("DeleteCategory", ctx, mock.Anything, int64(4)).Return(nil).Once()

		err := svc.Delete(ctx, ownerID, 4)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestCategoryCreate(t *testing.T) {
	ownerID := int64(1)

	t.Run("Success", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockCategoryRepository)
		svc := NewCategoryService(new(MockDBExecutor), repo)

		repo.On("CreateCategory", ctx, mock.Anything, mock.AnythingOfType("*domain.Category")).
			Run(func(args mock.Arguments) {
				args.Get(2).(*domain.Category).ID = 8
			}).Return(nil).Once()

		category, err := svc.Create(ctx, ownerID, "Side Hustle", domain.CategoryTypeIncome)

		require.NoError(t, err)
		assert.Equal(t, int64(8), category.ID)
		assert.False(t, category.IsDefault)
		require.NotNil(t, category.UserID)
		assert.Equal(t, ownerID, *category.UserID)
	})

	t.Run("InvalidType", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockCategoryRepository)
		svc := NewCategoryService(new(MockDBExecutor), repo)

		_, err := svc.Create(ctx, ownerID, "Side Hustle", "TRANSFER")

		assert.ErrorIs(t, err, util.ErrInvalidInput)
	})
}

func TestCategoryRename(t *testing.T) {
	ownerID := int64(1)

	t.Run("DefaultCategoryRefused", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockCategoryRepository)
		svc := NewCategoryService(new(MockDBExecutor), repo)

		def := &domain.Category{ID: 3, Name: "Salary", IsDefault: true, UserID: nil}
		repo.On("GetCategoryByID", ctx, mock.Anything, int64(3)).Return(def, nil).Once()

		_, err := svc.Rename(ctx, ownerID, 3, "Wages")

		assert.ErrorIs(t, err, util.ErrUnauthorized)
	})

	t.Run("Success", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockCategoryRepository)
		svc := NewCategoryService(new(MockDBExecutor), repo)

		own := &domain.Category{ID: 4, Name: "Side Hustle", UserID: &ownerID}
		repo.On("GetCategoryByID", ctx, mock.Anything, int64(4)).Return(own, nil).Once()
		repo.On("RenameCategory", ctx, mock.Anything, int64(4), "Consulting").Return(nil).Once()

		category, err := svc.Rename(ctx, ownerID, 4, "Consulting")

		require.NoError(t, err)
		assert.Equal(t, "Consulting", category.Name)
	})
}
