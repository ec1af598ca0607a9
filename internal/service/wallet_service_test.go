// internal/service/wallet_service_test.go
package service

import (
	"context"
	"testing"

	"spendwise/internal/domain"
	"spendwise/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWalletCreate(t *testing.T) {
	ownerID := int64(1)

	t.Run("Success", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockWalletRepository)
		svc := NewWalletService(new(MockDBExecutor), repo)

		repo.On("CreateWallet", ctx, mock.Anything, mock.AnythingOfType("*domain.Wallet")).
			Run(func(args mock.Arguments) {
				args.Get(2).(*domain.Wallet).ID = 7
			}).Return(nil).Once()

		wallet, err := svc.Create(ctx, ownerID, WalletInput{
			Name:    "Checking",
			Type:    domain.WalletTypeBankAccount,
			Balance: decimal.NewFromInt(10000),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), wallet.ID)
		assert.Equal(t, ownerID, wallet.UserID)
	})

	t.Run("UnknownType", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockWalletRepository)
		svc := NewWalletService(new(MockDBExecutor), repo)

		_, err := svc.Create(ctx, ownerID, WalletInput{Name: "Checking", Type: "CRYPTO"})

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		repo.AssertNotCalled(t, "CreateWallet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NegativeOpeningBalanceAllowed", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockWalletRepository)
		svc := NewWalletService(new(MockDBExecutor), repo)

		// Credit cards legitimately start below zero.
		repo.On("CreateWallet", ctx, mock.Anything, mock.AnythingOfType("*domain.Wallet")).Return(nil).Once()

		_, err := svc.Create(ctx, ownerID, WalletInput{
			Name:    "Visa",
			Type:    domain.WalletTypeCreditCard,
			Balance: decimal.NewFromInt(-2500),
		})

		assert.NoError(t, err)
	})
}

func TestWalletUpdate(t *testing.T) {
	ownerID := int64(1)

	t.Run("SetsBalanceVerbatim", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockWalletRepository)
		svc := NewWalletService(new(MockDBExecutor), repo)

		stored := &domain.Wallet{ID: 7, UserID: ownerID, Name: "Checking", Type: domain.WalletTypeBankAccount, Balance: decimal.NewFromInt(100)}
		repo.On("GetWalletByID", ctx, mock.Anything, int64(7)).Return(stored, nil).Once()
		repo.On("UpdateWallet", ctx, mock.Anything, mock.AnythingOfType("*domain.Wallet")).Return(nil).Once()

		wallet, err := svc.Update(ctx, ownerID, 7, WalletInput{
			Name:    "Main Checking",
			Type:    domain.WalletTypeBankAccount,
			Balance: decimal.NewFromInt(999),
		})

		require.NoError(t, err)
		assert.Equal(t, "Main Checking", wallet.Name)
		assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(999)))
	})

	t.Run("NotOwner", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockWalletRepository)
		svc := NewWalletService(new(MockDBExecutor), repo)

		stored := &domain.Wallet{ID: 7, UserID: 99}
		repo.On("GetWalletByID", ctx, mock.Anything, int64(7)).Return(stored, nil).Once()

		_, err := svc.Update(ctx, ownerID, 7, WalletInput{Name: "X", Type: domain.WalletTypeCash})

		assert.ErrorIs(t, err, util.ErrUnauthorized)
		repo.AssertNotCalled(t, "UpdateWallet", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWalletDelete(t *testing.T) {
	ownerID := int64(1)

	t.Run("Success", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockWalletRepository)
		svc := NewWalletService(new(MockDBExecutor), repo)

		stored := &domain.Wallet{ID: 7, UserID: ownerID}
		repo.On("GetWalletByID", ctx, mock.Anything, int64(7)).Return(stored, nil).Once()
		repo.On("DeleteWallet", ctx, mock.Anything, int64(7)).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, ownerID, 7))
		repo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctx := context.Background()
		repo := new(MockWalletRepository)
		svc := NewWalletService(new(MockDBExecutor), repo)

		repo.On("GetWalletByID", ctx, mock.Anything, int64(7)).Return(nil, util.ErrNotFound).Once()

		err := svc.Delete(ctx, ownerID, 7)

		assert.ErrorIs(t, err, util.ErrNotFound)
	})
}
