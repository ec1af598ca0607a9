// internal/service/wallet_service.go
package service

import (
	"context"
	"fmt"

	"spendwise/internal/domain"
	"spendwise/internal/repository"
	"spendwise/internal/util"

	"github.com/shopspring/decimal"
)

// WalletInput carries client-supplied wallet fields.
type WalletInput struct {
	Name    string
	Type    domain.WalletType
	Balance decimal.Decimal
}

// WalletService handles owner-scoped wallet CRUD. Balance mutations driven by
// transactions go through the ledger service instead; direct edits here set
// the stored balance verbatim.
type WalletService interface {
	List(ctx context.Context, ownerID int64) ([]domain.Wallet, error)
	Create(ctx context.Context, ownerID int64, input WalletInput) (*domain.Wallet, error)
	Update(ctx context.Context, ownerID, walletID int64, input WalletInput) (*domain.Wallet, error)
	Delete(ctx context.Context, ownerID, walletID int64) error
}

// walletService implements the WalletService interface.
type walletService struct {
	dbExecutor repository.DBExecutor
	walletRepo repository.WalletRepository
}

// NewWalletService creates a new instance of WalletService.
func NewWalletService(dbExecutor repository.DBExecutor, walletRepo repository.WalletRepository) WalletService {
	return &walletService{
		dbExecutor: dbExecutor,
		walletRepo: walletRepo,
	}
}

func (in WalletInput) validate() error {
	if in.Name == "" || !in.Type.Valid() {
		return util.ErrInvalidInput
	}
	return nil
}

func (s *walletService) List(ctx context.Context, ownerID int64) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListWalletsByUser(ctx, s.dbExecutor, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	return wallets, nil
}

func (s *walletService) Create(ctx context.Context, ownerID int64, input WalletInput) (*domain.Wallet, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	wallet := domain.NewWallet(ownerID, input.Name, input.Type, input.Balance)
	if err := s.walletRepo.CreateWallet(ctx, s.dbExecutor, wallet); err != nil {
		return nil, fmt.Errorf("create wallet: %w", err)
	}
	return wallet, nil
}

func (s *walletService) Update(ctx context.Context, ownerID, walletID int64, input WalletInput) (*domain.Wallet, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.GetWalletByID(ctx, s.dbExecutor, walletID)
	if err != nil {
		return nil, fmt.Errorf("update wallet: failed to get wallet %d: %w", walletID, err)
	}
	if wallet.UserID != ownerID {
		return nil, util.ErrUnauthorized
	}

	wallet.Name = input.Name
	wallet.Type = input.Type
	wallet.Balance = input.Balance
	if err := s.walletRepo.UpdateWallet(ctx, s.dbExecutor, wallet); err != nil {
		return nil, fmt.Errorf("update wallet: %w", err)
	}
	return wallet, nil
}

func (s *walletService) Delete(ctx context.Context, ownerID, walletID int64) error {
	wallet, err := s.walletRepo.GetWalletByID(ctx, s.dbExecutor, walletID)
	if err != nil {
		return fmt.Errorf("delete wallet: failed to get wallet %d: %w", walletID, err)
	}
	if wallet.UserID != ownerID {
		return util.ErrUnauthorized
	}

	if err := s.walletRepo.DeleteWallet(ctx, s.dbExecutor, walletID); err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	return nil
}
