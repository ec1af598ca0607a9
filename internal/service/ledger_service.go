// internal/service/ledger_service.go
package service

import (
	"context"
	"fmt"

	"spendwise/internal/domain"
	"spendwise/internal/repository"
	"spendwise/internal/util"
	"spendwise/pkg/db"

	"github.com/shopspring/decimal"
)

// TransactionInput carries the client-supplied fields of a transaction
// create or update.
type TransactionInput struct {
	Amount          decimal.Decimal
	Description     string
	Type            domain.TransactionType
	CategoryID      int64
	WalletID        int64
	TransactionDate domain.Date
	BillImageURL    *string
}

// LedgerService applies transaction mutations and the matching wallet balance
// delta as one atomic unit. It is the only writer of wallet balances besides
// direct wallet edits.
type LedgerService interface {
	Create(ctx context.Context, ownerID int64, input TransactionInput) (*domain.TransactionDetail, error)
	Update(ctx context.Context, ownerID, transactionID int64, input TransactionInput) (*domain.TransactionDetail, error)
	Delete(ctx context.Context, ownerID, transactionID int64) error
	List(ctx context.Context, ownerID int64, filter repository.TransactionFilter) ([]domain.TransactionDetail, error)
}

// ledgerService implements the LedgerService interface.
type ledgerService struct {
	dbBeginner      db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor      repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	walletRepo      repository.WalletRepository
	categoryRepo    repository.CategoryRepository
	transactionRepo repository.TransactionRepository
	beginTx         db.BeginTxFunc    // Injected dependency for beginning transactions
	commitTx        db.CommitTxFunc   // Injected dependency for committing transactions
	rollbackTx      db.RollbackTxFunc // Injected dependency for rolling back transactions
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	walletRepo repository.WalletRepository,
	categoryRepo repository.CategoryRepository,
	transactionRepo repository.TransactionRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) LedgerService {
	return &ledgerService{
		dbBeginner:      dbBeginner,
		dbExecutor:      dbExecutor,
		walletRepo:      walletRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		beginTx:         beginTx,
		commitTx:        commitTx,
		rollbackTx:      rollbackTx,
	}
}

func (in TransactionInput) validate() error {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return util.ErrInvalidInput
	}
	if !in.Type.Valid() {
		return util.ErrInvalidInput
	}
	if in.WalletID == 0 || in.CategoryID == 0 {
		return util.ErrInvalidInput
	}
	if in.TransactionDate.IsZero() {
		return util.ErrInvalidInput
	}
	return nil
}

// checkWalletOwnership loads the wallet and verifies it belongs to ownerID.
// A missing wallet surfaces as ErrNotFound, a foreign one as ErrUnauthorized.
func (s *ledgerService) checkWalletOwnership(ctx context.Context, q repository.DBExecutor, walletID, ownerID int64) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWalletByID(ctx, q, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet %d: %w", walletID, err)
	}
	if wallet.UserID != ownerID {
		return nil, util.ErrUnauthorized
	}
	return wallet, nil
}

// checkCategoryOwnership loads the category and verifies ownerID may use it.
// Default categories are usable by everyone.
func (s *ledgerService) checkCategoryOwnership(ctx context.Context, q repository.DBExecutor, categoryID, ownerID int64) (*domain.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, q, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", categoryID, err)
	}
	if !category.OwnedBy(ownerID) {
		return nil, util.ErrUnauthorized
	}
	return category, nil
}

// Create inserts the transaction row and applies its signed delta to the
// wallet balance inside one database transaction. The transaction's type is
// taken as given; it is not cross-checked against the category's type.
func (s *ledgerService) Create(ctx context.Context, ownerID int64, input TransactionInput) (*domain.TransactionDetail, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	txController, err := s.beginTx(ctx, s.dbBeginner) // Use injected function
	if err != nil {
		return nil, fmt.Errorf("create transaction: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController) // Use injected function

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create transaction: transaction controller does not implement DBExecutor")
	}

	if _, err := s.checkWalletOwnership(ctx, txExecutor, input.WalletID, ownerID); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	if _, err := s.checkCategoryOwnership(ctx, txExecutor, input.CategoryID, ownerID); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	transaction := domain.NewTransaction(
		ownerID, input.WalletID, input.CategoryID,
		input.Type, input.Amount, input.Description,
		input.TransactionDate, input.BillImageURL,
	)
	if err := s.transactionRepo.CreateTransaction(ctx, txExecutor, transaction); err != nil {
		return nil, fmt.Errorf("create transaction: failed to insert row: %w", err)
	}

	if err := s.walletRepo.ApplyWalletDelta(ctx, txExecutor, input.WalletID, input.Type.Delta(input.Amount)); err != nil {
		return nil, fmt.Errorf("create transaction: failed to update wallet balance: %w", err)
	}

	detail, err := s.transactionRepo.GetTransactionDetailByID(ctx, txExecutor, transaction.ID)
	if err != nil {
		return nil, fmt.Errorf("create transaction: failed to re-fetch transaction %d: %w", transaction.ID, err)
	}

	if err := s.commitTx(txController); err != nil { // Use injected function
		return nil, fmt.Errorf("create transaction: failed to commit transaction: %w", err)
	}

	return detail, nil
}

// Update reverses the stored delta on the old wallet, persists the new field
// values, then applies the new delta on the new wallet. All four steps share
// one database transaction; any failure rolls back to the pre-update state.
func (s *ledgerService) Update(ctx context.Context, ownerID, transactionID int64, input TransactionInput) (*domain.TransactionDetail, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("update transaction: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("update transaction: transaction controller does not implement DBExecutor")
	}

	old, err := s.transactionRepo.GetTransactionByID(ctx, txExecutor, transactionID)
	if err != nil {
		return nil, fmt.Errorf("update transaction: failed to get transaction %d: %w", transactionID, err)
	}
	if old.UserID != ownerID {
		return nil, util.ErrUnauthorized
	}

	// The wallet may have changed; both old and new must belong to the owner.
	if _, err := s.checkWalletOwnership(ctx, txExecutor, input.WalletID, ownerID); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	if _, err := s.checkCategoryOwnership(ctx, txExecutor, input.CategoryID, ownerID); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	if err := s.walletRepo.ApplyWalletDelta(ctx, txExecutor, old.WalletID, old.Type.Delta(old.Amount).Neg()); err != nil {
		return nil, fmt.Errorf("update transaction: failed to reverse old wallet delta: %w", err)
	}

	updated := *old
	updated.WalletID = input.WalletID
	updated.CategoryID = input.CategoryID
	updated.Type = input.Type
	updated.Amount = input.Amount
	updated.Description = input.Description
	updated.TransactionDate = input.TransactionDate
	updated.BillImageURL = input.BillImageURL
	if err := s.transactionRepo.UpdateTransaction(ctx, txExecutor, &updated); err != nil {
		return nil, fmt.Errorf("update transaction: failed to persist row: %w", err)
	}

	if err := s.walletRepo.ApplyWalletDelta(ctx, txExecutor, input.WalletID, input.Type.Delta(input.Amount)); err != nil {
		return nil, fmt.Errorf("update transaction: failed to apply new wallet delta: %w", err)
	}

	detail, err := s.transactionRepo.GetTransactionDetailByID(ctx, txExecutor, transactionID)
	if err != nil {
		return nil, fmt.Errorf("update transaction: failed to re-fetch transaction %d: %w", transactionID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("update transaction: failed to commit transaction: %w", err)
	}

	return detail, nil
}

// Delete reverses the transaction's delta on its wallet and removes the row,
// atomically. Delete is the exact inverse of Create.
func (s *ledgerService) Delete(ctx context.Context, ownerID, transactionID int64) error {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return fmt.Errorf("delete transaction: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("delete transaction: transaction controller does not implement DBExecutor")
	}

	transaction, err := s.transactionRepo.GetTransactionByID(ctx, txExecutor, transactionID)
	if err != nil {
		return fmt.Errorf("delete transaction: failed to get transaction %d: %w", transactionID, err)
	}
	if transaction.UserID != ownerID {
		return util.ErrUnauthorized
	}

	if err := s.walletRepo.ApplyWalletDelta(ctx, txExecutor, transaction.WalletID, transaction.Type.Delta(transaction.Amount).Neg()); err != nil {
		return fmt.Errorf("delete transaction: failed to reverse wallet delta: %w", err)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, txExecutor, transactionID); err != nil {
		return fmt.Errorf("delete transaction: failed to delete row: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return fmt.Errorf("delete transaction: failed to commit transaction: %w", err)
	}

	return nil
}

// List retrieves the owner's transactions matching the filter, newest first.
func (s *ledgerService) List(ctx context.Context, ownerID int64, filter repository.TransactionFilter) ([]domain.TransactionDetail, error) {
	// For read-only operations outside a transaction, use s.dbExecutor
	transactions, err := s.transactionRepo.ListTransactions(ctx, s.dbExecutor, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}
