// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"spendwise/internal/domain"
	"spendwise/internal/repository"
	"spendwise/internal/util"
	"spendwise/pkg/db"

	"golang.org/x/crypto/bcrypt"
)

// AuthResult is what a successful register or login returns to the client.
type AuthResult struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthService registers and authenticates users. Every newly registered user
// gets the default category set seeded in the same database transaction as
// the user row.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// defaultCategory describes one seeded category.
type defaultCategory struct {
	name    string
	catType domain.CategoryType
}

var defaultCategories = []defaultCategory{
	{"Food & Dining", domain.CategoryTypeExpense},
	{"Shopping", domain.CategoryTypeExpense},
	{"Transportation", domain.CategoryTypeExpense},
	{"Bills & Utilities", domain.CategoryTypeExpense},
	{"Entertainment", domain.CategoryTypeExpense},
	{"Healthcare", domain.CategoryTypeExpense},
	{"Education", domain.CategoryTypeExpense},
	{"Travel", domain.CategoryTypeExpense},
	{"Other", domain.CategoryTypeExpense},
	{"Salary", domain.CategoryTypeIncome},
	{"Business", domain.CategoryTypeIncome},
	{"Investments", domain.CategoryTypeIncome},
	{"Freelance", domain.CategoryTypeIncome},
	{"Gifts", domain.CategoryTypeIncome},
	{"Other", domain.CategoryTypeIncome},
}

// authService implements the AuthService interface.
type authService struct {
	dbBeginner   db.DBTxBeginner
	dbExecutor   repository.DBExecutor
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	beginTx      db.BeginTxFunc
	commitTx     db.CommitTxFunc
	rollbackTx   db.RollbackTxFunc
	jwtSecret    string
	tokenTTL     time.Duration
	bcryptCost   int
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	jwtSecret string,
	tokenTTL time.Duration,
	bcryptCost int,
) AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		dbBeginner:   dbBeginner,
		dbExecutor:   dbExecutor,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		beginTx:      beginTx,
		commitTx:     commitTx,
		rollbackTx:   rollbackTx,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
		bcryptCost:   bcryptCost,
	}
}

// Register creates a user, seeds the default categories and issues a token.
func (s *authService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	if _, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email); err == nil {
		return nil, util.ErrDuplicateEmail
	} else if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("register: failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("register: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("register: transaction controller does not implement DBExecutor")
	}

	user := domain.NewUser(name, email, string(hash))
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		return nil, fmt.Errorf("register: failed to create user: %w", err)
	}

	for _, dc := range defaultCategories {
		category := &domain.Category{
			Name:      dc.name,
			Type:      dc.catType,
			IsDefault: true,
			UserID:    &user.ID,
		}
		if err := s.categoryRepo.CreateCategory(ctx, txExecutor, category); err != nil {
			return nil, fmt.Errorf("register: failed to seed default category %q: %w", dc.name, err)
		}
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("register: failed to commit transaction: %w", err)
	}

	token, err := util.GenerateToken(s.jwtSecret, user.ID, user.Email, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("register: failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, Email: user.Email, Name: user.Name}, nil
}

// Login verifies credentials and issues a token. A missing user and a wrong
// password both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateToken(s.jwtSecret, user.ID, user.Email, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("login: failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, Email: user.Email, Name: user.Name}, nil
}
