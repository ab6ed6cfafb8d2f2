package services

import (
	"time"

	"finnote/internal/dto"
	"finnote/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenServiceInterface defines JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines password hashing operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// AuthServiceInterface defines authentication business operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

// AccountServiceInterface defines account ("vault") business operations
type AccountServiceInterface interface {
	ListAccounts(userID uuid.UUID) ([]models.Account, error)
	CreateAccount(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error)
	UpdateAccount(userID, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error)
	DeleteAccount(userID, accountID uuid.UUID) error
}

// ExpenseServiceInterface defines expense journal business operations
type ExpenseServiceInterface interface {
	ListExpenses(userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, int64, error)
	CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error)
	UpdateExpense(userID, expenseID uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(userID, expenseID uuid.UUID) error
	Analytics(userID uuid.UUID, startDate, endDate *time.Time) ([]models.CategorySummary, decimal.Decimal, error)
}
