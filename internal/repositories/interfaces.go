package repositories

import (
	"time"

	"finnote/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines data access for users
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// AccountRepositoryInterface defines data access for accounts
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Account, error)
	ListByUser(userID uuid.UUID) ([]models.Account, error)
	Save(account *models.Account) error
	UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) (*models.Account, error)
	Delete(id, userID uuid.UUID) error
}

// ExpenseRepositoryInterface defines data access for expenses
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Expense, error)
	List(userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, int64, error)
	UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) (*models.Expense, error)
	Delete(id, userID uuid.UUID) error
	CategoryTotals(userID uuid.UUID, startDate, endDate *time.Time) ([]models.CategorySummary, error)
	TotalSpent(userID uuid.UUID, startDate, endDate *time.Time) (decimal.Decimal, error)
}
