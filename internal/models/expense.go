package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidExpenseCategory = errors.New("invalid expense category")
	ErrNegativeExpenseAmount  = errors.New("expense amount cannot be negative")
)

// Expense is a dated, categorized record of spending charged against an
// account. Deleting its account orphans the expense; the account reference
// is resolved best-effort afterwards.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(20);not null;index" json:"category"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	User    User     `gorm:"foreignKey:UserID" json:"-"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.Date.IsZero() {
		e.Date = now
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

func (e *Expense) Validate() error {
	if e.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if e.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if strings.TrimSpace(e.Description) == "" {
		return errors.New("description is required")
	}

	if e.Amount.LessThan(decimal.Zero) {
		return ErrNegativeExpenseAmount
	}

	if !IsValidCategory(e.Category) {
		return ErrInvalidExpenseCategory
	}

	return nil
}

func (e *Expense) TableName() string {
	return "expenses"
}
