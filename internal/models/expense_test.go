package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validExpense() *Expense {
	return &Expense{
		UserID:      uuid.New(),
		AccountID:   uuid.New(),
		Description: "Groceries",
		Amount:      decimal.NewFromFloat(42.50),
		Category:    CategoryFood,
		Date:        time.Now(),
	}
}

func TestExpenseValidate(t *testing.T) {
	assert.NoError(t, validExpense().Validate())
}

func TestExpenseValidateZeroAmountAllowed(t *testing.T) {
	e := validExpense()
	e.Amount = decimal.Zero
	assert.NoError(t, e.Validate())
}

func TestExpenseValidateNegativeAmount(t *testing.T) {
	e := validExpense()
	e.Amount = decimal.NewFromInt(-1)
	assert.ErrorIs(t, e.Validate(), ErrNegativeExpenseAmount)
}

func TestExpenseValidateUnknownCategory(t *testing.T) {
	e := validExpense()
	e.Category = "groceries"
	assert.ErrorIs(t, e.Validate(), ErrInvalidExpenseCategory)
}

func TestExpenseValidateBlankDescription(t *testing.T) {
	e := validExpense()
	e.Description = " "
	assert.Error(t, e.Validate())
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range ExpenseCategories() {
		assert.True(t, IsValidCategory(category), category)
	}

	assert.False(t, IsValidCategory("FOOD"))
	assert.False(t, IsValidCategory("rent"))
	assert.False(t, IsValidCategory(""))
}

func TestExpenseFiltersOffset(t *testing.T) {
	assert.Equal(t, 0, ExpenseFilters{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, ExpenseFilters{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 50, ExpenseFilters{Page: 6, Limit: 10}.Offset())

	// page 0 and negative pages fall back to the first page
	assert.Equal(t, 0, ExpenseFilters{Page: 0, Limit: 25}.Offset())
	assert.Equal(t, 0, ExpenseFilters{Page: -3, Limit: 25}.Offset())
}
