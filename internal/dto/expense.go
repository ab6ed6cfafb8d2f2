package dto

import (
	"time"

	"finnote/internal/models"

	"github.com/shopspring/decimal"
)

// Expense Request DTOs

// CreateExpenseRequest represents the request payload for recording an expense
type CreateExpenseRequest struct {
	Description string     `json:"description" validate:"required,min=1,max=255"`
	Amount      *float64   `json:"amount" validate:"required,gte=0"`
	Category    string     `json:"category" validate:"required,expense_category"`
	Account     string     `json:"account" validate:"required,uuid"`
	Date        *time.Time `json:"date,omitempty"`
}

// UpdateExpenseRequest represents a partial expense update. The linked
// account balance is never reconciled by an update, mirroring the
// upstream API contract.
type UpdateExpenseRequest struct {
	Description *string    `json:"description,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Account     *string    `json:"account,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// HasChanges reports whether the patch carries at least one field
func (r *UpdateExpenseRequest) HasChanges() bool {
	return r.Description != nil || r.Amount != nil || r.Category != nil ||
		r.Account != nil || r.Date != nil
}

// Expense Response DTOs

// ExpenseListResponse represents a page of expenses
type ExpenseListResponse struct {
	Expenses    []models.Expense `json:"expenses"`
	TotalPages  int64            `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// AnalyticsResponse represents the category breakdown of a user's spending
type AnalyticsResponse struct {
	CategoryBreakdown []models.CategorySummary `json:"categoryBreakdown"`
	TotalSpent        decimal.Decimal          `json:"totalSpent"`
}
