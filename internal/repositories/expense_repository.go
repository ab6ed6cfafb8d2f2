package repositories

import (
	"errors"
	"fmt"
	"time"

	"finnote/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &ExpenseRepository{
		db: db,
	}
}

// Create creates a new expense
func (r *ExpenseRepository) Create(expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// GetByIDForUser retrieves an expense scoped to its owner, with the
// linked account preloaded when it still exists.
func (r *ExpenseRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.Preload("Account").
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense for user: %w", err)
	}
	return &expense, nil
}

// List retrieves a page of expenses for a user matching the filters,
// newest first, along with the filtered total count.
func (r *ExpenseRepository) List(userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	query := r.applyFilters(r.db.Model(&models.Expense{}).Where("user_id = ?", userID), filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	if err := query.Preload("Account").
		Order("date DESC").
		Offset(filters.Offset()).
		Limit(filters.Limit).
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, total, nil
}

// UpdateFields applies a partial update to an owned expense and returns the
// updated record. The linked account balance is intentionally left alone
// even when amount or account change; see the package design notes.
func (r *ExpenseRepository) UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) (*models.Expense, error) {
	result := r.db.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrExpenseNotFound
	}

	return r.GetByIDForUser(id, userID)
}

// Delete removes an owned expense
func (r *ExpenseRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// CategoryTotals aggregates a user's expenses by category within an
// optional date range, ordered by total descending.
func (r *ExpenseRepository) CategoryTotals(userID uuid.UUID, startDate, endDate *time.Time) ([]models.CategorySummary, error) {
	summaries := []models.CategorySummary{}

	query := r.applyDateRange(r.db.Model(&models.Expense{}).Where("user_id = ?", userID), startDate, endDate)

	if err := query.
		Select("category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("category").
		Order("total DESC").
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}

	return summaries, nil
}

// TotalSpent sums a user's expense amounts within an optional date range.
// An empty range yields zero, not an error.
func (r *ExpenseRepository) TotalSpent(userID uuid.UUID, startDate, endDate *time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	query := r.applyDateRange(r.db.Model(&models.Expense{}).Where("user_id = ?", userID), startDate, endDate)

	if err := query.
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return result.Total, nil
}

func (r *ExpenseRepository) applyFilters(query *gorm.DB, filters models.ExpenseFilters) *gorm.DB {
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	return r.applyDateRange(query, filters.StartDate, filters.EndDate)
}

func (r *ExpenseRepository) applyDateRange(query *gorm.DB, startDate, endDate *time.Time) *gorm.DB {
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}
	return query
}
