package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finnote/internal/dto"
	"finnote/internal/models"
	"finnote/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense journal business logic
type ExpenseService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	logger      *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	logger *slog.Logger,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// ListExpenses returns a page of the user's expenses, newest first,
// along with the total count matching the filters.
func (s *ExpenseService) ListExpenses(userID uuid.UUID, filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	expenses, total, err := s.expenseRepo.List(userID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, total, nil
}

// CreateExpense records a new expense against one of the user's vaults
// and debits the vault balance by the expense amount. The expense row
// and the balance update are two separate writes; a crash between them
// leaves the expense recorded without the debit.
func (s *ExpenseService) CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	accountID, err := uuid.Parse(req.Account)
	if err != nil {
		return nil, repositories.ErrAccountNotFound
	}

	account, err := s.accountRepo.GetByIDForUser(accountID, userID)
	if err != nil {
		return nil, err
	}

	amount := decimal.NewFromFloat(*req.Amount)

	// Category validation is case-insensitive, so store the canonical form.
	expense := &models.Expense{
		UserID:      userID,
		AccountID:   account.ID,
		Description: req.Description,
		Amount:      amount,
		Category:    strings.ToLower(req.Category),
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	account.Debit(amount)
	if err := s.accountRepo.Save(account); err != nil {
		return nil, fmt.Errorf("failed to update account balance: %w", err)
	}

	s.logger.Info("expense recorded",
		"expense_id", expense.ID,
		"user_id", userID,
		"account_id", account.ID,
		"amount", amount,
		"category", expense.Category)

	expense.Account = account

	return expense, nil
}

// UpdateExpense applies a partial update to an expense owned by the
// user. Changing the amount or the account does not adjust any vault
// balance; only creation and deletion move money.
func (s *ExpenseService) UpdateExpense(userID, expenseID uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	if !req.HasChanges() {
		expense, err := s.expenseRepo.GetByIDForUser(expenseID, userID)
		if err != nil {
			return nil, err
		}
		return expense, nil
	}

	updates := make(map[string]interface{})
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Amount != nil {
		updates["amount"] = decimal.NewFromFloat(*req.Amount)
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Account != nil {
		updates["account_id"] = *req.Account
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}

	expense, err := s.expenseRepo.UpdateFields(expenseID, userID, updates)
	if err != nil {
		return nil, err
	}

	s.logger.Info("expense updated", "expense_id", expenseID, "user_id", userID)

	return expense, nil
}

// DeleteExpense removes an expense owned by the user and credits the
// amount back to the linked vault. If the vault was deleted in the
// meantime the refund is skipped.
func (s *ExpenseService) DeleteExpense(userID, expenseID uuid.UUID) error {
	expense, err := s.expenseRepo.GetByIDForUser(expenseID, userID)
	if err != nil {
		return err
	}

	if err := s.expenseRepo.Delete(expenseID, userID); err != nil {
		return err
	}

	account, err := s.accountRepo.GetByID(expense.AccountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			s.logger.Warn("expense deleted without refund, vault no longer exists",
				"expense_id", expenseID,
				"account_id", expense.AccountID)
			return nil
		}
		return fmt.Errorf("failed to load account for refund: %w", err)
	}

	account.Credit(expense.Amount)
	if err := s.accountRepo.Save(account); err != nil {
		return fmt.Errorf("failed to refund account balance: %w", err)
	}

	s.logger.Info("expense deleted",
		"expense_id", expenseID,
		"user_id", userID,
		"refunded", expense.Amount)

	return nil
}

// Analytics aggregates the user's spending by category over an optional
// date range and returns the overall total.
func (s *ExpenseService) Analytics(userID uuid.UUID, startDate, endDate *time.Time) ([]models.CategorySummary, decimal.Decimal, error) {
	breakdown, err := s.expenseRepo.CategoryTotals(userID, startDate, endDate)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to aggregate categories: %w", err)
	}

	total, err := s.expenseRepo.TotalSpent(userID, startDate, endDate)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to compute total spent: %w", err)
	}

	return breakdown, total, nil
}
