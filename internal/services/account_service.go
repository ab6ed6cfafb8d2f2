package services

import (
	"fmt"
	"log/slog"
	"strings"

	"finnote/internal/dto"
	"finnote/internal/models"
	"finnote/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountService handles vault business logic
type AccountService struct {
	accountRepo repositories.AccountRepositoryInterface
	logger      *slog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repositories.AccountRepositoryInterface, logger *slog.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// ListAccounts returns all vaults owned by the user, oldest first.
func (s *AccountService) ListAccounts(userID uuid.UUID) ([]models.Account, error) {
	accounts, err := s.accountRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// CreateAccount creates a new vault for the user. Balance defaults to
// zero and currency to USD when omitted.
func (s *AccountService) CreateAccount(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error) {
	balance := decimal.Zero
	if req.Balance != nil {
		balance = decimal.NewFromFloat(*req.Balance)
	}

	currency := models.DefaultCurrency
	if req.Currency != "" {
		currency = req.Currency
	}

	// Type validation is case-insensitive, so store the canonical form.
	account := &models.Account{
		UserID:      userID,
		Name:        req.Name,
		AccountType: strings.ToLower(req.Type),
		Balance:     balance,
		Currency:    currency,
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("vault created",
		"account_id", account.ID,
		"user_id", userID,
		"type", account.AccountType,
		"balance", account.Balance)

	return account, nil
}

// UpdateAccount applies a partial update to a vault owned by the user.
// Only the provided fields are written; the stored values are returned.
func (s *AccountService) UpdateAccount(userID, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error) {
	if !req.HasChanges() {
		account, err := s.accountRepo.GetByIDForUser(accountID, userID)
		if err != nil {
			return nil, err
		}
		return account, nil
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Type != nil {
		updates["account_type"] = *req.Type
	}
	if req.Balance != nil {
		updates["balance"] = decimal.NewFromFloat(*req.Balance)
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}

	account, err := s.accountRepo.UpdateFields(accountID, userID, updates)
	if err != nil {
		return nil, err
	}

	s.logger.Info("vault updated", "account_id", accountID, "user_id", userID)

	return account, nil
}

// DeleteAccount removes a vault owned by the user. Expenses that
// reference the vault are left in place and keep their account id.
func (s *AccountService) DeleteAccount(userID, accountID uuid.UUID) error {
	if err := s.accountRepo.Delete(accountID, userID); err != nil {
		return err
	}

	s.logger.Info("vault deleted", "account_id", accountID, "user_id", userID)

	return nil
}
