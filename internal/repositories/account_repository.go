package repositories

import (
	"errors"
	"fmt"

	"finnote/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

// AccountRepository handles database operations for accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &AccountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *AccountRepository) Create(account *models.Account) error {
	if account == nil {
		return errors.New("account cannot be nil")
	}

	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by ID regardless of owner. Used for the
// best-effort balance reconciliation after an expense delete.
func (r *AccountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetByIDForUser retrieves an account scoped to its owner. A mismatch in
// either ID or owner is reported as not found.
func (r *AccountRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account for user: %w", err)
	}
	return &account, nil
}

// ListByUser retrieves all accounts owned by a user
func (r *AccountRepository) ListByUser(userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Save persists the full account record, used for balance adjustments
func (r *AccountRepository) Save(account *models.Account) error {
	if account == nil {
		return errors.New("account cannot be nil")
	}

	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return nil
}

// UpdateFields applies a partial update to an owned account and returns
// the updated record. Map-based updates bypass model hooks, so patched
// fields are not re-validated against the enumerations.
func (r *AccountRepository) UpdateFields(id, userID uuid.UUID, fields map[string]interface{}) (*models.Account, error) {
	result := r.db.Model(&models.Account{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrAccountNotFound
	}

	return r.GetByIDForUser(id, userID)
}

// Delete removes an owned account. Referencing expenses are left in place.
func (r *AccountRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Account{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
