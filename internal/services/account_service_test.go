package services

import (
	"io"
	"log/slog"
	"testing"

	"finnote/internal/database"
	"finnote/internal/dto"
	"finnote/internal/models"
	"finnote/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

type AccountServiceSuite struct {
	suite.Suite
	db      *database.DB
	service AccountServiceInterface
	user    *models.User
}

func (s *AccountServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	accountRepo := repositories.NewAccountRepository(s.db.DB)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewAccountService(accountRepo, logger)

	s.user = database.CreateTestUser(s.T(), s.db, "owner@example.com")
}

func (s *AccountServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AccountServiceSuite) TestCreateDefaults() {
	account, err := s.service.CreateAccount(s.user.ID, &dto.CreateAccountRequest{
		Name: "Wallet",
		Type: models.AccountTypeCash,
	})
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.True(account.Balance.IsZero())
	s.Equal(models.DefaultCurrency, account.Currency)
}

func (s *AccountServiceSuite) TestCreateWithInitialBalance() {
	account, err := s.service.CreateAccount(s.user.ID, &dto.CreateAccountRequest{
		Name:     "Savings",
		Type:     models.AccountTypeSavings,
		Balance:  floatPtr(2500.50),
		Currency: "EUR",
	})
	s.NoError(err)
	s.True(account.Balance.Equal(decimal.NewFromFloat(2500.50)))
	s.Equal("EUR", account.Currency)
}

func (s *AccountServiceSuite) TestCreateMixedCaseTypeStoredLowercase() {
	account, err := s.service.CreateAccount(s.user.ID, &dto.CreateAccountRequest{
		Name: "Everyday",
		Type: "Checking",
	})
	s.NoError(err)
	s.Equal(models.AccountTypeChecking, account.AccountType)
}

func (s *AccountServiceSuite) TestCreateInvalidType() {
	_, err := s.service.CreateAccount(s.user.ID, &dto.CreateAccountRequest{
		Name: "Weird",
		Type: "crypto",
	})
	s.ErrorIs(err, models.ErrInvalidAccountType)
}

func (s *AccountServiceSuite) TestListOnlyOwn() {
	_, err := s.service.CreateAccount(s.user.ID, &dto.CreateAccountRequest{Name: "Mine", Type: models.AccountTypeChecking})
	s.Require().NoError(err)

	stranger := database.CreateTestUser(s.T(), s.db, "stranger@example.com")
	_, err = s.service.CreateAccount(stranger.ID, &dto.CreateAccountRequest{Name: "Theirs", Type: models.AccountTypeChecking})
	s.Require().NoError(err)

	accounts, err := s.service.ListAccounts(s.user.ID)
	s.NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal("Mine", accounts[0].Name)
}

func (s *AccountServiceSuite) TestUpdatePatchesOnlyGivenFields() {
	account, err := s.service.CreateAccount(s.user.ID, &dto.CreateAccountRequest{
		Name:    "Old",
		Type:    models.AccountTypeChecking,
		Balance: floatPtr(75),
	})
	s.Require().NoError(err)

	newName := "New"
	updated, err := s.service.UpdateAccount(s.user.ID, account.ID, &dto.UpdateAccountRequest{
		Name: &newName,
	})
	s.NoError(err)
	s.Equal("New", updated.Name)
	s.Equal(models.AccountTypeChecking, updated.AccountType)
	s.True(updated.Balance.Equal(decimal.NewFromInt(75)))
}

func (s *AccountServiceSuite) TestUpdateDoesNotRevalidateType() {
	account, err := s.service.CreateAccount(s.user.ID, &dto.CreateAccountRequest{
		Name: "Loose",
		Type: models.AccountTypeChecking,
	})
	s.Require().NoError(err)

	// Update writes whatever it is given, enumeration included
	badType := "crypto"
	updated, err := s.service.UpdateAccount(s.user.ID, account.ID, &dto.UpdateAccountRequest{
		Type: &badType,
	})
	s.NoError(err)
	s.Equal("crypto", updated.AccountType)
}

func (s *AccountServiceSuite) TestUpdateEmptyPatchReturnsCurrent() {
	account, err := s.service.CreateAccount(s.user.ID, &dto.CreateAccountRequest{
		Name: "Same",
		Type: models.AccountTypeCash,
	})
	s.Require().NoError(err)

	updated, err := s.service.UpdateAccount(s.user.ID, account.ID, &dto.UpdateAccountRequest{})
	s.NoError(err)
	s.Equal(account.ID, updated.ID)
	s.Equal("Same", updated.Name)
}

func (s *AccountServiceSuite) TestUpdateNotOwned() {
	account, err := s.service.CreateAccount(s.user.ID, &dto.CreateAccountRequest{
		Name: "Mine",
		Type: models.AccountTypeChecking,
	})
	s.Require().NoError(err)

	stranger := database.CreateTestUser(s.T(), s.db, "stranger@example.com")
	name := "Stolen"
	_, err = s.service.UpdateAccount(stranger.ID, account.ID, &dto.UpdateAccountRequest{Name: &name})
	s.ErrorIs(err, repositories.ErrAccountNotFound)
}

func (s *AccountServiceSuite) TestDelete() {
	account, err := s.service.CreateAccount(s.user.ID, &dto.CreateAccountRequest{
		Name: "Doomed",
		Type: models.AccountTypeCredit,
	})
	s.Require().NoError(err)

	s.NoError(s.service.DeleteAccount(s.user.ID, account.ID))
	s.ErrorIs(s.service.DeleteAccount(s.user.ID, account.ID), repositories.ErrAccountNotFound)
}
