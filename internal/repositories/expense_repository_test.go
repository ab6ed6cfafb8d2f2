package repositories

import (
	"testing"
	"time"

	"finnote/internal/database"
	"finnote/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestExpenseRepository(t *testing.T) {
	suite.Run(t, new(ExpenseRepositorySuite))
}

type ExpenseRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    ExpenseRepositoryInterface
	user    *models.User
	account *models.Account
}

func (s *ExpenseRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewExpenseRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "spender@example.com")
	s.account = database.CreateTestAccount(s.T(), s.db, s.user, "Checking", models.AccountTypeChecking, decimal.NewFromInt(1000))
}

func (s *ExpenseRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ExpenseRepositorySuite) TestListSortsByDateDescending() {
	now := time.Now()
	old := database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(5), models.CategoryFood, now.Add(-48*time.Hour))
	recent := database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(10), models.CategoryTransport, now)

	expenses, total, err := s.repo.List(s.user.ID, models.ExpenseFilters{Page: 1, Limit: 10})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(expenses, 2)
	s.Equal(recent.ID, expenses[0].ID)
	s.Equal(old.ID, expenses[1].ID)
}

func (s *ExpenseRepositorySuite) TestListPreloadsAccount() {
	database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(5), models.CategoryFood, time.Now())

	expenses, _, err := s.repo.List(s.user.ID, models.ExpenseFilters{Page: 1, Limit: 10})
	s.NoError(err)
	s.Require().Len(expenses, 1)
	s.Require().NotNil(expenses[0].Account)
	s.Equal(s.account.Name, expenses[0].Account.Name)
	s.Equal(s.account.AccountType, expenses[0].Account.AccountType)
}

func (s *ExpenseRepositorySuite) TestListPagination() {
	now := time.Now()
	for i := 0; i < 15; i++ {
		database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(1), models.CategoryOther, now.Add(time.Duration(-i)*time.Hour))
	}

	pageTwo, total, err := s.repo.List(s.user.ID, models.ExpenseFilters{Page: 2, Limit: 10})
	s.NoError(err)
	s.Equal(int64(15), total)
	s.Len(pageTwo, 5)
}

func (s *ExpenseRepositorySuite) TestListFiltersByCategoryAndDate() {
	now := time.Now()
	database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(5), models.CategoryFood, now)
	database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(7), models.CategoryTransport, now)
	database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(9), models.CategoryFood, now.Add(-72*time.Hour))

	start := now.Add(-24 * time.Hour)
	expenses, total, err := s.repo.List(s.user.ID, models.ExpenseFilters{
		Category:  models.CategoryFood,
		StartDate: &start,
		Page:      1,
		Limit:     10,
	})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(expenses, 1)
	s.True(expenses[0].Amount.Equal(decimal.NewFromInt(5)))
}

func (s *ExpenseRepositorySuite) TestListScopedToOwner() {
	stranger := database.CreateTestUser(s.T(), s.db, "stranger@example.com")
	database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(5), models.CategoryFood, time.Now())

	expenses, total, err := s.repo.List(stranger.ID, models.ExpenseFilters{Page: 1, Limit: 10})
	s.NoError(err)
	s.Equal(int64(0), total)
	s.Empty(expenses)
}

func (s *ExpenseRepositorySuite) TestGetByIDForUser() {
	expense := database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(5), models.CategoryFood, time.Now())
	stranger := database.CreateTestUser(s.T(), s.db, "other@example.com")

	found, err := s.repo.GetByIDForUser(expense.ID, s.user.ID)
	s.NoError(err)
	s.Equal(expense.ID, found.ID)

	_, err = s.repo.GetByIDForUser(expense.ID, stranger.ID)
	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestUpdateFields() {
	expense := database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(5), models.CategoryFood, time.Now())

	updated, err := s.repo.UpdateFields(expense.ID, s.user.ID, map[string]interface{}{
		"description": "groceries",
		"amount":      decimal.NewFromInt(42),
	})
	s.NoError(err)
	s.Equal("groceries", updated.Description)
	s.True(updated.Amount.Equal(decimal.NewFromInt(42)))
}

func (s *ExpenseRepositorySuite) TestDeleteTwiceReturnsNotFound() {
	expense := database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(5), models.CategoryFood, time.Now())

	s.NoError(s.repo.Delete(expense.ID, s.user.ID))
	s.ErrorIs(s.repo.Delete(expense.ID, s.user.ID), ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestCategoryTotals() {
	now := time.Now()
	database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(30), models.CategoryFood, now)
	database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(20), models.CategoryFood, now)
	database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(40), models.CategoryTransport, now)

	summaries, err := s.repo.CategoryTotals(s.user.ID, nil, nil)
	s.NoError(err)
	s.Require().Len(summaries, 2)

	// Food total 50 sorts before transport total 40
	s.Equal(models.CategoryFood, summaries[0].Category)
	s.True(summaries[0].Total.Equal(decimal.NewFromInt(50)))
	s.Equal(int64(2), summaries[0].Count)
	s.Equal(models.CategoryTransport, summaries[1].Category)
	s.Equal(int64(1), summaries[1].Count)
}

func (s *ExpenseRepositorySuite) TestCategoryTotalsEmpty() {
	summaries, err := s.repo.CategoryTotals(uuid.New(), nil, nil)
	s.NoError(err)
	s.NotNil(summaries)
	s.Empty(summaries)
}

func (s *ExpenseRepositorySuite) TestTotalSpent() {
	now := time.Now()
	database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromInt(30), models.CategoryFood, now)
	database.CreateTestExpense(s.T(), s.db, s.user, s.account, decimal.NewFromFloat(12.50), models.CategoryShopping, now)

	total, err := s.repo.TotalSpent(s.user.ID, nil, nil)
	s.NoError(err)
	s.True(total.Equal(decimal.NewFromFloat(42.50)))
}

func (s *ExpenseRepositorySuite) TestTotalSpentNoExpensesIsZero() {
	total, err := s.repo.TotalSpent(uuid.New(), nil, nil)
	s.NoError(err)
	s.True(total.IsZero())
}
