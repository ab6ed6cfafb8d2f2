package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finnote/internal/dto"
	"finnote/internal/models"
	"finnote/internal/repositories"
	"finnote/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

type AccountHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	accountService *service_mocks.MockAccountServiceInterface
	handler        *AccountHandler
	e              *echo.Echo
	userID         uuid.UUID
}

func (s *AccountHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountService = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.handler = NewAccountHandler(s.accountService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *AccountHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AccountHandlerSuite) newContext(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var reader *bytes.Buffer
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return rec, c
}

func (s *AccountHandlerSuite) TestList() {
	s.Run("returns the user's accounts", func() {
		accounts := []models.Account{
			{ID: uuid.New(), UserID: s.userID, Name: "Checking", AccountType: models.AccountTypeChecking, Balance: decimal.NewFromInt(100)},
			{ID: uuid.New(), UserID: s.userID, Name: "Savings", AccountType: models.AccountTypeSavings, Balance: decimal.NewFromInt(5000)},
		}

		s.accountService.EXPECT().
			ListAccounts(s.userID).
			Return(accounts, nil).
			Times(1)

		rec, c := s.newContext(http.MethodGet, "/accounts", nil)

		s.NoError(s.handler.List(c))
		s.Equal(http.StatusOK, rec.Code)

		var response []models.Account
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Len(response, 2)
	})

	s.Run("missing auth context", func() {
		req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		s.NoError(s.handler.List(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AccountHandlerSuite) TestCreate() {
	s.Run("creates an account", func() {
		created := &models.Account{
			ID:          uuid.New(),
			UserID:      s.userID,
			Name:        "Wallet",
			AccountType: models.AccountTypeCash,
			Balance:     decimal.Zero,
			Currency:    models.DefaultCurrency,
		}

		s.accountService.EXPECT().
			CreateAccount(s.userID, gomock.Any()).
			DoAndReturn(func(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error) {
				s.Equal("Wallet", req.Name)
				s.Equal(models.AccountTypeCash, req.Type)
				return created, nil
			}).
			Times(1)

		rec, c := s.newContext(http.MethodPost, "/accounts", map[string]interface{}{
			"name": "Wallet",
			"type": "cash",
		})

		s.NoError(s.handler.Create(c))
		s.Equal(http.StatusCreated, rec.Code)

		var response models.Account
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("Wallet", response.Name)
	})

	s.Run("invalid type fails validation", func() {
		rec, c := s.newContext(http.MethodPost, "/accounts", map[string]interface{}{
			"name": "Weird",
			"type": "crypto",
		})
		_ = rec

		s.Error(s.handler.Create(c))
	})

	s.Run("missing name fails validation", func() {
		rec, c := s.newContext(http.MethodPost, "/accounts", map[string]interface{}{
			"type": "checking",
		})
		_ = rec

		s.Error(s.handler.Create(c))
	})
}

func (s *AccountHandlerSuite) TestUpdate() {
	s.Run("applies a patch", func() {
		accountID := uuid.New()
		updated := &models.Account{
			ID:          accountID,
			UserID:      s.userID,
			Name:        "Renamed",
			AccountType: models.AccountTypeChecking,
		}

		s.accountService.EXPECT().
			UpdateAccount(s.userID, accountID, gomock.Any()).
			Return(updated, nil).
			Times(1)

		rec, c := s.newContext(http.MethodPut, "/accounts/"+accountID.String(), map[string]interface{}{
			"name": "Renamed",
		})
		c.SetParamNames("id")
		c.SetParamValues(accountID.String())

		s.NoError(s.handler.Update(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("not found", func() {
		accountID := uuid.New()

		s.accountService.EXPECT().
			UpdateAccount(s.userID, accountID, gomock.Any()).
			Return(nil, repositories.ErrAccountNotFound).
			Times(1)

		rec, c := s.newContext(http.MethodPut, "/accounts/"+accountID.String(), map[string]interface{}{
			"name": "Ghost",
		})
		c.SetParamNames("id")
		c.SetParamValues(accountID.String())

		s.NoError(s.handler.Update(c))
		s.Equal(http.StatusNotFound, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("ACCOUNT_001", errorResp.Error.Code)
	})

	s.Run("malformed id", func() {
		rec, c := s.newContext(http.MethodPut, "/accounts/not-a-uuid", map[string]interface{}{
			"name": "Whatever",
		})
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		s.NoError(s.handler.Update(c))
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *AccountHandlerSuite) TestDelete() {
	s.Run("deletes an account", func() {
		accountID := uuid.New()

		s.accountService.EXPECT().
			DeleteAccount(s.userID, accountID).
			Return(nil).
			Times(1)

		rec, c := s.newContext(http.MethodDelete, "/accounts/"+accountID.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(accountID.String())

		s.NoError(s.handler.Delete(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.MessageResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("Account deleted", response.Message)
	})

	s.Run("not found", func() {
		accountID := uuid.New()

		s.accountService.EXPECT().
			DeleteAccount(s.userID, accountID).
			Return(repositories.ErrAccountNotFound).
			Times(1)

		rec, c := s.newContext(http.MethodDelete, "/accounts/"+accountID.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(accountID.String())

		s.NoError(s.handler.Delete(c))
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
