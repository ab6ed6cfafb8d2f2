package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"finnote/internal/config"
	"finnote/internal/dto"
	"finnote/internal/models"
	"finnote/internal/repositories"
	"finnote/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

type AuthServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	userRepo        *repository_mocks.MockUserRepositoryInterface
	passwordService PasswordServiceInterface
	service         AuthServiceInterface
}

func (s *AuthServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.passwordService = NewPasswordService(bcryptCostForTests, DefaultMinPasswordLength)

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	tokenService := NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "finnote-api",
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewAuthService(s.userRepo, s.passwordService, tokenService, logger)
}

func (s *AuthServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthServiceSuite) TestRegister() {
	req := &dto.RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "password123",
	}

	s.userRepo.EXPECT().
		GetByEmail("alice@example.com").
		Return(nil, repositories.ErrUserNotFound).
		Times(1)

	s.userRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			s.Equal("Alice", user.Name)
			s.Equal("alice@example.com", user.Email)
			s.NotEqual("password123", user.PasswordHash)
			s.True(s.passwordService.ComparePassword("password123", user.PasswordHash))
			user.ID = uuid.New()
			return nil
		}).
		Times(1)

	resp, err := s.service.Register(req)
	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal("alice@example.com", resp.User.Email)
	s.WithinDuration(time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)
}

func (s *AuthServiceSuite) TestRegisterDuplicateEmail() {
	existing := &models.User{ID: uuid.New(), Email: "taken@example.com"}

	s.userRepo.EXPECT().
		GetByEmail("taken@example.com").
		Return(existing, nil).
		Times(1)

	_, err := s.service.Register(&dto.RegisterRequest{
		Name:     "Bob",
		Email:    "taken@example.com",
		Password: "password123",
	})
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *AuthServiceSuite) TestRegisterRaceLostToConcurrentInsert() {
	s.userRepo.EXPECT().
		GetByEmail("race@example.com").
		Return(nil, repositories.ErrUserNotFound).
		Times(1)

	s.userRepo.EXPECT().
		Create(gomock.Any()).
		Return(repositories.ErrUserAlreadyExists).
		Times(1)

	_, err := s.service.Register(&dto.RegisterRequest{
		Name:     "Racer",
		Email:    "race@example.com",
		Password: "password123",
	})
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *AuthServiceSuite) TestLogin() {
	hash, err := s.passwordService.HashPassword("password123")
	s.Require().NoError(err)

	user := &models.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}

	s.userRepo.EXPECT().
		GetByEmail("alice@example.com").
		Return(user, nil).
		Times(1)

	resp, err := s.service.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(user.ID.String(), resp.User.ID)
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	hash, err := s.passwordService.HashPassword("password123")
	s.Require().NoError(err)

	user := &models.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: hash}

	s.userRepo.EXPECT().
		GetByEmail("alice@example.com").
		Return(user, nil).
		Times(1)

	_, err = s.service.Login(&dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrongpassword",
	})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestLoginUnknownEmailSameError() {
	s.userRepo.EXPECT().
		GetByEmail("nobody@example.com").
		Return(nil, repositories.ErrUserNotFound).
		Times(1)

	_, err := s.service.Login(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	// Unknown email is indistinguishable from a wrong password
	s.ErrorIs(err, ErrInvalidCredentials)
}
