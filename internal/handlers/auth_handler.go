package handlers

import (
	"log/slog"
	"net/http"

	"finnote/internal/dto"
	"finnote/internal/errors"
	"finnote/internal/models"
	"finnote/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration. Duplicate emails are rejected as a
// bad request rather than a conflict, matching the public API contract.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if err == services.ErrUserAlreadyExists {
			return SendError(c, errors.UserAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// Login handles user authentication
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			slog.Warn("failed login attempt",
				"email", req.Email,
				"client_ip", getClientIP(c),
				"trace_id", getTraceID(c))
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c echo.Context) error {
	userValue := c.Get("user")
	user, ok := userValue.(*models.User)
	if !ok || user == nil {
		return SendError(c, errors.AuthMissingToken)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
