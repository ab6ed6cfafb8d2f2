package middleware

import (
	"finnote/internal/errors"
	"finnote/internal/handlers"
	"finnote/internal/repositories"
	"finnote/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid JWT token and
// resolves the token's subject to a stored user. Tokens for users that
// have since been removed are rejected.
func RequireAuth(tokenService services.TokenServiceInterface, userRepo repositories.UserRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			user, err := userRepo.GetByID(userID)
			if err != nil {
				if err == repositories.ErrUserNotFound {
					return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Token user no longer exists"))
				}
				return handlers.SendSystemError(c, err)
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)
			c.Set("token_jti", claims.ID)
			c.Set("user", user)

			return next(c)
		}
	}
}
