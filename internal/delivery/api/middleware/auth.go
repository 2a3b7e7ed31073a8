// Package middleware holds echo middleware specific to the API server.
package middleware

import (
	"strings"

	deliverycontext "musiclib/internal/delivery/context"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer credential and stores the user id for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage(err.Error())
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

// GetUserID returns the user id stored by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

// MustUserID returns the authenticated user id or an invalid token error.
func MustUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("user id not found in context")
	}

	return userID, nil
}
