package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess marks bearer credentials issued to clients.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies local bearer credentials.
type TokenService interface {
	// GenerateAccessToken signs a time-bounded credential carrying the user id.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured credential lifetime.
	AccessTokenTTL() time.Duration
}
