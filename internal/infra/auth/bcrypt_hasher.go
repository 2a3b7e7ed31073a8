// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"musiclib/config"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	defaultMaxPasswordLength = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	strength := config.PasswordStrengthConfig{
		MinLength: defaultMinPasswordLength,
		MaxLength: defaultMaxPasswordLength,
	}
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
		if strength.MinLength <= 0 {
			strength.MinLength = defaultMinPasswordLength
		}
		if strength.MaxLength <= 0 || strength.MaxLength > defaultMaxPasswordLength {
			strength.MaxLength = defaultMaxPasswordLength
		}
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash checks the password against the strength policy and hashes it with bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.validateStrength(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(hashed), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) validateStrength(password string) error {
	var problems []string

	length := utf8.RuneCountInString(password)
	if length < h.strength.MinLength {
		problems = append(problems, fmt.Sprintf("at least %d characters", h.strength.MinLength))
	}
	if len(password) > h.strength.MaxLength {
		problems = append(problems, fmt.Sprintf("at most %d bytes", h.strength.MaxLength))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if h.strength.RequireUppercase && !hasUpper {
		problems = append(problems, "an uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		problems = append(problems, "a lowercase letter")
	}
	if h.strength.RequireNumbers && !hasDigit {
		problems = append(problems, "a digit")
	}

	if len(problems) > 0 {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password needs "+strings.Join(problems, ", "))
	}

	return nil
}
