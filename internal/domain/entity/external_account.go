package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProviderType names an external music provider an account can be linked to.
type ProviderType string

const (
	ProviderYandex ProviderType = "yandex"
)

// String implements fmt.Stringer.
func (p ProviderType) String() string {
	return string(p)
}

var linkedProviders = []ProviderType{ProviderYandex}

// IsReservedUsername reports whether username falls in the "<provider>_"
// namespace used for accounts created through an external login.
func IsReservedUsername(username string) bool {
	name := strings.ToLower(strings.TrimSpace(username))
	for _, provider := range linkedProviders {
		if strings.HasPrefix(name, provider.String()+"_") {
			return true
		}
	}

	return false
}

// ExternalAccountLink is the stored mapping between a local user and their
// identity and tokens on an external provider. A user has at most one link and
// an external id belongs to at most one user.
type ExternalAccountLink struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Provider     ProviderType
	ExternalID   string     // Subject id on the provider side.
	AccessToken  string     // Opaque provider access token.
	RefreshToken string     // Empty when the provider never issued one.
	ExpiresAt    *time.Time // Nil when the provider did not report a lifetime.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsExpired reports whether the access token must be refreshed before use.
// An unknown expiry counts as expired.
func (l *ExternalAccountLink) IsExpired(now time.Time) bool {
	if l.ExpiresAt == nil {
		return true
	}

	return !now.Before(*l.ExpiresAt)
}

// CanRefresh reports whether a refresh token is available.
func (l *ExternalAccountLink) CanRefresh() bool {
	return l.RefreshToken != ""
}

// ApplyTokens replaces the token fields with a fresh token set issued at now.
// A token set without a refresh token keeps the stored one.
func (l *ExternalAccountLink) ApplyTokens(tokens *TokenSet, now time.Time) {
	l.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		l.RefreshToken = tokens.RefreshToken
	}
	l.ExpiresAt = tokens.ExpiresAt(now)
}

// TokenSet is the result of an authorization code exchange or a refresh.
type TokenSet struct {
	AccessToken  string
	RefreshToken string        // Empty when the provider omitted it.
	ExpiresIn    time.Duration // Zero when the provider omitted expires_in.
}

// ExpiresAt converts the relative lifetime into an absolute timestamp.
func (t *TokenSet) ExpiresAt(now time.Time) *time.Time {
	if t.ExpiresIn <= 0 {
		return nil
	}

	expiresAt := now.Add(t.ExpiresIn)

	return &expiresAt
}
