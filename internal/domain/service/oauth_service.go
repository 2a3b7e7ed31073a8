package service

import (
	"context"

	"musiclib/internal/domain/entity"
)

// ExternalProfile is the identity an OAuth provider reports for an access token.
// Optional fields are empty strings when the provider did not share them.
type ExternalProfile struct {
	Provider   entity.ProviderType
	ExternalID string // Provider subject id.
	Login      string // Provider login name.
	Email      string
	FirstName  string
	LastName   string
	AvatarURL  string
}

// OAuthExchanger talks to an external authorization server. It does not
// persist anything and never retries: a failed call is terminal for the request.
type OAuthExchanger interface {
	// AuthorizationURL builds the consent page URL. An empty redirectURI uses the configured one.
	AuthorizationURL(state, redirectURI string) string

	// ExchangeCode trades an authorization code for tokens.
	ExchangeCode(ctx context.Context, code, redirectURI string) (*entity.TokenSet, error)

	// FetchProfile returns the identity behind an access token.
	FetchProfile(ctx context.Context, accessToken string) (*ExternalProfile, error)

	// Refresh obtains a new token set with the refresh-token grant.
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenSet, error)

	// Provider returns the provider this exchanger talks to.
	Provider() entity.ProviderType
}
