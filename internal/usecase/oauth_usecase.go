package usecase

import (
	"context"
)

// YandexLoginInput is the authorization code returned by the Yandex consent page.
type YandexLoginInput struct {
	Code        string
	RedirectURI string
}

// OAuthUsecase drives the provider login flow from authorization code to local credential.
type OAuthUsecase interface {
	// AuthorizationURL returns the provider consent page URL.
	AuthorizationURL(state, redirectURI string) string

	// YandexLogin exchanges the code, links the account and issues a bearer credential.
	YandexLogin(ctx context.Context, input *YandexLoginInput) (*AuthOutput, error)
}
