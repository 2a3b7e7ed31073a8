package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/service"
	"musiclib/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// oauthService implements the OAuthUsecase interface.
type oauthService struct {
	exchanger   service.OAuthExchanger
	accountLink usecase.AccountLinkUsecase
	sessions    usecase.SessionUsecase
	logger      *slog.Logger
}

// OAuthServiceParams holds dependencies for OAuthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	Exchanger   service.OAuthExchanger
	AccountLink usecase.AccountLinkUsecase
	Sessions    usecase.SessionUsecase
	Logger      *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	return &oauthService{
		exchanger:   params.Exchanger,
		accountLink: params.AccountLink,
		sessions:    params.Sessions,
		logger:      params.Logger,
	}
}

func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// AuthorizationURL returns the provider consent page URL.
func (srv *oauthService) AuthorizationURL(state, redirectURI string) string {
	return srv.exchanger.AuthorizationURL(state, redirectURI)
}

// YandexLogin runs code exchange, profile fetch, account link and credential issue in order.
// Any failure stops the flow and nothing after it runs.
func (srv *oauthService) YandexLogin(ctx context.Context, input *usecase.YandexLoginInput) (*usecase.AuthOutput, error) {
	if input == nil || strings.TrimSpace(input.Code) == "" {
		return nil, domainerrors.ErrMissingInput.WrapMessage("authorization code is required")
	}

	tokens, err := srv.exchanger.ExchangeCode(ctx, input.Code, input.RedirectURI)
	if err != nil {
		srv.log(ctx).Warn("Yandex code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	profile, err := srv.exchanger.FetchProfile(ctx, tokens.AccessToken)
	if err != nil {
		srv.log(ctx).Warn("Yandex profile fetch failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch Yandex profile")
	}

	user, err := srv.accountLink.LinkAndUpsert(ctx, profile, tokens)
	if err != nil {
		srv.log(ctx).Error("Failed to link Yandex account", slog.String("externalID", profile.ExternalID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to link Yandex account")
	}

	token, err := srv.sessions.Issue(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Yandex login succeeded", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}
