package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"musiclib/internal/domain/entity"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/service"
	mockSvc "musiclib/internal/mocks/service"
	mockUsecase "musiclib/internal/mocks/usecase"
	"musiclib/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// oauthServiceFixtures holds all test dependencies for OAuth service tests.
type oauthServiceFixtures struct {
	service     usecase.OAuthUsecase
	exchanger   *mockSvc.MockOAuthExchanger
	accountLink *mockUsecase.MockAccountLinkUsecase
	sessions    *mockUsecase.MockSessionUsecase
}

func createTestOAuthService(t *testing.T) oauthServiceFixtures {
	exchanger := mockSvc.NewMockOAuthExchanger(t)
	accountLink := mockUsecase.NewMockAccountLinkUsecase(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)

	srv := NewOAuthService(OAuthServiceParams{
		Exchanger:   exchanger,
		AccountLink: accountLink,
		Sessions:    sessions,
		Logger:      newDiscardLogger(),
	})

	return oauthServiceFixtures{
		service:     srv,
		exchanger:   exchanger,
		accountLink: accountLink,
		sessions:    sessions,
	}
}

func TestOAuthService_YandexLogin_Success(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	tokens := &entity.TokenSet{AccessToken: "T1", RefreshToken: "R1", ExpiresIn: time.Hour}
	profile := &service.ExternalProfile{Provider: entity.ProviderYandex, ExternalID: "99"}
	user := &entity.User{ID: uuid.New(), Username: "yandex_99"}

	fx.exchanger.EXPECT().ExchangeCode(ctx, "abc", "https://app/cb").Return(tokens, nil)
	fx.exchanger.EXPECT().FetchProfile(ctx, "T1").Return(profile, nil)
	fx.accountLink.EXPECT().LinkAndUpsert(ctx, profile, tokens).Return(user, nil)
	fx.sessions.EXPECT().Issue(ctx, user).Return("jwt", nil)

	out, err := fx.service.YandexLogin(ctx, &usecase.YandexLoginInput{Code: "abc", RedirectURI: "https://app/cb"})

	require.NoError(t, err)
	assert.Equal(t, "jwt", out.Token)
	assert.Same(t, user, out.User)
}

func TestOAuthService_YandexLogin_MissingCode(t *testing.T) {
	fx := createTestOAuthService(t)

	_, err := fx.service.YandexLogin(context.Background(), &usecase.YandexLoginInput{Code: "  "})

	assert.True(t, errors.Is(err, domainerrors.ErrMissingInput))
	fx.exchanger.AssertNotCalled(t, "ExchangeCode", mock.Anything, mock.Anything, mock.Anything)
}

func TestOAuthService_YandexLogin_ExchangeRejectedStopsFlow(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	fx.exchanger.EXPECT().
		ExchangeCode(ctx, "bad", "").
		Return(nil, domainerrors.NewUpstreamRejectedError(http.StatusBadRequest, `{"error":"bad_verification_code"}`))

	_, err := fx.service.YandexLogin(ctx, &usecase.YandexLoginInput{Code: "bad"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamRejected))
	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	fx.exchanger.AssertNotCalled(t, "FetchProfile", mock.Anything, mock.Anything)
	fx.accountLink.AssertNotCalled(t, "LinkAndUpsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestOAuthService_YandexLogin_ProfileRejectedStopsFlow(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	fx.exchanger.EXPECT().ExchangeCode(ctx, "abc", "").Return(&entity.TokenSet{AccessToken: "T1"}, nil)
	fx.exchanger.EXPECT().FetchProfile(ctx, "T1").Return(nil, domainerrors.NewUpstreamRejectedError(http.StatusUnauthorized, "expired"))

	_, err := fx.service.YandexLogin(ctx, &usecase.YandexLoginInput{Code: "abc"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamRejected))
	fx.accountLink.AssertNotCalled(t, "LinkAndUpsert", mock.Anything, mock.Anything, mock.Anything)
	fx.sessions.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestOAuthService_AuthorizationURL(t *testing.T) {
	fx := createTestOAuthService(t)

	fx.exchanger.EXPECT().AuthorizationURL("s1", "").Return("https://oauth.yandex.ru/authorize?state=s1")

	assert.Equal(t, "https://oauth.yandex.ru/authorize?state=s1", fx.service.AuthorizationURL("s1", ""))
}
