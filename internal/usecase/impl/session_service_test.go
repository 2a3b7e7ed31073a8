package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"musiclib/config"
	"musiclib/internal/domain/entity"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/repository"
	"musiclib/internal/infra/persistence/memory"
	mockRepo "musiclib/internal/mocks/repository"
	mockSvc "musiclib/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service      *sessionService
	tokenService *mockSvc.MockTokenService
	codeRepo     *mockRepo.MockSessionCodeRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	tokenService := mockSvc.NewMockTokenService(t)
	codeRepo := mockRepo.NewMockSessionCodeRepository(t)

	srv := NewSessionService(SessionServiceParams{
		TokenService:    tokenService,
		SessionCodeRepo: codeRepo,
		Config:          &config.Config{SessionCode: &config.SessionCodeConfig{TTL: 300 * time.Second}},
		Logger:          newDiscardLogger(),
	}).(*sessionService)
	srv.newCode = func() string { return "code-1" }

	return sessionServiceFixtures{
		service:      srv,
		tokenService: tokenService,
		codeRepo:     codeRepo,
	}
}

func TestSessionService_Issue(t *testing.T) {
	fx := createTestSessionService(t)
	user := &entity.User{ID: uuid.New()}

	fx.tokenService.EXPECT().GenerateAccessToken(user.ID).Return("jwt", nil)

	token, err := fx.service.Issue(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, "jwt", token)
}

func TestSessionService_Issue_SignFailure(t *testing.T) {
	fx := createTestSessionService(t)
	user := &entity.User{ID: uuid.New()}

	fx.tokenService.EXPECT().GenerateAccessToken(user.ID).Return("", errors.New("no key"))

	_, err := fx.service.Issue(context.Background(), user)

	assert.Error(t, err)
}

func TestSessionService_StashForPickup(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.codeRepo.EXPECT().
		Put(ctx, "code-1", mock.MatchedBy(func(payload []byte) bool {
			var pickup entity.SessionPickup
			if err := json.Unmarshal(payload, &pickup); err != nil {
				return false
			}

			return pickup.Token == "J" && string(pickup.UserData) == `{"id":7}`
		}), 300*time.Second).
		Return(nil)

	code, err := fx.service.StashForPickup(ctx, "J", json.RawMessage(`{"id":7}`))

	require.NoError(t, err)
	assert.Equal(t, "code-1", code)
}

func TestSessionService_StashForPickup_MissingInput(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	_, err := fx.service.StashForPickup(ctx, "", json.RawMessage(`{"id":7}`))
	assert.True(t, errors.Is(err, domainerrors.ErrMissingInput))

	_, err = fx.service.StashForPickup(ctx, "J", nil)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingInput))

	for _, empty := range []string{"null", "{}", " { } ", "[]"} {
		_, err = fx.service.StashForPickup(ctx, "J", json.RawMessage(empty))
		assert.True(t, errors.Is(err, domainerrors.ErrMissingInput), empty)
	}
}

func TestSessionService_Pickup_NotFound(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.codeRepo.EXPECT().Take(ctx, "gone").Return(nil, repository.ErrSessionCodeNotFound)

	_, err := fx.service.Pickup(ctx, "gone")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestSessionService_StashThenPickupIsSingleUse(t *testing.T) {
	ctx := context.Background()
	srv := NewSessionService(SessionServiceParams{
		TokenService:    mockSvc.NewMockTokenService(t),
		SessionCodeRepo: memory.NewSessionCodeRepository(),
		Config:          &config.Config{},
		Logger:          newDiscardLogger(),
	})

	code, err := srv.StashForPickup(ctx, "J", json.RawMessage(`{"id":7}`))
	require.NoError(t, err)
	_, parseErr := uuid.Parse(code)
	assert.NoError(t, parseErr)

	pickup, err := srv.Pickup(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, "J", pickup.Token)
	assert.JSONEq(t, `{"id":7}`, string(pickup.UserData))

	_, err = srv.Pickup(ctx, code)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}
