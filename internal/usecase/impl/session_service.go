package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"musiclib/config"
	"musiclib/internal/domain/entity"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/repository"
	"musiclib/internal/domain/service"
	"musiclib/internal/usecase"
	"musiclib/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSessionCodeTTL = 5 * time.Minute

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokenService service.TokenService
	codeRepo     repository.SessionCodeRepository
	codeTTL      time.Duration
	newCode      func() string
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TokenService    service.TokenService
	SessionCodeRepo repository.SessionCodeRepository
	Config          *config.Config
	Logger          *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	codeTTL := defaultSessionCodeTTL
	if params.Config != nil && params.Config.SessionCode != nil && params.Config.SessionCode.TTL > 0 {
		codeTTL = params.Config.SessionCode.TTL
	}

	return &sessionService{
		tokenService: params.TokenService,
		codeRepo:     params.SessionCodeRepo,
		codeTTL:      codeTTL,
		newCode:      uuid.NewString,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Issue mints a bearer credential for the user.
func (srv *sessionService) Issue(ctx context.Context, user *entity.User) (string, error) {
	if user == nil || user.ID == uuid.Nil {
		return "", domainerrors.ErrMissingInput.WrapMessage("user is required")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to generate access token")
	}

	return token, nil
}

// StashForPickup stores the credential and user data under a fresh random code.
func (srv *sessionService) StashForPickup(ctx context.Context, token string, userData json.RawMessage) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", domainerrors.ErrMissingInput.WrapMessage("token is required")
	}
	if isEmptyJSON(userData) {
		return "", domainerrors.ErrMissingInput.WrapMessage("user data is required")
	}

	payload, err := json.Marshal(&entity.SessionPickup{Token: token, UserData: userData})
	if err != nil {
		return "", domainerrors.ErrMissingInput.WrapMessage("user data must be valid JSON")
	}

	code := srv.newCode()
	if err := srv.codeRepo.Put(ctx, code, payload, srv.codeTTL); err != nil {
		return "", errors.Wrap(err, "failed to store session code")
	}
	srv.log(ctx).Debug("Session code stored", slog.String("code", util.MaskSecret(code)), slog.Duration("ttl", srv.codeTTL))

	return code, nil
}

// Pickup consumes the code and returns what was stashed behind it.
func (srv *sessionService) Pickup(ctx context.Context, code string) (*entity.SessionPickup, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domainerrors.ErrMissingInput.WrapMessage("code is required")
	}

	payload, err := srv.codeRepo.Take(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrSessionCodeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "session code unknown, expired or used")
		}

		return nil, errors.Wrap(err, "failed to take session code")
	}

	var pickup entity.SessionPickup
	if err := json.Unmarshal(payload, &pickup); err != nil {
		return nil, errors.Wrap(err, "failed to decode session payload")
	}
	srv.log(ctx).Debug("Session code consumed", slog.String("code", util.MaskSecret(code)))

	return &pickup, nil
}

func isEmptyJSON(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) == 0 {
		return true
	}

	// null, {} and [] carry no user data.
	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return false
	}
	switch v := decoded.(type) {
	case nil:
		return true
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}

	return false
}
