package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"musiclib/internal/domain/entity"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/repository"
	"musiclib/internal/domain/service"
	"musiclib/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountLinkService implements the AccountLinkUsecase interface.
type accountLinkService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	linkRepo  repository.ExternalAccountRepository
	now       func() time.Time
	logger    *slog.Logger
}

// AccountLinkServiceParams holds dependencies for AccountLinkService, injected by Fx.
type AccountLinkServiceParams struct {
	fx.In

	TxManager           repository.TransactionManager
	UserRepo            repository.UserRepository
	ExternalAccountRepo repository.ExternalAccountRepository
	Logger              *slog.Logger
}

// NewAccountLinkService is the constructor for accountLinkService.
func NewAccountLinkService(params AccountLinkServiceParams) usecase.AccountLinkUsecase {
	return &accountLinkService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		linkRepo:  params.ExternalAccountRepo,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *accountLinkService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// LinkOrCreate resolves the local user for an external identity.
func (srv *accountLinkService) LinkOrCreate(ctx context.Context, profile *service.ExternalProfile) (*entity.User, error) {
	return srv.linkOrCreate(ctx, srv.userRepo, srv.linkRepo, profile)
}

// UpsertTokens stores the provider tokens for externalID.
func (srv *accountLinkService) UpsertTokens(
	ctx context.Context,
	userID uuid.UUID,
	externalID string,
	tokens *entity.TokenSet,
) (*entity.ExternalAccountLink, error) {
	return srv.upsertTokens(ctx, srv.linkRepo, entity.ProviderYandex, userID, externalID, tokens)
}

// LinkAndUpsert resolves the user and stores its tokens in one transaction.
func (srv *accountLinkService) LinkAndUpsert(ctx context.Context, profile *service.ExternalProfile, tokens *entity.TokenSet) (*entity.User, error) {
	var linkedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		linkRepo := repoFactory.NewExternalAccountRepository()

		user, err := srv.linkOrCreate(ctx, userRepo, linkRepo, profile)
		if err != nil {
			return err
		}

		if _, err := srv.upsertTokens(ctx, linkRepo, providerOf(profile), user.ID, profile.ExternalID, tokens); err != nil {
			return err
		}
		linkedUser = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute account link transaction")
	}

	return linkedUser, nil
}

func (srv *accountLinkService) linkOrCreate(
	ctx context.Context,
	userRepo repository.UserRepository,
	linkRepo repository.ExternalAccountRepository,
	profile *service.ExternalProfile,
) (*entity.User, error) {
	if profile == nil || strings.TrimSpace(profile.ExternalID) == "" {
		return nil, domainerrors.ErrMissingInput.WrapMessage("external id is required")
	}
	provider := providerOf(profile)

	link, err := linkRepo.FindByExternalID(ctx, provider, profile.ExternalID)
	switch {
	case err == nil:
		user, findErr := userRepo.FindByID(ctx, link.UserID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to load linked user")
		}
		srv.log(ctx).Debug("External account already linked", slog.Any("userID", user.ID))

		return user, nil
	case !errors.Is(err, repository.ErrExternalAccountNotFound):
		return nil, errors.Wrap(err, "failed to find external account link")
	}

	username := linkedUsername(provider, profile.ExternalID)

	existing, err := userRepo.FindByUsername(ctx, username)
	if err == nil {
		srv.log(ctx).Debug("Reusing user for external account", slog.Any("userID", existing.ID))

		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by username")
	}

	newUser := &entity.User{
		Username:  username,
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Profile:   &entity.UserProfile{AvatarURL: profile.AvatarURL},
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for external account")
	}
	srv.log(ctx).Info("Created user for external account",
		slog.Any("userID", newUser.ID),
		slog.String("provider", provider.String()),
	)

	return newUser, nil
}

func (srv *accountLinkService) upsertTokens(
	ctx context.Context,
	linkRepo repository.ExternalAccountRepository,
	provider entity.ProviderType,
	userID uuid.UUID,
	externalID string,
	tokens *entity.TokenSet,
) (*entity.ExternalAccountLink, error) {
	if tokens == nil || tokens.AccessToken == "" {
		return nil, domainerrors.ErrMissingInput.WrapMessage("access token is required")
	}
	if strings.TrimSpace(externalID) == "" {
		return nil, domainerrors.ErrMissingInput.WrapMessage("external id is required")
	}

	link, err := linkRepo.Upsert(ctx, &entity.ExternalAccountLink{
		UserID:       userID,
		Provider:     provider,
		ExternalID:   externalID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt(srv.now()),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert external account tokens")
	}

	srv.log(ctx).Debug("Stored external account tokens",
		slog.Any("userID", userID),
		slog.Bool("hasRefreshToken", link.CanRefresh()),
		slog.Bool("knownExpiry", link.ExpiresAt != nil),
	)

	return link, nil
}

func providerOf(profile *service.ExternalProfile) entity.ProviderType {
	if profile.Provider == "" {
		return entity.ProviderYandex
	}

	return profile.Provider
}

// linkedUsername is the synthesized login of a user created through a provider, e.g. "yandex_42".
func linkedUsername(provider entity.ProviderType, externalID string) string {
	return provider.String() + "_" + externalID
}
