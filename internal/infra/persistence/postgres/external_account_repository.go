package postgres

import (
	"context"
	"time"

	"musiclib/internal/domain/entity"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/repository"
	"musiclib/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// keepStoredRefreshToken leaves the stored refresh token in place when the incoming row carries none.
const keepStoredRefreshToken = "CASE WHEN excluded.refresh_token = '' " +
	"THEN external_account_links.refresh_token ELSE excluded.refresh_token END"

type externalAccountRepository struct {
	db *gorm.DB
}

// NewExternalAccountRepository is the constructor for externalAccountRepository.
func NewExternalAccountRepository(db *gorm.DB) repository.ExternalAccountRepository {
	return &externalAccountRepository{db: db}
}

// FindByUserID returns the link owned by the user.
func (repo *externalAccountRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ExternalAccountLink, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

// FindByExternalID returns the link for a provider subject id.
func (repo *externalAccountRepository) FindByExternalID(ctx context.Context, provider entity.ProviderType, externalID string) (*entity.ExternalAccountLink, error) {
	return repo.findOne(ctx, "provider = ? AND external_id = ?", string(provider), externalID)
}

func (repo *externalAccountRepository) findOne(ctx context.Context, query string, args ...any) (*entity.ExternalAccountLink, error) {
	var linkM model.ExternalAccountLinkModel

	err := repo.db.WithContext(ctx).Where(query, args...).First(&linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExternalAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find external account link")
	}

	return toExternalAccountDomain(&linkM), nil
}

// Upsert inserts the link or updates the existing row for (provider, external_id)
// with one INSERT ... ON CONFLICT statement, then reads the row back.
func (repo *externalAccountRepository) Upsert(ctx context.Context, link *entity.ExternalAccountLink) (*entity.ExternalAccountLink, error) {
	linkM := fromExternalAccountDomain(link)
	linkM.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "provider"}, {Name: "external_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"user_id":       gorm.Expr("excluded.user_id"),
				"access_token":  gorm.Expr("excluded.access_token"),
				"refresh_token": gorm.Expr(keepStoredRefreshToken),
				"expires_at":    gorm.Expr("excluded.expires_at"),
				"updated_at":    gorm.Expr("excluded.updated_at"),
			}),
		}).
		Create(linkM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("user is already linked to another external account")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert external account link")
	}

	return repo.FindByExternalID(ctx, link.Provider, link.ExternalID)
}

// Save replaces the token fields of an existing link.
func (repo *externalAccountRepository) Save(ctx context.Context, link *entity.ExternalAccountLink) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ExternalAccountLinkModel{}).
		Where("provider = ? AND external_id = ?", string(link.Provider), link.ExternalID).
		Updates(map[string]any{
			"access_token":  link.AccessToken,
			"refresh_token": link.RefreshToken,
			"expires_at":    link.ExpiresAt,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save external account link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExternalAccountNotFound
	}

	return nil
}

func toExternalAccountDomain(m *model.ExternalAccountLinkModel) *entity.ExternalAccountLink {
	return &entity.ExternalAccountLink{
		ID:           m.ID,
		UserID:       m.UserID,
		Provider:     entity.ProviderType(m.Provider),
		ExternalID:   m.ExternalID,
		AccessToken:  m.AccessToken,
		RefreshToken: m.RefreshToken,
		ExpiresAt:    m.ExpiresAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromExternalAccountDomain(link *entity.ExternalAccountLink) *model.ExternalAccountLinkModel {
	return &model.ExternalAccountLinkModel{
		ID:           link.ID,
		UserID:       link.UserID,
		Provider:     string(link.Provider),
		ExternalID:   link.ExternalID,
		AccessToken:  link.AccessToken,
		RefreshToken: link.RefreshToken,
		ExpiresAt:    link.ExpiresAt,
	}
}
