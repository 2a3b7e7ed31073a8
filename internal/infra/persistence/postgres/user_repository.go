// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"musiclib/internal/domain/entity"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/repository"
	"musiclib/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUsername retrieves a single user by username, preloading the profile.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

// FindByEmail retrieves the oldest user with the given email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if email == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where(query, args...).
		Order("created_at").
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and, when present, its profile.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil && userM.Profile != nil {
		user.Profile.UserID = userM.Profile.UserID
		user.Profile.UpdatedAt = userM.Profile.UpdatedAt
	}

	return nil
}

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Profile != nil {
		user.Profile = &entity.UserProfile{
			UserID:    m.Profile.UserID,
			AvatarURL: m.Profile.AvatarURL,
			UpdatedAt: m.Profile.UpdatedAt,
		}
	}

	return user
}

func fromUserDomain(user *entity.User) *model.UserModel {
	m := &model.UserModel{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	if user.Profile != nil {
		m.Profile = &model.UserProfileModel{
			UserID:    user.ID,
			AvatarURL: user.Profile.AvatarURL,
		}
	}

	return m
}
