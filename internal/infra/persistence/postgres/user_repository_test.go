package postgres

import (
	"context"
	"testing"

	"musiclib/internal/domain/entity"
	domainerrors "musiclib/internal/domain/errors"
	"musiclib/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &entity.User{
		Username:  "yandex_99",
		Email:     "a@b.com",
		FirstName: "Ann",
		Profile:   &entity.UserProfile{AvatarURL: "https://avatars.example/1"},
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "yandex_99", byID.Username)
	assert.Equal(t, "Ann", byID.FirstName)
	require.NotNil(t, byID.Profile)
	assert.Equal(t, "https://avatars.example/1", byID.Profile.AvatarURL)

	byName, err := repo.FindByUsername(ctx, "yandex_99")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "dup"}))

	err := repo.Create(ctx, &entity.User{Username: "dup"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	user := &entity.User{Username: "listener", Email: "l@example.com"}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	repo := NewAuthRepository(db)
	auth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderEmail,
		ProviderUserID: "l@example.com",
		PasswordHash:   "hash",
	}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))
	assert.NotEqual(t, uuid.Nil, auth.ID)

	found, err := repo.FindAuthentication(ctx, entity.ProviderEmail, "l@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindAuthentication(ctx, entity.ProviderEmail, "other@example.com")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)

	err = repo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderEmail,
		ProviderUserID: "l@example.com",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}
