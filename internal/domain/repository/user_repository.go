// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"musiclib/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user with its profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user with its profile.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves the first user registered with the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and, when set, its profile.
	Create(ctx context.Context, user *entity.User) error
}
