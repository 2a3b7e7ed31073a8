// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a local account. It is either registered with email/password or
// created on the first successful Yandex login.
type User struct {
	ID        uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Username  string       // Unique login name; "yandex_<id>" for accounts created through Yandex.
	Email     string       // Contact email, may be empty when the provider did not share one.
	FirstName string       // Given name, filled from the provider profile on creation only.
	LastName  string       // Family name, filled from the provider profile on creation only.
	Profile   *UserProfile // Optional profile, nil when not loaded.
	CreatedAt time.Time    // Timestamp of when this user account was created.
	UpdatedAt time.Time    // Timestamp of the last modification to this user's data.
}

// UserProfile holds presentation data for a user.
type UserProfile struct {
	UserID    uuid.UUID // Foreign Key that links this profile to a core User entity.
	AvatarURL string    // Absolute avatar URL, empty when none is known.
	UpdatedAt time.Time // Timestamp of the last modification to this profile.
}

// AvatarURL returns the avatar of the loaded profile or an empty string.
func (u *User) AvatarURL() string {
	if u == nil || u.Profile == nil {
		return ""
	}

	return u.Profile.AvatarURL
}

// UserSummary is the public view of a user returned alongside a bearer credential.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	AvatarURL *string   `json:"avatarUrl"`
}

// Summary builds the public view of the user.
func (u *User) Summary() UserSummary {
	summary := UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	if avatar := u.AvatarURL(); avatar != "" {
		summary.AvatarURL = &avatar
	}

	return summary
}
