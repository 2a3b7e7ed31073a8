package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderEmail identifies email/password credentials.
const ProviderEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, currently only "email".
	ProviderUserID string    // The login identifier within the provider, the email address for "email".
	PasswordHash   string    // Stores the bcrypt-hashed password.
	CreatedAt      time.Time // Timestamp of when this authentication method was added.
}
