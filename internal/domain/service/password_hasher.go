// Package service declares the domain ports implemented in infra: credential
// hashing and signing, the OAuth provider and the music catalog.
package service

// PasswordHasher hashes local account passwords.
type PasswordHasher interface {
	// Hash rejects passwords that fail the configured strength policy.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
