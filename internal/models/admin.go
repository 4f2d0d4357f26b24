package models

// Admin represents the administrative account that owns the tracker.
//
// Exactly one role exists in the system; every registered account has the
// same capabilities. Accounts are created at registration and read at login,
// never mutated or deleted.
type Admin struct {
	// ID is the unique identifier for the account (UUID format).
	ID string

	// Name is the display name of the administrator.
	Name string

	// Email is the contact address supplied at registration.
	Email string

	// Username is the login name (unique across accounts).
	Username string

	// PasswordHash is the bcrypt hash of the password.
	// The plaintext password is never persisted.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}
