package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"medtrack/internal/models"
)

var (
	ErrUserNotFound     = errors.New("username not found")
	ErrBadPassword      = errors.New("incorrect password")
	ErrUsernameExists   = errors.New("username already registered")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptyPassword    = errors.New("password is required")
)

// CredentialStore defines the interface for admin account persistence.
// This allows the authenticator to be independent of the storage implementation.
type CredentialStore interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage CredentialStore
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage CredentialStore) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
	}
}

// Register creates a new admin account with a hashed password.
// Only the bcrypt hash is persisted; the plaintext never reaches the store.
func (a *PasswordAuthenticator) Register(ctx context.Context, name, email, username, password, confirm string) (*models.Admin, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	// Check if username already exists
	existing, err := a.storage.GetAdminByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Name:         name,
		Email:        email,
		Username:     username,
		PasswordHash: string(hashedPassword),
	}

	// Save to storage
	if err := a.storage.CreateAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

// Authenticate verifies the username and password, returning the admin if valid.
// Unknown usernames and bad passwords fail with distinct errors so the login
// page can flash the right message for each.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := a.storage.GetAdminByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, ErrUserNotFound
	}

	// Compare password hash
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadPassword
	}

	return admin, nil
}
