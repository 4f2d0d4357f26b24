package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"medtrack/internal/models"
)

// CreateAdmin inserts a new admin account into the database.
// The UNIQUE constraint on username is the backstop against duplicate
// registrations; callers should check first for a friendlier error.
func (s *SQLiteStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	if admin.CreatedAt == 0 {
		admin.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO admins (id, name, email, username, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		admin.ID,
		admin.Name,
		admin.Email,
		admin.Username,
		admin.PasswordHash,
		admin.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// GetAdminByUsername retrieves an admin account by its login name.
func (s *SQLiteStore) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `
		SELECT id, name, email, username, password_hash, created_at
		FROM admins
		WHERE username = ?
	`

	admin := &models.Admin{}
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // Account not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}

	return admin, nil
}
