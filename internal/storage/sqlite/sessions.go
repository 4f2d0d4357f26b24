package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"medtrack/internal/models"
)

// CreateSession inserts a new login session into the database.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, username, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		session.ID,
		session.Username,
		session.CreatedAt,
		session.ExpiresAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by its ID.
func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*models.Session, error) {
	query := `
		SELECT id, username, created_at, expires_at
		FROM sessions
		WHERE id = ?
	`

	session := &models.Session{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.Username,
		&session.CreatedAt,
		&session.ExpiresAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // Session not found (revoked or never issued)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// DeleteSession removes a session, revoking the login it represents.
func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
