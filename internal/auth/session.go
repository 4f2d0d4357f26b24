package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"medtrack/internal/models"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// SessionStore defines the interface for session persistence.
type SessionStore interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// sessionClaims are the JWT claims carried by the session cookie. The ID
// registered claim references the server-side session row, so a token alone
// proves nothing once the row is deleted.
type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionManager issues and resolves login sessions. Each session is a row in
// the store plus a signed HS256 token handed to the browser as an opaque
// cookie value. Logout deletes the row, which revokes the token regardless of
// what the client retained.
type SessionManager struct {
	store     SessionStore
	secretKey []byte
	ttl       time.Duration
}

// NewSessionManager creates a session manager with the given signing secret
// and session lifetime. secretKey should be a strong random string.
func NewSessionManager(store SessionStore, secretKey string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		store:     store,
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// Issue creates a server-side session for the given username and returns the
// signed token to set as the cookie value.
func (m *SessionManager) Issue(ctx context.Context, username string) (string, error) {
	now := time.Now()
	session := &models.Session{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(m.ttl).Unix(),
	}
	if err := m.store.CreateSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	claims := &sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Resolve validates a cookie token and returns the live session it references.
// Fails with ErrInvalidSession for bad signatures, revoked sessions, and
// expired sessions (expired rows are cleaned up on the way out).
func (m *SessionManager) Resolve(ctx context.Context, tokenString string) (*models.Session, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return nil, err
	}

	session, err := m.store.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil || session.Username != claims.Username {
		return nil, ErrInvalidSession
	}
	if session.Expired(time.Now().Unix()) {
		_ = m.store.DeleteSession(ctx, session.ID)
		return nil, ErrInvalidSession
	}

	return session, nil
}

// Revoke deletes the session referenced by the token. Invalid tokens are
// reported as ErrInvalidSession; there is nothing to revoke for them.
func (m *SessionManager) Revoke(ctx context.Context, tokenString string) error {
	claims, err := m.parse(tokenString)
	if err != nil {
		return err
	}
	if err := m.store.DeleteSession(ctx, claims.ID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (m *SessionManager) parse(tokenString string) (*sessionClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&sessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Verify the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidSession
	}

	return claims, nil
}
