package auth_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"medtrack/internal/auth"
	"medtrack/internal/storage/sqlite"
)

func setupStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "medtrack-auth-test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
		os.Remove(tmpFile.Name())
	})

	return store
}

func TestRegisterAndAuthenticate(t *testing.T) {
	store := setupStore(t)
	authenticator := auth.NewPasswordAuthenticator(store)
	ctx := context.Background()

	admin, err := authenticator.Register(ctx, "Casey", "casey@example.com", "caseyadmin", "s3cret-pass", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if admin.ID == "" {
		t.Error("Expected admin ID to be generated")
	}
	if admin.PasswordHash == "s3cret-pass" || admin.PasswordHash == "" {
		t.Error("Expected password to be stored as a hash")
	}

	t.Run("correct password succeeds", func(t *testing.T) {
		got, err := authenticator.Authenticate(ctx, "caseyadmin", "s3cret-pass")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.Username != "caseyadmin" {
			t.Errorf("Username = %q, want %q", got.Username, "caseyadmin")
		}
	})

	t.Run("wrong password fails with ErrBadPassword", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "caseyadmin", "not-the-password")
		if !errors.Is(err, auth.ErrBadPassword) {
			t.Errorf("Authenticate error = %v, want ErrBadPassword", err)
		}
	})

	t.Run("unknown username fails with ErrUserNotFound", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "nobody", "s3cret-pass")
		if !errors.Is(err, auth.ErrUserNotFound) {
			t.Errorf("Authenticate error = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("duplicate username fails with ErrUsernameExists", func(t *testing.T) {
		_, err := authenticator.Register(ctx, "Other", "other@example.com", "caseyadmin", "whatever", "whatever")
		if !errors.Is(err, auth.ErrUsernameExists) {
			t.Errorf("Register error = %v, want ErrUsernameExists", err)
		}
	})
}

func TestRegisterPasswordChecks(t *testing.T) {
	store := setupStore(t)
	authenticator := auth.NewPasswordAuthenticator(store)
	ctx := context.Background()

	if _, err := authenticator.Register(ctx, "A", "a@example.com", "someadmin", "", ""); !errors.Is(err, auth.ErrEmptyPassword) {
		t.Errorf("Register error = %v, want ErrEmptyPassword", err)
	}
	if _, err := authenticator.Register(ctx, "A", "a@example.com", "someadmin", "one", "two"); !errors.Is(err, auth.ErrPasswordMismatch) {
		t.Errorf("Register error = %v, want ErrPasswordMismatch", err)
	}

	// Neither attempt should have written an account.
	if admin, err := store.GetAdminByUsername(ctx, "someadmin"); err != nil || admin != nil {
		t.Errorf("GetAdminByUsername = (%v, %v), want (nil, nil)", admin, err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := setupStore(t)
	sessions := auth.NewSessionManager(store, "test-signing-secret", time.Hour)
	ctx := context.Background()

	token, err := sessions.Issue(ctx, "caseyadmin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	session, err := sessions.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if session.Username != "caseyadmin" {
		t.Errorf("Username = %q, want %q", session.Username, "caseyadmin")
	}

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := sessions.Resolve(ctx, "not-a-token"); !errors.Is(err, auth.ErrInvalidSession) {
			t.Errorf("Resolve error = %v, want ErrInvalidSession", err)
		}
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := auth.NewSessionManager(store, "different-secret", time.Hour)
		forged, err := other.Issue(ctx, "caseyadmin")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if _, err := sessions.Resolve(ctx, forged); !errors.Is(err, auth.ErrInvalidSession) {
			t.Errorf("Resolve error = %v, want ErrInvalidSession", err)
		}
	})

	t.Run("revoked token no longer resolves", func(t *testing.T) {
		if err := sessions.Revoke(ctx, token); err != nil {
			t.Fatalf("Revoke failed: %v", err)
		}
		if _, err := sessions.Resolve(ctx, token); !errors.Is(err, auth.ErrInvalidSession) {
			t.Errorf("Resolve error = %v, want ErrInvalidSession", err)
		}
	})
}

func TestExpiredSessionIsRejected(t *testing.T) {
	store := setupStore(t)
	// Negative TTL: the session is already expired when issued.
	sessions := auth.NewSessionManager(store, "test-signing-secret", -time.Minute)
	ctx := context.Background()

	token, err := sessions.Issue(ctx, "caseyadmin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := sessions.Resolve(ctx, token); !errors.Is(err, auth.ErrInvalidSession) {
		t.Errorf("Resolve error = %v, want ErrInvalidSession", err)
	}
}
