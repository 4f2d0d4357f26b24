package middleware

import (
	"context"
	"net/http"

	"medtrack/internal/auth"
	"medtrack/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// SessionKey is the context key for storing the resolved login session.
const SessionKey contextKey = "session"

// GetSession extracts the login session from the context.
// Returns nil if the request carries no valid session.
func GetSession(ctx context.Context) *models.Session {
	session, _ := ctx.Value(SessionKey).(*models.Session)
	return session
}

// RequireSession returns a middleware that gates handlers behind a valid
// login session. It reads the session cookie, resolves it through the
// manager, and adds the session to the request context. Requests without a
// live session are handed to unauthorized instead of the wrapped handler.
func RequireSession(sessions *auth.SessionManager, cookieName string, unauthorized http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				unauthorized.ServeHTTP(w, r)
				return
			}

			session, err := sessions.Resolve(r.Context(), cookie.Value)
			if err != nil {
				unauthorized.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
