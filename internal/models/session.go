package models

// Session is the server-side record of a logged-in browser session. The
// browser holds only a signed token referencing the session ID, so deleting
// the record revokes the login regardless of what the client retained.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// Username is the login name of the authenticated admin.
	Username string

	// CreatedAt is the Unix timestamp when the session was issued.
	CreatedAt int64

	// ExpiresAt is the Unix timestamp after which the session is invalid.
	ExpiresAt int64
}

// Expired reports whether the session is past its expiry at the given Unix
// timestamp.
func (s *Session) Expired(now int64) bool {
	return now >= s.ExpiresAt
}
