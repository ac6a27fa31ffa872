package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login session. The client only ever holds a signed reference to ID.
type Session struct {
	ID        uuid.UUID // Random identifier, embedded as the token's jti claim.
	Username  string    // The logged-in user's username.
	ExpiresAt time.Time // After this instant the session no longer resolves.
	CreatedAt time.Time // When the user logged in.
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
