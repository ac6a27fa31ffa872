package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionTokenService signs and verifies the opaque token a client holds for its session.
// The token only references a server-side session; it never carries the username.
type SessionTokenService interface {
	// Issue returns a signed token referencing sessionID that expires at expiresAt.
	Issue(sessionID uuid.UUID, expiresAt time.Time) (string, error)

	// Parse verifies the token's signature and expiry and returns the session ID it references.
	Parse(token string) (uuid.UUID, error)
}
