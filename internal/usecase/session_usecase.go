package usecase

import (
	"context"
	"time"

	"gatehouse/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput carries the signed session token to be set as a cookie.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// SessionUsecase defines the interface for server-side session management.
type SessionUsecase interface {
	// Login authenticates the user and opens a new session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Resolve maps a session token to the username it was issued for.
	Resolve(ctx context.Context, token string) (string, error)

	// Logout ends the session behind token. Unknown or already-ended sessions are not an error.
	Logout(ctx context.Context, token string) error

	// CleanupExpiredSessions purges expired session rows and reports how many were removed.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
