package repository

import (
	"context"
	"errors"
	"time"

	"gatehouse/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no session row matches.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when the session row exists but is past its expiry.
	ErrSessionExpired = errors.New("session expired")
)

// SessionRepository defines the operations on server-side login sessions.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a live session by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// DeleteByID removes a session. Deleting a missing session is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes every session that expired at or before the given instant
	// and returns how many rows were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
