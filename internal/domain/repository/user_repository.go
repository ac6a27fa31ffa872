// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatehouse/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
// Store failures are reported with a different error so callers can tell the two apart.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by an exact username match.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and fills in its ID and CreatedAt.
	// It does not check username uniqueness itself; a unique index at the store does.
	Create(ctx context.Context, user *entity.User) error
}
