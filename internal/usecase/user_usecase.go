// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatehouse/internal/domain/entity"
	"gatehouse/internal/domain/validation"
)

// --- Input DTOs ---

// RegisterUserInput defines the data submitted on the registration form. Values are used as is,
// without trimming.
type RegisterUserInput struct {
	FirstName       string
	Surname         string
	Username        string
	Password        string
	ConfirmPassword string
}

// --- Output DTOs ---

// RegisterOutput reports either the newly created user or the reasons the form was rejected.
// Exactly one of User and Errors is set.
type RegisterOutput struct {
	User   *entity.User
	Errors validation.Errors
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// ValidateRegistration runs the credential rules without creating anything.
	ValidateRegistration(ctx context.Context, input *RegisterUserInput) (validation.Errors, error)

	// RegisterUser validates the form and, when it is clean, stores the user with a hashed password.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// Authenticate reports whether the credentials match a stored user. Unknown users and wrong
	// passwords are indistinguishable; the error is reserved for store failures.
	Authenticate(ctx context.Context, username, password string) (bool, error)

	// CurrentUser resolves the session username to a fresh user record. An empty username or
	// a user that no longer exists yields (nil, nil).
	CurrentUser(ctx context.Context, username string) (*entity.User, error)

	// GetUser looks a user up by ID and returns (nil, nil) when absent.
	GetUser(ctx context.Context, id int64) (*entity.User, error)
}
