package service

import (
	"context"

	"gatehouse/internal/domain/validation"
)

// RegistrationForm carries the raw registration fields exactly as submitted.
type RegistrationForm struct {
	FirstName       string
	Surname         string
	Username        string
	Password        string
	ConfirmPassword string
}

// CredentialValidator checks a registration submission.
type CredentialValidator interface {
	// ValidateRegistration returns the per-field failures for form. The returned error is non-nil
	// only when the username uniqueness lookup itself failed.
	ValidateRegistration(ctx context.Context, form RegistrationForm) (validation.Errors, error)
}
