// Package validation implements the registration credential rules on top of go-playground/validator.
package validation

import (
	"context"
	"unicode"

	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/domain/validation"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	strongPasswordTag = "strong_password"

	// Text columns are varchar(255) and PostgreSQL text cannot store NUL.
	maxTextTag     = "max=255"
	excludesNulTag = "excludesrune=\x00"

	// bcrypt rejects inputs longer than this many bytes.
	maxPasswordBytes = 72
)

// textMessages are the per-field messages for the shared text rules.
type textMessages struct {
	empty   string
	tooLong string
	invalid string
}

var (
	firstNameMessages = textMessages{
		empty:   validation.MsgFirstNameEmpty,
		tooLong: validation.MsgFirstNameTooLong,
		invalid: validation.MsgFirstNameInvalid,
	}
	surnameMessages = textMessages{
		empty:   validation.MsgSurnameEmpty,
		tooLong: validation.MsgSurnameTooLong,
		invalid: validation.MsgSurnameInvalid,
	}
	usernameMessages = textMessages{
		empty:   validation.MsgUsernameEmpty,
		tooLong: validation.MsgUsernameTooLong,
		invalid: validation.MsgUsernameInvalid,
	}
)

type credentialValidator struct {
	validate *validator.Validate
	userRepo repository.UserRepository
}

// NewCredentialValidator creates a new CredentialValidator backed by userRepo for the uniqueness check.
func NewCredentialValidator(userRepo repository.UserRepository) (service.CredentialValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation(strongPasswordTag, isStrongPassword); err != nil {
		return nil, errors.Wrap(err, "failed to register strong password rule")
	}

	return &credentialValidator{
		validate: validate,
		userRepo: userRepo,
	}, nil
}

func (v *credentialValidator) ValidateRegistration(ctx context.Context, form service.RegistrationForm) (validation.Errors, error) {
	errs := validation.NewErrors(validation.RegistrationFields...)

	v.validateText(validation.FieldFirstName, form.FirstName, firstNameMessages, errs)
	v.validateText(validation.FieldSurname, form.Surname, surnameMessages, errs)

	if err := v.validateUsername(ctx, form.Username, errs); err != nil {
		return nil, err
	}

	v.validatePassword(form.Password, form.ConfirmPassword, errs)

	return errs, nil
}

// validateText applies the rules shared by every stored text field and reports whether they all held.
// An empty value gets only the empty-field failure.
func (v *credentialValidator) validateText(field, value string, msgs textMessages, errs validation.Errors) bool {
	if v.validate.Var(value, "required") != nil {
		errs.Add(field, validation.KindEmptyField, msgs.empty)

		return false
	}

	valid := true
	if v.validate.Var(value, excludesNulTag) != nil {
		errs.Add(field, validation.KindInvalidCharacter, msgs.invalid)
		valid = false
	}
	if v.validate.Var(value, maxTextTag) != nil {
		errs.Add(field, validation.KindTooLong, msgs.tooLong)
		valid = false
	}

	return valid
}

// validateUsername short-circuits: the store is only consulted for a username that passed the local checks.
func (v *credentialValidator) validateUsername(ctx context.Context, username string, errs validation.Errors) error {
	if !v.validateText(validation.FieldUsername, username, usernameMessages, errs) {
		return nil
	}
	if v.validate.Var(username, "min=3") != nil {
		errs.Add(validation.FieldUsername, validation.KindTooShort, validation.MsgUsernameTooShort)

		return nil
	}

	_, err := v.userRepo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		errs.Add(validation.FieldUsername, validation.KindDuplicateUsername, validation.MsgDuplicateUsername)
	case errors.Is(err, repository.ErrUserNotFound):
	default:
		return errors.Wrap(err, "failed to check username availability")
	}

	return nil
}

func (v *credentialValidator) validatePassword(password, confirm string, errs validation.Errors) {
	if v.validate.Var(password, "min=8") != nil {
		errs.Add(validation.FieldPassword, validation.KindTooShort, validation.MsgPasswordTooShort)
	}
	if len(password) > maxPasswordBytes {
		errs.Add(validation.FieldPassword, validation.KindTooLong, validation.MsgPasswordTooLong)
	}
	if v.validate.Var(password, strongPasswordTag) != nil {
		errs.Add(validation.FieldPassword, validation.KindWeakPassword, validation.MsgPasswordWeak)
	}
	if v.validate.VarWithValue(password, confirm, "eqcsfield") != nil {
		errs.Add(validation.FieldPassword, validation.KindMismatch, validation.MsgPasswordMismatch)
	}
}

// isStrongPassword requires an upper case letter, a lower case letter and an ASCII digit.
func isStrongPassword(fl validator.FieldLevel) bool {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}

	return hasUpper && hasLower && hasDigit
}
