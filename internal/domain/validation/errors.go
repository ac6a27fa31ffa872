// Package validation holds the field-scoped error model produced by credential validation.
// Validation failures are data returned to the caller, not Go errors.
package validation

// Kind classifies a single field failure.
type Kind string

const (
	KindEmptyField        Kind = "EMPTY_FIELD"
	KindTooShort          Kind = "TOO_SHORT"
	KindTooLong           Kind = "TOO_LONG"
	KindInvalidCharacter  Kind = "INVALID_CHARACTER"
	KindDuplicateUsername Kind = "DUPLICATE_USERNAME"
	KindWeakPassword      Kind = "WEAK_PASSWORD"
	KindMismatch          Kind = "MISMATCH"
)

// Registration form field names.
const (
	FieldFirstName       = "first_name"
	FieldSurname         = "surname"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// User-facing messages for each registration failure.
const (
	MsgFirstNameEmpty    = "First name cannot be empty"
	MsgFirstNameTooLong  = "First name must be at most 255 characters long"
	MsgFirstNameInvalid  = "First name contains invalid characters"
	MsgSurnameEmpty      = "Surname cannot be empty"
	MsgSurnameTooLong    = "Surname must be at most 255 characters long"
	MsgSurnameInvalid    = "Surname contains invalid characters"
	MsgUsernameEmpty     = "Username cannot be empty"
	MsgUsernameTooShort  = "Username must be at least 3 characters long"
	MsgUsernameTooLong   = "Username must be at most 255 characters long"
	MsgUsernameInvalid   = "Username contains invalid characters"
	MsgDuplicateUsername = "User with this username already exists"
	MsgPasswordTooShort  = "Password must be at least 8 characters long."
	MsgPasswordTooLong   = "Password must be at most 72 bytes long."
	MsgPasswordWeak      = "Password must contain at least one uppercase character, one lowercase character and one digit."
	MsgPasswordMismatch  = "Passwords must match"
)

// RegistrationFields lists every field key present in a registration result, in form order.
// confirm_password failures are reported under password.
var RegistrationFields = []string{FieldFirstName, FieldSurname, FieldUsername, FieldPassword}

// FieldError is one human-readable complaint about a field.
type FieldError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Errors maps a field name to its ordered failures. A field with an empty slice is valid.
type Errors map[string][]FieldError

// NewErrors returns an Errors with an empty entry for each of the given fields.
func NewErrors(fields ...string) Errors {
	errs := make(Errors, len(fields))
	for _, field := range fields {
		errs[field] = []FieldError{}
	}

	return errs
}

// Add appends a failure to field.
func (e Errors) Add(field string, kind Kind, message string) {
	e[field] = append(e[field], FieldError{Kind: kind, Message: message})
}

// Valid reports whether every field is free of failures.
func (e Errors) Valid() bool {
	for _, fieldErrs := range e {
		if len(fieldErrs) > 0 {
			return false
		}
	}

	return true
}

// Has reports whether field carries a failure of the given kind.
func (e Errors) Has(field string, kind Kind) bool {
	for _, fieldErr := range e[field] {
		if fieldErr.Kind == kind {
			return true
		}
	}

	return false
}

// Messages flattens the result into field -> messages, the shape rendered to clients.
func (e Errors) Messages() map[string][]string {
	out := make(map[string][]string, len(e))
	for field, fieldErrs := range e {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			msgs = append(msgs, fieldErr.Message)
		}
		out[field] = msgs
	}

	return out
}
