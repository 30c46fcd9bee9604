package service

import "errors"

var (
	// ErrNotFound means a referenced profile or appointment does not exist.
	// Views degrade to a neutral empty state rather than fail hard.
	ErrNotFound = errors.New("not found")

	// ErrPermission means the caller is not allowed to mutate the record.
	ErrPermission = errors.New("permission denied")

	// ErrInvalidCredentials covers failed sign-in attempts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports missing or malformed form input. It is surfaced
// inline next to the form, never as a fatal failure.
type ValidationError struct {
	Field string
	Msg   string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

// IsValidation checks whether the error is a form validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
