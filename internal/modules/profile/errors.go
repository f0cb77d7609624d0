package profile

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrPasswordMismatch  = errors.New("new password and confirm password do not match")
	ErrIncorrectPassword = errors.New("current password is incorrect")
)

// ValidationError carries the failed field tags.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return ErrValidation.Error() }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
