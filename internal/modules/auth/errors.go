package auth

import "errors"

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrUnauthorized     = errors.New("unauthorized")
)
