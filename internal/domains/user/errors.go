package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// Service-level errors
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
