package service

import "errors"

// Server-side sentinel errors, mapped to HTTP statuses by the handler layer.
var (
	// ErrValidation marks a request rejected for missing or malformed input.
	ErrValidation = errors.New("invalid request")

	// ErrEmailTaken marks a registration attempt with an already used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials marks a failed login. Unknown email and wrong
	// password both map here so the response leaks nothing.
	ErrInvalidCredentials = errors.New("invalid email/password")

	// ErrUserNotFound marks a lookup of a user id that does not exist.
	ErrUserNotFound = errors.New("user not found")
)
