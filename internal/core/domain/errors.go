package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for both an unknown username and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUnknownRole        = errors.New("unknown role")
	ErrInvalidInput       = errors.New("invalid input")
	// ErrStorage wraps any persistence fault. The cause stays in the chain for
	// logging but is never shown to callers.
	ErrStorage = errors.New("storage error")
)
