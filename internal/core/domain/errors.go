package domain

import "errors"

// Sentinel errors surfaced by the account services. The HTTP layer maps each
// one to a status code in the central error handler; services never touch
// status codes themselves.
var (
	ErrUsernameTooLong    = errors.New("username is too long")
	ErrEmailTooLong       = errors.New("email is too long")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("missing privilege")
	ErrUnknownRole        = errors.New("unknown role")
	ErrInvalidYear        = errors.New("year must be an integer")
)
