package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP status codes; everything else surfaces as an internal error.
var (
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotFound           = errors.New("application not found")
	ErrForbidden          = errors.New("application belongs to another user")
	ErrDecryptFailed      = errors.New("failed to decrypt application data")
)
