package service

import "errors"

// Errors returned to the transport layer. Handlers match them with
// errors.Is and map them to status codes.
var (
	ErrValidation                = errors.New("validation failed")
	ErrDuplicateEmail            = errors.New("an account with this email already exists")
	ErrPendingVerificationExists = errors.New("a registration for this email is awaiting verification")
	ErrInvalidAccessCode         = errors.New("access code is invalid or no longer available")
	ErrInvalidOrExpiredToken     = errors.New("token is invalid or has expired")
	ErrInvalidCredentials        = errors.New("invalid email or password")
	ErrEmailNotVerified          = errors.New("email address is not verified")
	ErrRateLimited               = errors.New("too many failed login attempts, try again later")
	ErrUnauthorized              = errors.New("authentication required")
	ErrForbidden                 = errors.New("access denied")
	ErrStoreFailure              = errors.New("storage failure")

	ErrAccessCodeExists   = errors.New("access code already exists")
	ErrAccessCodeNotFound = errors.New("access code not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
