package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail      = errors.New("a valid email address is required")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrPasswordTooLong   = errors.New("password must be at most 72 bytes")
	ErrFirstNameTooShort = errors.New("first name is too short")
	ErrLastNameTooShort  = errors.New("last name is too short")
	ErrEmptyToken        = errors.New("token is required")
	ErrInvalidToken      = errors.New("token is malformed")

	ErrInvalidAccessCode   = errors.New("access code must be 4-64 characters of letters, digits, '-' or '_'")
	ErrInvalidDuration     = errors.New("duration must be positive")
	ErrInvalidDurationType = errors.New("duration type must be days or months")
	ErrInvalidMaxUses      = errors.New("max uses must be positive when set")
	ErrInvalidUserID       = errors.New("invalid user ID")
)
