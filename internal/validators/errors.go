package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername        = errors.New("username cannot be empty")
	ErrUsernameTooShort     = errors.New("username must be at least 2 characters")
	ErrUsernameTooLong      = errors.New("username cannot exceed 100 characters")
	ErrUsernameInvalidChars = errors.New("username contains invalid characters")

	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrPasswordTooShort   = errors.New("password must be at least 4 characters")
	ErrPasswordTooLong    = errors.New("password cannot exceed 256 characters")
	ErrPasswordWhitespace = errors.New("password cannot be only whitespace")
)
