package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidUsername    = errors.New("username must be 3-50 characters of letters, digits and underscores")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyRefreshToken  = errors.New("refresh token is required")
	ErrInvalidSessionType = errors.New("session type must be chat or picture")
	ErrEmptySessionName   = errors.New("session name is required")
	ErrSessionNameTooLong = errors.New("session name must be at most 200 characters")
	ErrInvalidTheme       = errors.New("theme must be light, dark or system")
	ErrInvalidFontSize    = errors.New("font size must be between 8 and 32")
	ErrEmptyLanguage      = errors.New("language cannot be empty")
	ErrInvalidLimit       = errors.New("limit must be between 1 and 100")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
)
