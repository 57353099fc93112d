package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// that login responses never reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenIsExpiredOrInvalid is the single error all token validation
	// failures collapse into: bad signature, wrong issuer, expiry, wrong
	// token type, malformed subject.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// application version is missing from the configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
