package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or non-positive token TTLs).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrUnsupportedSigningAlgorithm indicates that the configured token
	// signing algorithm is not supported by this build.
	ErrUnsupportedSigningAlgorithm = errors.New("unsupported token signing algorithm")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
