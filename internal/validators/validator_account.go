// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/inbot-accounts/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldEmail targets the email address of a registration or login request.
	FieldEmail = "email"

	// FieldUsername targets the display handle of a registration request.
	FieldUsername = "username"

	// FieldPassword targets the plain-text password of a registration or
	// login request.
	FieldPassword = "password"

	// FieldRefreshToken targets the refresh token string of a refresh request.
	FieldRefreshToken = "refresh_token"

	// FieldSessionType targets the type attribute of a session.
	FieldSessionType = "type"

	// FieldSessionName targets the user-visible title of a session.
	FieldSessionName = "name"

	// FieldTheme targets the UI theme of a settings update.
	FieldTheme = "theme"

	// FieldFontSize targets the base font size of a settings update.
	FieldFontSize = "font_size"

	// FieldLanguage targets the UI language code of a settings update.
	FieldLanguage = "language"

	// FieldLimit targets the page size of a session list request.
	FieldLimit = "limit"
)

// Validation bounds for account attributes.
const (
	minPasswordLength  = 8
	maxSessionNameLen  = 200
	minFontSize        = 8
	maxFontSize        = 32
	maxSessionPageSize = 100
)

// emailPattern is a deliberately permissive shape check: one "@", a
// non-empty local part and a dotted domain. Anything stricter rejects
// legitimate addresses.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// usernamePattern restricts handles to 3-50 word characters.
var usernamePattern = regexp.MustCompile(`^\w{3,50}$`)

// allowedThemes is the exhaustive set of theme values accepted by the
// validator. Any theme not present in this slice is considered invalid.
var allowedThemes = []string{"light", "dark", "system"}

// AccountValidator implements the Validator interface for all
// account-related domain models: RegisterRequest, LoginRequest,
// RefreshRequest, SessionCreateRequest, SessionUpdate, SessionFilter,
// and SettingsUpdate.
type AccountValidator struct{}

// NewAccountValidator constructs an [AccountValidator] ready for use.
func NewAccountValidator() *AccountValidator {
	return &AccountValidator{}
}

// Validate dispatches on the dynamic type of value and applies the matching
// rule set. Unknown types are rejected with [ErrUnsupportedType].
func (v *AccountValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch val := value.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, val, fields...)
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, val, fields...)
	case models.RefreshRequest:
		return v.validateRefreshRequest(ctx, val, fields...)
	case models.SessionCreateRequest:
		return v.validateSessionCreateRequest(ctx, val, fields...)
	case models.SessionUpdate:
		return v.validateSessionUpdate(ctx, val, fields...)
	case models.SessionFilter:
		return v.validateSessionFilter(ctx, val, fields...)
	case models.SettingsUpdate:
		return v.validateSettingsUpdate(ctx, val, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !emailPattern.MatchString(request.Email) {
				return ErrInvalidEmail
			}
		case FieldUsername:
			if !usernamePattern.MatchString(request.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if len(request.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !emailPattern.MatchString(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateRefreshRequest(_ context.Context, request models.RefreshRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRefreshToken}
	}

	for _, f := range fields {
		switch f {
		case FieldRefreshToken:
			if request.RefreshToken == "" {
				return ErrEmptyRefreshToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateSessionCreateRequest(_ context.Context, request models.SessionCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionType, FieldSessionName}
	}

	for _, f := range fields {
		switch f {
		case FieldSessionType:
			if !request.Type.Valid() {
				return ErrInvalidSessionType
			}
		case FieldSessionName:
			if request.Name == "" {
				return ErrEmptySessionName
			}
			if len([]rune(request.Name)) > maxSessionNameLen {
				return ErrSessionNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateSessionUpdate(_ context.Context, update models.SessionUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionName}
	}

	for _, f := range fields {
		switch f {
		case FieldSessionName:
			if update.Name != nil {
				if *update.Name == "" {
					return ErrEmptySessionName
				}
				if len([]rune(*update.Name)) > maxSessionNameLen {
					return ErrSessionNameTooLong
				}
			}
		default:
			return ErrUnknownField
		}
	}

	if update.IsZero() {
		return ErrNoFieldsToUpdate
	}

	return nil
}

func (v *AccountValidator) validateSessionFilter(_ context.Context, filter models.SessionFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionType, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldSessionType:
			if filter.Type != nil && !filter.Type.Valid() {
				return ErrInvalidSessionType
			}
		case FieldLimit:
			if filter.Limit < 1 || filter.Limit > maxSessionPageSize {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateSettingsUpdate(_ context.Context, update models.SettingsUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTheme, FieldFontSize, FieldLanguage}
	}

	for _, f := range fields {
		switch f {
		case FieldTheme:
			if update.Theme != nil && !themeAllowed(*update.Theme) {
				return ErrInvalidTheme
			}
		case FieldFontSize:
			if update.FontSize != nil && (*update.FontSize < minFontSize || *update.FontSize > maxFontSize) {
				return ErrInvalidFontSize
			}
		case FieldLanguage:
			if update.Language != nil && *update.Language == "" {
				return ErrEmptyLanguage
			}
		default:
			return ErrUnknownField
		}
	}

	if update.IsZero() {
		return ErrNoFieldsToUpdate
	}

	return nil
}

func themeAllowed(theme string) bool {
	for _, allowed := range allowedThemes {
		if theme == allowed {
			return true
		}
	}
	return false
}
