package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/inbot-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountValidator_RegisterRequest(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.RegisterRequest
		wantErr error
	}{
		{
			name:    "success: valid request",
			request: models.RegisterRequest{Email: "john@example.com", Username: "john_doe", Password: "long-enough"},
		},
		{
			name:    "error: missing at sign",
			request: models.RegisterRequest{Email: "john.example.com", Username: "john_doe", Password: "long-enough"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "error: missing domain dot",
			request: models.RegisterRequest{Email: "john@example", Username: "john_doe", Password: "long-enough"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "error: empty email",
			request: models.RegisterRequest{Email: "", Username: "john_doe", Password: "long-enough"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "error: username too short",
			request: models.RegisterRequest{Email: "john@example.com", Username: "jo", Password: "long-enough"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "error: username too long",
			request: models.RegisterRequest{Email: "john@example.com", Username: strings.Repeat("a", 51), Password: "long-enough"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "error: username with spaces",
			request: models.RegisterRequest{Email: "john@example.com", Username: "john doe", Password: "long-enough"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "error: password too short",
			request: models.RegisterRequest{Email: "john@example.com", Username: "john_doe", Password: "short"},
			wantErr: ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAccountValidator_LoginRequest(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.LoginRequest
		wantErr error
	}{
		{
			name:    "success: valid request",
			request: models.LoginRequest{Email: "john@example.com", Password: "whatever"},
		},
		{
			name:    "error: invalid email",
			request: models.LoginRequest{Email: "not-an-email", Password: "whatever"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "error: empty password",
			request: models.LoginRequest{Email: "john@example.com", Password: ""},
			wantErr: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAccountValidator_RefreshRequest(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.RefreshRequest{RefreshToken: "a.b.c"}))
	require.ErrorIs(t, v.Validate(ctx, models.RefreshRequest{}), ErrEmptyRefreshToken)
}

func TestAccountValidator_SessionCreateRequest(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.SessionCreateRequest
		wantErr error
	}{
		{
			name:    "success: chat session",
			request: models.SessionCreateRequest{Type: models.SessionTypeChat, Name: "New chat"},
		},
		{
			name:    "success: picture session",
			request: models.SessionCreateRequest{Type: models.SessionTypePicture, Name: "Art"},
		},
		{
			name:    "error: unknown type",
			request: models.SessionCreateRequest{Type: "video", Name: "New chat"},
			wantErr: ErrInvalidSessionType,
		},
		{
			name:    "error: empty name",
			request: models.SessionCreateRequest{Type: models.SessionTypeChat, Name: ""},
			wantErr: ErrEmptySessionName,
		},
		{
			name:    "error: name too long",
			request: models.SessionCreateRequest{Type: models.SessionTypeChat, Name: strings.Repeat("x", 201)},
			wantErr: ErrSessionNameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAccountValidator_SessionUpdate(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	name := "Renamed"
	empty := ""
	long := strings.Repeat("x", 201)
	starred := true

	tests := []struct {
		name    string
		update  models.SessionUpdate
		wantErr error
	}{
		{name: "success: rename", update: models.SessionUpdate{Name: &name}},
		{name: "success: star only", update: models.SessionUpdate{Starred: &starred}},
		{name: "error: empty update", update: models.SessionUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "error: empty name", update: models.SessionUpdate{Name: &empty}, wantErr: ErrEmptySessionName},
		{name: "error: name too long", update: models.SessionUpdate{Name: &long}, wantErr: ErrSessionNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAccountValidator_SessionFilter(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	chat := models.SessionTypeChat
	bogus := models.SessionType("video")

	tests := []struct {
		name    string
		filter  models.SessionFilter
		wantErr error
	}{
		{name: "success: default page", filter: models.SessionFilter{Limit: 50}},
		{name: "success: typed page", filter: models.SessionFilter{Type: &chat, Limit: 1}},
		{name: "error: zero limit", filter: models.SessionFilter{Limit: 0}, wantErr: ErrInvalidLimit},
		{name: "error: oversized limit", filter: models.SessionFilter{Limit: 101}, wantErr: ErrInvalidLimit},
		{name: "error: unknown type", filter: models.SessionFilter{Type: &bogus, Limit: 50}, wantErr: ErrInvalidSessionType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.filter)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAccountValidator_SettingsUpdate(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	dark := "dark"
	neon := "neon"
	size := 16
	tiny := 4
	lang := "de"
	empty := ""

	tests := []struct {
		name    string
		update  models.SettingsUpdate
		wantErr error
	}{
		{name: "success: theme", update: models.SettingsUpdate{Theme: &dark}},
		{name: "success: font size", update: models.SettingsUpdate{FontSize: &size}},
		{name: "success: language", update: models.SettingsUpdate{Language: &lang}},
		{name: "error: empty update", update: models.SettingsUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "error: unknown theme", update: models.SettingsUpdate{Theme: &neon}, wantErr: ErrInvalidTheme},
		{name: "error: font size too small", update: models.SettingsUpdate{FontSize: &tiny}, wantErr: ErrInvalidFontSize},
		{name: "error: empty language", update: models.SettingsUpdate{Language: &empty}, wantErr: ErrEmptyLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAccountValidator_UnsupportedType(t *testing.T) {
	v := NewAccountValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
