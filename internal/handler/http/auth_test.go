// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/inbot-accounts/internal/service"
	"github.com/MKhiriev/inbot-accounts/internal/store"
	"github.com/MKhiriev/inbot-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{
				UserID:       testUser.UserID,
				Email:        request.Email,
				Username:     request.Username,
				PasswordHash: "$argon2id$v=19$...",
			}, nil
		},
	}
	h := newHandlerWithServices(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "correct horse battery staple",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.PublicUser
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, testUser.UserID, got.UserID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "alice", got.Username)
	// The digest must never surface in the response body.
	assert.NotContains(t, rr.Body.String(), "argon2id")
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		request models.RegisterRequest
	}{
		{
			name:    "malformed email",
			request: models.RegisterRequest{Email: "not-an-email", Username: "alice", Password: "longenough"},
		},
		{
			name:    "short password",
			request: models.RegisterRequest{Email: "alice@example.com", Username: "alice", Password: "short"},
		},
		{
			name:    "bad username",
			request: models.RegisterRequest{Email: "alice@example.com", Username: "a", Password: "longenough"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The service must not be reached on validation failure.
			h := newHandlerWithServices(t, &service.Services{AuthService: &mockAuthService{
				registerUserFn: func(context.Context, models.RegisterRequest) (models.User, error) {
					t.Fatal("RegisterUser must not be called")
					return models.User{}, nil
				},
			}})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(jsonBody(t, tt.request)))
			rr := httptest.NewRecorder()

			h.register(rr, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newHandlerWithServices(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "longenough",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "email already registered")
}

func TestRegister_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}
	h := newHandlerWithServices(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "longenough",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.register(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	// Internal details must not leak.
	assert.NotContains(t, rr.Body.String(), "db is down")
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.TokenPair, error) {
			return models.TokenPair{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				TokenType:    "bearer",
				ExpiresIn:    1800,
				User:         testUser.Public(),
			}, nil
		},
	}
	h := newHandlerWithServices(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com", Password: "longenough"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.login(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var pair models.TokenPair
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pair))
	assert.Equal(t, "access-token", pair.AccessToken)
	assert.Equal(t, "refresh-token", pair.RefreshToken)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.Equal(t, int64(1800), pair.ExpiresIn)
	assert.Equal(t, testUser.UserID, pair.User.UserID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.TokenPair, error) {
			return models.TokenPair{}, service.ErrInvalidCredentials
		},
	}
	h := newHandlerWithServices(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.login(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	// The body must not say whether the email exists.
	assert.Contains(t, rr.Body.String(), "invalid email or password")
}

func TestLogin_ValidationFailure(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{AuthService: &mockAuthService{}})

	body := jsonBody(t, models.LoginRequest{Email: "", Password: ""})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.login(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

// ─────────────────────────────────────────────
// refresh
// ─────────────────────────────────────────────

func TestRefresh_Success(t *testing.T) {
	auth := &mockAuthService{
		refreshFn: func(_ context.Context, refreshToken string) (models.TokenPair, error) {
			assert.Equal(t, "old-refresh-token", refreshToken)
			return models.TokenPair{
				AccessToken:  "new-access-token",
				RefreshToken: "new-refresh-token",
				TokenType:    "bearer",
				ExpiresIn:    1800,
				User:         testUser.Public(),
			}, nil
		},
	}
	h := newHandlerWithServices(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.RefreshRequest{RefreshToken: "old-refresh-token"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.refresh(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var pair models.TokenPair
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pair))
	assert.Equal(t, "new-access-token", pair.AccessToken)
	assert.Equal(t, "new-refresh-token", pair.RefreshToken)
}

func TestRefresh_RejectedToken(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "expired or invalid token", err: service.ErrTokenIsExpiredOrInvalid},
		{name: "subject no longer exists", err: store.ErrNoUserWasFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				refreshFn: func(context.Context, string) (models.TokenPair, error) {
					return models.TokenPair{}, tt.err
				},
			}
			h := newHandlerWithServices(t, &service.Services{AuthService: auth})

			body := jsonBody(t, models.RefreshRequest{RefreshToken: "some-token"})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(body))
			rr := httptest.NewRecorder()

			h.refresh(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRefresh_EmptyToken(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{AuthService: &mockAuthService{}})

	body := jsonBody(t, models.RefreshRequest{RefreshToken: ""})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.refresh(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req = withUser(req, testUser)
	rr := httptest.NewRecorder()

	h.logout(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestLogout_NoUserInContext(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rr := httptest.NewRecorder()

	h.logout(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
