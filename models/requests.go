package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	// Email is the address the account will be registered under.
	// Must be email-shaped; uniqueness is enforced by the database.
	Email string `json:"email"`

	// Username is the display handle: 3-50 characters, alphanumeric
	// and underscore only.
	Username string `json:"username"`

	// Password is the plaintext password (minimum 8 characters). It is
	// hashed immediately and never stored or logged.
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /api/v1/auth/refresh.
// The refresh token travels in the body, not in the Authorization header.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// SessionCreateRequest is the body of POST /api/v1/sessions.
type SessionCreateRequest struct {
	Type      SessionType     `json:"type"`
	Name      string          `json:"name"`
	CopilotID *uuid.UUID      `json:"copilot_id,omitempty"`
	Settings  json.RawMessage `json:"settings,omitempty"`
}
