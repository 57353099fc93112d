package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user. It is a randomly
	// generated UUID assigned at registration and immutable afterwards.
	UserID uuid.UUID `json:"id"`

	// Email is the unique address the user registers and logs in with.
	// Uniqueness is enforced by the database.
	Email string `json:"email"`

	// Username is the display handle of the user (3-50 characters,
	// alphanumeric and underscore only).
	Username string `json:"username"`

	// PasswordHash stores the argon2id digest of the user's password.
	// This value MUST be a derived value (KDF output), never plaintext.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the record.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the outward-facing projection of the user: identifier,
// email, username and creation time. The password hash is structurally
// absent, not merely tagged away.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUser is the response projection of a user account returned by the
// registration, login and refresh endpoints.
type PublicUser struct {
	UserID    uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
