// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SessionType enumerates the kinds of conversation sessions a user can own.
type SessionType string

const (
	// SessionTypeChat is a text conversation session.
	SessionTypeChat SessionType = "chat"

	// SessionTypePicture is an image generation session.
	SessionTypePicture SessionType = "picture"
)

// Valid reports whether t is one of the known session types.
func (t SessionType) Valid() bool {
	return t == SessionTypeChat || t == SessionTypePicture
}

// Session represents a chat or picture conversation owned by a single user.
// Flexible, client-defined structures (per-session settings, threads, fork
// maps) are stored as raw JSON and passed through without interpretation.
type Session struct {
	// SessionID is the unique identifier of the session.
	SessionID uuid.UUID `json:"id"`

	// UserID is the identifier of the owning user. Every query against the
	// sessions table is scoped by this value.
	UserID uuid.UUID `json:"user_id"`

	// Type is either "chat" or "picture".
	Type SessionType `json:"type"`

	// Name is the user-visible title of the session (up to 200 characters).
	Name string `json:"name"`

	// Starred marks the session as pinned in client UIs.
	Starred bool `json:"starred"`

	// CopilotID optionally links the session to an assistant configuration.
	CopilotID *uuid.UUID `json:"copilot_id,omitempty"`

	// AssistantAvatarKey optionally references an avatar object for the
	// assistant shown in this session.
	AssistantAvatarKey *string `json:"assistant_avatar_key,omitempty"`

	// Settings holds per-session overrides as an opaque JSON document.
	Settings json.RawMessage `json:"settings,omitempty"`

	// Threads holds the client-managed thread list as an opaque JSON array.
	Threads json.RawMessage `json:"threads,omitempty"`

	// ThreadName optionally names the active thread.
	ThreadName *string `json:"thread_name,omitempty"`

	// MessageForksHash holds the client-managed fork map as an opaque
	// JSON object.
	MessageForksHash json.RawMessage `json:"message_forks_hash,omitempty"`

	// CreatedAt is the timestamp when the session was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// SessionList is the paginated response of the session list endpoint.
type SessionList struct {
	Sessions []Session `json:"sessions"`
	Total    int64     `json:"total"`
	Limit    uint64    `json:"limit"`
	Offset   uint64    `json:"offset"`
}

// SessionFilter carries the optional query parameters of the session list
// endpoint. Nil fields mean "no filtering on this attribute".
type SessionFilter struct {
	// Type filters by session type when non-nil.
	Type *SessionType

	// Starred filters by starred status when non-nil.
	Starred *bool

	// Limit caps the number of returned sessions (1-100, default 50).
	Limit uint64

	// Offset is the number of sessions to skip.
	Offset uint64
}

// SessionUpdate represents a partial update of a single session.
// Only non-nil fields are written (partial update support).
type SessionUpdate struct {
	// Name replaces the session title when non-nil.
	Name *string `json:"name,omitempty"`

	// Starred replaces the pinned flag when non-nil.
	Starred *bool `json:"starred,omitempty"`

	// CopilotID replaces the linked assistant configuration when non-nil.
	CopilotID *uuid.UUID `json:"copilot_id,omitempty"`

	// AssistantAvatarKey replaces the avatar reference when non-nil.
	AssistantAvatarKey *string `json:"assistant_avatar_key,omitempty"`

	// Settings replaces the per-session settings document when non-nil.
	Settings json.RawMessage `json:"settings,omitempty"`

	// ThreadName replaces the active thread name when non-nil.
	ThreadName *string `json:"thread_name,omitempty"`
}

// IsZero reports whether the update carries no fields at all.
func (u SessionUpdate) IsZero() bool {
	return u.Name == nil && u.Starred == nil && u.CopilotID == nil &&
		u.AssistantAvatarKey == nil && u.Settings == nil && u.ThreadName == nil
}
