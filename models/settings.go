// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Settings is the per-user preferences record. Exactly one row exists per
// user; it is created together with the user inside the registration
// transaction and never any other way.
//
// The scalar fields (language, theme, font size) are first-class columns;
// everything else is a set of opaque JSON documents owned by the clients.
type Settings struct {
	// SettingsID is the unique identifier of the settings row.
	SettingsID uuid.UUID `json:"id"`

	// UserID is the identifier of the owning user. Unique: one settings
	// row per user.
	UserID uuid.UUID `json:"user_id"`

	// Language is the UI language code (e.g. "en").
	Language string `json:"language"`

	// Theme is one of "light", "dark" or "system".
	Theme string `json:"theme"`

	// FontSize is the base UI font size in points.
	FontSize int `json:"font_size"`

	// ChatSettings holds chat display preferences as an opaque JSON object.
	ChatSettings json.RawMessage `json:"chat_settings"`

	// Providers holds the configured AI provider list as an opaque
	// JSON array.
	Providers json.RawMessage `json:"providers"`

	// Shortcuts holds keyboard shortcut overrides as an opaque JSON object.
	Shortcuts json.RawMessage `json:"shortcuts"`

	// MCPConfig holds MCP server configuration as an opaque JSON object.
	MCPConfig json.RawMessage `json:"mcp_config"`

	// WebSearchConfig holds web search configuration as an opaque
	// JSON object.
	WebSearchConfig json.RawMessage `json:"web_search_config"`

	// DesktopSettings holds desktop-client specific preferences as an
	// opaque JSON object.
	DesktopSettings json.RawMessage `json:"desktop_settings,omitempty"`

	// CreatedAt is the timestamp when the settings row was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Settings model.
func (s Settings) TableName() string {
	return "settings"
}

// defaultChatSettings is the chat preferences document provisioned for
// every new user at registration time.
var defaultChatSettings = json.RawMessage(`{
	"show_message_timestamp": true,
	"show_model_name": true,
	"show_token_count": false,
	"show_word_count": false,
	"show_token_used": false,
	"show_first_token_latency": false,
	"enable_markdown_rendering": true,
	"enable_latex_rendering": true,
	"enable_mermaid_rendering": true,
	"auto_preview_artifacts": false,
	"auto_collapse_code_block": false,
	"paste_long_text_as_a_file": true
}`)

// DefaultSettings returns the settings row provisioned for a freshly
// registered user: English, system theme, 14pt font, default chat
// preferences and empty provider/shortcut/config bags.
func DefaultSettings(userID uuid.UUID) Settings {
	return Settings{
		UserID:          userID,
		Language:        "en",
		Theme:           "system",
		FontSize:        14,
		ChatSettings:    defaultChatSettings,
		Providers:       json.RawMessage(`[]`),
		Shortcuts:       json.RawMessage(`{}`),
		MCPConfig:       json.RawMessage(`{}`),
		WebSearchConfig: json.RawMessage(`{}`),
		DesktopSettings: json.RawMessage(`{}`),
	}
}

// SettingsUpdate represents a partial update of a user's settings row.
// Only non-nil fields are written.
type SettingsUpdate struct {
	Language        *string         `json:"language,omitempty"`
	Theme           *string         `json:"theme,omitempty"`
	FontSize        *int            `json:"font_size,omitempty"`
	ChatSettings    json.RawMessage `json:"chat_settings,omitempty"`
	Providers       json.RawMessage `json:"providers,omitempty"`
	Shortcuts       json.RawMessage `json:"shortcuts,omitempty"`
	MCPConfig       json.RawMessage `json:"mcp_config,omitempty"`
	WebSearchConfig json.RawMessage `json:"web_search_config,omitempty"`
	DesktopSettings json.RawMessage `json:"desktop_settings,omitempty"`
}

// IsZero reports whether the update carries no fields at all.
func (u SettingsUpdate) IsZero() bool {
	return u.Language == nil && u.Theme == nil && u.FontSize == nil &&
		u.ChatSettings == nil && u.Providers == nil && u.Shortcuts == nil &&
		u.MCPConfig == nil && u.WebSearchConfig == nil && u.DesktopSettings == nil
}
