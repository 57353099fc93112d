package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/inbot-accounts/models"
	"github.com/google/uuid"
)

const (
	createUser = `INSERT INTO users (user_id, email, username, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, username, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, username, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, username, password_hash, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createSettings = `INSERT INTO settings (
			settings_id,
			user_id,
			language,
			theme,
			font_size,
			chat_settings,
			providers,
			shortcuts,
			mcp_config,
			web_search_config,
			desktop_settings
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	findSettingsByUserID = `SELECT settings_id, user_id, language, theme, font_size, chat_settings, providers, shortcuts, mcp_config, web_search_config, desktop_settings, created_at, updated_at
    FROM settings
    WHERE user_id = $1;`

	createSession = `INSERT INTO sessions (
			session_id,
			user_id,
			type,
			name,
			starred,
			copilot_id,
			assistant_avatar_key,
			settings,
			threads,
			thread_name,
			message_forks_hash
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING session_id, user_id, type, name, starred, copilot_id, assistant_avatar_key, settings, threads, thread_name, message_forks_hash, created_at, updated_at;`

	findSessionByID = `SELECT session_id, user_id, type, name, starred, copilot_id, assistant_avatar_key, settings, threads, thread_name, message_forks_hash, created_at, updated_at
    FROM sessions
    WHERE session_id = $1 AND user_id = $2;`

	deleteSession = `DELETE FROM sessions
    WHERE session_id = $1 AND user_id = $2;`
)

// sessionColumns is the canonical column list of the sessions table, in the
// order every session scan expects.
var sessionColumns = []string{
	"session_id",
	"user_id",
	"type",
	"name",
	"starred",
	"copilot_id",
	"assistant_avatar_key",
	"settings",
	"threads",
	"thread_name",
	"message_forks_hash",
	"created_at",
	"updated_at",
}

// settingsReturning is the RETURNING clause shared by settings updates.
const settingsReturning = `RETURNING settings_id, user_id, language, theme, font_size, chat_settings, providers, shortcuts, mcp_config, web_search_config, desktop_settings, created_at, updated_at`

// sessionReturning is the RETURNING clause shared by session updates.
const sessionReturning = `RETURNING session_id, user_id, type, name, starred, copilot_id, assistant_avatar_key, settings, threads, thread_name, message_forks_hash, created_at, updated_at`

// buildListSessionsQuery builds the filtered, paginated SELECT over the
// sessions table. Filtering is always applied by user_id; type and starred
// filters are added only when present in the filter. Results are ordered by
// most recently created first.
func buildListSessionsQuery(userID uuid.UUID, filter models.SessionFilter) (string, []any, error) {
	builder := sq.
		Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"type": *filter.Type})
	}
	if filter.Starred != nil {
		builder = builder.Where(sq.Eq{"starred": *filter.Starred})
	}

	builder = builder.
		OrderBy("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	return builder.ToSql()
}

// buildCountSessionsQuery builds the COUNT(*) companion of
// [buildListSessionsQuery] with the same filters and no pagination.
func buildCountSessionsQuery(userID uuid.UUID, filter models.SessionFilter) (string, []any, error) {
	builder := sq.
		Select("COUNT(*)").
		From("sessions").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"type": *filter.Type})
	}
	if filter.Starred != nil {
		builder = builder.Where(sq.Eq{"starred": *filter.Starred})
	}

	return builder.ToSql()
}

// buildUpdateSessionQuery builds a partial UPDATE of a single session.
// Only non-nil fields of the update are written; updated_at is always
// refreshed. The statement returns the full updated row so the caller
// receives the canonical database representation.
func buildUpdateSessionQuery(userID, sessionID uuid.UUID, update models.SessionUpdate) (string, []any, error) {
	builder := sq.
		Update("sessions").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"session_id": sessionID, "user_id": userID}).
		Suffix(sessionReturning).
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Starred != nil {
		builder = builder.Set("starred", *update.Starred)
	}
	if update.CopilotID != nil {
		builder = builder.Set("copilot_id", *update.CopilotID)
	}
	if update.AssistantAvatarKey != nil {
		builder = builder.Set("assistant_avatar_key", *update.AssistantAvatarKey)
	}
	if update.Settings != nil {
		builder = builder.Set("settings", []byte(update.Settings))
	}
	if update.ThreadName != nil {
		builder = builder.Set("thread_name", *update.ThreadName)
	}

	return builder.ToSql()
}

// buildUpdateSettingsQuery builds a partial UPDATE of a user's settings row.
// Only non-nil fields of the update are written; updated_at is always
// refreshed. The statement returns the full updated row.
func buildUpdateSettingsQuery(userID uuid.UUID, update models.SettingsUpdate) (string, []any, error) {
	builder := sq.
		Update("settings").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix(settingsReturning).
		PlaceholderFormat(sq.Dollar)

	if update.Language != nil {
		builder = builder.Set("language", *update.Language)
	}
	if update.Theme != nil {
		builder = builder.Set("theme", *update.Theme)
	}
	if update.FontSize != nil {
		builder = builder.Set("font_size", *update.FontSize)
	}
	if update.ChatSettings != nil {
		builder = builder.Set("chat_settings", []byte(update.ChatSettings))
	}
	if update.Providers != nil {
		builder = builder.Set("providers", []byte(update.Providers))
	}
	if update.Shortcuts != nil {
		builder = builder.Set("shortcuts", []byte(update.Shortcuts))
	}
	if update.MCPConfig != nil {
		builder = builder.Set("mcp_config", []byte(update.MCPConfig))
	}
	if update.WebSearchConfig != nil {
		builder = builder.Set("web_search_config", []byte(update.WebSearchConfig))
	}
	if update.DesktopSettings != nil {
		builder = builder.Set("desktop_settings", []byte(update.DesktopSettings))
	}

	return builder.ToSql()
}
