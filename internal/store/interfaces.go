package store

import (
	"context"

	"github.com/MKhiriev/inbot-accounts/models"
	"github.com/google/uuid"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser inserts a new user together with its default settings row
	// in a single transaction and returns the stored user.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the user whose email matches exactly.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves the user with the given identifier.
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
}

// SessionRepository persists and retrieves conversation sessions. All
// operations are scoped to the owning user.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	FindSessionByID(ctx context.Context, userID, sessionID uuid.UUID) (models.Session, error)
	ListSessions(ctx context.Context, userID uuid.UUID, filter models.SessionFilter) (models.SessionList, error)
	UpdateSession(ctx context.Context, userID, sessionID uuid.UUID, update models.SessionUpdate) (models.Session, error)
	DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error
}

// SettingsRepository persists and retrieves per-user preference rows.
type SettingsRepository interface {
	FindSettingsByUserID(ctx context.Context, userID uuid.UUID) (models.Settings, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, update models.SettingsUpdate) (models.Settings, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
