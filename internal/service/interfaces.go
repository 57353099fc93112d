package service

import (
	"context"

	"github.com/MKhiriev/inbot-accounts/models"
	"github.com/google/uuid"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CurrentUser(ctx context.Context, token models.Token) (models.User, error)
}

type SessionService interface {
	CreateSession(ctx context.Context, userID uuid.UUID, request models.SessionCreateRequest) (models.Session, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (models.Session, error)
	ListSessions(ctx context.Context, userID uuid.UUID, filter models.SessionFilter) (models.SessionList, error)
	UpdateSession(ctx context.Context, userID, sessionID uuid.UUID, update models.SessionUpdate) (models.Session, error)
	DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error
}

type SettingsService interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (models.Settings, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, update models.SettingsUpdate) (models.Settings, error)
}

// AppInfoService exposes build metadata about the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
