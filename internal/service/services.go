package service

import (
	"github.com/MKhiriev/inbot-accounts/internal/config"
	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/internal/store"
)

type Services struct {
	AuthService     AuthService
	SessionService  SessionService
	SettingsService SettingsService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		SessionService:  NewSessionService(storages.SessionRepository, logger),
		SettingsService: NewSettingsService(storages.SettingsRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
