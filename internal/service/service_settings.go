package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/internal/store"
	"github.com/MKhiriev/inbot-accounts/internal/validators"
	"github.com/MKhiriev/inbot-accounts/models"
	"github.com/google/uuid"
)

// settingsService is the concrete implementation of SettingsService.
// The settings row is provisioned at registration time; this service only
// reads and patches it.
type settingsService struct {
	settingsRepository store.SettingsRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewSettingsService constructs a SettingsService wired to the given
// SettingsRepository.
func NewSettingsService(settingsRepository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		validator:          validators.NewAccountValidator(),
		logger:             logger,
	}
}

// GetSettings retrieves the settings row of userID.
func (s *settingsService) GetSettings(ctx context.Context, userID uuid.UUID) (models.Settings, error) {
	log := logger.FromContext(ctx)

	settings, err := s.settingsRepository.FindSettingsByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("settings lookup failed")
		return models.Settings{}, fmt.Errorf("settings lookup failed: %w", err)
	}

	return settings, nil
}

// UpdateSettings validates and applies a partial update to the settings row
// of userID and returns the updated record.
func (s *settingsService) UpdateSettings(ctx context.Context, userID uuid.UUID, update models.SettingsUpdate) (models.Settings, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("settings update validation failed")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.settingsRepository.UpdateSettings(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("settings update failed")
		return models.Settings{}, fmt.Errorf("settings update failed: %w", err)
	}

	return updated, nil
}
