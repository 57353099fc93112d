package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/models"
	"github.com/google/uuid"
)

// settingsRepository is the PostgreSQL-backed implementation of
// [SettingsRepository]. The settings row itself is created by
// [userRepository.CreateUser] inside the registration transaction; this
// repository only reads and updates it.
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// scanSettings reads one settings-table row in canonical column order.
func scanSettings(row rowScanner, settings *models.Settings) error {
	return row.Scan(
		&settings.SettingsID,
		&settings.UserID,
		&settings.Language,
		&settings.Theme,
		&settings.FontSize,
		&settings.ChatSettings,
		&settings.Providers,
		&settings.Shortcuts,
		&settings.MCPConfig,
		&settings.WebSearchConfig,
		&settings.DesktopSettings,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
}

// FindSettingsByUserID retrieves the settings row of the given user.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrSettingsNotFound].
func (r *settingsRepository) FindSettingsByUserID(ctx context.Context, userID uuid.UUID) (models.Settings, error) {
	log := logger.FromContext(ctx)

	var found models.Settings
	row := r.db.QueryRowContext(ctx, findSettingsByUserID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*settingsRepository.FindSettingsByUserID").
			Str("user_id", userID.String()).
			Msg("error: row is nil")
		return models.Settings{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanSettings(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Settings{}, ErrSettingsNotFound
		}
		log.Err(err).
			Str("func", "*settingsRepository.FindSettingsByUserID").
			Str("user_id", userID.String()).
			Msg("error: scanning error")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateSettings applies a partial update to the settings row of the given
// user and returns the updated record. Only non-nil fields of the update
// are written; updated_at is always refreshed.
//
// Error handling:
//   - [sql.ErrNoRows] from the RETURNING clause → [ErrSettingsNotFound].
func (r *settingsRepository) UpdateSettings(ctx context.Context, userID uuid.UUID, update models.SettingsUpdate) (models.Settings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSettingsQuery(userID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*settingsRepository.UpdateSettings").
			Str("user_id", userID.String()).
			Msg("failed to build update query")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Settings
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanSettings(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Settings{}, ErrSettingsNotFound
		}
		log.Err(err).
			Str("func", "*settingsRepository.UpdateSettings").
			Str("user_id", userID.String()).
			Msg("error: scanning error")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}
