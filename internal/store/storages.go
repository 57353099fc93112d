package store

import "github.com/MKhiriev/inbot-accounts/internal/logger"

// Storages bundles all repositories behind a single constructor so the
// service layer receives one dependency.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	SettingsRepository SettingsRepository
}

// NewStorages constructs every repository on top of the shared database
// connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		SessionRepository:  NewSessionRepository(db, log),
		SettingsRepository: NewSettingsRepository(db, log),
	}
}
