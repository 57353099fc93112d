// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// defaultSessionPageSize is applied when a list request carries no limit.
const defaultSessionPageSize = 50

// sessionService is the concrete implementation of SessionService. Every
// operation is scoped by the authenticated user's identifier; a session
// owned by someone else behaves exactly like a missing one.
type sessionService struct {
	sessionRepository store.SessionRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// SessionRepository.
func NewSessionService(sessionRepository store.SessionRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		validator:         validators.NewAccountValidator(),
		logger:            logger,
	}
}

// CreateSession validates the request and persists a new session owned by
// userID. Client-supplied JSON bags default to empty documents so that the
// stored row never carries SQL NULL in a JSONB column.
func (s *sessionService) CreateSession(ctx context.Context, userID uuid.UUID, request models.SessionCreateRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("session create validation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	session := models.Session{
		UserID:           userID,
		Type:             request.Type,
		Name:             request.Name,
		CopilotID:        request.CopilotID,
		Settings:         request.Settings,
		Threads:          []byte(`[]`),
		MessageForksHash: []byte(`{}`),
	}
	if session.Settings == nil {
		session.Settings = []byte(`{}`)
	}

	created, err := s.sessionRepository.CreateSession(ctx, session)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return created, nil
}

// GetSession retrieves a single session owned by userID.
func (s *sessionService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := s.sessionRepository.FindSessionByID(ctx, userID, sessionID)
	if err != nil {
		log.Err(err).
			Str("user_id", userID.String()).
			Str("session_id", sessionID.String()).
			Msg("session lookup failed")
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	return session, nil
}

// ListSessions returns the filtered, paginated session list of userID.
// A zero limit is replaced with the default page size before validation,
// so only explicit out-of-range limits are rejected.
func (s *sessionService) ListSessions(ctx context.Context, userID uuid.UUID, filter models.SessionFilter) (models.SessionList, error) {
	log := logger.FromContext(ctx)

	if filter.Limit == 0 {
		filter.Limit = defaultSessionPageSize
	}

	if err := s.validator.Validate(ctx, filter); err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("session filter validation failed")
		return models.SessionList{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	list, err := s.sessionRepository.ListSessions(ctx, userID, filter)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("session listing failed")
		return models.SessionList{}, fmt.Errorf("session listing failed: %w", err)
	}

	return list, nil
}

// UpdateSession validates and applies a partial update to a session owned
// by userID and returns the updated record.
func (s *sessionService) UpdateSession(ctx context.Context, userID, sessionID uuid.UUID, update models.SessionUpdate) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).
			Str("user_id", userID.String()).
			Str("session_id", sessionID.String()).
			Msg("session update validation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.sessionRepository.UpdateSession(ctx, userID, sessionID, update)
	if err != nil {
		log.Err(err).
			Str("user_id", userID.String()).
			Str("session_id", sessionID.String()).
			Msg("session update failed")
		return models.Session{}, fmt.Errorf("session update failed: %w", err)
	}

	return updated, nil
}

// DeleteSession removes a session owned by userID.
func (s *sessionService) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.sessionRepository.DeleteSession(ctx, userID, sessionID); err != nil {
		log.Err(err).
			Str("user_id", userID.String()).
			Str("session_id", sessionID.String()).
			Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}
