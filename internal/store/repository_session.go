// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/internal/utils"
	"github.com/MKhiriev/inbot-accounts/models"
	"github.com/google/uuid"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. It executes all session CRUD operations against the
// "sessions" table, always scoped by the owning user's identifier.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, session_id, filter values).
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
	uuid   *utils.UUIDGenerator
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
		uuid:   utils.NewUUIDGenerator(),
	}
}

// rowScanner is the subset of *sql.Row and *sql.Rows needed to scan a
// single session record.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanSession reads one sessions-table row in canonical column order.
func scanSession(row rowScanner, session *models.Session) error {
	return row.Scan(
		&session.SessionID,
		&session.UserID,
		&session.Type,
		&session.Name,
		&session.Starred,
		&session.CopilotID,
		&session.AssistantAvatarKey,
		&session.Settings,
		&session.Threads,
		&session.ThreadName,
		&session.MessageForksHash,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
}

// CreateSession persists a new session record and returns the fully
// populated [models.Session] with server-assigned fields (SessionID,
// CreatedAt, UpdatedAt).
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	session.SessionID = r.uuid.NewUUID()
	row := r.db.QueryRowContext(ctx, createSession,
		session.SessionID,
		session.UserID,
		session.Type,
		session.Name,
		session.Starred,
		session.CopilotID,
		session.AssistantAvatarKey,
		[]byte(session.Settings),
		[]byte(session.Threads),
		session.ThreadName,
		[]byte(session.MessageForksHash),
	)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.CreateSession").
			Str("user_id", session.UserID.String()).
			Msg("error: row is nil")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var created models.Session
	if err := scanSession(row, &created); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.CreateSession").
			Str("user_id", session.UserID.String()).
			Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindSessionByID retrieves the session with the given identifier owned by
// the given user.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrSessionNotFound]. A session owned by another
//     user produces the same error as a missing one.
func (r *sessionRepository) FindSessionByID(ctx context.Context, userID, sessionID uuid.UUID) (models.Session, error) {
	log := logger.FromContext(ctx)

	var found models.Session
	row := r.db.QueryRowContext(ctx, findSessionByID, sessionID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.FindSessionByID").
			Str("user_id", userID.String()).
			Str("session_id", sessionID.String()).
			Msg("error: row is nil")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanSession(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).
			Str("func", "*sessionRepository.FindSessionByID").
			Str("user_id", userID.String()).
			Str("session_id", sessionID.String()).
			Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListSessions retrieves the filtered, paginated session list of the given
// user together with the total count of sessions matching the same filters.
//
// Filtering is always applied by user_id. Type and starred filters are
// added only when present in the filter. The total is computed with a
// companion COUNT(*) query so that clients can paginate past the returned
// page.
func (r *sessionRepository) ListSessions(ctx context.Context, userID uuid.UUID, filter models.SessionFilter) (models.SessionList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSessionsQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.ListSessions").
			Str("user_id", userID.String()).
			Msg("failed to build list query")
		return models.SessionList{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.ListSessions").
			Str("user_id", userID.String()).
			Msg("failed to execute query for listing sessions")
		return models.SessionList{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.Session, 0, filter.Limit)
	for rows.Next() {
		var session models.Session
		if scanErr := scanSession(rows, &session); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*sessionRepository.ListSessions").
				Str("user_id", userID.String()).
				Msg("failed to scan session row")
			return models.SessionList{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		sessions = append(sessions, session)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*sessionRepository.ListSessions").
			Str("user_id", userID.String()).
			Msg("error occurred during rows iteration")
		return models.SessionList{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countQuery, countArgs, err := buildCountSessionsQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.ListSessions").
			Str("user_id", userID.String()).
			Msg("failed to build count query")
		return models.SessionList{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.ListSessions").
			Str("user_id", userID.String()).
			Msg("failed to count sessions")
		return models.SessionList{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.SessionList{
		Sessions: sessions,
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}, nil
}

// UpdateSession applies a partial update to a single session and returns
// the updated record. Only non-nil fields of the update are written;
// updated_at is always refreshed.
//
// Error handling:
//   - [sql.ErrNoRows] from the RETURNING clause → [ErrSessionNotFound].
func (r *sessionRepository) UpdateSession(ctx context.Context, userID, sessionID uuid.UUID, update models.SessionUpdate) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSessionQuery(userID, sessionID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.UpdateSession").
			Str("user_id", userID.String()).
			Str("session_id", sessionID.String()).
			Msg("failed to build update query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Session
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanSession(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).
			Str("func", "*sessionRepository.UpdateSession").
			Str("user_id", userID.String()).
			Str("session_id", sessionID.String()).
			Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteSession removes the session with the given identifier owned by the
// given user.
//
// Error handling:
//   - zero affected rows → [ErrSessionNotFound].
func (r *sessionRepository) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSession, sessionID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.DeleteSession").
			Str("user_id", userID.String()).
			Str("session_id", sessionID.String()).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.DeleteSession").
			Str("user_id", userID.String()).
			Str("session_id", sessionID.String()).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
