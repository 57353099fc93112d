package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/internal/mock"
	"github.com/MKhiriev/inbot-accounts/internal/store"
	"github.com/MKhiriev/inbot-accounts/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*sessionService, *mock.MockSessionRepository) {
	t.Helper()
	mockSessions := mock.NewMockSessionRepository(ctrl)
	svc := NewSessionService(mockSessions, logger.NewLogger("test")).(*sessionService)
	return svc, mockSessions
}

func TestSessionService_CreateSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	userID := uuid.New()

	request := models.SessionCreateRequest{Type: models.SessionTypeChat, Name: "New chat"}

	mockSessions.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, session models.Session) (models.Session, error) {
			require.Equal(t, userID, session.UserID)
			require.Equal(t, models.SessionTypeChat, session.Type)

			// JSON bags default to empty documents, never nil
			require.JSONEq(t, `{}`, string(session.Settings))
			require.JSONEq(t, `[]`, string(session.Threads))
			require.JSONEq(t, `{}`, string(session.MessageForksHash))

			session.SessionID = uuid.New()
			return session, nil
		},
	)

	created, err := svc.CreateSession(ctx, userID, request)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.SessionID)
	assert.Equal(t, "New chat", created.Name)
}

func TestSessionService_CreateSession_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.CreateSession(context.Background(), uuid.New(),
		models.SessionCreateRequest{Type: "video", Name: "New chat"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSessionService_CreateSession_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.CreateSession(context.Background(), uuid.New(),
		models.SessionCreateRequest{Type: models.SessionTypeChat})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSessionService_GetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()
	stored := models.Session{SessionID: sessionID, UserID: userID, Name: "Existing"}

	mockSessions.EXPECT().FindSessionByID(ctx, userID, sessionID).Return(stored, nil)

	got, err := svc.GetSession(ctx, userID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestSessionService_GetSession_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()
	mockSessions.EXPECT().FindSessionByID(ctx, userID, sessionID).Return(models.Session{}, store.ErrSessionNotFound)

	_, err := svc.GetSession(ctx, userID, sessionID)
	require.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionService_ListSessions_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()
	userID := uuid.New()

	mockSessions.EXPECT().ListSessions(ctx, userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, filter models.SessionFilter) (models.SessionList, error) {
			// zero limit is replaced before validation
			require.Equal(t, uint64(50), filter.Limit)
			return models.SessionList{Limit: filter.Limit}, nil
		},
	)

	list, err := svc.ListSessions(ctx, userID, models.SessionFilter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(50), list.Limit)
}

func TestSessionService_ListSessions_OversizedLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.ListSessions(context.Background(), uuid.New(), models.SessionFilter{Limit: 500})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSessionService_UpdateSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()
	name := "Renamed"
	update := models.SessionUpdate{Name: &name}

	mockSessions.EXPECT().UpdateSession(ctx, userID, sessionID, update).
		Return(models.Session{SessionID: sessionID, UserID: userID, Name: name}, nil)

	updated, err := svc.UpdateSession(ctx, userID, sessionID, update)
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
}

func TestSessionService_UpdateSession_EmptyUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.UpdateSession(context.Background(), uuid.New(), uuid.New(), models.SessionUpdate{})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSessionService_DeleteSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSessions := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()

	mockSessions.EXPECT().DeleteSession(ctx, userID, sessionID).Return(nil)
	require.NoError(t, svc.DeleteSession(ctx, userID, sessionID))

	mockSessions.EXPECT().DeleteSession(ctx, userID, sessionID).Return(store.ErrSessionNotFound)
	err := svc.DeleteSession(ctx, userID, sessionID)
	require.ErrorIs(t, err, store.ErrSessionNotFound)
}
