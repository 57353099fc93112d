package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/inbot-accounts/internal/config"
	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/internal/service"
	"github.com/MKhiriev/inbot-accounts/internal/store"
	"github.com/MKhiriev/inbot-accounts/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUserRepository is an in-memory store.UserRepository used to run the
// full register/login/refresh lifecycle against a live HTTP server without
// a database.
type memoryUserRepository struct {
	mu      sync.Mutex
	byEmail map[string]models.User
	byID    map[uuid.UUID]models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byEmail: make(map[string]models.User),
		byID:    make(map[uuid.UUID]models.User),
	}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return models.User{}, store.ErrEmailAlreadyExists
	}

	user.UserID = uuid.New()
	user.CreatedAt = time.Now()
	r.byEmail[user.Email] = user
	r.byID[user.UserID] = user
	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (r *memoryUserRepository) FindUserByID(_ context.Context, userID uuid.UUID) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

// newAuthServer starts a test server with a real AuthService wired to an
// in-memory user repository.
func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.App{
		TokenSignKey:    "e2e-test-sign-key",
		TokenIssuer:     "inbot-accounts",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}

	svcs := &service.Services{
		AuthService:    service.NewAuthService(newMemoryUserRepository(), cfg, logger.Nop()),
		AppInfoService: &mockAppInfoService{version: "e2e"},
	}

	h := newHandlerWithServices(t, svcs)
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthLifecycle_EndToEnd(t *testing.T) {
	srv := newAuthServer(t)
	client := resty.New().SetBaseURL(srv.URL)

	registerBody := map[string]string{
		"email":    "bob@example.com",
		"username": "bob",
		"password": "correct horse battery staple",
	}

	// Register.
	var registered models.PublicUser
	resp, err := client.R().
		SetBody(registerBody).
		SetResult(&registered).
		Post("/api/v1/auth/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Equal(t, "bob@example.com", registered.Email)
	assert.NotEqual(t, uuid.Nil, registered.UserID)

	// Registering the same email again must fail with 400.
	resp, err = client.R().SetBody(registerBody).Post("/api/v1/auth/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	// Login.
	var pair models.TokenPair
	resp, err = client.R().
		SetBody(map[string]string{
			"email":    "bob@example.com",
			"password": "correct horse battery staple",
		}).
		SetResult(&pair).
		Post("/api/v1/auth/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.Equal(t, int64(1800), pair.ExpiresIn)
	assert.Equal(t, registered.UserID, pair.User.UserID)

	// A wrong password is rejected with the same body as an unknown email.
	resp, err = client.R().
		SetBody(map[string]string{"email": "bob@example.com", "password": "wrong-password"}).
		Post("/api/v1/auth/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	wrongBody := resp.String()
	resp, err = client.R().
		SetBody(map[string]string{"email": "nobody@example.com", "password": "wrong-password"}).
		Post("/api/v1/auth/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, wrongBody, resp.String())

	// The access token passes the gate.
	resp, err = client.R().
		SetAuthToken(pair.AccessToken).
		Post("/api/v1/auth/logout")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	// The refresh token does not.
	resp, err = client.R().
		SetAuthToken(pair.RefreshToken).
		Post("/api/v1/auth/logout")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	// Refresh issues a brand-new pair.
	var refreshed models.TokenPair
	resp, err = client.R().
		SetBody(map[string]string{"refresh_token": pair.RefreshToken}).
		SetResult(&refreshed).
		Post("/api/v1/auth/refresh")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, registered.UserID, refreshed.User.UserID)

	// An access token presented to the refresh endpoint is rejected.
	resp, err = client.R().
		SetBody(map[string]string{"refresh_token": pair.AccessToken}).
		Post("/api/v1/auth/refresh")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	// The old refresh token remains usable until it expires.
	resp, err = client.R().
		SetBody(map[string]string{"refresh_token": pair.RefreshToken}).
		Post("/api/v1/auth/refresh")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestHealthAndServiceInfo_EndToEnd(t *testing.T) {
	srv := newAuthServer(t)
	client := resty.New().SetBaseURL(srv.URL)

	resp, err := client.R().Get("/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, resp.String())

	resp, err = client.R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"service":"inbot-accounts","version":"e2e"}`, resp.String())
}
