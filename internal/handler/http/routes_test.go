package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/inbot-accounts/internal/service"
	"github.com/stretchr/testify/assert"
)

// TestInit_RouteProtection verifies which routes sit behind the
// authorization gate: protected routes answer 403 to anonymous requests,
// public routes never do.
func TestInit_RouteProtection(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{
		AuthService:     &mockAuthService{},
		SessionService:  &mockSessionService{},
		SettingsService: &mockSettingsService{},
	})
	router := h.Init()

	tests := []struct {
		name      string
		method    string
		target    string
		protected bool
	}{
		{name: "register is public", method: http.MethodPost, target: "/api/v1/auth/register", protected: false},
		{name: "login is public", method: http.MethodPost, target: "/api/v1/auth/login", protected: false},
		{name: "refresh is public", method: http.MethodPost, target: "/api/v1/auth/refresh", protected: false},
		{name: "health is public", method: http.MethodGet, target: "/health", protected: false},
		{name: "service info is public", method: http.MethodGet, target: "/", protected: false},
		{name: "logout is protected", method: http.MethodPost, target: "/api/v1/auth/logout", protected: true},
		{name: "session create is protected", method: http.MethodPost, target: "/api/v1/sessions/", protected: true},
		{name: "session list is protected", method: http.MethodGet, target: "/api/v1/sessions/", protected: true},
		{name: "settings get is protected", method: http.MethodGet, target: "/api/v1/settings", protected: true},
		{name: "settings patch is protected", method: http.MethodPatch, target: "/api/v1/settings", protected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if tt.protected {
				assert.Equal(t, http.StatusForbidden, rr.Code)
			} else {
				assert.NotEqual(t, http.StatusForbidden, rr.Code)
			}
		})
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// Unsupported methods on known routes answer 404, not 405, so that probing
// requests learn nothing about the route table.
func TestInit_UnsupportedMethodHidesRoute(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/register", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
