package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/auth/register", h.register)
		r.Post("/api/v1/auth/login", h.login)
		r.Post("/api/v1/auth/refresh", h.refresh)
	})

	// routes behind the authorization gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/v1/auth/logout", h.logout)

		r.Route("/api/v1/sessions", func(r chi.Router) {
			r.Post("/", h.createSession)
			r.Get("/", h.listSessions)
			r.Get("/{sessionID}", h.getSession)
			r.Patch("/{sessionID}", h.updateSession)
			r.Delete("/{sessionID}", h.deleteSession)
		})

		r.Get("/api/v1/settings", h.getSettings)
		r.Patch("/api/v1/settings", h.updateSettings)
	})

	router.Get("/health", h.health)
	router.Get("/", h.serviceInfo)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
