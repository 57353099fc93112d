package handler

import (
	"github.com/MKhiriev/inbot-accounts/internal/config"
	"github.com/MKhiriev/inbot-accounts/internal/handler/http"
	"github.com/MKhiriev/inbot-accounts/internal/logger"
	"github.com/MKhiriev/inbot-accounts/internal/service"
	"github.com/MKhiriev/inbot-accounts/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validators.NewAccountValidator(), logger),
	}, nil
}
