package handler

import (
	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/handler/grpc"
	"github.com/MKhiriev/go-flashcards/internal/handler/http"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/service"
)

// Handlers holds the transports enabled by the server config. A nil field
// means the transport is off.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
