package http

import (
	"time"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/service"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request when positive.
	requestTimeout time.Duration
	// maxImageBytes caps the body of an image upload when positive.
	maxImageBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		maxImageBytes:  cfg.Storage.Images.MaxBytes,
		logger:         logger,
	}
}
