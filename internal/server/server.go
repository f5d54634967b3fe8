package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/handler"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/workers"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	background *workers.Workers

	logger *logger.Logger
}

// NewServer builds a server for every handler present in handlers.
// background may be nil.
func NewServer(handlers *handler.Handlers, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	s := &server{background: background, logger: logger}

	if handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if handlers.GRPC != nil {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() error {
	return s.run(context.Background())
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, t := range s.transports {
		t.Shutdown(ctx)
	}
}

// run serves until parent is cancelled, a stop signal arrives or a
// transport fails, then shuts everything down.
func (s *server) run(parent context.Context) error {
	if len(s.transports) == 0 {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	failed := make(chan error, len(s.transports))
	for _, t := range s.transports {
		go func(t transport) {
			if err := t.RunServer(); err != nil {
				failed <- err
			}
		}(t)
	}

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if s.background != nil {
			s.background.Run(ctx)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-failed:
		s.logger.Err(runErr).Msg("server failed")
	}

	stop()
	s.Shutdown()
	<-workersDone

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}
