package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/handler"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/server"
	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-flashcards-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).
		Str("images", cfg.Storage.Images.Backend).Bool("strict_ownership", cfg.App.StrictOwnership).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers()
	if handlers.GRPC != nil {
		background = workers.NewWorkers(
			workers.NewDBHealthWorker(storages.DB, handlers.GRPC, cfg.Workers.HealthCheckInterval, log),
		)
	}

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
