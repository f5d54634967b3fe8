// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-flashcards/internal/logger"
)

const defaultHealthCheckInterval = 15 * time.Second

type dbHealthWorker struct {
	db       Pinger
	reporter StatusReporter
	interval time.Duration
	logger   *logger.Logger
}

// NewDBHealthWorker probes db right away and then every interval, passing
// each outcome to reporter. A probe may take at most one interval.
func NewDBHealthWorker(db Pinger, reporter StatusReporter, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultHealthCheckInterval
	}
	return &dbHealthWorker{
		db:       db,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

func (w *dbHealthWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("database health worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	healthy := w.probe(ctx)
	w.reporter.SetServing(healthy)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("database health worker stopped")
			return
		case <-ticker.C:
			now := w.probe(ctx)
			if now != healthy {
				w.logger.Warn().Bool("healthy", now).Msg("database health changed")
			}
			healthy = now
			w.reporter.SetServing(healthy)
		}
	}
}

func (w *dbHealthWorker) probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	if err := w.db.Ping(ctx); err != nil {
		w.logger.Err(err).Msg("database ping failed")
		return false
	}
	return true
}
