package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// withLogging writes one access line per request. Server errors are logged
// at error level, client errors at warn.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		level := zerolog.InfoLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = zerolog.ErrorLevel
		case status >= http.StatusBadRequest:
			level = zerolog.WarnLevel
		}

		event := log.WithLevel(level).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			event = event.Str("route", rctx.RoutePattern())
		}
		event.Send()
	})
}
