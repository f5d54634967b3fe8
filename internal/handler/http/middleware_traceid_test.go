package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flashcards/internal/logger"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{"reused", "client-trace-1", true},
		{"uuid reused", "550e8400-e29b-41d4-a716-446655440000", true},
		{"missing generates uuid", "", false},
		{"spaces replaced", "a b", false},
		{"newline replaced", "abc\ninjected", false},
		{"too long replaced", strings.Repeat("x", 65), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/decks", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			newTestHandler().withTraceID(next).ServeHTTP(rr, req)

			require.True(t, called)
			assert.Equal(t, http.StatusNoContent, rr.Code)

			got := rr.Header().Get(traceIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "expected a generated uuid, got %q", got)
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("handled")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rr.Header().Get(traceIDHeader)
		assert.False(t, seen[id], "duplicate trace id %s", id)
		seen[id] = true
	}
}
