package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantSize   int
	}{
		{
			name:       "explicit status",
			write:      func(w http.ResponseWriter) { w.WriteHeader(http.StatusCreated) },
			wantStatus: http.StatusCreated,
		},
		{
			name: "second WriteHeader ignored",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "write implies 200",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte("Cells"))
			},
			wantStatus: http.StatusOK,
			wantSize:   5,
		},
		{
			name: "size accumulates",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`[{"id":1},`))
				_, _ = w.Write([]byte(`{"id":2}]`))
			},
			wantStatus: http.StatusOK,
			wantSize:   19,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			tt.write(w)

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_UnwrapReachesRecorder(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Header().Set("X-Trace-ID", "t")

	assert.Same(t, rr, w.Unwrap())
	assert.Equal(t, "t", rr.Header().Get("X-Trace-ID"))
	assert.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rr.Flushed)
}
