package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContentDigest(t *testing.T) {
	body := []byte("image bytes")

	tests := []struct {
		name       string
		header     string
		maxBytes   int64
		wantStatus int
		wantNext   bool
	}{
		{"no header passes", "", 0, http.StatusOK, true},
		{"matching digest", digest(body), 0, http.StatusOK, true},
		{"uppercase digest", "  " + string(bytes.ToUpper([]byte(digest(body)))) + " ", 0, http.StatusOK, true},
		{"mismatch", digest([]byte("other")), 0, http.StatusBadRequest, false},
		{"over limit", digest(body), 4, http.StatusRequestEntityTooLarge, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.maxImageBytes = tt.maxBytes

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Equal(t, body, got, "body must be readable again")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPut, "/api/decks/1/cards/2/image", bytes.NewReader(body))
			if tt.header != "" {
				req.Header.Set(contentDigestHeader, tt.header)
			}
			rr := httptest.NewRecorder()

			h.withContentDigest(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, called)
		})
	}
}
