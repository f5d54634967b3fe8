package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/service"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"semver", "1.2.3"},
		{"build metadata", "v1.0.0-beta+build.42"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{AppInfoService: &mockAppInfoService{version: tt.version}},
				config.StructuredConfig{}, logger.Nop())

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		})
	}
}
