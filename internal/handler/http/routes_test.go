package http

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flashcards/internal/app"
	"github.com/MKhiriev/go-flashcards/internal/config"
)

// protectedRoutes must all answer 401 without a token, which proves they
// are registered behind auth.
var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/api/auth/me"},
	{http.MethodPut, "/api/auth/me"},
	{http.MethodGet, "/api/folders"},
	{http.MethodPost, "/api/folders"},
	{http.MethodGet, "/api/folders/1"},
	{http.MethodPut, "/api/folders/1"},
	{http.MethodDelete, "/api/folders/1"},
	{http.MethodGet, "/api/folders/1/decks"},
	{http.MethodPost, "/api/folders/1/decks"},
	{http.MethodDelete, "/api/folders/1/decks/2"},
	{http.MethodGet, "/api/decks"},
	{http.MethodPost, "/api/decks"},
	{http.MethodGet, "/api/decks/1"},
	{http.MethodPut, "/api/decks/1"},
	{http.MethodDelete, "/api/decks/1"},
	{http.MethodGet, "/api/decks/1/cards"},
	{http.MethodPost, "/api/decks/1/cards"},
	{http.MethodPut, "/api/decks/1/cards/2"},
	{http.MethodDelete, "/api/decks/1/cards/2"},
	{http.MethodPut, "/api/decks/1/cards/2/image"},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := api.do(tc.method, tc.path, "", nil)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, app.MsgNoTokenProvided, errorMessage(t, rec))
		})
	}
}

func TestInit_InvalidToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/folders", "not-a-jwt", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgInvalidToken, errorMessage(t, rec))
}

func TestInit_PublicRoutes(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgBackendRunning, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/version/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
}

func TestInit_UnknownRoutesAndMethods(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.signUp("alice", "a@x.com")

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/api/nonexistent"},
		{"unknown nested path", http.MethodGet, "/api/decks/1/cards/2/extra"},
		{"method not registered on public route", http.MethodPost, "/api/version/"},
		{"method not registered on folder", http.MethodPatch, "/api/folders/1"},
		{"get on login", http.MethodGet, "/api/auth/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(tt.method, tt.path, token, nil)
			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
			assert.Equal(t, app.MsgNotFound, errorMessage(t, rec))
		})
	}
}

func TestInit_BadGzipBodyIsJSONError(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("definitely not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, app.MsgInvalidGzip, errorMessage(t, rec))
}

func TestInit_GzipBombIsCapped(t *testing.T) {
	api := newTestAPI(t)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"email":"` + strings.Repeat("a", 2*maxJSONBytes) + `","password":"x"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.Less(t, buf.Len(), maxJSONBytes/100)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, app.MsgBodyTooLarge, errorMessage(t, rec))
}

func TestInit_TraceIDHeader(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-abc", rec.Header().Get(traceIDHeader))
	assert.NotEmpty(t, api.do(http.MethodGet, "/", "", nil).Header().Get(traceIDHeader))
}

func TestInit_RequestTimeoutApplied(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.StructuredConfig) {
		cfg.Server.RequestTimeout = time.Second
	})

	rec := api.do(http.MethodGet, "/api/version/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
