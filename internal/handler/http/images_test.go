// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flashcards/internal/app"
	"github.com/MKhiriev/go-flashcards/models"
)

type imageFixture struct {
	api       *testAPI
	token     string
	card      models.Card
	imagePath string
}

func newImageFixture(t *testing.T) imageFixture {
	t.Helper()
	api := newTestAPI(t)
	token, _ := api.signUp("alice", "a@x.com")
	deck := api.createDeck(token, api.createFolder(token, "Biology").ID, "Cells")
	card := api.createCard(token, deck.ID, "Mitochondria", "Powerhouse of the cell")

	return imageFixture{
		api:       api,
		token:     token,
		card:      card,
		imagePath: "/api/decks/" + itoa(deck.ID) + "/cards/" + itoa(card.ID) + "/image",
	}
}

func (f imageFixture) upload(t *testing.T, data []byte, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, f.imagePath, bytes.NewReader(data))
	req.Header.Set("Authorization", "Bearer "+f.token)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.api.router.ServeHTTP(rec, req)
	return rec
}

func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func TestUploadCardImage_RoundTrip(t *testing.T) {
	f := newImageFixture(t)

	rec := f.upload(t, pngHeader, map[string]string{"Content-Type": "image/png"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	card := decode[models.Card](t, rec)
	require.NotNil(t, card.ImageURL)
	assert.True(t, strings.HasPrefix(*card.ImageURL, models.ImageURLPrefix))
	assert.True(t, strings.HasSuffix(*card.ImageURL, ".png"))
	assert.Equal(t, 1, f.api.memory.ImageCount())

	req := httptest.NewRequest(http.MethodGet, *card.ImageURL, nil)
	req.Header.Set("Accept-Encoding", "gzip")
	got := httptest.NewRecorder()
	f.api.router.ServeHTTP(got, req)

	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, "image/png", got.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", got.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, got.Header().Get("Content-Encoding"))
	assert.Contains(t, got.Header().Get("Cache-Control"), "immutable")
	assert.Equal(t, pngHeader, got.Body.Bytes())
}

func TestUploadCardImage_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		header     map[string]string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not an image",
			data:       []byte("plain text, not a picture"),
			header:     map[string]string{"Content-Type": "text/plain"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgUnsupportedImageType,
		},
		{
			name:       "html declared as png",
			data:       []byte("<html><script>alert(1)</script></html>"),
			header:     map[string]string{"Content-Type": "image/png"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgUnsupportedImageType,
		},
		{
			name:       "too large",
			data:       append(append([]byte{}, pngHeader...), make([]byte, 1<<16)...),
			header:     map[string]string{"Content-Type": "image/png"},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    app.MsgImageTooLarge,
		},
		{
			name: "digest mismatch",
			data: pngHeader,
			header: map[string]string{
				"Content-Type":      "image/png",
				contentDigestHeader: digest([]byte("something else")),
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    ErrDigestMismatch.Error(),
		},
		{
			name: "too large with digest",
			data: make([]byte, 1<<16+1),
			header: map[string]string{
				contentDigestHeader: digest(make([]byte, 1<<16+1)),
			},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    app.MsgImageTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newImageFixture(t)

			rec := f.upload(t, tt.data, tt.header)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, errorMessage(t, rec), tt.wantMsg)
			assert.Zero(t, f.api.memory.ImageCount())
		})
	}
}

func TestUploadCardImage_DigestAccepted(t *testing.T) {
	f := newImageFixture(t)

	rec := f.upload(t, pngHeader, map[string]string{contentDigestHeader: strings.ToUpper(digest(pngHeader))})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, f.api.memory.ImageCount())
}

func TestUploadCardImage_MissingCard(t *testing.T) {
	f := newImageFixture(t)
	f.imagePath = strings.Replace(f.imagePath, "/cards/"+itoa(f.card.ID), "/cards/999", 1)

	rec := f.upload(t, pngHeader, map[string]string{"Content-Type": "image/png"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgCardNotFound, errorMessage(t, rec))
	assert.Zero(t, f.api.memory.ImageCount())
}

func TestUploadCardImage_RequiresToken(t *testing.T) {
	f := newImageFixture(t)
	f.token = ""

	rec := f.upload(t, pngHeader, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetImage_Missing(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/images/nothing.png", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgImageNotFound, errorMessage(t, rec))
}
