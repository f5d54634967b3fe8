// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/models"
)

// uploadCardImage stores the raw request body as the card's picture.
// The body is the image itself, typed by the Content-Type header.
func (h *Handler) uploadCardImage(w http.ResponseWriter, r *http.Request) {
	deckID, cardID, err := cardPath(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	body := r.Body
	if h.maxImageBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxImageBytes)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, service.ErrImageTooLarge)
			return
		}
		writeError(w, r, err)
		return
	}

	card, err := h.services.ImageService.UploadCardImage(r.Context(), models.ImageUpload{
		CardID:      cardID,
		DeckID:      deckID,
		UserID:      userID(r),
		ContentType: r.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, card, http.StatusOK)
}

// getImage streams a stored picture. Keys never change content, so the
// response may be cached indefinitely.
func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.services.ImageService.GetImage(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(img.Data); err != nil {
		logger.FromRequest(r).Err(err).Str("key", img.Key).Msg("writing image failed")
	}
}
