// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/utils"
	"github.com/MKhiriev/go-flashcards/models"
)

// keyGenerator produces the unique part of an image key.
type keyGenerator interface {
	Generate() string
}

// imageService uploads card pictures into an ImageStorage and points the
// card's image_url at them.
type imageService struct {
	images         store.ImageStorage
	cardRepository store.CardRepository
	deckRepository store.DeckRepository
	keys           keyGenerator
	maxBytes       int64
	strict         bool
	logger         *logger.Logger
}

func NewImageService(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) ImageService {
	return &imageService{
		images:         storages.ImageStorage,
		cardRepository: storages.CardRepository,
		deckRepository: storages.DeckRepository,
		keys:           utils.NewUUIDGenerator(),
		maxBytes:       cfg.Storage.Images.MaxBytes,
		strict:         cfg.App.StrictOwnership,
		logger:         logger,
	}
}

// UploadCardImage stores upload.Data and returns the updated card.
//
// The type is always sniffed from the bytes and must match the declared
// one. If the card update fails the stored image is removed again.
func (s *imageService) UploadCardImage(ctx context.Context, upload models.ImageUpload) (models.Card, error) {
	log := logger.FromContext(ctx)

	if len(upload.Data) == 0 {
		return models.Card{}, ErrInvalidDataProvided
	}
	if s.maxBytes > 0 && int64(len(upload.Data)) > s.maxBytes {
		return models.Card{}, fmt.Errorf("%w: %d bytes, limit %d", ErrImageTooLarge, len(upload.Data), s.maxBytes)
	}

	contentType, ext, err := detectImageType(upload.ContentType, upload.Data)
	if err != nil {
		return models.Card{}, err
	}

	scope := store.Scope{}
	if s.strict {
		scope = store.OwnedBy(upload.UserID)
	}
	if _, err = s.deckRepository.GetDeck(ctx, upload.DeckID, scope); err != nil {
		return models.Card{}, err
	}

	key := s.keys.Generate() + ext
	if err = s.images.SaveImage(ctx, models.Image{Key: key, ContentType: contentType, Data: upload.Data}); err != nil {
		log.Err(err).Str("key", key).Msg("saving image failed")
		return models.Card{}, err
	}

	card, err := s.cardRepository.UpdateCard(ctx, upload.CardID, upload.DeckID, scope, models.CardUpdateRequest{
		ImageURL: models.Some(models.ImageURL(key)),
	})
	if err != nil {
		if delErr := s.images.DeleteImage(ctx, key); delErr != nil {
			log.Err(delErr).Str("key", key).Msg("orphaned image left behind")
		}
		return models.Card{}, err
	}

	log.Debug().Int64("card_id", card.ID).Str("key", key).Msg("card image uploaded")
	return card, nil
}

func (s *imageService) GetImage(ctx context.Context, key string) (models.Image, error) {
	return s.images.GetImage(ctx, key)
}

// detectImageType sniffs data and returns its content type and key
// extension. A declared type other than a generic binary one must agree
// with the sniffed type.
func detectImageType(declared string, data []byte) (string, string, error) {
	sniffed := http.DetectContentType(data)
	ext, ok := models.ImageExtension(sniffed)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedImageType, sniffed)
	}

	mediaType, _, _ := strings.Cut(declared, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mediaType == "" || mediaType == models.DefaultImageContentType {
		return models.ImageContentType(ext), ext, nil
	}

	if declaredExt, known := models.ImageExtension(mediaType); !known || declaredExt != ext {
		return "", "", fmt.Errorf("%w: declared %s, content is %s", ErrUnsupportedImageType, mediaType, sniffed)
	}
	return models.ImageContentType(ext), ext, nil
}
