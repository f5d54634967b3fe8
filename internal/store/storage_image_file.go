package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/models"
)

// fileImageStorage keeps each image as one file named by its key.
type fileImageStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileImageStorage creates dir if needed and stores images inside it.
func NewFileImageStorage(dir string, log *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating image dir: %w", err)
	}

	log.Debug().Str("dir", dir).Msg("creating file image storage")
	return &fileImageStorage{dir: dir, logger: log}, nil
}

// SaveImage writes to a temp file and renames it into place, so readers
// never observe a partial image.
func (s *fileImageStorage) SaveImage(ctx context.Context, image models.Image) error {
	if err := validateImageKey(image.Key); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoringImage, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(image.Data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrStoringImage, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoringImage, err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, image.Key)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileImageStorage.SaveImage").Str("key", image.Key).Msg("failed to store image")
		return fmt.Errorf("%w: %w", ErrStoringImage, err)
	}

	return nil
}

func (s *fileImageStorage) GetImage(ctx context.Context, key string) (models.Image, error) {
	if err := validateImageKey(key); err != nil {
		return models.Image{}, ErrImageNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return models.Image{}, ErrImageNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileImageStorage.GetImage").Str("key", key).Msg("failed to read image")
		return models.Image{}, fmt.Errorf("error reading image: %w", err)
	}

	return models.Image{Key: key, ContentType: models.ImageContentType(key), Data: data}, nil
}

func (s *fileImageStorage) DeleteImage(_ context.Context, key string) error {
	if err := validateImageKey(key); err != nil {
		return ErrImageNotFound
	}

	err := os.Remove(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrImageNotFound
	}
	return err
}
