package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
)

// ErrInvalidImageKey is returned for keys that could escape the storage
// root or the bucket prefix.
var ErrInvalidImageKey = errors.New("invalid image key")

var imageKeyPattern = regexp.MustCompile(`^[0-9a-fA-F-]{36}\.[a-z]{3,4}$`)

// NewImageStorage returns the image backend selected by cfg.Backend.
func NewImageStorage(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStorage, error) {
	switch cfg.Backend {
	case config.ImagesBackendFile, "":
		return NewFileImageStorage(cfg.Dir, log)
	case config.ImagesBackendS3:
		return NewS3ImageStorage(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown image backend %q", cfg.Backend)
	}
}

func validateImageKey(key string) error {
	if !imageKeyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidImageKey, key)
	}
	return nil
}
