package models

import (
	"path"
	"strings"
)

// Image is a card picture as stored by the image storage.
type Image struct {
	Key         string
	ContentType string
	Data        []byte
}

// ImageUpload is a raw picture sent for one card.
type ImageUpload struct {
	CardID      int64
	DeckID      int64
	UserID      int64
	ContentType string
	Data        []byte
}

// ImageURLPrefix is the public path under which stored images are served.
const ImageURLPrefix = "/api/images/"

// DefaultImageContentType is reported for keys with an unknown extension.
const DefaultImageContentType = "application/octet-stream"

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageExtension returns the file extension for a supported image content
// type. Parameters such as "; charset=" are ignored.
func ImageExtension(contentType string) (string, bool) {
	mediaType, _, _ := strings.Cut(contentType, ";")
	ext, ok := imageExtensions[strings.ToLower(strings.TrimSpace(mediaType))]
	return ext, ok
}

// ImageContentType is the inverse of ImageExtension, keyed by the extension
// of an image key.
func ImageContentType(key string) string {
	ext := strings.ToLower(path.Ext(key))
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	for ct, e := range imageExtensions {
		if e == ext {
			return ct
		}
	}
	return DefaultImageContentType
}

// ImageURL is the card image_url value for a stored key.
func ImageURL(key string) string {
	return ImageURLPrefix + key
}
