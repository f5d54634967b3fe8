package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageExtension(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
		ok          bool
	}{
		{"image/png", ".png", true},
		{"image/jpeg", ".jpg", true},
		{"IMAGE/GIF", ".gif", true},
		{"image/webp; q=1", ".webp", true},
		{"image/svg+xml", "", false},
		{"text/plain", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got, ok := ImageExtension(tt.contentType)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageContentType(t *testing.T) {
	assert.Equal(t, "image/png", ImageContentType("0190.png"))
	assert.Equal(t, "image/jpeg", ImageContentType("0190.JPG"))
	assert.Equal(t, "image/jpeg", ImageContentType("0190.jpeg"))
	assert.Equal(t, DefaultImageContentType, ImageContentType("0190"))
	assert.Equal(t, DefaultImageContentType, ImageContentType("0190.svg"))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "/api/images/abc.png", ImageURL("abc.png"))
}
