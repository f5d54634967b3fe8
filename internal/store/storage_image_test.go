package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/models"
)

const testImageKey = "0190f1d2-7b8c-7def-8123-456789abcdef.png"

func TestValidateImageKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{key: testImageKey, valid: true},
		{key: "0190f1d2-7b8c-7def-8123-456789abcdef.webp", valid: true},
		{key: "../etc/passwd", valid: false},
		{key: "0190f1d2-7b8c-7def-8123-456789abcdef", valid: false},
		{key: "0190f1d2/7b8c-7def-8123-456789abcdef.png", valid: false},
		{key: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := validateImageKey(tt.key)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidImageKey)
			}
		})
	}
}

func TestNewImageStorage_UnknownBackend(t *testing.T) {
	_, err := NewImageStorage(context.Background(), config.Images{Backend: "ftp"}, logger.Nop())
	assert.Error(t, err)
}

func TestNewImageStorage_DefaultsToFile(t *testing.T) {
	storage, err := NewImageStorage(context.Background(), config.Images{Dir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &fileImageStorage{}, storage)
}

// ─────────────────────────────────────────────
// file storage
// ─────────────────────────────────────────────

func TestFileImageStorage_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	storage, err := NewFileImageStorage(dir, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	data := []byte("\x89PNG fake")
	require.NoError(t, storage.SaveImage(ctx, models.Image{Key: testImageKey, ContentType: "image/png", Data: data}))

	img, err := storage.GetImage(ctx, testImageKey)
	require.NoError(t, err)
	assert.Equal(t, data, img.Data)
	assert.Equal(t, "image/png", img.ContentType)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")

	require.NoError(t, storage.DeleteImage(ctx, testImageKey))
	_, err = storage.GetImage(ctx, testImageKey)
	assert.ErrorIs(t, err, ErrImageNotFound)
	assert.ErrorIs(t, storage.DeleteImage(ctx, testImageKey), ErrImageNotFound)
}

func TestFileImageStorage_RejectsBadKeys(t *testing.T) {
	storage, err := NewFileImageStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	err = storage.SaveImage(ctx, models.Image{Key: "../x.png", Data: []byte("x")})
	assert.ErrorIs(t, err, ErrInvalidImageKey)

	_, err = storage.GetImage(ctx, "../../secret")
	assert.ErrorIs(t, err, ErrImageNotFound)
}

// ─────────────────────────────────────────────
// s3 storage
// ─────────────────────────────────────────────

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
	getErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:        io.NopCloser(bytes.NewReader(data)),
		ContentType: aws.String(f.types[aws.ToString(in.Key)]),
	}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3ImageStorage_RoundTrip(t *testing.T) {
	client := newFakeS3()
	storage := newS3ImageStorage(client, "cards", logger.Nop())
	ctx := context.Background()

	require.NoError(t, storage.SaveImage(ctx, models.Image{Key: testImageKey, ContentType: "image/png", Data: []byte("png")}))
	assert.Equal(t, []byte("png"), client.objects[testImageKey])

	img, err := storage.GetImage(ctx, testImageKey)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, []byte("png"), img.Data)

	require.NoError(t, storage.DeleteImage(ctx, testImageKey))
	_, err = storage.GetImage(ctx, testImageKey)
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestS3ImageStorage_GetErrors(t *testing.T) {
	client := newFakeS3()
	client.getErr = errors.New("throttled")
	storage := newS3ImageStorage(client, "cards", logger.Nop())

	_, err := storage.GetImage(context.Background(), testImageKey)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrImageNotFound)

	_, err = storage.GetImage(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrImageNotFound)
}
