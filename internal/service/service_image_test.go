package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/mock"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type fixedKey string

func (k fixedKey) Generate() string { return string(k) }

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type imageMocks struct {
	images *mock.MockImageStorage
	cards  *mock.MockCardRepository
	decks  *mock.MockDeckRepository
}

func newTestImageService(t *testing.T, strict bool) (*imageService, imageMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := imageMocks{
		images: mock.NewMockImageStorage(ctrl),
		cards:  mock.NewMockCardRepository(ctrl),
		decks:  mock.NewMockDeckRepository(ctrl),
	}
	return &imageService{
		images:         m.images,
		cardRepository: m.cards,
		deckRepository: m.decks,
		keys:           fixedKey("0190f1d2-7b8c-7def-8123-456789abcdef"),
		maxBytes:       64,
		strict:         strict,
		logger:         logger.Nop(),
	}, m
}

// ─────────────────────────────────────────────
// UploadCardImage
// ─────────────────────────────────────────────

func TestImageService_UploadCardImage_Success(t *testing.T) {
	svc, m := newTestImageService(t, false)
	const key = "0190f1d2-7b8c-7def-8123-456789abcdef.png"

	gomock.InOrder(
		m.decks.EXPECT().GetDeck(gomock.Any(), int64(3), store.Scope{}).Return(models.Deck{ID: 3}, nil),
		m.images.EXPECT().SaveImage(gomock.Any(), models.Image{Key: key, ContentType: "image/png", Data: pngHeader}).Return(nil),
		m.cards.EXPECT().
			UpdateCard(gomock.Any(), int64(9), int64(3), store.Scope{}, models.CardUpdateRequest{ImageURL: models.Some("/api/images/" + key)}).
			DoAndReturn(func(_ context.Context, id, deckID int64, _ store.Scope, upd models.CardUpdateRequest) (models.Card, error) {
				return models.Card{ID: id, DeckID: deckID, ImageURL: upd.ImageURL.Ptr()}, nil
			}),
	)

	card, err := svc.UploadCardImage(context.Background(), models.ImageUpload{
		CardID: 9, DeckID: 3, UserID: 1, ContentType: "image/png", Data: pngHeader,
	})

	require.NoError(t, err)
	require.NotNil(t, card.ImageURL)
	assert.Equal(t, "/api/images/"+key, *card.ImageURL)
}

func TestImageService_UploadCardImage_SniffsUnknownContentType(t *testing.T) {
	svc, m := newTestImageService(t, true)

	m.decks.EXPECT().GetDeck(gomock.Any(), int64(3), store.OwnedBy(1)).Return(models.Deck{ID: 3}, nil)
	m.images.EXPECT().SaveImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, img models.Image) error {
			assert.Equal(t, "image/png", img.ContentType)
			assert.Equal(t, ".png", img.Key[len(img.Key)-4:])
			return nil
		})
	m.cards.EXPECT().UpdateCard(gomock.Any(), int64(9), int64(3), store.OwnedBy(1), gomock.Any()).Return(models.Card{ID: 9}, nil)

	_, err := svc.UploadCardImage(context.Background(), models.ImageUpload{
		CardID: 9, DeckID: 3, UserID: 1, ContentType: "application/octet-stream", Data: pngHeader,
	})

	require.NoError(t, err)
}

func TestImageService_UploadCardImage_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		upload  models.ImageUpload
		wantErr error
	}{
		{
			name:    "empty body",
			upload:  models.ImageUpload{CardID: 1, DeckID: 1, ContentType: "image/png"},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "too large",
			upload:  models.ImageUpload{CardID: 1, DeckID: 1, ContentType: "image/png", Data: make([]byte, 65)},
			wantErr: ErrImageTooLarge,
		},
		{
			name:    "not an image",
			upload:  models.ImageUpload{CardID: 1, DeckID: 1, ContentType: "text/plain", Data: []byte("hello world")},
			wantErr: ErrUnsupportedImageType,
		},
		{
			name:    "html declared as png",
			upload:  models.ImageUpload{CardID: 1, DeckID: 1, ContentType: "image/png", Data: []byte("<html><script>alert(1)</script></html>")},
			wantErr: ErrUnsupportedImageType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestImageService(t, false)

			_, err := svc.UploadCardImage(context.Background(), tt.upload)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestImageService_UploadCardImage_MissingDeck(t *testing.T) {
	svc, m := newTestImageService(t, false)

	m.decks.EXPECT().GetDeck(gomock.Any(), int64(3), store.Scope{}).Return(models.Deck{}, store.ErrDeckNotFound)

	_, err := svc.UploadCardImage(context.Background(), models.ImageUpload{
		CardID: 9, DeckID: 3, ContentType: "image/png", Data: pngHeader,
	})

	require.ErrorIs(t, err, store.ErrDeckNotFound)
}

func TestImageService_UploadCardImage_CardMissing_RemovesImage(t *testing.T) {
	svc, m := newTestImageService(t, false)
	const key = "0190f1d2-7b8c-7def-8123-456789abcdef.png"

	m.decks.EXPECT().GetDeck(gomock.Any(), int64(3), store.Scope{}).Return(models.Deck{ID: 3}, nil)
	m.images.EXPECT().SaveImage(gomock.Any(), gomock.Any()).Return(nil)
	m.cards.EXPECT().UpdateCard(gomock.Any(), int64(9), int64(3), store.Scope{}, gomock.Any()).Return(models.Card{}, store.ErrCardNotFound)
	m.images.EXPECT().DeleteImage(gomock.Any(), key).Return(nil)

	_, err := svc.UploadCardImage(context.Background(), models.ImageUpload{
		CardID: 9, DeckID: 3, ContentType: "image/png", Data: pngHeader,
	})

	require.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestImageService_UploadCardImage_StorageError(t *testing.T) {
	svc, m := newTestImageService(t, false)
	storageErr := errors.New("disk full")

	m.decks.EXPECT().GetDeck(gomock.Any(), int64(3), store.Scope{}).Return(models.Deck{ID: 3}, nil)
	m.images.EXPECT().SaveImage(gomock.Any(), gomock.Any()).Return(storageErr)

	_, err := svc.UploadCardImage(context.Background(), models.ImageUpload{
		CardID: 9, DeckID: 3, ContentType: "image/png", Data: pngHeader,
	})

	require.ErrorIs(t, err, storageErr)
}

// ─────────────────────────────────────────────
// GetImage
// ─────────────────────────────────────────────

func TestImageService_GetImage(t *testing.T) {
	svc, m := newTestImageService(t, false)

	m.images.EXPECT().GetImage(gomock.Any(), "a.png").Return(models.Image{Key: "a.png", ContentType: "image/png"}, nil)
	m.images.EXPECT().GetImage(gomock.Any(), "b.png").Return(models.Image{}, store.ErrImageNotFound)

	img, err := svc.GetImage(context.Background(), "a.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)

	_, err = svc.GetImage(context.Background(), "b.png")
	require.ErrorIs(t, err, store.ErrImageNotFound)
}

func TestDetectImageType(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		data     []byte
		wantCT   string
		wantExt  string
		wantErr  bool
	}{
		{name: "declared matches bytes", declared: "image/png", data: pngHeader, wantCT: "image/png", wantExt: ".png"},
		{name: "declared with params", declared: "IMAGE/PNG; charset=binary", data: pngHeader, wantCT: "image/png", wantExt: ".png"},
		{name: "nothing declared", declared: "", data: []byte("GIF89a\x01\x00\x01\x00"), wantCT: "image/gif", wantExt: ".gif"},
		{name: "octet-stream declared", declared: "application/octet-stream", data: []byte("\xff\xd8\xff\xe0\x00\x10JFIF"), wantCT: "image/jpeg", wantExt: ".jpg"},
		{name: "html declared as png", declared: "image/png", data: []byte("<html><script>alert(1)</script></html>"), wantErr: true},
		{name: "png declared as jpeg", declared: "image/jpeg", data: pngHeader, wantErr: true},
		{name: "png declared as text", declared: "text/plain", data: pngHeader, wantErr: true},
		{name: "html without declaration", declared: "", data: []byte("<html></html>"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, ext, err := detectImageType(tt.declared, tt.data)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedImageType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCT, ct)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}
