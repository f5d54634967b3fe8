package service

import (
	"context"

	"github.com/MKhiriev/go-flashcards/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService serves the caller's own profile.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.UserUpdateRequest) (models.User, error)
}

// FolderService exposes folders of one user. A folder owned by somebody else
// is reported as store.ErrFolderNotFound.
type FolderService interface {
	ListFolders(ctx context.Context, userID int64) ([]models.Folder, error)
	GetFolder(ctx context.Context, id, userID int64) (models.Folder, error)
	CreateFolder(ctx context.Context, userID int64, req models.FolderCreateRequest) (models.Folder, error)
	UpdateFolder(ctx context.Context, id, userID int64, update models.FolderUpdateRequest) (models.Folder, error)
	DeleteFolder(ctx context.Context, id, userID int64) error
}

// DeckService exposes decks both through their folder and directly by id.
// Direct access is ownership-checked only under strict ownership.
type DeckService interface {
	ListFolderDecks(ctx context.Context, folderID, userID int64) ([]models.Deck, error)
	CreateFolderDeck(ctx context.Context, folderID, userID int64, req models.DeckCreateRequest) (models.Deck, error)
	DeleteFolderDeck(ctx context.Context, deckID, folderID, userID int64) error

	ListDecks(ctx context.Context, userID int64) ([]models.Deck, error)
	GetDeck(ctx context.Context, id, userID int64) (models.Deck, error)
	CreateDeck(ctx context.Context, userID int64, req models.DeckCreateRequest) (models.Deck, error)
	UpdateDeck(ctx context.Context, id, userID int64, update models.DeckUpdateRequest) (models.Deck, error)
	DeleteDeck(ctx context.Context, id, userID int64) error
}

// CardService manages the cards of a deck. Every call first requires the
// deck to be visible to userID.
type CardService interface {
	ListCards(ctx context.Context, deckID, userID int64) ([]models.Card, error)
	CreateCard(ctx context.Context, deckID, userID int64, req models.CardCreateRequest) (models.Card, error)
	UpdateCard(ctx context.Context, cardID, deckID, userID int64, update models.CardUpdateRequest) (models.Card, error)
	DeleteCard(ctx context.Context, cardID, deckID, userID int64) error
}

// ImageService stores card pictures and serves them back by key.
type ImageService interface {
	UploadCardImage(ctx context.Context, upload models.ImageUpload) (models.Card, error)
	GetImage(ctx context.Context, key string) (models.Image, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
