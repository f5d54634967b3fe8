package store

import (
	"context"

	"github.com/MKhiriev/go-flashcards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdateRequest) (models.User, error)
}

// FolderRepository reads and writes folders. Every method is scoped to the
// owning user; a folder of another user behaves exactly like a missing one.
type FolderRepository interface {
	ListFolders(ctx context.Context, userID int64) ([]models.Folder, error)
	GetFolder(ctx context.Context, id, userID int64) (models.Folder, error)
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	UpdateFolder(ctx context.Context, id, userID int64, update models.FolderUpdateRequest) (models.Folder, error)
	DeleteFolder(ctx context.Context, id, userID int64) error
}

// DeckRepository reads and writes decks. Methods taking a [Scope] only see
// decks inside the scope's folders when the scope is restricted.
type DeckRepository interface {
	ListDecks(ctx context.Context, scope Scope) ([]models.Deck, error)
	ListFolderDecks(ctx context.Context, folderID int64) ([]models.Deck, error)
	GetDeck(ctx context.Context, id int64, scope Scope) (models.Deck, error)
	CreateDeck(ctx context.Context, deck models.Deck) (models.Deck, error)
	UpdateDeck(ctx context.Context, id int64, scope Scope, update models.DeckUpdateRequest) (models.Deck, error)
	DeleteDeck(ctx context.Context, id int64, scope Scope) error
	DeleteFolderDeck(ctx context.Context, deckID, folderID, userID int64) error
}

// CardRepository reads and writes cards inside a deck.
type CardRepository interface {
	ListCards(ctx context.Context, deckID int64) ([]models.Card, error)
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)
	UpdateCard(ctx context.Context, id, deckID int64, scope Scope, update models.CardUpdateRequest) (models.Card, error)
	DeleteCard(ctx context.Context, id, deckID int64, scope Scope) error
}

// ImageStorage keeps card pictures as opaque blobs under a key.
type ImageStorage interface {
	SaveImage(ctx context.Context, image models.Image) error
	GetImage(ctx context.Context, key string) (models.Image, error)
	DeleteImage(ctx context.Context, key string) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
