package service

import (
	"context"

	"github.com/MKhiriev/go-flashcards/internal/study"
	"github.com/MKhiriev/go-flashcards/models"
)

// ClientAuthService defines the terminal client's contract for signing in and
// keeping the session across runs.
type ClientAuthService interface {
	// Register creates an account on the server, stores the returned session
	// locally and makes the adapter use its token.
	Register(ctx context.Context, req models.RegisterRequest) (models.LocalSession, error)

	// Login authenticates against the server, stores the session locally and
	// makes the adapter use its token. Bad credentials yield ErrWrongPassword.
	Login(ctx context.Context, req models.LoginRequest) (models.LocalSession, error)

	// RestoreSession loads the locally stored session and checks that its
	// token is still accepted. An expired or rejected token is removed and
	// ErrNotLoggedIn is returned.
	RestoreSession(ctx context.Context) (models.LocalSession, error)

	// Logout forgets the local session and the adapter token.
	Logout(ctx context.Context) error
}

// ClientLibraryService browses and edits folders, decks and cards on the
// server on behalf of the logged-in user.
type ClientLibraryService interface {
	ListFolders(ctx context.Context) ([]models.Folder, error)
	CreateFolder(ctx context.Context, req models.FolderCreateRequest) (models.Folder, error)
	DeleteFolder(ctx context.Context, folderID int64) error

	ListFolderDecks(ctx context.Context, folderID int64) ([]models.Deck, error)
	ListDecks(ctx context.Context) ([]models.Deck, error)
	CreateDeck(ctx context.Context, req models.DeckCreateRequest) (models.Deck, error)
	DeleteDeck(ctx context.Context, deckID int64) error

	ListCards(ctx context.Context, deckID int64) ([]models.Card, error)
	CreateCard(ctx context.Context, deckID int64, req models.CardCreateRequest) (models.Card, error)
	DeleteCard(ctx context.Context, deckID, cardID int64) error
}

// ClientStudyService starts study sessions.
type ClientStudyService interface {
	// StartSession fetches the deck's cards once and returns a session over
	// that snapshot. An empty deck yields study.ErrEmptyDeck.
	StartSession(ctx context.Context, deckID int64) (*study.Session, error)
}

// ClientAppInfoService reports facts about the server the client talks to.
type ClientAppInfoService interface {
	ServerVersion(ctx context.Context) (string, error)
}
