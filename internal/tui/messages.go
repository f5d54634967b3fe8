package tui

import (
	"github.com/MKhiriev/go-flashcards/internal/study"
	"github.com/MKhiriev/go-flashcards/models"
)

// NavigateTo asks [RootModel] to switch the active page. A non-nil Payload is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult is produced by the login and register pages.
type AuthResult struct {
	Session models.LocalSession
	Err     error
}

type foldersLoadedMsg struct {
	folders []models.Folder
	err     error
}

type decksLoadedMsg struct {
	decks []models.Deck
	err   error
}

type cardsLoadedMsg struct {
	cards []models.Card
	err   error
}

type itemSavedMsg struct {
	what string
	err  error
}

type itemDeletedMsg struct {
	err error
}

type sessionStartedMsg struct {
	session *study.Session
	err     error
}

type logoutDoneMsg struct {
	err error
}

type serverVersionMsg struct {
	version string
	err     error
}
