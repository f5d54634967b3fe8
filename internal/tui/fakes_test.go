package tui

import (
	"context"

	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/internal/study"
	"github.com/MKhiriev/go-flashcards/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type fakeAuth struct {
	service.ClientAuthService
	login    func(models.LoginRequest) (models.LocalSession, error)
	register func(models.RegisterRequest) (models.LocalSession, error)
	logouts  int
}

func (f *fakeAuth) Login(_ context.Context, req models.LoginRequest) (models.LocalSession, error) {
	return f.login(req)
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (models.LocalSession, error) {
	return f.register(req)
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	return nil
}

// fakeLibrary keeps an in-memory library. Errors set in failWith are
// returned by every call.
type fakeLibrary struct {
	folders  []models.Folder
	decks    map[int64][]models.Deck
	cards    map[int64][]models.Card
	failWith error

	createdFolders []models.FolderCreateRequest
	createdDecks   []models.DeckCreateRequest
	createdCards   []models.CardCreateRequest
	deleted        []string
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{
		folders: []models.Folder{{ID: 1, Title: "Biology"}, {ID: 2, Title: "History"}},
		decks: map[int64][]models.Deck{
			1: {{ID: 10, Title: "Cells"}},
			2: {{ID: 20, Title: "Rome"}},
		},
		cards: map[int64][]models.Card{
			10: {
				{ID: 100, DeckID: 10, Term: "Mitochondria", Definition: "Powerhouse of the cell"},
				{ID: 101, DeckID: 10, Term: "Ribosome", Definition: "Makes proteins"},
			},
		},
	}
}

func (f *fakeLibrary) ListFolders(context.Context) ([]models.Folder, error) {
	return f.folders, f.failWith
}

func (f *fakeLibrary) CreateFolder(_ context.Context, req models.FolderCreateRequest) (models.Folder, error) {
	f.createdFolders = append(f.createdFolders, req)
	return models.Folder{Title: req.Title}, f.failWith
}

func (f *fakeLibrary) DeleteFolder(context.Context, int64) error {
	f.deleted = append(f.deleted, "folder")
	return f.failWith
}

func (f *fakeLibrary) ListFolderDecks(_ context.Context, folderID int64) ([]models.Deck, error) {
	return f.decks[folderID], f.failWith
}

func (f *fakeLibrary) ListDecks(context.Context) ([]models.Deck, error) {
	var all []models.Deck
	for _, id := range []int64{1, 2} {
		all = append(all, f.decks[id]...)
	}
	return all, f.failWith
}

func (f *fakeLibrary) CreateDeck(_ context.Context, req models.DeckCreateRequest) (models.Deck, error) {
	f.createdDecks = append(f.createdDecks, req)
	return models.Deck{Title: req.Title}, f.failWith
}

func (f *fakeLibrary) DeleteDeck(context.Context, int64) error {
	f.deleted = append(f.deleted, "deck")
	return f.failWith
}

func (f *fakeLibrary) ListCards(_ context.Context, deckID int64) ([]models.Card, error) {
	return f.cards[deckID], f.failWith
}

func (f *fakeLibrary) CreateCard(_ context.Context, _ int64, req models.CardCreateRequest) (models.Card, error) {
	f.createdCards = append(f.createdCards, req)
	return models.Card{Term: req.Term}, f.failWith
}

func (f *fakeLibrary) DeleteCard(context.Context, int64, int64) error {
	f.deleted = append(f.deleted, "card")
	return f.failWith
}

type fakeStudy struct {
	library *fakeLibrary
}

func (f *fakeStudy) StartSession(ctx context.Context, deckID int64) (*study.Session, error) {
	cards, err := f.library.ListCards(ctx, deckID)
	if err != nil {
		return nil, err
	}
	return study.NewSession(cards)
}

func newTestServices() (*service.ClientServices, *fakeAuth, *fakeLibrary) {
	auth := &fakeAuth{}
	library := newFakeLibrary()
	return &service.ClientServices{
		AuthService:    auth,
		LibraryService: library,
		StudyService:   &fakeStudy{library: library},
	}, auth, library
}

// ─────────────────────────────────────────────
// Key helpers
// ─────────────────────────────────────────────

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runeKey(string(r)))
	}
	return m
}
