package service

import (
	"context"

	"github.com/MKhiriev/go-flashcards/internal/adapter"
	"github.com/MKhiriev/go-flashcards/internal/study"
	"github.com/MKhiriev/go-flashcards/models"
)

// clientLibraryService forwards library calls to the server and turns
// transport errors into the sentinels used on the server side.
type clientLibraryService struct {
	adapter adapter.ServerAdapter
}

func NewClientLibraryService(serverAdapter adapter.ServerAdapter) ClientLibraryService {
	return &clientLibraryService{adapter: serverAdapter}
}

func (s *clientLibraryService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	folders, err := s.adapter.ListFolders(ctx)
	return folders, mapAdapterError(err)
}

func (s *clientLibraryService) CreateFolder(ctx context.Context, req models.FolderCreateRequest) (models.Folder, error) {
	folder, err := s.adapter.CreateFolder(ctx, req)
	return folder, mapAdapterError(err)
}

func (s *clientLibraryService) DeleteFolder(ctx context.Context, folderID int64) error {
	return mapAdapterError(s.adapter.DeleteFolder(ctx, folderID))
}

func (s *clientLibraryService) ListFolderDecks(ctx context.Context, folderID int64) ([]models.Deck, error) {
	decks, err := s.adapter.ListFolderDecks(ctx, folderID)
	return decks, mapAdapterError(err)
}

func (s *clientLibraryService) ListDecks(ctx context.Context) ([]models.Deck, error) {
	decks, err := s.adapter.ListDecks(ctx)
	return decks, mapAdapterError(err)
}

func (s *clientLibraryService) CreateDeck(ctx context.Context, req models.DeckCreateRequest) (models.Deck, error) {
	deck, err := s.adapter.CreateDeck(ctx, req)
	return deck, mapAdapterError(err)
}

func (s *clientLibraryService) DeleteDeck(ctx context.Context, deckID int64) error {
	return mapAdapterError(s.adapter.DeleteDeck(ctx, deckID))
}

func (s *clientLibraryService) ListCards(ctx context.Context, deckID int64) ([]models.Card, error) {
	cards, err := s.adapter.ListCards(ctx, deckID)
	return cards, mapAdapterError(err)
}

func (s *clientLibraryService) CreateCard(ctx context.Context, deckID int64, req models.CardCreateRequest) (models.Card, error) {
	card, err := s.adapter.CreateCard(ctx, deckID, req)
	return card, mapAdapterError(err)
}

func (s *clientLibraryService) DeleteCard(ctx context.Context, deckID, cardID int64) error {
	return mapAdapterError(s.adapter.DeleteCard(ctx, deckID, cardID))
}

type clientStudyService struct {
	library ClientLibraryService
}

func NewClientStudyService(library ClientLibraryService) ClientStudyService {
	return &clientStudyService{library: library}
}

func (s *clientStudyService) StartSession(ctx context.Context, deckID int64) (*study.Session, error) {
	cards, err := s.library.ListCards(ctx, deckID)
	if err != nil {
		return nil, err
	}
	return study.NewSession(cards)
}
