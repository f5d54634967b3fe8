package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/validators"
	"github.com/MKhiriev/go-flashcards/models"
)

// deckService implements DeckService.
//
// Folder routes are always checked against folder ownership. Direct deck
// routes are restricted to the caller's folders only when strict is set.
type deckService struct {
	deckRepository   store.DeckRepository
	folderRepository store.FolderRepository
	validator        validators.Validator
	strict           bool
	logger           *logger.Logger
}

func NewDeckService(deckRepository store.DeckRepository, folderRepository store.FolderRepository, strict bool, logger *logger.Logger) DeckService {
	logger.Debug().Bool("strict_ownership", strict).Msg("deck service created")
	return &deckService{
		deckRepository:   deckRepository,
		folderRepository: folderRepository,
		validator:        validators.NewRequestValidator(),
		strict:           strict,
		logger:           logger,
	}
}

// scope returns the repository scope for direct deck access.
func (s *deckService) scope(userID int64) store.Scope {
	if s.strict {
		return store.OwnedBy(userID)
	}
	return store.Scope{}
}

func (s *deckService) ListFolderDecks(ctx context.Context, folderID, userID int64) ([]models.Deck, error) {
	if _, err := s.folderRepository.GetFolder(ctx, folderID, userID); err != nil {
		return nil, err
	}
	return s.deckRepository.ListFolderDecks(ctx, folderID)
}

// CreateFolderDeck creates a deck inside folderID. The folder from the path
// wins over any folder_id in the body.
func (s *deckService) CreateFolderDeck(ctx context.Context, folderID, userID int64, req models.DeckCreateRequest) (models.Deck, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Deck{}, err
	}
	if _, err := s.folderRepository.GetFolder(ctx, folderID, userID); err != nil {
		return models.Deck{}, err
	}

	return s.create(ctx, models.Deck{
		FolderID:    &folderID,
		Title:       req.Title,
		Description: req.Description,
	})
}

func (s *deckService) DeleteFolderDeck(ctx context.Context, deckID, folderID, userID int64) error {
	return s.deckRepository.DeleteFolderDeck(ctx, deckID, folderID, userID)
}

func (s *deckService) ListDecks(ctx context.Context, userID int64) ([]models.Deck, error) {
	return s.deckRepository.ListDecks(ctx, s.scope(userID))
}

func (s *deckService) GetDeck(ctx context.Context, id, userID int64) (models.Deck, error) {
	return s.deckRepository.GetDeck(ctx, id, s.scope(userID))
}

// CreateDeck creates a deck from the flat route. Under strict ownership the
// deck must go into one of the caller's folders.
func (s *deckService) CreateDeck(ctx context.Context, userID int64, req models.DeckCreateRequest) (models.Deck, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Deck{}, err
	}

	if s.strict {
		if req.FolderID == nil {
			return models.Deck{}, ErrFolderIDRequired
		}
		if _, err := s.folderRepository.GetFolder(ctx, *req.FolderID, userID); err != nil {
			return models.Deck{}, err
		}
	}

	return s.create(ctx, models.Deck{
		FolderID:    req.FolderID,
		Title:       req.Title,
		Description: req.Description,
	})
}

func (s *deckService) UpdateDeck(ctx context.Context, id, userID int64, update models.DeckUpdateRequest) (models.Deck, error) {
	if update.IsEmpty() {
		return models.Deck{}, ErrNothingToUpdate
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Deck{}, err
	}

	return s.deckRepository.UpdateDeck(ctx, id, s.scope(userID), update)
}

func (s *deckService) DeleteDeck(ctx context.Context, id, userID int64) error {
	return s.deckRepository.DeleteDeck(ctx, id, s.scope(userID))
}

func (s *deckService) create(ctx context.Context, deck models.Deck) (models.Deck, error) {
	created, err := s.deckRepository.CreateDeck(ctx, deck)
	if err != nil {
		return models.Deck{}, fmt.Errorf("create deck: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("deck_id", created.ID).Msg("deck created")
	return created, nil
}
