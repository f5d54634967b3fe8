package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/validators"
	"github.com/MKhiriev/go-flashcards/models"
)

type cardService struct {
	cardRepository store.CardRepository
	deckRepository store.DeckRepository
	validator      validators.Validator
	strict         bool
	logger         *logger.Logger
}

func NewCardService(cardRepository store.CardRepository, deckRepository store.DeckRepository, strict bool, logger *logger.Logger) CardService {
	return &cardService{
		cardRepository: cardRepository,
		deckRepository: deckRepository,
		validator:      validators.NewRequestValidator(),
		strict:         strict,
		logger:         logger,
	}
}

func (s *cardService) scope(userID int64) store.Scope {
	if s.strict {
		return store.OwnedBy(userID)
	}
	return store.Scope{}
}

// requireDeck fails with store.ErrDeckNotFound unless deckID is visible to userID.
func (s *cardService) requireDeck(ctx context.Context, deckID, userID int64) error {
	_, err := s.deckRepository.GetDeck(ctx, deckID, s.scope(userID))
	return err
}

// ListCards returns the cards of a deck ordered by id, the order a study
// session walks them in.
func (s *cardService) ListCards(ctx context.Context, deckID, userID int64) ([]models.Card, error) {
	if err := s.requireDeck(ctx, deckID, userID); err != nil {
		return nil, err
	}
	return s.cardRepository.ListCards(ctx, deckID)
}

func (s *cardService) CreateCard(ctx context.Context, deckID, userID int64, req models.CardCreateRequest) (models.Card, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Card{}, err
	}
	if err := s.requireDeck(ctx, deckID, userID); err != nil {
		return models.Card{}, err
	}

	card, err := s.cardRepository.CreateCard(ctx, models.Card{
		DeckID:     deckID,
		Term:       req.Term,
		Definition: req.Definition,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return models.Card{}, fmt.Errorf("create card: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("card_id", card.ID).Int64("deck_id", deckID).Msg("card created")
	return card, nil
}

func (s *cardService) UpdateCard(ctx context.Context, cardID, deckID, userID int64, update models.CardUpdateRequest) (models.Card, error) {
	if update.IsEmpty() {
		return models.Card{}, ErrNothingToUpdate
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Card{}, err
	}

	return s.cardRepository.UpdateCard(ctx, cardID, deckID, s.scope(userID), update)
}

func (s *cardService) DeleteCard(ctx context.Context, cardID, deckID, userID int64) error {
	return s.cardRepository.DeleteCard(ctx, cardID, deckID, s.scope(userID))
}
