package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/models"
	"github.com/jackc/pgerrcode"
)

type cardRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	logger.Debug().Msg("creating card repository")
	return &cardRepository{
		db:     db,
		logger: logger,
	}
}

// ListCards returns the deck's cards in id order, which is the study order.
func (r *cardRepository) ListCards(ctx context.Context, deckID int64) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCards, deckID)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.ListCards").Int64("deck_id", deckID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0)
	for rows.Next() {
		var c models.Card
		if err = rows.Scan(&c.ID, &c.DeckID, &c.Term, &c.Definition, &c.ImageURL, &c.CreatedAt); err != nil {
			log.Err(err).Str("func", "*cardRepository.ListCards").Int64("deck_id", deckID).Msg("failed to scan card")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cards = append(cards, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cards, nil
}

// CreateCard inserts card. A deck that vanished in the meantime surfaces as
// a foreign key violation and is reported as [ErrDeckNotFound].
func (r *cardRepository) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	created, err := scanCard(r.db.QueryRowContext(ctx, createCard, card.DeckID, card.Term, card.Definition, card.ImageURL))
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Card{}, ErrDeckNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*cardRepository.CreateCard").
			Int64("deck_id", card.DeckID).Msg("failed to insert card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *cardRepository) UpdateCard(ctx context.Context, id, deckID int64, scope Scope, update models.CardUpdateRequest) (models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCardQuery(id, deckID, scope, update)
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.UpdateCard").Int64("card_id", id).Msg("failed to build query")
		return models.Card{}, err
	}

	card, err := scanCard(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, ErrCardNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*cardRepository.UpdateCard").Int64("card_id", id).Msg("failed to update card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return card, nil
}

func (r *cardRepository) DeleteCard(ctx context.Context, id, deckID int64, scope Scope) error {
	query, args, err := buildDeleteCardQuery(id, deckID, scope)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cardRepository.DeleteCard").Int64("card_id", id).Msg("failed to delete card")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, ErrCardNotFound)
}

func scanCard(row *sql.Row) (models.Card, error) {
	var c models.Card
	err := row.Scan(&c.ID, &c.DeckID, &c.Term, &c.Definition, &c.ImageURL, &c.CreatedAt)
	return c, err
}
