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

type deckRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewDeckRepository(db *DB, logger *logger.Logger) DeckRepository {
	logger.Debug().Msg("creating deck repository")
	return &deckRepository{
		db:     db,
		logger: logger,
	}
}

// ListDecks returns every deck visible in scope, newest first.
func (r *deckRepository) ListDecks(ctx context.Context, scope Scope) ([]models.Deck, error) {
	query, args, err := buildSelectDecksQuery(scope)
	if err != nil {
		return nil, err
	}

	return r.queryDecks(ctx, "*deckRepository.ListDecks", query, args...)
}

// ListFolderDecks returns the decks inside folderID. Folder ownership is the
// caller's concern.
func (r *deckRepository) ListFolderDecks(ctx context.Context, folderID int64) ([]models.Deck, error) {
	return r.queryDecks(ctx, "*deckRepository.ListFolderDecks", listFolderDecks, folderID)
}

func (r *deckRepository) GetDeck(ctx context.Context, id int64, scope Scope) (models.Deck, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDeckQuery(id, scope)
	if err != nil {
		return models.Deck{}, err
	}

	deck, err := scanDeck(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Deck{}, ErrDeckNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*deckRepository.GetDeck").Int64("deck_id", id).Msg("failed to get deck")
		return models.Deck{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deck, nil
}

// CreateDeck inserts deck. A folder id that does not exist yields
// [ErrFolderNotFound].
func (r *deckRepository) CreateDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	created, err := scanDeck(r.db.QueryRowContext(ctx, createDeck, deck.FolderID, deck.Title, deck.Description))
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Deck{}, ErrFolderNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*deckRepository.CreateDeck").Msg("failed to insert deck")
		return models.Deck{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *deckRepository) UpdateDeck(ctx context.Context, id int64, scope Scope, update models.DeckUpdateRequest) (models.Deck, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDeckQuery(id, scope, update)
	if err != nil {
		log.Err(err).Str("func", "*deckRepository.UpdateDeck").Int64("deck_id", id).Msg("failed to build query")
		return models.Deck{}, err
	}

	deck, err := scanDeck(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Deck{}, ErrDeckNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*deckRepository.UpdateDeck").Int64("deck_id", id).Msg("failed to update deck")
		return models.Deck{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deck, nil
}

func (r *deckRepository) DeleteDeck(ctx context.Context, id int64, scope Scope) error {
	query, args, err := buildDeleteDeckQuery(id, scope)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*deckRepository.DeleteDeck").Int64("deck_id", id).Msg("failed to delete deck")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, ErrDeckNotFound)
}

// DeleteFolderDeck removes deckID only if it sits in folderID and that folder
// belongs to userID.
func (r *deckRepository) DeleteFolderDeck(ctx context.Context, deckID, folderID, userID int64) error {
	res, err := r.db.ExecContext(ctx, deleteFolderDeck, deckID, folderID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*deckRepository.DeleteFolderDeck").
			Int64("deck_id", deckID).Int64("folder_id", folderID).Msg("failed to delete deck")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, ErrDeckNotFound)
}

func (r *deckRepository) queryDecks(ctx context.Context, funcName, query string, args ...any) ([]models.Deck, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	decks := make([]models.Deck, 0)
	for rows.Next() {
		var d models.Deck
		if err = rows.Scan(&d.ID, &d.FolderID, &d.Title, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan deck")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		decks = append(decks, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return decks, nil
}

func scanDeck(row *sql.Row) (models.Deck, error) {
	var d models.Deck
	err := row.Scan(&d.ID, &d.FolderID, &d.Title, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}
