package store

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-flashcards/models"
)

const (
	userColumns   = `id, username, email, password, created_at`
	folderColumns = `id, user_id, title, description, created_at, updated_at`
	deckColumns   = `id, folder_id, title, description, created_at, updated_at`
	cardColumns   = `id, deck_id, term, definition, image_url, created_at`
)

const (
	createUser = `INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;`

	listFolders = `SELECT ` + folderColumns + `
		FROM folders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC;`

	getFolder = `SELECT ` + folderColumns + `
		FROM folders
		WHERE id = $1 AND user_id = $2;`

	createFolder = `INSERT INTO folders (user_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING ` + folderColumns + `;`

	deleteFolder = `DELETE FROM folders
		WHERE id = $1 AND user_id = $2;`

	listFolderDecks = `SELECT ` + deckColumns + `
		FROM decks
		WHERE folder_id = $1
		ORDER BY created_at DESC, id DESC;`

	createDeck = `INSERT INTO decks (folder_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING ` + deckColumns + `;`

	deleteFolderDeck = `DELETE FROM decks
		WHERE id = $1
		  AND folder_id = $2
		  AND folder_id IN (SELECT id FROM folders WHERE user_id = $3);`

	listCards = `SELECT ` + cardColumns + `
		FROM cards
		WHERE deck_id = $1
		ORDER BY id;`

	createCard = `INSERT INTO cards (deck_id, term, definition, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + cardColumns + `;`
)

// ownedFolderIDs and ownedDeckIDs restrict a statement to rows reachable
// through folders of one user.
const (
	ownedFolderIDs = `folder_id IN (SELECT id FROM folders WHERE user_id = ?)`
	ownedDeckIDs   = `deck_id IN (SELECT d.id FROM decks d JOIN folders f ON f.id = d.folder_id WHERE f.user_id = ?)`
)

var errNoColumnsToUpdate = errors.New("no columns to update")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildUpdateUserQuery(id int64, update models.UserUpdateRequest) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, errNoColumnsToUpdate)
	}

	b := psql.Update("users")
	b = setOptional(b, "username", update.Username)
	b = setOptional(b, "email", update.Email)

	return finishUpdate(b.Where("id = ?", id).Suffix("RETURNING " + userColumns))
}

func buildUpdateFolderQuery(id, userID int64, update models.FolderUpdateRequest) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, errNoColumnsToUpdate)
	}

	b := psql.Update("folders")
	b = setOptional(b, "title", update.Title)
	b = setOptional(b, "description", update.Description)
	b = b.Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where("id = ?", id).
		Where("user_id = ?", userID)

	return finishUpdate(b.Suffix("RETURNING " + folderColumns))
}

func buildUpdateDeckQuery(id int64, scope Scope, update models.DeckUpdateRequest) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, errNoColumnsToUpdate)
	}

	b := psql.Update("decks")
	b = setOptional(b, "title", update.Title)
	b = setOptional(b, "description", update.Description)
	b = b.Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where("id = ?", id)
	if scope.Restricted() {
		b = b.Where(ownedFolderIDs, scope.UserID)
	}

	return finishUpdate(b.Suffix("RETURNING " + deckColumns))
}

func buildUpdateCardQuery(id, deckID int64, scope Scope, update models.CardUpdateRequest) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, errNoColumnsToUpdate)
	}

	b := psql.Update("cards")
	b = setOptional(b, "term", update.Term)
	b = setOptional(b, "definition", update.Definition)
	b = setOptional(b, "image_url", update.ImageURL)
	b = b.Where("id = ?", id).Where("deck_id = ?", deckID)
	if scope.Restricted() {
		b = b.Where(ownedDeckIDs, scope.UserID)
	}

	return finishUpdate(b.Suffix("RETURNING " + cardColumns))
}

func buildSelectDecksQuery(scope Scope) (string, []any, error) {
	b := deckSelect(scope).OrderBy("d.created_at DESC", "d.id DESC")

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectDeckQuery(id int64, scope Scope) (string, []any, error) {
	query, args, err := deckSelect(scope).Where("d.id = ?", id).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteDeckQuery(id int64, scope Scope) (string, []any, error) {
	b := psql.Delete("decks").Where("id = ?", id)
	if scope.Restricted() {
		b = b.Where(ownedFolderIDs, scope.UserID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteCardQuery(id, deckID int64, scope Scope) (string, []any, error) {
	b := psql.Delete("cards").Where("id = ?", id).Where("deck_id = ?", deckID)
	if scope.Restricted() {
		b = b.Where(ownedDeckIDs, scope.UserID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func deckSelect(scope Scope) sq.SelectBuilder {
	b := psql.Select(
		"d.id", "d.folder_id", "d.title", "d.description", "d.created_at", "d.updated_at",
	).From("decks d")

	if scope.Restricted() {
		b = b.Join("folders f ON f.id = d.folder_id").Where("f.user_id = ?", scope.UserID)
	}

	return b
}

// setOptional adds column to the SET list when o is present; null clears it.
func setOptional(b sq.UpdateBuilder, column string, o models.Optional[string]) sq.UpdateBuilder {
	if !o.Set {
		return b
	}
	if o.Null {
		return b.Set(column, nil)
	}
	return b.Set(column, o.Value)
}

func finishUpdate(b sq.UpdateBuilder) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
