package store

import (
	"testing"

	"github.com/MKhiriev/go-flashcards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateUserQuery(t *testing.T) {
	query, args, err := buildUpdateUserQuery(3, models.UserUpdateRequest{
		Username: models.Some("ann"),
		Email:    models.Some("ann@x.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET username = $1, email = $2 WHERE id = $3 RETURNING "+userColumns, query)
	assert.Equal(t, []any{"ann", "ann@x.com", int64(3)}, args)
}

func TestBuildUpdateFolderQuery_NullDescription(t *testing.T) {
	query, args, err := buildUpdateFolderQuery(4, 1, models.FolderUpdateRequest{
		Description: models.Null[string](),
	})

	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE folders SET description = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 AND user_id = $3 RETURNING "+folderColumns,
		query)
	assert.Equal(t, []any{nil, int64(4), int64(1)}, args)
}

func TestBuildUpdateDeckQuery(t *testing.T) {
	tests := []struct {
		name      string
		scope     Scope
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "unrestricted",
			scope:     Scope{},
			wantQuery: "UPDATE decks SET title = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 RETURNING " + deckColumns,
			wantArgs:  []any{"T", int64(8)},
		},
		{
			name:  "restricted",
			scope: OwnedBy(2),
			wantQuery: "UPDATE decks SET title = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 AND " +
				"folder_id IN (SELECT id FROM folders WHERE user_id = $3) RETURNING " + deckColumns,
			wantArgs: []any{"T", int64(8), int64(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateDeckQuery(8, tt.scope, models.DeckUpdateRequest{Title: models.Some("T")})

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildUpdateCardQuery_AllFields(t *testing.T) {
	query, args, err := buildUpdateCardQuery(1, 2, Scope{}, models.CardUpdateRequest{
		Term:       models.Some("t"),
		Definition: models.Some("d"),
		ImageURL:   models.Some("/api/images/x.png"),
	})

	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE cards SET term = $1, definition = $2, image_url = $3 WHERE id = $4 AND deck_id = $5 RETURNING "+cardColumns,
		query)
	assert.Equal(t, []any{"t", "d", "/api/images/x.png", int64(1), int64(2)}, args)
}

func TestBuildUpdateQueries_Empty(t *testing.T) {
	_, _, err := buildUpdateUserQuery(1, models.UserUpdateRequest{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
	assert.ErrorIs(t, err, errNoColumnsToUpdate)

	_, _, err = buildUpdateFolderQuery(1, 1, models.FolderUpdateRequest{})
	assert.ErrorIs(t, err, errNoColumnsToUpdate)

	_, _, err = buildUpdateDeckQuery(1, Scope{}, models.DeckUpdateRequest{})
	assert.ErrorIs(t, err, errNoColumnsToUpdate)

	_, _, err = buildUpdateCardQuery(1, 1, Scope{}, models.CardUpdateRequest{})
	assert.ErrorIs(t, err, errNoColumnsToUpdate)
}

func TestBuildSelectDeckQueries(t *testing.T) {
	const cols = "SELECT d.id, d.folder_id, d.title, d.description, d.created_at, d.updated_at FROM decks d"

	query, args, err := buildSelectDecksQuery(Scope{})
	require.NoError(t, err)
	assert.Equal(t, cols+" ORDER BY d.created_at DESC, d.id DESC", query)
	assert.Empty(t, args)

	query, args, err = buildSelectDecksQuery(OwnedBy(4))
	require.NoError(t, err)
	assert.Equal(t, cols+" JOIN folders f ON f.id = d.folder_id WHERE f.user_id = $1 ORDER BY d.created_at DESC, d.id DESC", query)
	assert.Equal(t, []any{int64(4)}, args)

	query, args, err = buildSelectDeckQuery(9, OwnedBy(4))
	require.NoError(t, err)
	assert.Equal(t, cols+" JOIN folders f ON f.id = d.folder_id WHERE f.user_id = $1 AND d.id = $2", query)
	assert.Equal(t, []any{int64(4), int64(9)}, args)
}

func TestBuildDeleteQueries(t *testing.T) {
	query, args, err := buildDeleteDeckQuery(3, Scope{})
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM decks WHERE id = $1", query)
	assert.Equal(t, []any{int64(3)}, args)

	query, args, err = buildDeleteCardQuery(3, 4, OwnedBy(5))
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM cards WHERE id = $1 AND deck_id = $2 AND "+
		"deck_id IN (SELECT d.id FROM decks d JOIN folders f ON f.id = d.folder_id WHERE f.user_id = $3)", query)
	assert.Equal(t, []any{int64(3), int64(4), int64(5)}, args)
}

func TestScope(t *testing.T) {
	assert.False(t, Scope{}.Restricted())
	assert.True(t, OwnedBy(1).Restricted())
	assert.Equal(t, int64(1), OwnedBy(1).UserID)
}
