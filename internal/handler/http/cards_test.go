package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flashcards/internal/app"
	"github.com/MKhiriev/go-flashcards/models"
)

func TestCards_CRUD(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.signUp("alice", "a@x.com")
	deck := api.createDeck(token, api.createFolder(token, "Biology").ID, "Cells")
	cardsPath := "/api/decks/" + itoa(deck.ID) + "/cards"

	first := api.createCard(token, deck.ID, "Mitochondria", "Powerhouse of the cell")
	second := api.createCard(token, deck.ID, "Ribosome", "Builds proteins")
	assert.Equal(t, deck.ID, first.DeckID)
	assert.Nil(t, first.ImageURL)

	t.Run("list oldest first", func(t *testing.T) {
		rec := api.do(http.MethodGet, cardsPath, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		cards := decode[[]models.Card](t, rec)
		require.Len(t, cards, 2)
		assert.Equal(t, first.ID, cards[0].ID)
		assert.Equal(t, second.ID, cards[1].ID)
	})

	t.Run("update definition only", func(t *testing.T) {
		rec := api.do(http.MethodPut, cardsPath+"/"+itoa(first.ID), token, `{"definition":"Makes ATP"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		got := decode[models.Card](t, rec)
		assert.Equal(t, "Mitochondria", got.Term)
		assert.Equal(t, "Makes ATP", got.Definition)
	})

	t.Run("delete", func(t *testing.T) {
		rec := api.do(http.MethodDelete, cardsPath+"/"+itoa(second.ID), token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, app.MsgCardDeleted, decode[models.MessageResponse](t, rec).Message)

		rec = api.do(http.MethodGet, cardsPath, token, nil)
		assert.Len(t, decode[[]models.Card](t, rec), 1)
	})
}

func TestCards_Errors(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.signUp("alice", "a@x.com")
	deck := api.createDeck(token, api.createFolder(token, "Biology").ID, "Cells")
	other := api.createDeck(token, api.createFolder(token, "Chemistry").ID, "Acids")
	card := api.createCard(token, deck.ID, "Mitochondria", "Powerhouse of the cell")
	cardsPath := "/api/decks/" + itoa(deck.ID) + "/cards"

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantMsg    string
	}{
		{"missing term", http.MethodPost, cardsPath, `{"definition":"d"}`, http.StatusBadRequest, "term is required"},
		{"missing definition", http.MethodPost, cardsPath, `{"term":"t"}`, http.StatusBadRequest, "definition is required"},
		{"missing deck", http.MethodGet, "/api/decks/999/cards", nil, http.StatusNotFound, app.MsgDeckNotFound},
		{"create in missing deck", http.MethodPost, "/api/decks/999/cards", `{"term":"t","definition":"d"}`, http.StatusNotFound, app.MsgDeckNotFound},
		{"bad card id", http.MethodDelete, cardsPath + "/x", nil, http.StatusBadRequest, app.MsgInvalidID},
		{"nothing to update", http.MethodPut, cardsPath + "/" + itoa(card.ID), `{}`, http.StatusBadRequest, app.MsgNothingToUpdate},
		{"empty term", http.MethodPut, cardsPath + "/" + itoa(card.ID), `{"term":""}`, http.StatusBadRequest, "term is required"},
		{"card of another deck", http.MethodDelete, "/api/decks/" + itoa(other.ID) + "/cards/" + itoa(card.ID), nil, http.StatusNotFound, app.MsgCardNotFound},
		{"delete missing", http.MethodDelete, cardsPath + "/999", nil, http.StatusNotFound, app.MsgCardNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(tt.method, tt.path, token, tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, errorMessage(t, rec), tt.wantMsg)
		})
	}
}
