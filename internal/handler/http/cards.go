package http

import (
	"net/http"

	"github.com/MKhiriev/go-flashcards/internal/app"
	"github.com/MKhiriev/go-flashcards/internal/utils"
	"github.com/MKhiriev/go-flashcards/models"
)

// cardPath reads {deckId} and, when withCard is set, {cardId}.
func cardPath(r *http.Request, withCard bool) (deckID, cardID int64, err error) {
	if deckID, err = pathID(r, "deckId"); err != nil {
		return 0, 0, err
	}
	if withCard {
		if cardID, err = pathID(r, "cardId"); err != nil {
			return 0, 0, err
		}
	}
	return deckID, cardID, nil
}

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	deckID, _, err := cardPath(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cards, err := h.services.CardService.ListCards(r.Context(), deckID, userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, cards, http.StatusOK)
}

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	deckID, _, err := cardPath(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CardCreateRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	card, err := h.services.CardService.CreateCard(r.Context(), deckID, userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, card, http.StatusCreated)
}

func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request) {
	deckID, cardID, err := cardPath(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CardUpdateRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	card, err := h.services.CardService.UpdateCard(r.Context(), cardID, deckID, userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, card, http.StatusOK)
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	deckID, cardID, err := cardPath(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CardService.DeleteCard(r.Context(), cardID, deckID, userID(r)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgCardDeleted, http.StatusOK)
}
