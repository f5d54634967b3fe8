package http

import (
	"net/http"

	"github.com/MKhiriev/go-flashcards/internal/app"
	"github.com/MKhiriev/go-flashcards/internal/utils"
	"github.com/MKhiriev/go-flashcards/models"
)

func (h *Handler) listDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.services.DeckService.ListDecks(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, decks, http.StatusOK)
}

func (h *Handler) createDeck(w http.ResponseWriter, r *http.Request) {
	var req models.DeckCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	deck, err := h.services.DeckService.CreateDeck(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, deck, http.StatusCreated)
}

func (h *Handler) getDeck(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	deck, err := h.services.DeckService.GetDeck(r.Context(), id, userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, deck, http.StatusOK)
}

func (h *Handler) updateDeck(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.DeckUpdateRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	deck, err := h.services.DeckService.UpdateDeck(r.Context(), id, userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, deck, http.StatusOK)
}

func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.DeckService.DeleteDeck(r.Context(), id, userID(r)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgDeckDeleted, http.StatusOK)
}
