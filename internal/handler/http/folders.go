package http

import (
	"net/http"

	"github.com/MKhiriev/go-flashcards/internal/app"
	"github.com/MKhiriev/go-flashcards/internal/utils"
	"github.com/MKhiriev/go-flashcards/models"
)

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.services.FolderService.ListFolders(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, folders, http.StatusOK)
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	var req models.FolderCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	folder, err := h.services.FolderService.CreateFolder(r.Context(), userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, folder, http.StatusCreated)
}

func (h *Handler) getFolder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	folder, err := h.services.FolderService.GetFolder(r.Context(), id, userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, folder, http.StatusOK)
}

func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.FolderUpdateRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	folder, err := h.services.FolderService.UpdateFolder(r.Context(), id, userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, folder, http.StatusOK)
}

func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.FolderService.DeleteFolder(r.Context(), id, userID(r)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgFolderDeleted, http.StatusOK)
}

func (h *Handler) listFolderDecks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	decks, err := h.services.DeckService.ListFolderDecks(r.Context(), id, userID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, decks, http.StatusOK)
}

func (h *Handler) createFolderDeck(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.DeckCreateRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	deck, err := h.services.DeckService.CreateFolderDeck(r.Context(), id, userID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, deck, http.StatusCreated)
}

func (h *Handler) deleteFolderDeck(w http.ResponseWriter, r *http.Request) {
	folderID, err := pathID(r, "folderId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	deckID, err := pathID(r, "deckId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.DeckService.DeleteFolderDeck(r.Context(), deckID, folderID, userID(r)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgDeckDeleted, http.StatusOK)
}
