package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every API route lives under /api; all but
// registration, login, image download and version require a bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.root)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/images/{key}", h.getImage)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Put("/api/auth/me", h.updateMe)

		r.Get("/api/folders", h.listFolders)
		r.Post("/api/folders", h.createFolder)
		r.Get("/api/folders/{id}", h.getFolder)
		r.Put("/api/folders/{id}", h.updateFolder)
		r.Delete("/api/folders/{id}", h.deleteFolder)
		r.Get("/api/folders/{id}/decks", h.listFolderDecks)
		r.Post("/api/folders/{id}/decks", h.createFolderDeck)
		r.Delete("/api/folders/{folderId}/decks/{deckId}", h.deleteFolderDeck)

		r.Get("/api/decks", h.listDecks)
		r.Post("/api/decks", h.createDeck)
		r.Get("/api/decks/{id}", h.getDeck)
		r.Put("/api/decks/{id}", h.updateDeck)
		r.Delete("/api/decks/{id}", h.deleteDeck)

		r.Get("/api/decks/{deckId}/cards", h.listCards)
		r.Post("/api/decks/{deckId}/cards", h.createCard)
		r.Put("/api/decks/{deckId}/cards/{cardId}", h.updateCard)
		r.Delete("/api/decks/{deckId}/cards/{cardId}", h.deleteCard)
		r.With(h.withContentDigest).Put("/api/decks/{deckId}/cards/{cardId}/image", h.uploadCardImage)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
