package models

import "time"

// Card is a single term/definition pair inside a deck.
type Card struct {
	ID         int64     `json:"id"`
	DeckID     int64     `json:"deck_id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	ImageURL   *string   `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// CardCreateRequest is the body of POST /api/decks/{deckId}/cards.
type CardCreateRequest struct {
	Term       string  `json:"term"`
	Definition string  `json:"definition"`
	ImageURL   *string `json:"image_url,omitempty"`
}

// CardUpdateRequest is the body of PUT /api/decks/{deckId}/cards/{cardId}.
type CardUpdateRequest struct {
	Term       Optional[string] `json:"term,omitzero"`
	Definition Optional[string] `json:"definition,omitzero"`
	ImageURL   Optional[string] `json:"image_url,omitzero"`
}

// IsEmpty reports whether the request carries no field to update.
func (r CardUpdateRequest) IsEmpty() bool {
	return !r.Term.Set && !r.Definition.Set && !r.ImageURL.Set
}

