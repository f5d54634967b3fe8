package models

import "time"

// Deck is an ordered collection of cards. FolderID is nil for decks created
// outside any folder.
type Deck struct {
	ID          int64     `json:"id"`
	FolderID    *int64    `json:"folder_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeckCreateRequest is the body of POST /api/decks and
// POST /api/folders/{id}/decks. In the folder route FolderID comes from the path.
type DeckCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	FolderID    *int64  `json:"folder_id,omitempty"`
}

// DeckUpdateRequest is the body of PUT /api/decks/{id}.
type DeckUpdateRequest struct {
	Title       Optional[string] `json:"title,omitzero"`
	Description Optional[string] `json:"description,omitzero"`
}

// IsEmpty reports whether the request carries no field to update.
func (r DeckUpdateRequest) IsEmpty() bool {
	return !r.Title.Set && !r.Description.Set
}
