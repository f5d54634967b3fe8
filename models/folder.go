package models

import "time"

// Folder groups decks and belongs to exactly one user. The owner never changes
// after creation.
type Folder struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FolderCreateRequest is the body of POST /api/folders.
type FolderCreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// FolderUpdateRequest is the body of PUT /api/folders/{id}.
//
// An absent field keeps its stored value, an explicit null clears the
// description and an empty string is stored as is.
type FolderUpdateRequest struct {
	Title       Optional[string] `json:"title,omitzero"`
	Description Optional[string] `json:"description,omitzero"`
}

// IsEmpty reports whether the request carries no field to update.
func (r FolderUpdateRequest) IsEmpty() bool {
	return !r.Title.Set && !r.Description.Set
}
