// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the terminal client to talk
// to the go-flashcards server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships a REST
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-flashcards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-flashcards server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the issued token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login exchanges credentials for a token. On success the issued token
	// is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Me returns the profile of the token's owner.
	Me(ctx context.Context) (models.User, error)

	ListFolders(ctx context.Context) ([]models.Folder, error)
	CreateFolder(ctx context.Context, req models.FolderCreateRequest) (models.Folder, error)
	DeleteFolder(ctx context.Context, folderID int64) error

	// ListFolderDecks returns the decks inside one folder.
	ListFolderDecks(ctx context.Context, folderID int64) ([]models.Deck, error)

	// ListDecks returns every deck visible to the caller.
	ListDecks(ctx context.Context) ([]models.Deck, error)

	// CreateDeck creates a deck, inside req.FolderID when it is set.
	CreateDeck(ctx context.Context, req models.DeckCreateRequest) (models.Deck, error)
	DeleteDeck(ctx context.Context, deckID int64) error

	// ListCards returns the deck's cards in study order.
	ListCards(ctx context.Context, deckID int64) ([]models.Card, error)
	CreateCard(ctx context.Context, deckID int64, req models.CardCreateRequest) (models.Card, error)
	DeleteCard(ctx context.Context, deckID, cardID int64) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
