package store

import (
	"context"

	"github.com/MKhiriev/go-flashcards/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionStorage persists the logged-in user of the terminal client.
// At most one session exists at a time.
type LocalSessionStorage interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	GetSession(ctx context.Context) (models.LocalSession, error)
	ClearSession(ctx context.Context) error
}
