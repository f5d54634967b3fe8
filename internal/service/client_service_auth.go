package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-flashcards/internal/adapter"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/utils"
	"github.com/MKhiriev/go-flashcards/models"
)

type clientAuthService struct {
	sessions store.LocalSessionStorage
	adapter  adapter.ServerAdapter
	now      func() time.Time
}

func NewClientAuthService(sessions store.LocalSessionStorage, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, now: time.Now}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.LocalSession, error) {
	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.remember(ctx, resp)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LocalSession, error) {
	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.remember(ctx, resp)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.LocalSession, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.LocalSession{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("read local session: %w", err)
	}

	expiresAt, err := utils.TokenExpiresAt(session.Token)
	if err != nil || !a.now().Before(expiresAt) {
		return models.LocalSession{}, a.forget(ctx)
	}

	a.adapter.SetToken(session.Token)

	// The server may have rotated its key or dropped the user.
	user, err := a.adapter.Me(ctx)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrTokenIsExpiredOrInvalid) || errors.Is(mapped, store.ErrUserNotFound) {
			return models.LocalSession{}, a.forget(ctx)
		}
		return models.LocalSession{}, mapped
	}

	session.Username = user.Username
	session.Email = user.Email
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.sessions.ClearSession(ctx)
}

func (a *clientAuthService) remember(ctx context.Context, resp models.AuthResponse) (models.LocalSession, error) {
	session := models.LocalSession{
		UserID:   resp.User.ID,
		Username: resp.User.Username,
		Email:    resp.User.Email,
		Token:    resp.Token,
		SavedAt:  a.now(),
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.LocalSession{}, fmt.Errorf("save local session: %w", err)
	}

	return session, nil
}

// forget drops the stored session and always reports ErrNotLoggedIn, unless
// clearing itself failed.
func (a *clientAuthService) forget(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}
	return ErrNotLoggedIn
}
