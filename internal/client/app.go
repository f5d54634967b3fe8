package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/internal/tui"
	"github.com/MKhiriev/go-flashcards/models"
)

// UI is the part of the terminal interface the app drives.
type UI interface {
	LoginFlow(ctx context.Context, notice string) (models.LocalSession, error)
	MainLoop(ctx context.Context, session models.LocalSession) (logout bool, err error)
}

type App struct {
	auth   service.ClientAuthService
	ui     UI
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNilDependency
	}
	return &App{auth: services.AuthService, ui: ui, logger: logger}, nil
}

// Run restores the saved session or asks the user to log in, then runs the
// library until the user quits. Logging out goes back to the login flow.
func (a *App) Run() error {
	return a.run(context.Background())
}

func (a *App) run(ctx context.Context) error {
	notice := ""

	for {
		session, err := a.auth.RestoreSession(ctx)
		switch {
		case err == nil:
			a.logger.Debug().Int64("user_id", session.UserID).Msg("session restored")
		case errors.Is(err, service.ErrNotLoggedIn):
			session, err = a.ui.LoginFlow(ctx, notice)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		default:
			a.logger.Warn().Err(err).Msg("could not verify saved session")
			session, err = a.ui.LoginFlow(ctx, "Сервер недоступен, войдите снова")
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Int64("user_id", session.UserID).Msg("user logged out")
		notice = "Вы вышли из аккаунта"
	}
}
