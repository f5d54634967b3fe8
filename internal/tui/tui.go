package tui

import (
	"context"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow runs the menu, login and register pages until the user is
// authenticated or quits.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.LocalSession, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel().WithStatus(notice),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo).WithServerVersion(t.cmdServerVersion(ctx))
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.LocalSession{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.LocalSession{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.LocalSession{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.session.UserID).Msg("user authenticated")
	return result.session, nil
}

// MainLoop runs the library browser. logout is true when the user signed out
// or the server rejected the stored token.
func (t *TUI) MainLoop(ctx context.Context, session models.LocalSession) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) cmdServerVersion(ctx context.Context) tea.Cmd {
	info := t.services.AppInfoService
	if info == nil {
		return nil
	}
	return func() tea.Msg {
		version, err := info.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
