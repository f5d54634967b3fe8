package tui

import (
	"github.com/MKhiriev/go-flashcards/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel routes the auth flow:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	session    models.LocalSession
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
	serverVersion string
	fetchVersion  tea.Cmd
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

// WithServerVersion sets the command that fetches the server version shown
// in the build info window.
func (r RootModel) WithServerVersion(fetch tea.Cmd) RootModel {
	r.fetchVersion = fetch
	return r
}

func (r RootModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if r.fetchVersion != nil {
		cmds = append(cmds, r.fetchVersion)
	}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if v, ok := msg.(serverVersionMsg); ok {
		r.serverVersion = v.version
		if v.err != nil {
			r.serverVersion = "недоступна"
		}
		return r, nil
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	if result, ok := msg.(AuthResult); ok && result.Err == nil {
		r.session = result.Session
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
