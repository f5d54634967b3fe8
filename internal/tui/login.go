// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders email and
// password inputs and dispatches an async login command on enter. The outcome
// arrives as an [AuthResult]; [RootModel] finishes the flow on success.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       formModel
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the email field focused.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newFormModel("ВХОД",
			newField("Email", "email", true),
			newSecretField("Пароль", "password"),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [AuthResult]: clears the submitting state; on error, populates errMsg.
//   - esc: goes back to the menu.
//   - enter: validates inputs and dispatches the async login command.
//
// Everything else goes to the form.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = errorMessage(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, navigate("menu")
		case "enter":
			if m.submitting {
				return m, nil
			}
			if err := m.form.validate(); err != nil {
				m.errMsg = "Email и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.LoginRequest{
				Email:    m.form.value(0),
				Password: m.form.raw(1),
			})
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())

	if m.submitting {
		b.WriteString("\n\n[Войти...]\n")
	} else {
		b.WriteString("\n\n[Войти]\n")
	}
	writeStatus(&b, "", m.errMsg)

	return renderPage(m.form.title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *LoginModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, req)
		return AuthResult{Session: session, Err: err}
	}
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
