package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the registration screen: username, email, password and its
// confirmation. The server answers registration with a token, so a successful
// registration ends the auth flow just like a login.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       formModel
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newFormModel("РЕГИСТРАЦИЯ",
			newField("Имя", "username", true),
			newField("Email", "email", true),
			newSecretField("Пароль", "password"),
			newSecretField("Повтор", "repeat password"),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
				m.errMsg = "Все поля обязательны"
				return m, nil
			}
			if m.form.raw(2) != m.form.raw(3) {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{
				Username: m.form.value(0),
				Email:    m.form.value(1),
				Password: m.form.raw(2),
			})
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())

	if m.submitting {
		b.WriteString("\n\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n\n[Зарегистрироваться]\n")
	}
	writeStatus(&b, "", m.errMsg)

	return renderPage(m.form.title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Register(ctx, req)
		return AuthResult{Session: session, Err: err}
	}
}
