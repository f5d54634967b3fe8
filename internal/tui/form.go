package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField struct {
	label    string
	required bool
	input    textinput.Model
}

// formModel is a column of labelled text inputs with tab navigation.
type formModel struct {
	title  string
	fields []formField
	focus  int
}

func newFormModel(title string, fields ...formField) formModel {
	if len(fields) > 0 {
		fields[0].input.Focus()
	}
	return formModel{title: title, fields: fields}
}

func newField(label, placeholder string, required bool) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 512
	in.Width = 40
	return formField{label: label, required: required, input: in}
}

func newSecretField(label, placeholder string) formField {
	f := newField(label, placeholder, true)
	f.input.CharLimit = 256
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

// update handles focus keys and forwards everything else to the focused input.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab), keyMsg.String() == "down":
			f.move(1)
			return f, nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.String() == "up":
			f.move(-1)
			return f, nil
		}
	}

	if len(f.fields) == 0 {
		return f, nil
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f *formModel) move(delta int) {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

// value returns the trimmed text of field i.
func (f formModel) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

// raw returns field i untouched; used for passwords.
func (f formModel) raw(i int) string {
	return f.fields[i].input.Value()
}

// optional returns nil for an empty field.
func (f formModel) optional(i int) *string {
	v := f.value(i)
	if v == "" {
		return nil
	}
	return &v
}

// validate reports the first empty required field.
func (f formModel) validate() error {
	for i, field := range f.fields {
		if field.required && strings.TrimSpace(f.raw(i)) == "" {
			return fmt.Errorf("поле %q обязательно", field.label)
		}
	}
	return nil
}

func (f formModel) View() string {
	labelWidth := 0
	for _, field := range f.fields {
		if w := lipgloss.Width(field.label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Значение\n", labelWidth, "Поле"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for _, field := range f.fields {
		b.WriteString(fmt.Sprintf("%-*s │ [", labelWidth, field.label))
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
