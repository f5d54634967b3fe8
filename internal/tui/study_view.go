// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-flashcards/internal/study"
	"github.com/MKhiriev/go-flashcards/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// copyToClipboard is swapped in tests.
var copyToClipboard = clipboard.WriteAll

// studyModel renders a study session. All state transitions live in
// study.Session; this model only maps keys onto them.
type studyModel struct {
	deck     models.Deck
	session  *study.Session
	progress progress.Model
	status   string
	errMsg   string
}

func newStudyModel(deck models.Deck, session *study.Session) studyModel {
	return studyModel{
		deck:     deck,
		session:  session,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(52)),
	}
}

// update applies one key press. done is true when the user leaves the session.
func (m studyModel) update(msg tea.KeyMsg) (studyModel, tea.Cmd, bool) {
	m.status = ""
	m.errMsg = ""

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		return m, nil, true
	case key.Matches(msg, keys.flip):
		m.session.Flip()
	case key.Matches(msg, keys.right), key.Matches(msg, keys.enter):
		m.session.Next()
	case key.Matches(msg, keys.left):
		m.session.Previous()
	case key.Matches(msg, keys.restart):
		m.session.Restart()
	case key.Matches(msg, keys.copy):
		if m.session.Complete() {
			return m, nil, false
		}
		if err := copyToClipboard(m.visibleText()); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil, false
		}
		m.status = "Скопировано"
	}

	return m, nil, false
}

// visibleText is the side of the current card that is on screen.
func (m studyModel) visibleText() string {
	card := m.session.Current()
	if m.session.Flipped() {
		return card.Definition
	}
	return card.Term
}

func (m studyModel) View() string {
	var b strings.Builder

	b.WriteString("Карточка ")
	b.WriteString(m.session.Position())
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.session.Progress() / 100))
	b.WriteString("\n\n")

	hotKeys := "space: перевернуть │ →: далее │ ←: назад │ r: заново │ c: копировать │ esc: к колодам"

	if m.session.Complete() {
		b.WriteString(cardFaceStyle.Render(fmt.Sprintf("Колода пройдена!\n\nКарточек: %d", m.session.Len())))
		hotKeys = "r: пройти заново │ esc: к колодам"
	} else {
		side := "ТЕРМИН"
		if m.session.Flipped() {
			side = "ОПРЕДЕЛЕНИЕ"
		}
		b.WriteString(cardFaceStyle.Render(helpStyle.Render(side) + "\n\n" + m.visibleText()))

		if url := m.session.Current().ImageURL; url != nil && *url != "" {
			b.WriteString("\nИзображение: ")
			b.WriteString(*url)
		}
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage("ИЗУЧЕНИЕ · "+m.deck.Title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
