package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-flashcards/internal/service"
	"github.com/MKhiriev/go-flashcards/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// level is the depth of the library browser.
type level int

const (
	levelFolders level = iota
	levelDecks
	levelCards
)

// mainLoopModel browses folders, decks and cards and hosts the study view.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.LocalSession

	level   level
	folders []models.Folder
	decks   []models.Deck
	cards   []models.Card
	// folder is nil when the deck list shows every deck of the user.
	folder *models.Folder
	deck   models.Deck
	idx    int

	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	form       *formModel
	saving     bool
	confirming bool
	overlay    *errorOverlayModel
	study      *studyModel

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.LocalSession) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		session:  session,
		spinner:  s,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadFolders())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading && !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case foldersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.folders = msg.folders
		m.clampIdx()
		return m, nil
	case decksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.decks = msg.decks
		m.clampIdx()
		return m, nil
	case cardsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.cards = msg.cards
		m.clampIdx()
		return m, nil
	case itemSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
			return m.expireOnAuthError(msg.err)
		}
		m.form = nil
		m.errMsg = ""
		m.status = msg.what + " создан(а)"
		return m.reload()
	case itemDeletedMsg:
		m.saving = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.status = "Удалено"
		return m.reload()
	case sessionStartedMsg:
		m.loading = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: errorMessage(msg.err)}
			return m.expireOnAuthError(msg.err)
		}
		sm := newStudyModel(m.deck, msg.session)
		m.study = &sm
		return m, nil
	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form != nil {
			form, cmd := m.form.update(msg)
			m.form = &form
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.overlay != nil:
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	case m.study != nil:
		return m.updateStudy(keyMsg)
	case m.form != nil:
		return m.updateForm(keyMsg)
	case m.confirming:
		return m.updateConfirm(keyMsg)
	}

	if m.loading || m.saving {
		return m, nil
	}

	return m.updateBrowse(keyMsg)
}

func (m mainLoopModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < m.count()-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(msg, keys.refresh):
		m.status = ""
		return m.reload()
	case key.Matches(msg, keys.newItem):
		return m.openForm()
	case key.Matches(msg, keys.delete):
		if m.count() > 0 {
			m.confirming = true
		}
		return m, nil
	}

	switch m.level {
	case levelFolders:
		switch {
		case key.Matches(msg, keys.enter):
			if m.count() == 0 {
				return m, nil
			}
			folder := m.folders[m.idx]
			m.folder = &folder
			return m.descend(levelDecks)
		case key.Matches(msg, keys.allDeck):
			m.folder = nil
			return m.descend(levelDecks)
		}
	case levelDecks:
		switch {
		case key.Matches(msg, keys.esc):
			return m.ascend(levelFolders)
		case key.Matches(msg, keys.enter):
			if m.count() == 0 {
				return m, nil
			}
			m.deck = m.decks[m.idx]
			return m.descend(levelCards)
		case key.Matches(msg, keys.study):
			if m.count() == 0 {
				return m, nil
			}
			m.deck = m.decks[m.idx]
			return m.startStudy()
		}
	case levelCards:
		switch {
		case key.Matches(msg, keys.esc):
			return m.ascend(levelDecks)
		case key.Matches(msg, keys.study):
			return m.startStudy()
		}
	}

	return m, nil
}

func (m mainLoopModel) updateStudy(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sm, cmd, done := m.study.update(msg)
	if done {
		m.study = nil
		return m, nil
	}
	m.study = &sm
	return m, cmd
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.form = nil
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.saving {
			return m, nil
		}
		if err := m.form.validate(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.saving = true
		return m, tea.Batch(m.spinner.Tick, m.cmdSave(*m.form))
	}

	form, cmd := m.form.update(msg)
	m.form = &form
	return m, cmd
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirming = false
		m.saving = true
		return m, tea.Batch(m.spinner.Tick, m.cmdDelete())
	case key.Matches(msg, keys.no):
		m.confirming = false
	}
	return m, nil
}

func (m mainLoopModel) openForm() (tea.Model, tea.Cmd) {
	var form formModel
	switch m.level {
	case levelFolders:
		form = newFormModel("НОВАЯ ПАПКА",
			newField("Название", "title", true),
			newField("Описание", "description", false),
		)
	case levelDecks:
		if m.folder == nil {
			m.status = "Колоду можно создать только внутри папки"
			return m, nil
		}
		form = newFormModel("НОВАЯ КОЛОДА",
			newField("Название", "title", true),
			newField("Описание", "description", false),
		)
	case levelCards:
		form = newFormModel("НОВАЯ КАРТОЧКА",
			newField("Термин", "term", true),
			newField("Определение", "definition", true),
		)
	}

	m.status = ""
	m.errMsg = ""
	m.form = &form
	return m, nil
}

// descend opens a deeper level and loads its items.
func (m mainLoopModel) descend(next level) (tea.Model, tea.Cmd) {
	m.level = next
	m.idx = 0
	m.status = ""
	return m.reload()
}

func (m mainLoopModel) ascend(prev level) (tea.Model, tea.Cmd) {
	m.level = prev
	m.idx = 0
	m.status = ""
	m.errMsg = ""
	return m.reload()
}

func (m mainLoopModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	var load tea.Cmd
	switch m.level {
	case levelFolders:
		load = m.cmdLoadFolders()
	case levelDecks:
		load = m.cmdLoadDecks()
	case levelCards:
		load = m.cmdLoadCards()
	}
	return m, tea.Batch(m.spinner.Tick, load)
}

func (m mainLoopModel) startStudy() (tea.Model, tea.Cmd) {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, m.cmdStartSession(m.deck.ID))
}

// fail shows err and returns to the login flow when the session is gone.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	m.errMsg = errorMessage(err)
	return m.expireOnAuthError(err)
}

func (m mainLoopModel) expireOnAuthError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrNotLoggedIn) || errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
		return m, m.cmdLogout()
	}
	return m, nil
}

func (m mainLoopModel) count() int {
	switch m.level {
	case levelDecks:
		return len(m.decks)
	case levelCards:
		return len(m.cards)
	default:
		return len(m.folders)
	}
}

func (m *mainLoopModel) clampIdx() {
	if m.idx >= m.count() {
		m.idx = m.count() - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) View() string {
	if m.study != nil {
		return m.study.View()
	}
	if m.form != nil {
		return m.viewForm()
	}

	title, body, hotKeys := m.viewList()

	var b strings.Builder
	b.WriteString(body)
	if m.loading || m.saving {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...")
	}
	writeStatus(&b, m.status, m.errMsg)

	switch {
	case m.overlay != nil:
		b.WriteString("\n")
		b.WriteString(m.overlay.View())
	case m.confirming:
		b.WriteString("\n")
		b.WriteString(confirmModel{message: m.selectedTitle()}.View())
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewForm() string {
	var b strings.Builder
	b.WriteString(m.form.View())
	if m.saving {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Сохранение...")
	}
	writeStatus(&b, "", m.errMsg)
	return renderPage(m.form.title, strings.TrimRight(b.String(), "\n"), "esc: отмена │ tab: след. поле │ enter: сохранить")
}

func (m mainLoopModel) viewList() (title, body, hotKeys string) {
	var rows [][2]string
	var headers [2]string

	switch m.level {
	case levelFolders:
		title = "ПАПКИ · " + m.session.Username
		headers = [2]string{"Название", "Описание"}
		for _, f := range m.folders {
			rows = append(rows, [2]string{f.Title, valueOrDash(f.Description)})
		}
		hotKeys = "enter: открыть │ a: все колоды │ n: новая │ d: удалить │ R: обновить │ L: выйти из аккаунта │ q: выход"
	case levelDecks:
		title = "ВСЕ КОЛОДЫ"
		if m.folder != nil {
			title = "КОЛОДЫ · " + m.folder.Title
		}
		headers = [2]string{"Название", "Описание"}
		for _, d := range m.decks {
			rows = append(rows, [2]string{d.Title, valueOrDash(d.Description)})
		}
		hotKeys = "enter: карточки │ s: учить │ n: новая │ d: удалить │ esc: назад"
	case levelCards:
		title = "КАРТОЧКИ · " + m.deck.Title
		headers = [2]string{"Термин", "Определение"}
		for _, c := range m.cards {
			rows = append(rows, [2]string{c.Term, c.Definition})
		}
		hotKeys = "s: учить │ n: новая │ d: удалить │ esc: назад"
	}

	if len(rows) == 0 && !m.loading {
		return title, "Пусто. Нажмите n, чтобы создать.", hotKeys
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-3s │ %-24s │ %s\n", "#", headers[0], headers[1]))
	b.WriteString("──────┼──────────────────────────┼──────────────────────\n")
	for i, row := range rows {
		cursor := " "
		line := fmt.Sprintf("%-3d │ %-24s │ %s", i+1, fitText(row[0], 24), fitText(row[1], 40))
		if i == m.idx {
			cursor = ">"
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + " " + line + "\n")
	}

	return title, strings.TrimRight(b.String(), "\n"), hotKeys
}

func (m mainLoopModel) selectedTitle() string {
	if m.idx < 0 || m.idx >= m.count() {
		return ""
	}
	switch m.level {
	case levelDecks:
		return m.decks[m.idx].Title
	case levelCards:
		return m.cards[m.idx].Term
	default:
		return m.folders[m.idx].Title
	}
}

func (m mainLoopModel) cmdLoadFolders() tea.Cmd {
	ctx, library := m.ctx, m.services.LibraryService
	return func() tea.Msg {
		folders, err := library.ListFolders(ctx)
		return foldersLoadedMsg{folders: folders, err: err}
	}
}

func (m mainLoopModel) cmdLoadDecks() tea.Cmd {
	ctx, library := m.ctx, m.services.LibraryService
	folder := m.folder
	return func() tea.Msg {
		if folder == nil {
			decks, err := library.ListDecks(ctx)
			return decksLoadedMsg{decks: decks, err: err}
		}
		decks, err := library.ListFolderDecks(ctx, folder.ID)
		return decksLoadedMsg{decks: decks, err: err}
	}
}

func (m mainLoopModel) cmdLoadCards() tea.Cmd {
	ctx, library := m.ctx, m.services.LibraryService
	deckID := m.deck.ID
	return func() tea.Msg {
		cards, err := library.ListCards(ctx, deckID)
		return cardsLoadedMsg{cards: cards, err: err}
	}
}

func (m mainLoopModel) cmdSave(form formModel) tea.Cmd {
	ctx, library := m.ctx, m.services.LibraryService

	switch m.level {
	case levelFolders:
		req := models.FolderCreateRequest{Title: form.value(0), Description: form.optional(1)}
		return func() tea.Msg {
			_, err := library.CreateFolder(ctx, req)
			return itemSavedMsg{what: "Папка", err: err}
		}
	case levelDecks:
		folderID := m.folder.ID
		req := models.DeckCreateRequest{Title: form.value(0), Description: form.optional(1), FolderID: &folderID}
		return func() tea.Msg {
			_, err := library.CreateDeck(ctx, req)
			return itemSavedMsg{what: "Колода", err: err}
		}
	default:
		deckID := m.deck.ID
		req := models.CardCreateRequest{Term: form.value(0), Definition: form.value(1)}
		return func() tea.Msg {
			_, err := library.CreateCard(ctx, deckID, req)
			return itemSavedMsg{what: "Карточка", err: err}
		}
	}
}

func (m mainLoopModel) cmdDelete() tea.Cmd {
	ctx, library := m.ctx, m.services.LibraryService

	switch m.level {
	case levelFolders:
		id := m.folders[m.idx].ID
		return func() tea.Msg { return itemDeletedMsg{err: library.DeleteFolder(ctx, id)} }
	case levelDecks:
		id := m.decks[m.idx].ID
		return func() tea.Msg { return itemDeletedMsg{err: library.DeleteDeck(ctx, id)} }
	default:
		deckID, cardID := m.deck.ID, m.cards[m.idx].ID
		return func() tea.Msg { return itemDeletedMsg{err: library.DeleteCard(ctx, deckID, cardID)} }
	}
}

func (m mainLoopModel) cmdStartSession(deckID int64) tea.Cmd {
	ctx, studySvc := m.ctx, m.services.StudyService
	return func() tea.Msg {
		session, err := studySvc.StartSession(ctx, deckID)
		return sessionStartedMsg{session: session, err: err}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}
