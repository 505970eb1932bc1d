// Package tui is the interactive Bubble Tea front end. Every key press maps
// to one tasklist.Store operation; the view is rebuilt from the store after
// each change, and the store persists on its own.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tasklist/internal/model"
	"github.com/Makepad-fr/tasklist/internal/tasklist"
	"github.com/Makepad-fr/tasklist/internal/ui"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeSearch
)

const errEmptyTitle = "Title cannot be empty"

// taskItem adapts model.Task to list.Item.
type taskItem struct{ model.Task }

func (i taskItem) FilterValue() string { return i.Title }

// itemDelegate renders one task per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+ui.TaskLine(0, it.Task, m.Width()-6))
}

// Model implements tea.Model over a tasklist.Store.
type Model struct {
	store *tasklist.Store
	keys  keyMap

	list   list.Model
	title  textinput.Model
	desc   textarea.Model
	search textinput.Model

	mode      mode
	focusDesc bool
	tab       model.Tab
	term      string
	status    string

	width, height int
}

// New builds the model and fills the list from the store.
func New(s *tasklist.Store) Model {
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	title := textinput.New()
	title.Prompt = "> "
	title.Placeholder = "Todo title..."
	title.CharLimit = 200

	desc := textarea.New()
	desc.Placeholder = "Todo description (optional)..."
	desc.ShowLineNumbers = false
	desc.SetHeight(3)
	desc.CharLimit = 1000

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search todos by title or description..."

	m := Model{
		store:  s,
		keys:   keys,
		list:   l,
		title:  title,
		desc:   desc,
		search: search,
		tab:    model.TabAll,
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

// Run starts the program in the alternate screen.
func Run(s *tasklist.Store) error {
	_, err := tea.NewProgram(New(s), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// refresh reloads the visible tasks, keeping the cursor in range.
func (m *Model) refresh() {
	visible := m.store.Visible(m.tab, m.term)
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, taskItem{t})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m Model) selected() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return it.Task, true
}

func (m *Model) resize() {
	m.list.SetSize(m.width-4, m.listHeight())
	m.title.Width = m.width - 10
	m.desc.SetWidth(m.width - 8)
	m.search.Width = m.width - 10
}

func (m Model) listHeight() int {
	h := m.height - 8
	if m.mode == modeAdd || m.mode == modeEdit {
		h -= 8
	}
	if h < 3 {
		h = 3
	}
	return h
}
