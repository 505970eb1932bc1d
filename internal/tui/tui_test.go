package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tasklist/internal/model"
	"github.com/Makepad-fr/tasklist/internal/store"
	"github.com/Makepad-fr/tasklist/internal/tasklist"
)

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	ctrlU = tea.KeyMsg{Type: tea.KeyCtrlU}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(m Model, msgs ...tea.Msg) Model {
	var tm tea.Model = m
	for _, msg := range msgs {
		tm, _ = tm.Update(msg)
	}
	return tm.(Model)
}

func newModel(t *testing.T, titles ...string) (Model, *tasklist.Store) {
	t.Helper()
	s := tasklist.New(context.Background(), store.NewMemory(nil))
	for _, title := range titles {
		_, ok := s.Add(title, "")
		require.True(t, ok)
	}
	m := press(New(s), tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, s
}

func visibleTitles(m Model) []string {
	out := []string{}
	for _, it := range m.list.Items() {
		out = append(out, it.(taskItem).Title)
	}
	return out
}

func TestAddWithDescription(t *testing.T) {
	m, s := newModel(t)
	m = press(m, runes("a"), runes("Buy milk"), tab, runes("2% please"), ctrlS)

	assert.Equal(t, modeList, m.mode)
	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, "2% please", tasks[0].Description)
	assert.Equal(t, []string{"Buy milk"}, visibleTitles(m))
}

func TestAddEmptyTitleStaysInForm(t *testing.T) {
	m, s := newModel(t)
	m = press(m, runes("a"), runes("   "), enter)

	assert.Equal(t, modeAdd, m.mode)
	assert.Equal(t, errEmptyTitle, m.status)
	assert.Empty(t, s.Tasks())

	m = press(m, esc)
	assert.Equal(t, modeList, m.mode)
}

func TestToggleAndTabs(t *testing.T) {
	m, s := newModel(t, "Write spec", "Buy milk")
	m = press(m, space)

	assert.True(t, s.Tasks()[0].Completed)
	m = press(m, tab)
	assert.Equal(t, model.TabActive, m.tab)
	assert.Equal(t, []string{"Buy milk"}, visibleTitles(m))

	m = press(m, tab)
	assert.Equal(t, model.TabCompleted, m.tab)
	assert.Equal(t, []string{"Write spec"}, visibleTitles(m))
	assert.Contains(t, m.View(), "Completed (1)")
}

func TestEditSelected(t *testing.T) {
	m, s := newModel(t, "Draft")
	m = press(m, runes("e"))
	require.Equal(t, modeEdit, m.mode)
	assert.Equal(t, "Draft", m.title.Value())

	m = press(m, ctrlU, runes("Final"), enter)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "Final", s.Tasks()[0].Title)
	assert.Equal(t, tasklist.Idle{}, s.Edit())
}

func TestEditEmptyTitleKeepsEditing(t *testing.T) {
	m, s := newModel(t, "Draft")
	m = press(m, runes("e"), ctrlU, enter)

	assert.Equal(t, modeEdit, m.mode)
	assert.Equal(t, errEmptyTitle, m.status)
	assert.IsType(t, tasklist.Editing{}, s.Edit())

	m = press(m, esc)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, tasklist.Idle{}, s.Edit())
	assert.Equal(t, "Draft", s.Tasks()[0].Title)
}

func TestCompletedTasksAreNotEditable(t *testing.T) {
	m, s := newModel(t, "Done already")
	m = press(m, space, runes("e"))

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, tasklist.Idle{}, s.Edit())
}

func TestSearch(t *testing.T) {
	m, _ := newModel(t, "Buy Milk", "Write spec")
	m = press(m, runes("/"), runes("milk"))
	assert.Equal(t, modeSearch, m.mode)
	assert.Equal(t, []string{"Buy Milk"}, visibleTitles(m))

	m = press(m, enter)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "milk", m.term)

	m = press(m, esc)
	assert.Equal(t, "", m.term)
	assert.Equal(t, []string{"Buy Milk", "Write spec"}, visibleTitles(m))
}

func TestSearchWithoutMatches(t *testing.T) {
	m, _ := newModel(t, "Buy Milk")
	m = press(m, runes("/"), runes("zebra"), enter)
	assert.Contains(t, m.View(), "No todos match your search")
}

func TestDelete(t *testing.T) {
	m, s := newModel(t, "a", "b")
	m = press(m, runes("d"))
	assert.Len(t, s.Tasks(), 1)
	assert.Equal(t, []string{"b"}, visibleTitles(m))
}

func TestEmptyView(t *testing.T) {
	m, _ := newModel(t)
	assert.Contains(t, m.View(), "No todos yet. Add one above!")
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
