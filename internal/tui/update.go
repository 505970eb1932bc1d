package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tasklist/internal/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.openForm("", "")
		return m, m.title.Focus()

	case key.Matches(msg, m.keys.Edit):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if t.Completed {
			m.status = "Completed todos cannot be edited"
			return m, nil
		}
		if !m.store.StartEdit(t.ID) {
			return m, nil
		}
		e := m.store.Edit().(tasklist.Editing)
		m.mode = modeEdit
		m.openForm(e.Title, e.Description)
		return m, m.title.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.store.ToggleComplete(t.ID)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.store.Delete(t.ID)
			m.status = "Deleted " + t.Title
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.tab = m.tab.Next()
		m.list.Select(0)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = m.tab.Prev()
		m.list.Select(0)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.SetValue(m.term)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Clear):
		if m.term != "" {
			m.term = ""
			m.refresh()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateSearch filters as the user types; enter keeps the term, esc clears it.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.mode = modeList
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.search.Blur()
		m.search.SetValue("")
		m.term = ""
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.term {
		m.term = m.search.Value()
		m.list.Select(0)
		m.refresh()
	}
	return m, cmd
}

func (m *Model) openForm(title, desc string) {
	m.status = ""
	m.focusDesc = false
	m.title.SetValue(title)
	m.title.CursorEnd()
	m.desc.SetValue(desc)
	m.desc.Blur()
	m.resize()
}

func (m *Model) closeForm() {
	m.mode = modeList
	m.title.Blur()
	m.desc.Blur()
	m.title.SetValue("")
	m.desc.SetValue("")
	m.resize()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.mode == modeEdit {
			m.store.CancelEdit()
		}
		m.closeForm()
		return m, nil

	case key.Matches(msg, m.keys.Save),
		!m.focusDesc && key.Matches(msg, m.keys.Submit):
		return m.submitForm()

	case key.Matches(msg, m.keys.Switch):
		m.focusDesc = !m.focusDesc
		if m.focusDesc {
			m.title.Blur()
			return m, m.desc.Focus()
		}
		m.desc.Blur()
		return m, m.title.Focus()
	}

	var cmd tea.Cmd
	if m.focusDesc {
		m.desc, cmd = m.desc.Update(msg)
	} else {
		m.title, cmd = m.title.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title, desc := m.title.Value(), m.desc.Value()
	if m.mode == modeAdd {
		t, ok := m.store.Add(title, desc)
		if !ok {
			m.status = errEmptyTitle
			return m, nil
		}
		m.closeForm()
		m.refresh()
		m.status = "Added " + t.Title
		return m, nil
	}

	m.store.SetEditBuffer(title, desc)
	if !m.store.CommitEdit() {
		if _, editing := m.store.Edit().(tasklist.Editing); editing {
			m.status = errEmptyTitle
			return m, nil
		}
	}
	m.closeForm()
	m.refresh()
	m.status = "Saved"
	return m, nil
}
