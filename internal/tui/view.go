package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tasklist/internal/tasklist"
	"github.com/Makepad-fr/tasklist/internal/ui"
)

func (m Model) View() string {
	t := ui.Current()
	counts := m.store.Counts()

	var b strings.Builder
	b.WriteString(ui.Header(counts))
	b.WriteString("\n")
	b.WriteString(t.Muted.Render(ui.ProgressBar(counts.Completed, counts.All, 28)))
	b.WriteString("\n\n")
	b.WriteString(ui.TabBar(m.tab, counts))
	b.WriteString("\n")

	switch {
	case m.mode == modeSearch:
		b.WriteString(m.search.View())
		b.WriteString("\n")
	case m.term != "":
		b.WriteString(t.Muted.Render("search: " + m.term + "  (esc to clear)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.list.Items()) == 0 {
		b.WriteString(t.Muted.Render(tasklist.EmptyMessage(m.tab, m.term)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	if m.mode == modeAdd || m.mode == modeEdit {
		b.WriteString(m.formView())
		b.WriteString("\n")
	}
	if m.status != "" {
		style := t.Muted
		if m.status == errEmptyTitle {
			style = t.Error
		}
		b.WriteString(style.Render(m.status))
	}
	return panelString(b.String())
}

func (m Model) formView() string {
	t := ui.Current()
	heading := "Add New Todo"
	if m.mode == modeEdit {
		heading = "Edit Todo"
	}
	hint := t.Muted.Render("tab switch field · enter/ctrl+s save · esc cancel")
	inner := strings.Join([]string{
		t.Title.Render(heading),
		m.title.View(),
		m.desc.View(),
		hint,
	}, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

func panelString(inner string) string {
	t := ui.Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}
