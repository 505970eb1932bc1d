package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tasklist/internal/model"
)

// OK prints a success line.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymOK+" "+msg))
}

// Fail prints a failure line.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(current.SymFail+" "+msg))
}

// Panel frames lines with the current theme's border.
func Panel(lines []string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, done*100/total)
}

// Header is the "Todos ✔ n • n Total n" line.
func Header(c model.Counts) string {
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		current.Title.Render("Todos"),
		current.Success.Render(current.SymOK), c.Completed,
		current.Pending.Render("•"), c.Active,
		current.Accent.Render("Total"), c.All,
	)
}

// TabBar renders every tab with its count, highlighting active.
func TabBar(active model.Tab, c model.Counts) string {
	parts := make([]string, 0, len(model.Tabs))
	for _, tab := range model.Tabs {
		label := fmt.Sprintf("%s (%d)", tab.Label(), c.Of(tab))
		if tab == active {
			parts = append(parts, current.ActiveTab.Render(label))
		} else {
			parts = append(parts, current.Muted.Render(label))
		}
	}
	return strings.Join(parts, current.Muted.Render(" │ "))
}

// TaskLine renders one task as "<n>. <box> title — description".
// n <= 0 omits the number. maxWidth <= 0 disables truncation.
func TaskLine(n int, t model.Task, maxWidth int) string {
	box, style := current.Muted.Render(current.BoxUnchecked), lipgloss.NewStyle()
	if t.Completed {
		box, style = current.Success.Render(current.BoxChecked), current.Done
	}
	text := t.Title
	if t.Description != "" {
		text += " — " + t.Description
	}
	text = Truncate(text, maxWidth)
	prefix := ""
	if n > 0 {
		prefix = current.Muted.Render(fmt.Sprintf("%2d.", n)) + " "
	}
	return prefix + box + " " + style.Render(text)
}

// Truncate shortens s to max runes, ending with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
