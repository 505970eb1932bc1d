package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and box borders.
// All UI helpers pull from current.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, ActiveTab                     lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymOK, SymFail           string
}

var current = classic()

// ThemeNames lists the accepted SetTheme values.
var ThemeNames = []string{"classic", "neon", "mono"}

// SetTheme switches the current theme. Unknown names keep classic and return an error.
func SetTheme(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		current = classic()
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
		return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames, ", "))
	}
	return nil
}

// Current exposes what renderers need.
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		ActiveTab:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("42")),
		Border:       lipgloss.NormalBorder(),
		BorderColor:  lipgloss.Color("8"),
		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		SymOK:        "✔",
		SymFail:      "✖",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.ActiveTab = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("13"))
	t.Border = lipgloss.RoundedBorder()
	t.BorderColor = lipgloss.Color("13")
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:      "mono",
		Title:     plain,
		Muted:     plain,
		Accent:    plain,
		Success:   plain,
		Error:     plain,
		Pending:   plain,
		Done:      plain,
		Selected:  plain,
		ActiveTab: plain.Underline(true),
		Border: lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		},
		BorderColor:  lipgloss.NoColor{},
		BoxUnchecked: "[ ]",
		BoxChecked:   "[x]",
		SymOK:        "ok",
		SymFail:      "error:",
	}
}
