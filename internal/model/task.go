package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Task is the domain model for a todo entry.
// ID and CreatedAt are assigned once at creation and never change.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Tab is the status filter applied to the list.
type Tab string

const (
	TabAll       Tab = "all"
	TabActive    Tab = "active"
	TabCompleted Tab = "completed"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabAll, TabActive, TabCompleted}

var ErrUnknownTab = errors.New("unknown tab")

// ParseTab accepts the tab names plus the "todo" and "done" aliases.
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return TabAll, nil
	case "active", "todo":
		return TabActive, nil
	case "completed", "done":
		return TabCompleted, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Label is the human name shown on the tab bar.
func (t Tab) Label() string {
	switch t {
	case TabActive:
		return "To Do"
	case TabCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Next returns the tab to the right, wrapping around.
func (t Tab) Next() Tab { return t.shift(1) }

// Prev returns the tab to the left, wrapping around.
func (t Tab) Prev() Tab { return t.shift(len(Tabs) - 1) }

func (t Tab) shift(by int) Tab {
	for i, tab := range Tabs {
		if tab == t {
			return Tabs[(i+by)%len(Tabs)]
		}
	}
	return TabAll
}

// Counts holds the per-tab totals shown next to the tab labels.
type Counts struct {
	All       int
	Active    int
	Completed int
}

// Of returns the count for a tab.
func (c Counts) Of(t Tab) int {
	switch t {
	case TabActive:
		return c.Active
	case TabCompleted:
		return c.Completed
	default:
		return c.All
	}
}
