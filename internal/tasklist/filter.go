package tasklist

import (
	"strings"

	"github.com/Makepad-fr/tasklist/internal/model"
)

// Filter returns, in list order, the tasks on tab whose title or description
// contains term (case-insensitive substring). tasks is not modified.
func Filter(tasks []model.Task, tab model.Tab, term string) []model.Task {
	needle := strings.ToLower(term)
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !OnTab(t, tab) || !Matches(t, needle) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// OnTab reports whether t belongs on tab. Unknown tabs behave like all.
func OnTab(t model.Task, tab model.Tab) bool {
	switch tab {
	case model.TabActive:
		return !t.Completed
	case model.TabCompleted:
		return t.Completed
	default:
		return true
	}
}

// Matches reports whether the lowercased needle occurs in t's title or description.
func Matches(t model.Task, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

// Count tallies tasks per tab.
func Count(tasks []model.Task) model.Counts {
	c := model.Counts{All: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

// EmptyMessage is shown when a filtered view has no tasks.
func EmptyMessage(tab model.Tab, term string) string {
	if term != "" {
		return "No todos match your search"
	}
	switch tab {
	case model.TabActive:
		return "No active todos. Great job!"
	case model.TabCompleted:
		return "No completed todos yet."
	default:
		return "No todos yet. Add one above!"
	}
}
