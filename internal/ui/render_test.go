package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tasklist/internal/model"
)

func useMono(t *testing.T) {
	t.Helper()
	require.NoError(t, SetTheme("mono"))
	t.Cleanup(func() { _ = SetTheme("classic") })
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { _ = SetTheme("classic") })
	for _, name := range ThemeNames {
		require.NoError(t, SetTheme(name))
		assert.Equal(t, name, Current().Name)
	}
	assert.Error(t, SetTheme("vaporwave"))
	assert.Equal(t, "classic", Current().Name)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░   0%", ProgressBar(0, 0, 10))
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "█████ 100%", ProgressBar(3, 3, 1))
}

func TestTabBar(t *testing.T) {
	useMono(t)
	bar := TabBar(model.TabActive, model.Counts{All: 3, Active: 2, Completed: 1})
	assert.Contains(t, bar, "All (3)")
	assert.Contains(t, bar, "To Do (2)")
	assert.Contains(t, bar, "Completed (1)")
}

func TestTaskLine(t *testing.T) {
	useMono(t)
	assert.Equal(t, " 1. [ ] Buy milk — 2% please",
		TaskLine(1, model.Task{Title: "Buy milk", Description: "2% please"}, 0))
	assert.Equal(t, "[x] Done", TaskLine(0, model.Task{Title: "Done", Completed: true}, 0))
	assert.Equal(t, "[ ] abcdefg...", TaskLine(0, model.Task{Title: "abcdefghijk"}, 10))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héllo", Truncate("héllo", 5))
	assert.Equal(t, "hé...", Truncate("héllo!", 5))
	assert.Equal(t, "hé", Truncate("héllo", 2))
}

func TestOKAndFail(t *testing.T) {
	useMono(t)
	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "nope")
	assert.Equal(t, "ok added\nerror: nope\n", buf.String())
}

func TestPanelFramesLines(t *testing.T) {
	useMono(t)
	out := Panel([]string{"a", "bbb"})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+-----+", lines[0])
	assert.Equal(t, "| a   |", lines[1])
	assert.Equal(t, "| bbb |", lines[2])
}
