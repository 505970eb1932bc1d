package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tasklist/internal/model"
	"github.com/Makepad-fr/tasklist/internal/tasklist"
	"github.com/Makepad-fr/tasklist/internal/ui"
)

func newAddCmd(a *app) *cobra.Command {
	var desc string
	cmd := &cobra.Command{
		Use:     "add <title...>",
		Short:   "Add a new todo (title can be multiple words)",
		Example: `  tasklist add "Buy milk" -d "2% please"`,
		Args:    usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			if _, ok := s.Add(strings.Join(args, " "), desc); !ok {
				return usagef("add: empty title")
			}
			ui.OK(cmd.OutOrStdout(), "added")
			return nil
		},
	}
	cmd.Flags().StringVarP(&desc, "description", "d", "", "optional description")
	return cmd
}

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index>",
		Short: "Toggle completion for the todo at a 1-based index",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, t, err := a.resolve(cmd, args[0])
			if err != nil {
				return err
			}
			s.ToggleComplete(t.ID)
			ui.OK(cmd.OutOrStdout(), "toggled")
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"delete"},
		Short:   "Remove the todo at a 1-based index",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, t, err := a.resolve(cmd, args[0])
			if err != nil {
				return err
			}
			s.Delete(t.ID)
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	var title, desc string
	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Change the title and/or description of a todo",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			changedTitle := cmd.Flags().Changed("title")
			changedDesc := cmd.Flags().Changed("description")
			if !changedTitle && !changedDesc {
				return usagef("edit: nothing to change, pass --title and/or --description")
			}
			s, t, err := a.resolve(cmd, args[0])
			if err != nil {
				return err
			}
			s.StartEdit(t.ID)
			e := s.Edit().(tasklist.Editing)
			if changedTitle {
				e.Title = title
			}
			if changedDesc {
				e.Description = desc
			}
			s.SetEditBuffer(e.Title, e.Description)
			if !s.CommitEdit() {
				s.CancelEdit()
				return usagef("edit: empty title")
			}
			ui.OK(cmd.OutOrStdout(), "saved")
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&desc, "description", "d", "", "new description (empty clears it)")
	return cmd
}

// resolve opens the store and maps a 1-based index onto the full list.
func (a *app) resolve(cmd *cobra.Command, arg string) (*tasklist.Store, model.Task, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, model.Task{}, usagef("%s: not a number: %s", cmd.Name(), arg)
	}
	s, err := a.open(cmd.Context())
	if err != nil {
		return nil, model.Task{}, err
	}
	tasks := s.Tasks()
	if n < 1 || n > len(tasks) {
		return nil, model.Task{}, usagef("index out of range: have %d, got %d (run `tasklist ls` to see valid indexes)", len(tasks), n)
	}
	return s, tasks[n-1], nil
}

func newListCmd(a *app) *cobra.Command {
	var (
		tabName string
		search  string
		group   bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			tab, err := model.ParseTab(tabName)
			if err != nil {
				return usagef("ls: %v", err)
			}
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(listLines(s, tab, search, group)))
			return nil
		},
	}
	cmd.Flags().StringVar(&tabName, "tab", "all", "all, active or completed")
	cmd.Flags().StringVarP(&search, "search", "s", "", "only todos whose title or description contains this text")
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func listLines(s *tasklist.Store, tab model.Tab, search string, group bool) []string {
	t := ui.Current()
	counts := s.Counts()
	lines := []string{
		ui.Header(counts),
		t.Muted.Render(ui.ProgressBar(counts.Completed, counts.All, 28)),
		ui.TabBar(tab, counts),
		"",
	}
	// numbers always refer to the full list so they work with done/rm/edit
	pos := make(map[string]int, counts.All)
	for i, it := range s.Tasks() {
		pos[it.ID] = i + 1
	}
	visible := s.Visible(tab, search)
	switch {
	case len(visible) == 0:
		lines = append(lines, t.Muted.Render(tasklist.EmptyMessage(tab, search)))
	case group:
		lines = append(lines, groupLines(visible, pos)...)
	default:
		lines = append(lines, flatLines(visible, pos)...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: add with `tasklist add \"Buy milk\"`"))
	return lines
}

func flatLines(tasks []model.Task, pos map[string]int) []string {
	out := make([]string, 0, len(tasks))
	for _, it := range tasks {
		out = append(out, ui.TaskLine(pos[it.ID], it, 80))
	}
	return out
}

func groupLines(tasks []model.Task, pos map[string]int) []string {
	t := ui.Current()
	section := func(name string, tab model.Tab) []string {
		lines := []string{t.Accent.Render(name)}
		part := tasklist.Filter(tasks, tab, "")
		if len(part) == 0 {
			return append(lines, t.Muted.Render("(none)"))
		}
		return append(lines, flatLines(part, pos)...)
	}
	lines := section("Pending", model.TabActive)
	lines = append(lines, "")
	return append(lines, section("Done", model.TabCompleted)...)
}
