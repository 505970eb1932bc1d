// Package cli is the non-interactive front end: one cobra subcommand per
// store operation, plus the interactive TUI as the default action.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tasklist/internal/config"
	"github.com/Makepad-fr/tasklist/internal/logging"
	"github.com/Makepad-fr/tasklist/internal/store"
	"github.com/Makepad-fr/tasklist/internal/tasklist"
	"github.com/Makepad-fr/tasklist/internal/tui"
	"github.com/Makepad-fr/tasklist/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// globalFlags apply to every subcommand.
type globalFlags struct {
	configPath string
	backend    string
	file       string
	theme      string
	verbose    bool
}

// app is built lazily by the commands that need the store.
type app struct {
	flags globalFlags

	cfg   *config.Config
	log   *log.Logger
	slot  store.Slot
	tasks *tasklist.Store

	closers []io.Closer
}

func (a *app) loadConfig() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	if a.flags.backend != "" {
		cfg.Backend = a.flags.backend
	}
	if a.flags.file != "" {
		cfg.Backend = config.BackendFile
		cfg.File.Path = a.flags.file
	}
	if a.flags.theme != "" {
		cfg.Theme = a.flags.theme
	}
	if err := cfg.Validate(); err != nil {
		return usagef("%v", err)
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return usagef("%v", err)
	}
	a.cfg = cfg
	return nil
}

// open loads config, logging and the task list. It is idempotent.
func (a *app) open(ctx context.Context) (*tasklist.Store, error) {
	if a.tasks != nil {
		return a.tasks, nil
	}
	if err := a.loadConfig(); err != nil {
		return nil, err
	}
	logger, closer := logging.New(a.cfg.Log, a.flags.verbose)
	a.log = logger
	a.closers = append(a.closers, closer)

	slot, err := store.Open(ctx, a.cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", a.cfg.Backend, err)
	}
	a.slot = slot
	a.closers = append(a.closers, slot)
	a.log.WithField("backend", a.cfg.Backend).Debug("store opened")

	tasks := tasklist.New(ctx, slot, tasklist.WithLogger(a.log))
	if err := tasks.LoadErr(); err != nil {
		return nil, fmt.Errorf("%s store: %w", a.cfg.Backend, err)
	}
	a.tasks = tasks
	return a.tasks, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command { return newRootCmd(&app{}) }

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasklist",
		Short: "A single-user task list for the terminal",
		Long: `tasklist keeps a list of todos with optional descriptions.

Without a subcommand it opens the interactive view.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			return tui.Run(s)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usagef("%v", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "config file (default ~/.tasklist/config.yaml, then ./.tasklist.yaml)")
	pf.StringVar(&a.flags.backend, "backend", "", "storage backend: file, sqlite, redis or memory")
	pf.StringVar(&a.flags.file, "file", "", "JSON file to use (implies --backend file)")
	pf.StringVar(&a.flags.theme, "theme", "", "color theme: classic, neon or mono")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newDoneCmd(a),
		newRemoveCmd(a),
		newEditCmd(a),
		newTUICmd(a),
		newConfigCmd(a),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	defer a.close()
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, ui.Current().Muted.Render("Hint: run `tasklist help` for usage"))
		return ExitUsage
	}
	return ExitError
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usagef("%s: %v", cmd.Name(), err)
		}
		return nil
	}
}

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive view",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			return tui.Run(s)
		},
	}
}
