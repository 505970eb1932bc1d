package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tasklist/internal/config"
	"github.com/Makepad-fr/tasklist/internal/ui"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	var global bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ProjectConfigPath()
			if global {
				path = config.GlobalConfigPath()
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "wrote "+path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&global, "global", false, "write ~/.tasklist/config.yaml instead of ./.tasklist.yaml")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print config file locations and the effective settings",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "global:  %s\n", config.GlobalConfigPath())
			fmt.Fprintf(out, "project: %s\n", config.ProjectConfigPath())
			fmt.Fprintf(out, "backend: %s\n", a.cfg.Backend)
			fmt.Fprintf(out, "theme:   %s\n", a.cfg.Theme)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
