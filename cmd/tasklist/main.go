package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Makepad-fr/tasklist/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Hand the args to the CLI; with no subcommand it opens the TUI.
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if code != cli.ExitOK {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
