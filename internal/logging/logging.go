// Package logging builds the logrus logger shared by the CLI, TUI and store.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/Makepad-fr/tasklist/internal/config"
)

// New returns a logger writing to cfg.File (stderr when empty or unopenable).
// verbose forces debug level. The returned closer releases the log file.
func New(cfg config.LogConfig, verbose bool) (*log.Logger, io.Closer) {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	var closer io.Closer = nopCloser{}
	logger.SetOutput(os.Stderr)
	if cfg.File != "" {
		f, ferr := openFile(config.ExpandHome(cfg.File))
		if ferr == nil {
			logger.SetOutput(f)
			closer = f
		} else {
			logger.WithError(ferr).Warn("log file unavailable, using stderr")
		}
	}
	if err != nil && cfg.Level != "" {
		logger.WithField("level", cfg.Level).Warn("unknown log level, using info")
	}
	return logger, closer
}

func openFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
