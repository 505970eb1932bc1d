package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendFile,
		File:    FileConfig{Path: "todos.json"},
		SQLite: SQLiteConfig{
			Path: "~/.tasklist/tasks.db",
			Key:  "todos",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			Key:  "todos",
		},
		Theme: "classic",
		Log: LogConfig{
			Level: "info",
			File:  "~/.tasklist/tasklist.log",
		},
	}
}

const defaultHeader = "# tasklist configuration\n# backend: file | sqlite | redis | memory\n"

// WriteDefault writes the default configuration to path. It refuses to overwrite.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, os.ErrExist)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat: %w", err)
	}
	b, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(defaultHeader), b...), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
