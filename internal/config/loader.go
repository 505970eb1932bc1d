package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var ErrUnknownBackend = errors.New("unknown backend")

const envPrefix = "TASKLIST"

// keys that may be overridden from the environment, e.g. TASKLIST_REDIS_ADDR.
var envKeys = []string{
	"backend", "theme",
	"file.path",
	"sqlite.path", "sqlite.key",
	"redis.addr", "redis.db", "redis.key",
	"log.level", "log.file",
}

// Load merges, in order: defaults, the global file, the project file,
// explicit (if non-empty, it must exist) and TASKLIST_* environment variables.
func Load(explicit string) (*Config, error) {
	cfg := DefaultConfig()

	if p := GlobalConfigPath(); p != "" {
		if err := loadFile(p, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("global config: %w", err)
		}
	}
	if p := ProjectConfigPath(); p != "" {
		if err := loadFile(p, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("project config: %w", err)
		}
	}
	if explicit != "" {
		if err := loadFile(explicit, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", explicit, err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return v.Unmarshal(cfg)
}

func applyEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range envKeys {
		if err := v.BindEnv(k); err != nil {
			return err
		}
	}
	return v.Unmarshal(cfg)
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	return nil
}

// Dir is the per-user tasklist directory (~/.tasklist).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tasklist")
}

// GlobalConfigPath returns the path to the per-user config file.
func GlobalConfigPath() string {
	d := Dir()
	if d == "" {
		return ""
	}
	return filepath.Join(d, "config.yaml")
}

// ProjectConfigPath returns the path to the config file in the working directory.
func ProjectConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".tasklist.yaml")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
