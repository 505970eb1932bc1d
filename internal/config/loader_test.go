package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd := t.TempDir()
	chdir(t, wd)
	return wd
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "todos.json", cfg.File.Path)
	assert.Equal(t, "todos", cfg.Redis.Key)
	assert.Equal(t, "classic", cfg.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutFiles(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestProjectOverridesGlobal(t *testing.T) {
	wd := isolate(t)
	require.NoError(t, os.MkdirAll(Dir(), 0o755))
	require.NoError(t, os.WriteFile(GlobalConfigPath(), []byte("backend: sqlite\ntheme: neon\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".tasklist.yaml"), []byte("theme: mono\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "~/.tasklist/tasks.db", cfg.SQLite.Path)
}

func TestExplicitMustExist(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TASKLIST_BACKEND", "redis")
	t.Setenv("TASKLIST_REDIS_ADDR", "cache:6380")
	t.Setenv("TASKLIST_REDIS_DB", "2")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "todos", cfg.Redis.Key)
}

func TestUnknownBackend(t *testing.T) {
	isolate(t)
	t.Setenv("TASKLIST_BACKEND", "floppy")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "cfg", "config.yaml")
	require.NoError(t, WriteDefault(path))
	assert.ErrorIs(t, WriteDefault(path), os.ErrExist)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".tasklist", "x.db"), ExpandHome("~/.tasklist/x.db"))
	assert.Equal(t, "/abs/x.db", ExpandHome("/abs/x.db"))
}
