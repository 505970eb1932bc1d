package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tasklist/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tasklist.log")
	logger, closer := New(config.LogConfig{Level: "warn", File: path}, false)

	assert.Equal(t, log.WarnLevel, logger.GetLevel())
	logger.Info("hidden")
	logger.Warn("visible")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "visible")
	assert.NotContains(t, string(b), "hidden")
}

func TestVerboseForcesDebug(t *testing.T) {
	logger, closer := New(config.LogConfig{Level: "error"}, true)
	defer closer.Close()
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	assert.Equal(t, os.Stderr, logger.Out)
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	logger, closer := New(config.LogConfig{Level: "chatty"}, false)
	defer closer.Close()
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}
