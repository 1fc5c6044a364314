package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rhystmorgan/aniTerm/internal/config"
)

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(zapcore.AddSync(&buf), zapcore.InfoLevel)

	logger.Debug("hidden")
	logger.Info("form submitted", zap.String("form", "login"))
	require.NoError(t, logger.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "form submitted", entry["msg"])
	assert.Equal(t, "login", entry["form"])
	assert.Equal(t, "aniterm", entry["app"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLoggerCreatesLogFile(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "aniterm.log")

	logger, err := NewLogger(cfg)
	require.NoError(t, err)

	logger.Info("started")
	_ = logger.Sync()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"started"`)
}

func TestNewLoggerDebugOverridesLevel(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "aniterm.log")
	cfg.LogLevel = "error"
	cfg.Debug = true

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.LogLevel = "loud"

	_, err := NewLogger(cfg)
	assert.Error(t, err)
}
