package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerWithWriters_FanOut(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("request finished", "op", "query", "status", 200)

	// Text on stderr, JSON in the file.
	assert.Contains(t, stderr.String(), "request finished")
	assert.Contains(t, stderr.String(), "op=query")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &entry))
	assert.Equal(t, "request finished", entry["msg"])
	assert.Equal(t, "query", entry["op"])
}

func TestSetupLogger_FileWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promptify.log")
	logger, cleanup := SetupLogger(path, slog.LevelInfo)
	logger.Info("hello")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestSetupLogger_UnopenableFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "promptify.log")
	logger, cleanup := SetupLogger(path, slog.LevelInfo)
	require.NotNil(t, logger)
	require.NoError(t, cleanup())
}

func TestSetupFileLogger_UnopenableFileDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "promptify.log")
	logger, cleanup := SetupFileLogger(path, slog.LevelInfo)
	require.NotNil(t, logger)
	logger.Info("dropped")
	require.NoError(t, cleanup())
}

func TestSetupLoggerWithWriters_LevelFilter(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelWarn)

	logger.Debug("noise")
	logger.Info("still noise")
	logger.Warn("kept")

	assert.NotContains(t, stderr.String(), "noise")
	assert.Equal(t, 1, strings.Count(file.String(), "\n"), "only the warn entry is written")
}
