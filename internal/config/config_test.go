package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PROMPTIFY_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("PROMPTIFY_SERVER_URL", "")
	t.Setenv("PROMPTIFY_TIMEOUT", "")
	t.Setenv("PROMPTIFY_LOG_FILE", "")
	t.Setenv("PROMPTIFY_LOG_LEVEL", "")

	cfg := Load()
	assert.Equal(t, "http://localhost:8080/api", cfg.ServerURL)
	assert.Zero(t, cfg.Timeout, "queries may run arbitrarily long by default")
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.NotEmpty(t, cfg.LogFile)
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server_url: http://from-file:9000/api\nlog_level: DEBUG\ntimeout: 30s\n"), 0o644))

	t.Setenv("PROMPTIFY_CONFIG", path)
	t.Setenv("PROMPTIFY_SERVER_URL", "http://from-env:9001/api")
	t.Setenv("PROMPTIFY_TIMEOUT", "")
	t.Setenv("PROMPTIFY_LOG_FILE", "")
	t.Setenv("PROMPTIFY_LOG_LEVEL", "")

	cfg := Load()
	// Env wins over file; file wins over defaults.
	assert.Equal(t, "http://from-env:9001/api", cfg.ServerURL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "30s", cfg.Timeout.String())
}

func TestLoad_MalformedFileIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{not yaml"), 0o644))

	t.Setenv("PROMPTIFY_CONFIG", path)
	t.Setenv("PROMPTIFY_SERVER_URL", "")
	t.Setenv("PROMPTIFY_TIMEOUT", "")
	t.Setenv("PROMPTIFY_LOG_FILE", "")
	t.Setenv("PROMPTIFY_LOG_LEVEL", "")

	cfg := Load()
	assert.Equal(t, "http://localhost:8080/api", cfg.ServerURL)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "level %q", tt.in)
	}
}
