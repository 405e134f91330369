package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// Backend API
	ServerURL string        `yaml:"server_url"`
	Timeout   time.Duration `yaml:"timeout"`

	// Logging
	LogFile  string     `yaml:"log_file"`
	LogLevel slog.Level `yaml:"-"`

	// Raw level string from the config file, resolved into LogLevel.
	LogLevelName string `yaml:"log_level"`
}

// Load resolves configuration in three layers: built-in defaults, the
// optional YAML config file, then environment variables. Env wins.
func Load() Config {
	cfg := Config{
		ServerURL: "http://localhost:8080/api",
		// No request timeout by default: a query is answered synchronously
		// and the backend may take arbitrarily long to synthesize it.
		Timeout:      0,
		LogFile:      defaultLogFile(),
		LogLevelName: "INFO",
	}

	if path := configFilePath(); path != "" {
		cfg.applyFile(path)
	}
	cfg.applyEnv()

	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)
	return cfg
}

func (c *Config) applyFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	// A malformed config file is ignored rather than fatal; the defaults
	// still produce a working client.
	_ = yaml.Unmarshal(data, c)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PROMPTIFY_SERVER_URL"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("PROMPTIFY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
	if v := os.Getenv("PROMPTIFY_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("PROMPTIFY_LOG_LEVEL"); v != "" {
		c.LogLevelName = v
	}
}

// configFilePath returns the config file location, honoring
// PROMPTIFY_CONFIG and XDG_CONFIG_HOME.
func configFilePath() string {
	if v := os.Getenv("PROMPTIFY_CONFIG"); v != "" {
		return v
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "promptify", "config.yaml")
}

func defaultLogFile() string {
	return filepath.Join(os.TempDir(), "promptify.log")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
