// Package config handles configuration for cricketai.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/diogo/cricketai/internal/models"
)

// Config represents the user configuration
type Config struct {
	// BaseURL is the backend API root, e.g. http://localhost:5000/api
	BaseURL string `json:"base_url" env:"CRICKETAI_BASE_URL"`
	// RefreshInterval is the number of seconds between live data ticks.
	RefreshInterval int `json:"refresh_interval" env:"CRICKETAI_REFRESH_INTERVAL"`
	// RequestTimeout bounds each backend request in seconds. 0 waits forever.
	RequestTimeout  int    `json:"request_timeout" env:"CRICKETAI_REQUEST_TIMEOUT"`
	Verbose         bool   `json:"verbose" env:"CRICKETAI_VERBOSE"`
	CopyToClipboard bool   `json:"copy_to_clipboard" env:"CRICKETAI_COPY_TO_CLIPBOARD"`
	TUITheme        string `json:"tui_theme,omitempty" env:"CRICKETAI_TUI_THEME"`
	// Markdown renders AI replies through glamour instead of the plain markup.
	Markdown bool   `json:"markdown" env:"CRICKETAI_MARKDOWN"`
	LogFile  string `json:"log_file,omitempty" env:"CRICKETAI_LOG_FILE"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:         models.DefaultBaseURL,
		RefreshInterval: int(models.DefaultRefreshInterval / time.Second),
		RequestTimeout:  0,
		Verbose:         false,
		CopyToClipboard: false,
		TUITheme:        "tokyonight",
		Markdown:        false,
	}
}

// Refresh returns the live data period as a duration, falling back to the default.
func (c Config) Refresh() time.Duration {
	if c.RefreshInterval <= 0 {
		return models.DefaultRefreshInterval
	}
	return time.Duration(c.RefreshInterval) * time.Second
}

// Timeout returns the per-request timeout; zero means none.
func (c Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeout) * time.Second
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".cricketai"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetLogPath returns the diagnostic log path from config, or the default one.
func GetLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cricketai.log"), nil
}

// LoadConfig loads the configuration from disk, then applies .env and
// environment overrides.
func LoadConfig() (Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads the configuration from an explicit path.
func LoadConfigFrom(configPath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Use defaults if config doesn't exist
	default:
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	// A missing .env is the normal case
	_ = godotenv.Load()

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.BaseURL = NormalizeBaseURL(cfg.BaseURL)
	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}
	return SaveConfigTo(filepath.Join(configDir, "config.json"), cfg)
}

// SaveConfigTo saves the configuration to an explicit path.
func SaveConfigTo(configPath string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NormalizeBaseURL trims trailing slashes and falls back to the default backend.
func NormalizeBaseURL(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return models.DefaultBaseURL
	}
	return trimmed
}

// BackendHost strips the /api suffix, giving the address users start the backend on.
func BackendHost(baseURL string) string {
	return strings.TrimSuffix(NormalizeBaseURL(baseURL), "/api")
}

// Set updates a single setting by its JSON key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "base_url":
		c.BaseURL = NormalizeBaseURL(value)
	case "refresh_interval":
		n, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		c.RefreshInterval = n
	case "request_timeout":
		n, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		c.RequestTimeout = n
	case "verbose":
		return parseBool(key, value, &c.Verbose)
	case "copy_to_clipboard":
		return parseBool(key, value, &c.CopyToClipboard)
	case "markdown":
		return parseBool(key, value, &c.Markdown)
	case "tui_theme":
		c.TUITheme = value
	case "log_file":
		c.LogFile = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Keys returns the settable config keys
func Keys() []string {
	return []string{
		"base_url",
		"refresh_interval",
		"request_timeout",
		"verbose",
		"copy_to_clipboard",
		"markdown",
		"tui_theme",
		"log_file",
	}
}

func parsePositive(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
	}
	return n, nil
}

func parseBool(key, value string, dst *bool) error {
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		*dst = true
	case "false", "0", "no", "off":
		*dst = false
	default:
		return fmt.Errorf("%s must be a boolean, got %q", key, value)
	}
	return nil
}
