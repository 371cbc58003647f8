// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Holidays HolidayConfig `yaml:"holidays"`
	UI       UIConfig      `yaml:"ui"`
	Data     DataConfig    `yaml:"data"`
}

// HolidayConfig holds holiday feed settings.
type HolidayConfig struct {
	// FeedURL overrides the Nager.Date base URL (useful for mirrors).
	FeedURL string `yaml:"feed_url,omitempty"`

	// Country is an ISO 3166-1 alpha-2 code selecting a per-country feed;
	// empty uses the worldwide feed.
	Country string `yaml:"country,omitempty"`

	// FetchTimeoutSeconds bounds the startup fetch. On timeout the session
	// continues with an empty holiday set.
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds"`

	// Disabled skips the fetch entirely.
	Disabled bool `yaml:"disabled,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode     bool   `yaml:"vim_mode"`
	DefaultView string `yaml:"default_view,omitempty"` // "month" or "labels"

	// Notifications enables a desktop notification for tasks due today on
	// startup.
	Notifications bool `yaml:"notifications"`
}

// DataConfig holds export/import settings.
type DataConfig struct {
	// ExportPath is the default file for export/import; relative paths are
	// resolved against the working directory.
	ExportPath string `yaml:"export_path,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Holidays: HolidayConfig{
			FetchTimeoutSeconds: 10,
		},
		UI: UIConfig{
			VimMode:       true,
			Notifications: true,
		},
	}
}

// FetchTimeout returns the holiday fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	if c.Holidays.FetchTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Holidays.FetchTimeoutSeconds) * time.Second
}

// DataFile returns the export/import file path, falling back to data.json in
// the working directory.
func (c *Config) DataFile() string {
	if c.Data.ExportPath != "" {
		return c.Data.ExportPath
	}
	return "data.json"
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "taskcal")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
