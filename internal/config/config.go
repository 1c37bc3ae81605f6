// Package config manages the persistent application settings stored under
// the user's configuration directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.config/swaggerdeck)
	ConfigDir string

	// ConfigFile is the settings file inside ConfigDir
	ConfigFile string

	// DatabasePath is the SQLite database file for request history
	DatabasePath string
)

// Config holds the persisted settings.
type Config struct {
	SwaggerURL string `mapstructure:"swagger_url"`
	BaseURL    string `mapstructure:"base_url"`
}

// Initialize sets up the configuration directory and global paths.
// It creates ~/.config/swaggerdeck/ if it doesn't exist.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".config", "swaggerdeck")
	ConfigFile = filepath.Join(ConfigDir, "config.yaml")
	DatabasePath = filepath.Join(ConfigDir, "swaggerdeck.db")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// Load reads the settings file. A missing file is not an error and yields a
// zero-valued config.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(ConfigFile)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Save writes the settings file, replacing any existing content.
func Save(cfg *Config) error {
	v := viper.New()
	v.Set("swagger_url", cfg.SwaggerURL)
	v.Set("base_url", cfg.BaseURL)

	if err := v.WriteConfigAs(ConfigFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ValidateURL checks that a URL is non-empty and uses an HTTP scheme.
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return errors.New("URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return errors.New("URL must start with http:// or https://")
	}
	return nil
}
