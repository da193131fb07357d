// ABOUTME: Calorie tool configuration management.
// ABOUTME: Handles data directory, active user selection, and storage opening.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aurafoods/calorie/internal/models"
	"github.com/aurafoods/calorie/internal/storage"
)

// Config stores calorie tool configuration.
type Config struct {
	// DataDir is the root directory for data storage; calorie.db lives here.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/calorie.
	DataDir string `json:"data_dir,omitempty"`

	// UserID selects which user's library and log the tool operates on.
	// Defaults to the user seeded at provisioning time. Kept explicit so
	// nothing below the CLI assumes a fixed identity.
	UserID int64 `json:"user_id,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetUserID returns the configured user id, defaulting to the seeded user.
func (c *Config) GetUserID() int64 {
	if c.UserID == 0 {
		return models.DefaultUserID
	}
	return c.UserID
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite repository under the configured data dir,
// provisioning the schema if needed.
func (c *Config) OpenStorage() (storage.Repository, error) {
	return storage.Open(filepath.Join(c.GetDataDir(), "calorie.db"))
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "calorie", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
