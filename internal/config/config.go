// ABOUTME: FitLog configuration management and store factory functions.
// ABOUTME: JSON config under the XDG config dir; data under the XDG data dir.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/prefs"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/harperreed/fitlog/internal/suggest"
)

// Config stores fitlog tool configuration.
type Config struct {
	// DataDir is the root directory for data storage: the activity
	// database plus a prefs/ subdirectory. Supports ~ expansion for
	// the home directory. Defaults to ~/.local/share/fitlog.
	DataDir string `json:"data_dir,omitempty"`

	// WeightKg personalizes calorie estimation. Defaults to the
	// assumed 70 kg when unset.
	WeightKg float64 `json:"weight_kg,omitempty"`

	// SuggestURL is the exercise-suggestion API base URL. Defaults to
	// the public wger API.
	SuggestURL string `json:"suggest_url,omitempty"`

	// SuggestLanguage is the wger language id. Defaults to English.
	SuggestLanguage int `json:"suggest_language,omitempty"`

	// SuggestCacheKB sizes the in-memory suggestion cache in KiB.
	// 0 uses the default; negative disables caching.
	SuggestCacheKB int `json:"suggest_cache_kb,omitempty"`
}

const defaultSuggestCacheKB = 512

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetWeightKg returns the configured body weight, defaulting to the
// assumed weight used by calorie estimation.
func (c *Config) GetWeightKg() float64 {
	if c.WeightKg <= 0 {
		return models.AssumedWeightKg
	}
	return c.WeightKg
}

// DefaultDataDir returns the standard XDG data directory for fitlog.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitlog")
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

// OpenRepository returns the process-wide activity repository, creating
// it on first call.
func (c *Config) OpenRepository() (storage.Repository, error) {
	return storage.Shared(c.GetDataDir())
}

// OpenPreferences returns the process-wide preference store, creating
// it on first call.
func (c *Config) OpenPreferences() (*prefs.Store, error) {
	return prefs.Shared(filepath.Join(c.GetDataDir(), "prefs"))
}

// NewSuggestFetcher builds the suggestion client behind its session
// cache, pointed at the configured API endpoint.
func (c *Config) NewSuggestFetcher() suggest.Fetcher {
	language := c.SuggestLanguage
	if language == 0 {
		language = suggest.DefaultLanguage
	}
	client := suggest.NewClient(c.SuggestURL, language)

	cacheKB := c.SuggestCacheKB
	if cacheKB == 0 {
		cacheKB = defaultSuggestCacheKB
	}
	if cacheKB < 0 {
		cacheKB = 0
	}
	return suggest.NewCache(client, language, cacheKB*1024, suggest.DefaultCacheTTL)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitlog", "config.json")
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
