// Package config loads and saves the user's pixclip settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	pcerrors "github.com/zhubert/pixclip/internal/errors"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "PIXCLIP_CONFIG"

const (
	configDirName  = ".pixclip"
	configFileName = "config.yaml"
)

// Config holds the application configuration
type Config struct {
	PasteDir         string `yaml:"paste_dir,omitempty"`         // Directory offered for pasted images (empty = home)
	PasteName        string `yaml:"paste_name,omitempty"`        // File name offered for pasted images
	JPEGQuality      int    `yaml:"jpeg_quality,omitempty"`      // 1-100, used when pasting to .jpg
	ConfirmOverwrite *bool  `yaml:"confirm_overwrite,omitempty"` // Ask before replacing an existing file
	Persist          *bool  `yaml:"persist,omitempty"`           // Keep copied images alive after exit
	Notifications    bool   `yaml:"notifications,omitempty"`     // Desktop notifications on success and failure

	mu       sync.RWMutex
	filePath string
}

// Path returns the config file location: $PIXCLIP_CONFIG or ~/.pixclip/config.yaml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the config from its default location.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path merged with defaults. A missing file
// yields the defaults.
func LoadFrom(path string) (*Config, error) {
	defaults := DefaultConfig()
	defaults.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return nil, pcerrors.ConfigLoadFailed(path, err)
	}

	partial := &Config{}
	if err := yaml.Unmarshal(data, partial); err != nil {
		return nil, pcerrors.ConfigLoadFailed(path, err)
	}
	partial.filePath = path

	cfg := Merge(partial, defaults)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config values are usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return pcerrors.ConfigInvalid(fmt.Sprintf("jpeg_quality must be between 1 and 100, got %d", c.JPEGQuality))
	}
	if c.PasteName != filepath.Base(c.PasteName) {
		return pcerrors.ConfigInvalid(fmt.Sprintf("paste_name must be a bare file name, got %q", c.PasteName))
	}
	if c.PasteDir != "" && !filepath.IsAbs(c.PasteDir) {
		return pcerrors.ConfigInvalid(fmt.Sprintf("paste_dir must be absolute, got %q", c.PasteDir))
	}
	return nil
}

// Save writes the config back to the file it was loaded from.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return pcerrors.ConfigInvalid("config has no file path")
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return pcerrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return pcerrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return pcerrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// FilePath returns where the config is stored.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return yaml.Marshal(c)
}

// ShouldConfirmOverwrite reports whether paste asks before replacing a file.
func (c *Config) ShouldConfirmOverwrite() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ConfirmOverwrite == nil || *c.ConfirmOverwrite
}

// ShouldPersist reports whether copy hands the image to a holder process.
func (c *Config) ShouldPersist() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Persist == nil || *c.Persist
}

// NotificationsEnabled reports whether desktop notifications are on.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notifications
}

// DefaultDestination is the path proposed when pasting without a target.
func (c *Config) DefaultDestination() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir := c.PasteDir
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = home
		} else {
			dir = "."
		}
	}
	name := c.PasteName
	if name == "" {
		name = DefaultPasteName
	}
	return filepath.Join(dir, name)
}

// WriteDefaults writes the default configuration to path. An existing file
// is kept unless force is set.
func WriteDefaults(path string, force bool) (*Config, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return nil, pcerrors.E(pcerrors.Op("config.WriteDefaults"), pcerrors.KindConfig,
			fmt.Sprintf("%s already exists", path))
	}
	cfg := DefaultConfig()
	cfg.filePath = path
	if err := cfg.Save(); err != nil {
		return nil, err
	}
	return cfg, nil
}
