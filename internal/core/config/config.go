// Package config handles configuration loading and validation for tuidolist.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tuidolist/internal/core/styles"
)

// DataFileName is the item file name inside the data directory.
const DataFileName = "items.json"

// Config holds the application configuration.
type Config struct {
	Theme         string `yaml:"theme"`
	DataFile      string `yaml:"data_file"`      // overrides <data-dir>/items.json
	Markdown      *bool  `yaml:"markdown"`       // render descriptions as markdown (default true)
	MigrateLegacy *bool  `yaml:"migrate_legacy"` // import ~/.tuidolist/items.json on first run (default true)
	Keys          Keys   `yaml:"keys"`
	DataDir       string `yaml:"-"` // set by caller, not from config file
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Keys:  defaultKeys(),
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Keys = nil

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Re-set dataDir since Unmarshal may have cleared it
	cfg.DataDir = dataDir

	// Merge user keys into defaults (user config overrides defaults)
	cfg.Keys = mergeKeys(defaultKeys(), cfg.Keys)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = styles.DefaultTheme
	}
}

// MarkdownEnabled reports whether item descriptions are rendered as markdown.
func (c *Config) MarkdownEnabled() bool {
	return c.Markdown == nil || *c.Markdown
}

// MigrateLegacyEnabled reports whether the legacy item file is imported.
func (c *Config) MigrateLegacyEnabled() bool {
	return c.MigrateLegacy == nil || *c.MigrateLegacy
}

// DataFilePath returns the item file location. An explicit data_file wins;
// a leading "~/" is expanded to the home directory.
func (c *Config) DataFilePath() string {
	if c.DataFile == "" {
		return filepath.Join(c.DataDir, DataFileName)
	}

	if rest, ok := strings.CutPrefix(c.DataFile, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}

	return c.DataFile
}
