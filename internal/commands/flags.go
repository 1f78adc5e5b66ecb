package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/tuidolist/internal/core/config"
	"github.com/colonyops/tuidolist/internal/core/todo"
	"github.com/colonyops/tuidolist/internal/store/jsonfile"
)

const appName = "tuidolist"

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	DataFile   string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName, "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName)
}

// LegacyDataFile returns the item file location used before the XDG layout.
func LegacyDataFile() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "."+appName, config.DataFileName)
}

// DataFilePath resolves the item file: --data-file, then config, then the
// data directory default.
func (f *Flags) DataFilePath() string {
	if f.DataFile != "" {
		return f.DataFile
	}
	if f.Config != nil {
		return f.Config.DataFilePath()
	}
	return filepath.Join(f.DataDir, config.DataFileName)
}

// openStore returns the item store and its current contents. The legacy file
// is imported first when enabled and no item file exists yet.
func (f *Flags) openStore(ctx context.Context) (*jsonfile.ItemStore, todo.List, error) {
	store := jsonfile.NewItemStore(f.DataFilePath())

	if f.Config == nil || f.Config.MigrateLegacyEnabled() {
		if _, err := store.MigrateLegacy(ctx, LegacyDataFile()); err != nil {
			return nil, nil, fmt.Errorf("migrate legacy items: %w", err)
		}
	}

	items, err := store.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load items: %w", err)
	}

	return store, items, nil
}
