// Package config loads optional projexts settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	dirName      = "projexts"
	settingsFile = "config.toml"
	storeFile    = "shortcuts.json"
)

// Settings are the user-tunable knobs read from config.toml. All
// fields are optional; zero values fall back to defaults.
type Settings struct {
	// StorePath relocates the shortcut store file.
	StorePath string `toml:"store_path"`

	// Opener overrides the platform folder/file opener command.
	Opener string `toml:"opener"`
}

// Config is the resolved configuration for one invocation.
type Config struct {
	StorePath string
	Opener    string // empty selects the platform default
}

// Dir returns the projexts configuration directory. The
// PROJEXTS_CONFIG_DIR environment variable overrides the platform
// default; tests isolate through it.
func Dir() (string, error) {
	if dir := os.Getenv("PROJEXTS_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(base, dirName), nil
}

// Load resolves the configuration for this invocation. A missing
// settings file yields defaults.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{StorePath: filepath.Join(dir, storeFile)}

	var s Settings
	if _, err := toml.DecodeFile(filepath.Join(dir, settingsFile), &s); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading settings: %w", err)
	}

	if s.StorePath != "" {
		cfg.StorePath = s.StorePath
	}
	cfg.Opener = s.Opener
	return cfg, nil
}
