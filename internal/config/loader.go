package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/peek"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Pointers and duration
// strings distinguish "absent" from zero so user files merge over defaults.
type rawConfig struct {
	Notes  rawNotesConfig `json:"notes"`
	Dock   rawDockConfig  `json:"dock"`
	Keymap KeymapConfig   `json:"keymap"`
	UI     rawUIConfig    `json:"ui"`
}

type rawNotesConfig struct {
	Dir string `json:"dir"`
}

type rawDockConfig struct {
	Enabled       *bool  `json:"enabled"`
	PollInterval  string `json:"pollInterval"`
	EdgeThreshold *int   `json:"edgeThreshold"`
	PeekWidth     *int   `json:"peekWidth"`
	Hysteresis    *int   `json:"hysteresis"`
}

type rawUIConfig struct {
	Theme      string `json:"theme"`
	FontSize   *int   `json:"fontSize"`
	ShowFooter *bool  `json:"showFooter"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/peek/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	cfg.Notes.Dir = ExpandPath(cfg.Notes.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Notes
	if raw.Notes.Dir != "" {
		cfg.Notes.Dir = raw.Notes.Dir
	}

	// Dock
	if raw.Dock.Enabled != nil {
		cfg.Dock.Enabled = *raw.Dock.Enabled
	}
	if raw.Dock.PollInterval != "" {
		if d, err := time.ParseDuration(raw.Dock.PollInterval); err == nil {
			cfg.Dock.PollInterval = d
		}
	}
	if raw.Dock.EdgeThreshold != nil {
		cfg.Dock.EdgeThreshold = *raw.Dock.EdgeThreshold
	}
	if raw.Dock.PeekWidth != nil {
		cfg.Dock.PeekWidth = *raw.Dock.PeekWidth
	}
	if raw.Dock.Hysteresis != nil {
		cfg.Dock.Hysteresis = *raw.Dock.Hysteresis
	}

	// Keymap
	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}

	// UI
	if raw.UI.Theme != "" {
		cfg.UI.Theme = raw.UI.Theme
	}
	if raw.UI.FontSize != nil {
		cfg.UI.FontSize = *raw.UI.FontSize
	}
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// DataDir returns the directory for derived application data: the key-value
// note store and the search index.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, "data")
}
