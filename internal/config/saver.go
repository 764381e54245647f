package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Notes  NotesConfig    `json:"notes"`
	Dock   saveDockConfig `json:"dock"`
	Keymap KeymapConfig   `json:"keymap"`
	UI     UIConfig       `json:"ui"`
}

type saveDockConfig struct {
	Enabled       *bool  `json:"enabled,omitempty"`
	PollInterval  string `json:"pollInterval,omitempty"`
	EdgeThreshold *int   `json:"edgeThreshold,omitempty"`
	PeekWidth     *int   `json:"peekWidth,omitempty"`
	Hysteresis    *int   `json:"hysteresis,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Notes: cfg.Notes,
		Dock: saveDockConfig{
			Enabled:       &cfg.Dock.Enabled,
			PollInterval:  cfg.Dock.PollInterval.String(),
			EdgeThreshold: &cfg.Dock.EdgeThreshold,
			PeekWidth:     &cfg.Dock.PeekWidth,
			Hysteresis:    &cfg.Dock.Hysteresis,
		},
		Keymap: cfg.Keymap,
		UI:     cfg.UI,
	}
}

// Save writes the config back to the file it was loaded from, falling back
// to ~/.config/peek/config.json for a config that was never loaded.
func Save(cfg *Config) error {
	path := cfg.path
	if path == "" {
		path = ConfigPath()
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
