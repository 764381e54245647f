package config

import "time"

// Theme names accepted in UIConfig.Theme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config is the root configuration structure.
type Config struct {
	Notes  NotesConfig  `json:"notes"`
	Dock   DockConfig   `json:"dock"`
	Keymap KeymapConfig `json:"keymap"`
	UI     UIConfig     `json:"ui"`

	// path is the file this config was loaded from; Save writes back to it.
	path string
}

// NotesConfig configures note persistence.
type NotesConfig struct {
	// Dir is the user-chosen folder holding notes.json. Empty means the
	// built-in key-value store is used instead.
	Dir string `json:"dir"`
}

// DockConfig tunes the edge-docking controller. The tolerances are fixed
// configuration values, not runtime-negotiated.
type DockConfig struct {
	Enabled       bool          `json:"enabled"`
	PollInterval  time.Duration `json:"pollInterval"`
	EdgeThreshold int           `json:"edgeThreshold"` // px
	PeekWidth     int           `json:"peekWidth"`     // px
	Hysteresis    int           `json:"hysteresis"`    // consecutive agreeing ticks
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	Theme      string `json:"theme"`    // "light" or "dark"
	FontSize   int    `json:"fontSize"` // point size, clamped 8-32
	ShowFooter bool   `json:"showFooter"`
}

const (
	defaultPollInterval  = 100 * time.Millisecond
	defaultEdgeThreshold = 50
	defaultPeekWidth     = 20
	defaultHysteresis    = 2

	defaultFontSize = 12
	minFontSize     = 8
	maxFontSize     = 32
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Notes: NotesConfig{},
		Dock: DockConfig{
			Enabled:       true,
			PollInterval:  defaultPollInterval,
			EdgeThreshold: defaultEdgeThreshold,
			PeekWidth:     defaultPeekWidth,
			Hysteresis:    defaultHysteresis,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			Theme:      ThemeDark,
			FontSize:   defaultFontSize,
			ShowFooter: true,
		},
	}
}

// Validate checks the configuration for errors. Out-of-range values are
// corrected rather than rejected.
func (c *Config) Validate() error {
	if c.UI.Theme != ThemeLight && c.UI.Theme != ThemeDark {
		c.UI.Theme = ThemeDark
	}
	if c.UI.FontSize < minFontSize {
		c.UI.FontSize = defaultFontSize
	}
	if c.UI.FontSize > maxFontSize {
		c.UI.FontSize = maxFontSize
	}
	if c.Dock.PollInterval <= 0 {
		c.Dock.PollInterval = defaultPollInterval
	}
	if c.Dock.EdgeThreshold <= 0 {
		c.Dock.EdgeThreshold = defaultEdgeThreshold
	}
	if c.Dock.PeekWidth <= 0 {
		c.Dock.PeekWidth = defaultPeekWidth
	}
	if c.Dock.Hysteresis <= 0 {
		c.Dock.Hysteresis = defaultHysteresis
	}
	return nil
}
