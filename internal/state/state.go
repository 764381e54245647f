package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent user preferences. Unlike config.Config this file is
// written by the app, never hand-edited.
type State struct {
	// LastActiveNote is the ID of the note selected when the app last exited.
	LastActiveNote string `json:"lastActiveNote,omitempty"`

	// ListWidth is the note list pane width in columns (0 = use default).
	ListWidth int `json:"listWidth,omitempty"`

	// LineWrap toggles soft wrapping in the editor.
	LineWrap *bool `json:"lineWrap,omitempty"`

	// DockState is the last committed dock position ("undocked",
	// "docked-left", "hidden-left", ...), restored on startup.
	DockState string `json:"dockState,omitempty"`
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "peek"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetLastActiveNote returns the note ID selected when the app last exited.
// Returns "" if no preference is saved.
func GetLastActiveNote() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.LastActiveNote
}

// SetLastActiveNote saves the active note ID.
func SetLastActiveNote(id string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.LastActiveNote = id
	mu.Unlock()
	return Save()
}

// GetListWidth returns the saved note list pane width.
// Returns 0 if no preference is saved (use default).
func GetListWidth() int {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.ListWidth
}

// SetListWidth saves the note list pane width.
func SetListWidth(width int) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ListWidth = width
	mu.Unlock()
	return Save()
}

// GetLineWrap returns the saved editor line wrap preference.
// Wrapping defaults to on when no preference is saved.
func GetLineWrap() bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil || current.LineWrap == nil {
		return true
	}
	return *current.LineWrap
}

// SetLineWrap saves the editor line wrap preference.
func SetLineWrap(wrap bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.LineWrap = &wrap
	mu.Unlock()
	return Save()
}

// GetDockState returns the saved dock position name.
func GetDockState() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.DockState
}

// SetDockState saves the dock position name.
func SetDockState(name string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.DockState = name
	mu.Unlock()
	return Save()
}
