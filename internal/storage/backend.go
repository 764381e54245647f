// Package storage provides the persistence backends for the note collection.
// Every backend receives the full collection on each save; there is no
// diffing, no transaction boundary and no conflict detection. Last writer
// wins.
package storage

import (
	"log/slog"

	"github.com/marcus/peek/internal/note"
)

// Backend persists the whole note collection.
type Backend interface {
	// Load reads the persisted collection. A missing store yields an
	// empty collection and no error; a corrupt one yields an error.
	Load() ([]note.Note, error)
	// Save overwrites the persisted collection.
	Save(notes []note.Note) error
	// Location describes where the backend writes, for logs and the UI.
	Location() string
}

// Open selects a backend at startup: the file backend when a notes folder is
// configured and usable, otherwise the key-value backend under dataDir.
// Returns nil when neither can be opened; the store then runs memory-only.
func Open(notesDir, dataDir string, logger *slog.Logger) Backend {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if notesDir != "" {
		fb, err := NewFileBackend(notesDir)
		if err == nil {
			return fb
		}
		logger.Warn("file backend unavailable, falling back", "dir", notesDir, "err", err)
	}
	kb, err := NewKVBackend(dataDir)
	if err != nil {
		logger.Warn("key-value backend unavailable, running memory-only", "dir", dataDir, "err", err)
		return nil
	}
	return kb
}
