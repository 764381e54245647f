package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/marcus/peek/internal/note"
)

// NotesFileName is the collection file written inside the user-chosen folder.
const NotesFileName = "notes.json"

// FileBackend stores the collection as a pretty-printed UTF-8 JSON array in
// notes.json inside a user-chosen folder. Writes go through a temp file and
// rename so readers never observe a partial file.
type FileBackend struct {
	dir string

	mu      sync.Mutex
	lastSum uint64 // xxhash of the last written payload, 0 = never written
}

// NewFileBackend opens a file backend rooted at dir, creating it if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, errors.New("storage: notes folder required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("storage: ensure notes folder: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// Path returns the full path of the collection file.
func (f *FileBackend) Path() string {
	return filepath.Join(f.dir, NotesFileName)
}

// Location implements Backend.
func (f *FileBackend) Location() string { return f.Path() }

// Load implements Backend. A missing file is an empty collection.
func (f *FileBackend) Load() ([]note.Note, error) {
	data, err := os.ReadFile(f.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: read %s: %w", NotesFileName, err)
	}
	var notes []note.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("storage: parse %s: %w", NotesFileName, err)
	}
	return notes, nil
}

// Save implements Backend.
func (f *FileBackend) Save(notes []note.Note) error {
	if notes == nil {
		notes = []note.Note{}
	}
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: marshal notes: %w", err)
	}

	path := f.Path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("storage: write %s: %w", NotesFileName, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("storage: replace %s: %w", NotesFileName, err)
	}

	f.mu.Lock()
	f.lastSum = xxhash.Sum64(data)
	f.mu.Unlock()
	return nil
}

// LastWriteSum returns the hash of the most recent self-write. The file
// watcher uses it to tell our own saves apart from external edits.
func (f *FileBackend) LastWriteSum() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSum
}
