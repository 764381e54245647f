package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/marcus/peek/internal/note"
)

// Key-value store keys, mirroring the browser-local-storage variant: the
// whole collection is one JSON-serialized value under a single key.
const collectionKey = "notes"

// KVBackend stores the collection in a diskv-backed key-value store under
// the application data directory. It is the fallback when no notes folder is
// configured.
type KVBackend struct {
	d        *diskv.Diskv
	basePath string
}

// NewKVBackend opens the key-value store rooted at dir.
func NewKVBackend(dir string) (*KVBackend, error) {
	if dir == "" {
		return nil, errors.New("storage: data directory required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("storage: ensure data directory: %w", err)
	}
	return &KVBackend{
		d: diskv.New(diskv.Options{
			BasePath:     dir,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: dir,
	}, nil
}

// Location implements Backend.
func (k *KVBackend) Location() string {
	return filepath.Join(k.basePath, collectionKey)
}

// Load implements Backend. A missing key is an empty collection.
func (k *KVBackend) Load() ([]note.Note, error) {
	if !k.d.Has(collectionKey) {
		return nil, nil
	}
	data, err := k.d.Read(collectionKey)
	if err != nil {
		return nil, fmt.Errorf("storage: read collection key: %w", err)
	}
	var notes []note.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("storage: parse collection key: %w", err)
	}
	return notes, nil
}

// Save implements Backend.
func (k *KVBackend) Save(notes []note.Note) error {
	if notes == nil {
		notes = []note.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("storage: marshal notes: %w", err)
	}
	if err := k.d.Write(collectionKey, data); err != nil {
		return fmt.Errorf("storage: write collection key: %w", err)
	}
	return nil
}
