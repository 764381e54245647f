package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcus/peek/internal/note"
)

// writeForeign rewrites notes.json the way another process would, bypassing
// the backend's self-write hash.
func writeForeign(t *testing.T, fb *FileBackend, notes []note.Note) {
	t.Helper()
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fb.Path(), data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWatchFile_DetectsForeignWrite(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	reloads, stop, err := WatchFile(fb, nil)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer stop()

	writeForeign(t, fb, sampleNotes())

	select {
	case got := <-reloads:
		if len(got) != len(sampleNotes()) {
			t.Errorf("reloaded %d notes, want %d", len(got), len(sampleNotes()))
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after a foreign write")
	}
}

func TestWatchFile_IgnoresOwnSave(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	reloads, stop, err := WatchFile(fb, nil)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer stop()

	if err := fb.Save(sampleNotes()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Wait past the debounce window; our own write must not surface.
	time.Sleep(400 * time.Millisecond)
	select {
	case notes := <-reloads:
		t.Errorf("own save surfaced as a reload: %+v", notes)
	default:
	}
}

func TestWatchFile_StopDuringDebounce(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	reloads, stop, err := WatchFile(fb, nil)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}

	// Stop inside the debounce window of a foreign write. The watcher must
	// shut down cleanly; a late debounce firing into the closed channel
	// would panic the process.
	writeForeign(t, fb, sampleNotes())
	time.Sleep(20 * time.Millisecond)
	stop()

	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-reloads:
			if !ok {
				return // channel closed, clean shutdown
			}
		case <-deadline:
			t.Fatal("watcher did not shut down")
		}
	}
}

func TestWatchFile_UnwatchableDirectory(t *testing.T) {
	fb := &FileBackend{dir: filepath.Join(t.TempDir(), "missing")}
	if _, _, err := WatchFile(fb, nil); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
