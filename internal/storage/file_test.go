package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/marcus/peek/internal/note"
)

func sampleNotes() []note.Note {
	return []note.Note{
		{ID: "a1", Title: "groceries", Content: "- milk\n- eggs", UpdatedAt: 1700000000000},
		{ID: "b2", Title: "ideas", Content: "# Big plans\n\nnone yet", UpdatedAt: 1700000001234},
		{ID: "c3", Title: "", Content: "", UpdatedAt: 0},
	}
}

func TestFileBackend_RoundTrip(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	want := sampleNotes()
	if err := fb.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := fb.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestFileBackend_LoadMissingFileIsEmpty(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	got, err := fb.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d notes, want empty", len(got))
	}
}

func TestFileBackend_LoadCorruptFileErrors(t *testing.T) {
	dir := t.TempDir()
	fb, err := NewFileBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fb.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := fb.Load(); err == nil {
		t.Error("expected parse error for corrupt file")
	}
}

func TestFileBackend_WritesPrettyJSON(t *testing.T) {
	dir := t.TempDir()
	fb, err := NewFileBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := fb.Save(sampleNotes()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, NotesFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("notes.json should be pretty-printed")
	}
	if !strings.Contains(string(data), `"updatedAt"`) {
		t.Error("notes.json should use the updatedAt key")
	}
}

func TestFileBackend_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	fb, err := NewFileBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := fb.Save(sampleNotes()); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestFileBackend_SaveNilWritesEmptyArray(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := fb.Save(nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fb.Path())
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty save = %q, want []", data)
	}
}

func TestFileBackend_CreatesFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "notes")
	if _, err := NewFileBackend(dir); err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("folder not created: %v", err)
	}
}

func TestReloadIfForeign(t *testing.T) {
	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := fb.Save(sampleNotes()); err != nil {
		t.Fatal(err)
	}

	// Our own write: nothing to reload.
	if _, changed, err := reloadIfForeign(fb); err != nil || changed {
		t.Errorf("self-write: changed=%v err=%v, want false/nil", changed, err)
	}

	// External rewrite: reload.
	external := `[{"id":"zz","title":"external","content":"","updatedAt":5}]`
	if err := os.WriteFile(fb.Path(), []byte(external), 0644); err != nil {
		t.Fatal(err)
	}
	notes, changed, err := reloadIfForeign(fb)
	if err != nil {
		t.Fatal(err)
	}
	if !changed || len(notes) != 1 || notes[0].ID != "zz" {
		t.Errorf("external rewrite: changed=%v notes=%+v", changed, notes)
	}
}
