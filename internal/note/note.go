// Package note holds the in-memory note collection and its CRUD operations.
package note

import (
	"time"

	"github.com/google/uuid"
)

// Note is a single markdown note. ID is opaque, unique within the collection
// and immutable. UpdatedAt is wall-clock milliseconds since the epoch and is
// refreshed on content mutation, never on title-only mutation.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt int64  `json:"updatedAt"`
}

// NewID generates a fresh note identifier.
func NewID() string {
	return uuid.NewString()
}

// Now returns the current timestamp in the note wire format.
func Now() int64 {
	return time.Now().UnixMilli()
}

// Welcome returns the note seeded into an empty collection on first run.
func Welcome() Note {
	return Note{
		ID:    NewID(),
		Title: "Welcome",
		Content: `# Welcome to peek

A sidebar for short markdown notes.

- Press **n** to create a note
- Press **enter** to edit, **esc** to preview
- Press **/** to search
- Press **?** for all key bindings

Notes are saved automatically after every change.
`,
		UpdatedAt: Now(),
	}
}
