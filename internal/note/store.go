package note

import (
	"log/slog"
)

// Saver receives the full collection after every mutation. Implemented by
// the storage backends; a nil Saver keeps the store memory-only.
type Saver interface {
	Save(notes []Note) error
}

// Store is the ordered note collection with an active selection. All
// mutation happens synchronously on the UI event loop; the store itself does
// no locking. Every mutation mirrors the whole collection to the Saver;
// save failures are logged and the in-memory state stays authoritative.
type Store struct {
	notes    []Note
	activeID string

	saver Saver
	now   func() int64
	log   *slog.Logger
}

// NewStore creates a store over an initial collection. saver and logger may
// be nil. The first note, if any, starts active.
func NewStore(initial []Note, saver Saver, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		notes: append([]Note(nil), initial...),
		saver: saver,
		now:   Now,
		log:   logger,
	}
	if len(s.notes) > 0 {
		s.activeID = s.notes[0].ID
	}
	return s
}

// SetClock overrides the timestamp source. Tests only.
func (s *Store) SetClock(now func() int64) { s.now = now }

// List returns the collection in current order. The slice is a copy; the
// notes themselves are values.
func (s *Store) List() []Note {
	return append([]Note(nil), s.notes...)
}

// Len returns the number of notes.
func (s *Store) Len() int { return len(s.notes) }

// Get returns the note with the given id.
func (s *Store) Get(id string) (Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Active returns the currently selected note.
func (s *Store) Active() (Note, bool) {
	if s.activeID == "" {
		return Note{}, false
	}
	return s.Get(s.activeID)
}

// ActiveID returns the selected note's id, or "" when nothing is selected.
func (s *Store) ActiveID() string { return s.activeID }

// SetActive selects the note with the given id.
func (s *Store) SetActive(id string) bool {
	if _, ok := s.Get(id); !ok {
		return false
	}
	s.activeID = id
	return true
}

// Create prepends a new empty note and makes it active.
func (s *Store) Create() Note {
	n := Note{
		ID:        NewID(),
		Title:     "Untitled",
		UpdatedAt: s.now(),
	}
	s.notes = append([]Note{n}, s.notes...)
	s.activeID = n.ID
	s.persist()
	return n
}

// Delete removes the note with the given id. If it was active, the selection
// falls back to the first remaining note, or to none.
func (s *Store) Delete(id string) bool {
	idx := -1
	for i, n := range s.notes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	if s.activeID == id {
		if len(s.notes) > 0 {
			s.activeID = s.notes[0].ID
		} else {
			s.activeID = ""
		}
	}
	s.persist()
	return true
}

// UpdateContent replaces the active note's content and refreshes its
// timestamp. The timestamp never moves backwards even if the wall clock does.
func (s *Store) UpdateContent(content string) bool {
	idx := s.activeIndex()
	if idx < 0 {
		return false
	}
	n := &s.notes[idx]
	n.Content = content
	if ts := s.now(); ts > n.UpdatedAt {
		n.UpdatedAt = ts
	}
	s.persist()
	return true
}

// UpdateTitle replaces a note's title. Direct field replacement: the
// timestamp is left untouched.
func (s *Store) UpdateTitle(id, title string) bool {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Title = title
			s.persist()
			return true
		}
	}
	return false
}

// Replace swaps in an externally loaded collection, preserving the active
// selection when the note still exists. Used when the backing file changes
// under us.
func (s *Store) Replace(notes []Note) {
	s.notes = append([]Note(nil), notes...)
	if _, ok := s.Get(s.activeID); !ok {
		if len(s.notes) > 0 {
			s.activeID = s.notes[0].ID
		} else {
			s.activeID = ""
		}
	}
}

func (s *Store) activeIndex() int {
	for i, n := range s.notes {
		if n.ID == s.activeID {
			return i
		}
	}
	return -1
}

// persist mirrors the collection to the saver. Fire-and-forget: a failed
// save leaves memory as the source of truth until the next mutation.
func (s *Store) persist() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.List()); err != nil {
		s.log.Warn("note save failed", "err", err)
	}
}
