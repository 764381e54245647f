package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/peek/internal/msg"
	"github.com/marcus/peek/internal/note"
	"github.com/marcus/peek/internal/search"
)

// AutoSaveTickMsg fires after the editor debounce interval. Stale ticks are
// recognized by ID and dropped.
type AutoSaveTickMsg struct {
	ID int
}

// autoSaveDelay is the debounce before edited content is written through.
const autoSaveDelay = time.Second

func autoSaveTick(id int) tea.Cmd {
	return tea.Tick(autoSaveDelay, func(time.Time) tea.Msg {
		return AutoSaveTickMsg{ID: id}
	})
}

// clearToast schedules toast removal after the given duration.
func clearToast(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg.ClearToastMsg{}
	})
}

// searchNotes runs the query against the full-text index, falling back to
// substring matching when no index is available. A non-empty query always
// yields a non-nil slice: nil means "no filter", an empty slice means "no
// matches".
func searchNotes(idx *search.Index, notes []note.Note, query string) tea.Cmd {
	return func() tea.Msg {
		var ids []string
		if idx != nil {
			if got, err := idx.Query(query); err == nil {
				ids = got
			} else {
				ids = search.Filter(notes, query)
			}
		} else {
			ids = search.Filter(notes, query)
		}
		if ids == nil && strings.TrimSpace(query) != "" {
			ids = []string{}
		}
		return msg.SearchResultsMsg{Query: query, IDs: ids}
	}
}

// reindexNotes rebuilds the full-text index in the background.
func reindexNotes(idx *search.Index, notes []note.Note) tea.Cmd {
	if idx == nil {
		return nil
	}
	return func() tea.Msg {
		if err := idx.Rebuild(notes); err != nil {
			return msg.ShowErrorToast("Search index update failed", 2*time.Second)()
		}
		return nil
	}
}
