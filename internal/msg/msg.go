package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/peek/internal/note"
)

// ToastMsg displays a temporary message.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool // true for error toasts (red), false for success (green)
}

// ShowToast returns a command to show a toast message.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  message,
			Duration: duration,
		}
	}
}

// ShowErrorToast returns a command to show an error toast.
func ShowErrorToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  message,
			Duration: duration,
			IsError:  true,
		}
	}
}

// ClearToastMsg removes the current toast once its timer fires.
type ClearToastMsg struct{}

// NotesReloadedMsg carries notes reloaded after an external file change.
type NotesReloadedMsg struct {
	Notes []note.Note
}

// SearchResultsMsg carries the IDs matching the current search query.
type SearchResultsMsg struct {
	Query string
	IDs   []string
}

// DockStateMsg reports a dock state transition from the controller goroutine.
type DockStateMsg struct {
	Name string
}
