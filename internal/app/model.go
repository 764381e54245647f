package app

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/peek/internal/config"
	"github.com/marcus/peek/internal/keymap"
	"github.com/marcus/peek/internal/note"
	"github.com/marcus/peek/internal/search"
	"github.com/marcus/peek/internal/state"
	"github.com/marcus/peek/internal/styles"
	"github.com/marcus/peek/internal/ui"
)

// FocusPane represents which pane is active.
type FocusPane int

const (
	PaneList FocusPane = iota
	PaneEditor
)

const (
	dividerWidth     = 1
	defaultListWidth = 30
	minListWidth     = 16
	maxListWidthFrac = 2 // list may take at most width/2
)

// Model is the root bubbletea model.
type Model struct {
	cfg   *config.Config
	keys  *keymap.Registry
	store *note.Store
	index *search.Index // nil when no index is available
	log   *slog.Logger

	// View dimensions
	width  int
	height int

	// Pane state
	activePane FocusPane
	listWidth  int
	cursor     int
	scrollOff  int

	// Search state
	searchMode  bool
	searchInput textinput.Model
	searchIDs   []string // nil = not filtering, result order preserved

	// Rename state
	renameMode  bool
	renameInput textinput.Model

	// Delete confirmation state
	confirm       *ui.ConfirmDialog
	confirmNoteID string

	// Editor state
	editor      textarea.Model
	editorDirty bool
	autoSaveID  int

	// Markdown preview state
	previewMode   bool
	previewText   string // rendered markdown, cached per note/width/theme
	previewScroll int
	lineWrap      bool

	// Toast state
	toast        string
	toastIsError bool

	// Dock state name shown in the header ("" until first report)
	dockState string

	showFooter bool
}

// New creates the root model. The store must already hold the loaded notes.
func New(st *note.Store, idx *search.Index, km *keymap.Registry, cfg *config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.FocusedStyle = textarea.Style{
		Base:             lipgloss.NewStyle(),
		CursorLine:       lipgloss.NewStyle(),
		CursorLineNumber: styles.Muted,
		EndOfBuffer:      styles.Muted,
		LineNumber:       styles.Muted,
		Placeholder:      styles.Muted,
		Prompt:           lipgloss.NewStyle(),
		Text:             lipgloss.NewStyle(),
	}
	ta.BlurredStyle = ta.FocusedStyle
	// ctrl+y is bound to clipboard copy
	ta.KeyMap.Paste = key.NewBinding(key.WithDisabled())
	ta.Blur()

	si := textinput.New()
	si.Prompt = "/ "
	si.Placeholder = "search notes"

	ri := textinput.New()
	ri.Prompt = "title: "

	listWidth := state.GetListWidth()
	if listWidth <= 0 {
		listWidth = defaultListWidth
	}

	m := Model{
		cfg:         cfg,
		keys:        km,
		store:       st,
		index:       idx,
		log:         logger,
		activePane:  PaneList,
		listWidth:   listWidth,
		searchInput: si,
		renameInput: ri,
		editor:      ta,
		lineWrap:    state.GetLineWrap(),
		showFooter:  cfg.UI.ShowFooter,
	}

	// Restore last selection
	if id := state.GetLastActiveNote(); id != "" && st.SetActive(id) {
		m.syncCursorToActive()
	}
	m.loadActiveIntoEditor()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return reindexNotes(m.index, m.store.List())
}

// visibleNotes returns the notes currently shown in the list pane. While a
// search filter is active the index's ranking order is preserved.
func (m *Model) visibleNotes() []note.Note {
	all := m.store.List()
	if m.searchIDs == nil {
		return all
	}
	byID := make(map[string]note.Note, len(all))
	for _, n := range all {
		byID[n.ID] = n
	}
	out := make([]note.Note, 0, len(m.searchIDs))
	for _, id := range m.searchIDs {
		if n, ok := byID[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// selectedNote returns the note under the cursor, or false when the visible
// list is empty.
func (m *Model) selectedNote() (note.Note, bool) {
	notes := m.visibleNotes()
	if len(notes) == 0 {
		return note.Note{}, false
	}
	if m.cursor >= len(notes) {
		m.cursor = len(notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return notes[m.cursor], true
}

// syncCursorToActive positions the list cursor on the store's active note.
func (m *Model) syncCursorToActive() {
	id := m.store.ActiveID()
	for i, n := range m.visibleNotes() {
		if n.ID == id {
			m.cursor = i
			return
		}
	}
	m.cursor = 0
}

// loadActiveIntoEditor replaces the editor buffer with the active note's
// content. Pending edits must be flushed before calling this.
func (m *Model) loadActiveIntoEditor() {
	n, ok := m.store.Active()
	if !ok {
		m.editor.SetValue("")
		m.previewText = ""
		m.editorDirty = false
		return
	}
	m.editor.SetValue(n.Content)
	m.editorDirty = false
	m.previewText = ""
	m.previewScroll = 0
}

// flushEditor writes pending editor content through to the store.
func (m *Model) flushEditor() {
	if !m.editorDirty {
		return
	}
	m.store.UpdateContent(m.editor.Value())
	m.editorDirty = false
	m.previewText = ""
}

// showToast sets the toast and returns a command to clear it.
func (m *Model) showToast(text string, isError bool) tea.Cmd {
	m.toast = text
	m.toastIsError = isError
	return clearToast(2 * time.Second)
}

// resizeEditor updates the textarea dimensions from the current layout.
func (m *Model) resizeEditor() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.clampListWidth()
	editorWidth := m.width - m.listWidth - dividerWidth - 4 // borders + padding
	contentHeight := m.contentHeight()
	if editorWidth < 1 {
		editorWidth = 1
	}
	m.editor.SetWidth(editorWidth)
	m.editor.SetHeight(contentHeight)
}

// refreshPreview re-renders the cached markdown preview when the preview
// pane is showing.
func (m *Model) refreshPreview() {
	if m.previewMode && m.width > 0 {
		m.renderPreview(m.previewInnerWidth())
	}
}

// previewInnerWidth is the text width available inside the preview pane.
func (m *Model) previewInnerWidth() int {
	w := m.width - m.listWidth - dividerWidth - 4
	if w < 1 {
		w = 1
	}
	return w
}

// contentHeight is the usable pane height below the header and above the
// footer.
func (m *Model) contentHeight() int {
	h := m.height - 1 - 2 // header, pane borders
	if m.showFooter {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) clampListWidth() {
	if m.listWidth < minListWidth {
		m.listWidth = minListWidth
	}
	if m.width > 0 && m.listWidth > m.width/maxListWidthFrac {
		m.listWidth = m.width / maxListWidthFrac
	}
}

// ensureCursorVisible adjusts the list scroll offset to keep the cursor on
// screen.
func (m *Model) ensureCursorVisible() {
	visible := m.contentHeight()
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	}
	if m.cursor >= m.scrollOff+visible {
		m.scrollOff = m.cursor - visible + 1
	}
}

// focusContext names the key binding context for the current UI state.
func (m *Model) focusContext() string {
	switch {
	case m.confirm != nil:
		return "confirm"
	case m.renameMode:
		return "rename"
	case m.searchMode:
		return "search"
	case m.activePane == PaneEditor && m.previewMode:
		return "preview"
	case m.activePane == PaneEditor:
		return "editor"
	default:
		return "list"
	}
}

// applyTheme switches the color theme, persists the choice, and invalidates
// the cached markdown render.
func (m *Model) applyTheme(name string) {
	styles.ApplyTheme(name)
	m.cfg.UI.Theme = styles.GetCurrentThemeName()
	m.previewText = ""
	if err := config.Save(m.cfg); err != nil {
		m.log.Warn("theme save failed", "error", err)
	}
}

// noteTitle returns the display title for a note, falling back to the first
// content line.
func noteTitle(n note.Note) string {
	if n.Title != "" {
		return n.Title
	}
	line, _, _ := strings.Cut(n.Content, "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "Untitled"
	}
	return line
}
