package app

import (
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/peek/internal/config"
	"github.com/marcus/peek/internal/msg"
	"github.com/marcus/peek/internal/state"
	"github.com/marcus/peek/internal/styles"
	"github.com/marcus/peek/internal/ui"
)

// Update implements tea.Model.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.resizeEditor()
		m.previewText = ""
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(message)

	case msg.ToastMsg:
		m.toast = message.Message
		m.toastIsError = message.IsError
		d := message.Duration
		if d <= 0 {
			d = 2 * time.Second
		}
		return m, clearToast(d)

	case msg.ClearToastMsg:
		m.toast = ""
		return m, nil

	case msg.NotesReloadedMsg:
		// External change to the notes file. Pending edits lose; the file
		// on disk is the source of truth.
		m.store.Replace(message.Notes)
		m.editorDirty = false
		m.loadActiveIntoEditor()
		m.syncCursorToActive()
		m.ensureCursorVisible()
		m.refreshPreview()
		return m, tea.Batch(
			msg.ShowToast("Notes reloaded from disk", 2*time.Second),
			reindexNotes(m.index, m.store.List()),
		)

	case msg.SearchResultsMsg:
		// Drop stale results from queries that were superseded.
		if !m.searchMode || message.Query != m.searchInput.Value() {
			return m, nil
		}
		m.searchIDs = message.IDs
		m.cursor = 0
		m.scrollOff = 0
		return m, nil

	case msg.DockStateMsg:
		m.dockState = message.Name
		if err := state.SetDockState(message.Name); err != nil {
			m.log.Warn("dock state save failed", "error", err)
		}
		return m, nil

	case AutoSaveTickMsg:
		if message.ID == m.autoSaveID && m.editorDirty {
			m.flushEditor()
			return m, reindexNotes(m.index, m.store.List())
		}
		return m, nil
	}

	// Pass through remaining messages for cursor blink etc.
	if m.activePane == PaneEditor && !m.previewMode {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(message)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg routes key input by focus context.
func (m Model) handleKeyMsg(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.focusContext()
	command, bound := m.keys.Resolve(ctx, k.String())

	// Text-entry surfaces consume printable keys before command dispatch.
	switch ctx {
	case "search":
		if bound {
			return m.handleSearchCommand(command)
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(k)
		return m, tea.Batch(cmd, searchNotes(m.index, m.store.List(), m.searchInput.Value()))
	case "rename":
		if bound {
			return m.handleRenameCommand(command)
		}
		var cmd tea.Cmd
		m.renameInput, cmd = m.renameInput.Update(k)
		return m, cmd
	case "confirm":
		if bound {
			return m.handleConfirmCommand(command)
		}
		return m, nil
	case "editor":
		if bound {
			if model, cmd, handled := m.handleEditorCommand(command); handled {
				return model, cmd
			}
		}
		return m.handleEditorInput(k)
	case "preview":
		if bound {
			return m.handlePreviewCommand(command)
		}
		return m, nil
	}

	if !bound {
		return m, nil
	}
	return m.handleListCommand(command)
}

// handleListCommand executes commands while the note list is focused.
func (m Model) handleListCommand(command string) (tea.Model, tea.Cmd) {
	switch command {
	case "quit":
		return m.quit()
	case "toggle-theme", "toggle-footer", "font-bigger", "font-smaller":
		return m.handleGlobalCommand(command)

	case "cursor-down":
		if notes := m.visibleNotes(); m.cursor < len(notes)-1 {
			m.cursor++
			m.selectUnderCursor()
		}
		m.ensureCursorVisible()
	case "cursor-up":
		if m.cursor > 0 {
			m.cursor--
			m.selectUnderCursor()
		}
		m.ensureCursorVisible()
	case "cursor-top":
		m.cursor = 0
		m.selectUnderCursor()
		m.ensureCursorVisible()
	case "cursor-bottom":
		if notes := m.visibleNotes(); len(notes) > 0 {
			m.cursor = len(notes) - 1
			m.selectUnderCursor()
		}
		m.ensureCursorVisible()

	case "open-note", "switch-pane":
		if _, ok := m.selectedNote(); !ok {
			return m, nil
		}
		m.selectUnderCursor()
		m.activePane = PaneEditor
		if !m.previewMode {
			return m, m.editor.Focus()
		}

	case "new-note":
		m.flushEditor()
		m.clearSearch()
		m.store.Create()
		m.cursor = 0
		m.scrollOff = 0
		m.loadActiveIntoEditor()
		m.activePane = PaneEditor
		m.previewMode = false
		return m, tea.Batch(m.editor.Focus(), reindexNotes(m.index, m.store.List()))

	case "delete-note":
		n, ok := m.selectedNote()
		if !ok {
			return m, nil
		}
		m.confirm = ui.NewDeleteDialog("Delete note?", "\""+noteTitle(n)+"\" will be permanently removed.")
		m.confirmNoteID = n.ID

	case "rename-note":
		n, ok := m.selectedNote()
		if !ok {
			return m, nil
		}
		m.renameMode = true
		m.renameInput.SetValue(n.Title)
		m.renameInput.CursorEnd()
		return m, m.renameInput.Focus()

	case "search":
		m.searchMode = true
		m.searchInput.SetValue("")
		m.searchIDs = nil
		return m, m.searchInput.Focus()

	case "shrink-list":
		m.listWidth -= 2
		m.clampListWidth()
		m.resizeEditor()
		if err := state.SetListWidth(m.listWidth); err != nil {
			m.log.Warn("list width save failed", "error", err)
		}
	case "grow-list":
		m.listWidth += 2
		m.clampListWidth()
		m.resizeEditor()
		if err := state.SetListWidth(m.listWidth); err != nil {
			m.log.Warn("list width save failed", "error", err)
		}
	}
	return m, nil
}

// handleGlobalCommand executes commands bound in every context.
func (m Model) handleGlobalCommand(command string) (tea.Model, tea.Cmd) {
	switch command {
	case "toggle-theme":
		next := "light"
		if styles.GetCurrentThemeName() == "light" {
			next = "dark"
		}
		m.applyTheme(next)
		m.refreshPreview()
		return m, m.showToast("Theme: "+next, false)

	case "toggle-footer":
		m.showFooter = !m.showFooter
		m.cfg.UI.ShowFooter = m.showFooter
		m.resizeEditor()
		if err := config.Save(m.cfg); err != nil {
			m.log.Warn("config save failed", "error", err)
		}

	case "font-bigger", "font-smaller":
		size := m.cfg.UI.FontSize
		if command == "font-bigger" {
			size++
		} else {
			size--
		}
		// Clamp at the edges rather than Validate, which resets to the
		// default below the minimum.
		if size < 8 {
			size = 8
		}
		if size > 32 {
			size = 32
		}
		m.cfg.UI.FontSize = size
		if err := config.Save(m.cfg); err != nil {
			return m, m.showToast("Font size save failed", true)
		}
		return m, m.showToast("Font size: "+strconv.Itoa(size)+"pt", false)
	}
	return m, nil
}

// handleSearchCommand executes commands while the search input is focused.
func (m Model) handleSearchCommand(command string) (tea.Model, tea.Cmd) {
	switch command {
	case "cancel":
		m.clearSearch()
		m.syncCursorToActive()
		m.ensureCursorVisible()
	case "confirm":
		// Keep the filtered list, move focus to it
		m.searchMode = false
		m.searchInput.Blur()
		m.selectUnderCursor()
	case "cursor-down":
		if notes := m.visibleNotes(); m.cursor < len(notes)-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
	case "cursor-up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}
	}
	return m, nil
}

// handleRenameCommand executes commands while the rename input is focused.
func (m Model) handleRenameCommand(command string) (tea.Model, tea.Cmd) {
	switch command {
	case "cancel":
		m.renameMode = false
		m.renameInput.Blur()
	case "confirm":
		n, ok := m.selectedNote()
		m.renameMode = false
		m.renameInput.Blur()
		if ok {
			m.store.UpdateTitle(n.ID, m.renameInput.Value())
			return m, reindexNotes(m.index, m.store.List())
		}
	}
	return m, nil
}

// handleConfirmCommand executes commands while the delete dialog is open.
func (m Model) handleConfirmCommand(command string) (tea.Model, tea.Cmd) {
	switch command {
	case "cancel":
		m.confirm = nil
		m.confirmNoteID = ""
	case "toggle-button":
		m.confirm.ToggleButton()
	case "confirm", "yes":
		if command == "confirm" && !m.confirm.ConfirmSelected() {
			m.confirm = nil
			m.confirmNoteID = ""
			return m, nil
		}
		id := m.confirmNoteID
		m.confirm = nil
		m.confirmNoteID = ""
		m.editorDirty = false // the deleted note's edits die with it
		if m.store.Delete(id) {
			m.removeFromSearch(id)
			m.syncCursorToActive()
			m.ensureCursorVisible()
			m.loadActiveIntoEditor()
			return m, tea.Batch(
				m.showToast("Note deleted", false),
				reindexNotes(m.index, m.store.List()),
			)
		}
	}
	return m, nil
}

// handleEditorCommand executes bound commands in edit mode. Unhandled
// commands fall through to the textarea.
func (m Model) handleEditorCommand(command string) (tea.Model, tea.Cmd, bool) {
	switch command {
	case "quit":
		model, cmd := m.quit()
		return model, cmd, true
	case "toggle-theme", "toggle-footer", "font-bigger", "font-smaller":
		model, cmd := m.handleGlobalCommand(command)
		return model, cmd, true
	case "leave-editor", "switch-pane":
		m.flushEditor()
		m.activePane = PaneList
		m.editor.Blur()
		return m, reindexNotes(m.index, m.store.List()), true
	case "toggle-preview":
		m.flushEditor()
		m.previewMode = true
		m.previewScroll = 0
		m.editor.Blur()
		m.refreshPreview()
		return m, reindexNotes(m.index, m.store.List()), true
	case "toggle-wrap":
		m.lineWrap = !m.lineWrap
		m.previewText = ""
		m.refreshPreview()
		if err := state.SetLineWrap(m.lineWrap); err != nil {
			m.log.Warn("line wrap save failed", "error", err)
		}
		return m, nil, true
	case "copy-note":
		model, cmd := m.copyNote()
		return model, cmd, true
	}
	return m, nil, false
}

// handleEditorInput forwards a key to the textarea and arms the auto-save
// debounce when content changed.
func (m Model) handleEditorInput(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(k)
	if m.editor.Value() != before {
		m.editorDirty = true
		m.autoSaveID++
		return m, tea.Batch(cmd, autoSaveTick(m.autoSaveID))
	}
	return m, cmd
}

// handlePreviewCommand executes commands in the read-only markdown preview.
func (m Model) handlePreviewCommand(command string) (tea.Model, tea.Cmd) {
	switch command {
	case "quit":
		return m.quit()
	case "toggle-theme", "toggle-footer", "font-bigger", "font-smaller":
		return m.handleGlobalCommand(command)
	case "leave-preview":
		m.previewMode = false
		m.activePane = PaneList
	case "toggle-preview":
		m.previewMode = false
		return m, m.editor.Focus()
	case "scroll-down":
		m.previewScroll++
	case "scroll-up":
		if m.previewScroll > 0 {
			m.previewScroll--
		}
	case "copy-note":
		return m.copyNote()
	}
	return m, nil
}

// selectUnderCursor makes the note under the list cursor the active note and
// loads it into the editor.
func (m *Model) selectUnderCursor() {
	n, ok := m.selectedNote()
	if !ok {
		return
	}
	if n.ID == m.store.ActiveID() {
		return
	}
	m.flushEditor()
	m.store.SetActive(n.ID)
	m.loadActiveIntoEditor()
	m.refreshPreview()
}

// clearSearch drops the search filter and input state.
func (m *Model) clearSearch() {
	m.searchMode = false
	m.searchInput.Blur()
	m.searchInput.SetValue("")
	m.searchIDs = nil
	m.cursor = 0
	m.scrollOff = 0
}

// removeFromSearch drops an ID from the active search results.
func (m *Model) removeFromSearch(id string) {
	if m.searchIDs == nil {
		return
	}
	out := m.searchIDs[:0]
	for _, v := range m.searchIDs {
		if v != id {
			out = append(out, v)
		}
	}
	m.searchIDs = out
}

// copyNote copies the active note's content to the system clipboard.
func (m Model) copyNote() (tea.Model, tea.Cmd) {
	n, ok := m.store.Active()
	if !ok {
		return m, nil
	}
	content := n.Content
	if m.editorDirty {
		content = m.editor.Value()
	}
	if err := clipboard.WriteAll(content); err != nil {
		return m, m.showToast("Copy failed: "+err.Error(), true)
	}
	return m, m.showToast("Copied to clipboard", false)
}

// quit flushes pending edits and persists session state before exiting.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.flushEditor()
	if err := state.SetLastActiveNote(m.store.ActiveID()); err != nil {
		m.log.Warn("session state save failed", "error", err)
	}
	return m, tea.Quit
}
