package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/peek/internal/styles"
	"github.com/marcus/peek/internal/ui"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), m.renderEditor())
	b.WriteString(body)

	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	view := b.String()
	if m.confirm != nil {
		view = ui.OverlayModal(view, m.confirm.View(), m.width, m.height)
	}
	return view
}

// renderHeader draws the one-line title bar.
func (m Model) renderHeader() string {
	left := styles.Logo.Render(" peek ")
	count := len(m.store.List())
	label := fmt.Sprintf(" %d notes", count)
	if count == 1 {
		label = " 1 note"
	}
	left += styles.Subtle.Render(label)

	right := ""
	if m.dockState != "" {
		right = styles.Subtle.Render("[" + m.dockState + "] ")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Render(left + strings.Repeat(" ", gap) + right)
}

// renderList draws the note list pane.
func (m Model) renderList() string {
	inner := m.listWidth - 2 // panel padding
	if inner < 4 {
		inner = 4
	}
	height := m.contentHeight()

	var rows []string
	if m.searchMode {
		m.searchInput.Width = inner - len(m.searchInput.Prompt) - 1
		rows = append(rows, m.searchInput.View())
		height--
	}
	if m.renameMode {
		m.renameInput.Width = inner - len(m.renameInput.Prompt) - 1
		rows = append(rows, m.renameInput.View())
		height--
	}

	notes := m.visibleNotes()
	if len(notes) == 0 {
		empty := "no notes"
		if m.searchIDs != nil {
			empty = "no matches"
		}
		rows = append(rows, styles.Muted.Render(empty))
	}

	end := m.scrollOff + height
	if end > len(notes) {
		end = len(notes)
	}
	start := m.scrollOff
	if start > len(notes) {
		start = len(notes)
	}
	activeID := m.store.ActiveID()
	for i := start; i < end; i++ {
		rows = append(rows, m.renderListRow(notes[i].ID == activeID, i, inner))
	}

	panel := styles.PanelInactive
	if m.activePane == PaneList && m.confirm == nil {
		panel = styles.PanelActive
	}
	return panel.Width(m.listWidth).Height(m.contentHeight()).Render(strings.Join(rows, "\n"))
}

// renderListRow draws a single note row with the cursor marker, truncated
// title, and relative update time.
func (m Model) renderListRow(active bool, i int, inner int) string {
	notes := m.visibleNotes()
	n := notes[i]

	marker := "  "
	if i == m.cursor {
		marker = styles.ListCursor.Render("▸ ")
	}

	age := formatTimeAgo(time.UnixMilli(n.UpdatedAt))
	titleWidth := inner - 2 - lipgloss.Width(age) - 1
	if titleWidth < 4 {
		titleWidth = 4
		age = ""
	}
	title := runewidth.Truncate(noteTitle(n), titleWidth, "…")
	pad := titleWidth - runewidth.StringWidth(title)
	if pad < 0 {
		pad = 0
	}

	style := styles.ListItemNormal
	switch {
	case i == m.cursor && m.activePane == PaneList:
		style = styles.ListItemFocused
	case active:
		style = styles.ListItemSelected
	}
	return marker + style.Render(title) + strings.Repeat(" ", pad) + " " + styles.Subtle.Render(age)
}

// renderEditor draws the editor or markdown preview pane.
func (m Model) renderEditor() string {
	paneWidth := m.width - m.listWidth - dividerWidth
	if paneWidth < 3 {
		paneWidth = 3
	}
	inner := paneWidth - 4 // borders + padding

	var content string
	if m.previewMode {
		content = m.renderPreviewWindow(inner)
	} else if _, ok := m.store.Active(); ok {
		content = m.editor.View()
	} else {
		content = styles.Muted.Render("press n to create a note")
	}

	panel := styles.PanelInactive
	if m.activePane == PaneEditor && m.confirm == nil {
		panel = styles.PanelActive
	}
	return panel.Width(paneWidth).Height(m.contentHeight()).Render(content)
}

// renderPreviewWindow renders the markdown preview clipped to the pane,
// honoring the scroll offset.
func (m Model) renderPreviewWindow(width int) string {
	rendered := m.renderPreview(width)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	height := m.contentHeight()

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	off := m.previewScroll
	if off > maxScroll {
		off = maxScroll
	}
	end := off + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[off:end], "\n")
}

// renderFooter draws key hints for the current context, or the active toast.
func (m Model) renderFooter() string {
	if m.toast != "" {
		style := styles.ToastSuccess
		if m.toastIsError {
			style = styles.ToastError
		}
		toast := style.Render(m.toast)
		gap := m.width - lipgloss.Width(toast)
		if gap < 0 {
			gap = 0
		}
		return strings.Repeat(" ", gap) + toast
	}

	hints := footerHints(m.focusContext())
	var parts []string
	for i := 0; i+1 < len(hints); i += 2 {
		parts = append(parts, styles.KeyHint.Render(hints[i])+" "+styles.Subtle.Render(hints[i+1]))
	}
	return styles.Footer.Width(m.width).Render(strings.Join(parts, "  "))
}

// footerHints returns key/label pairs for the footer, per context.
func footerHints(ctx string) []string {
	switch ctx {
	case "editor":
		return []string{"esc", "done", "ctrl+p", "preview", "ctrl+y", "copy", "ctrl+w", "wrap"}
	case "preview":
		return []string{"esc", "back", "j/k", "scroll", "ctrl+p", "edit", "ctrl+y", "copy"}
	case "search":
		return []string{"enter", "select", "esc", "cancel", "↑/↓", "move"}
	case "rename":
		return []string{"enter", "save", "esc", "cancel"}
	case "confirm":
		return []string{"←/→", "choose", "enter", "confirm", "esc", "cancel"}
	default:
		return []string{"n", "new", "enter", "open", "d", "delete", "r", "rename", "/", "search", "q", "quit"}
	}
}

// formatTimeAgo formats a time as a short "X ago" string.
func formatTimeAgo(t time.Time) string {
	if t.IsZero() || t.UnixMilli() == 0 {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Local().Format("Jan 02")
	}
}
