package app

import (
	"github.com/charmbracelet/glamour"

	"github.com/marcus/peek/internal/styles"
)

// renderPreview renders the active note's markdown for the preview pane.
// The result is cached in previewText and invalidated when the note,
// window size, or theme changes.
func (m *Model) renderPreview(width int) string {
	if m.previewText != "" {
		return m.previewText
	}
	n, ok := m.store.Active()
	if !ok {
		return ""
	}
	content := n.Content
	if m.editorDirty {
		content = m.editor.Value()
	}

	wrap := width
	if !m.lineWrap || wrap < 1 {
		wrap = 0
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.GetMarkdownTheme()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.log.Warn("markdown renderer init failed", "error", err)
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		m.log.Warn("markdown render failed", "error", err)
		return content
	}
	m.previewText = out
	return out
}
