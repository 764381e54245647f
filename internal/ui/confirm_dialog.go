package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/peek/internal/styles"
)

// Modal width presets.
const (
	ModalWidthSmall  = 40
	ModalWidthMedium = 50
)

// ConfirmDialog is a keyboard-driven confirmation modal with two buttons.
// The confirm button is selected by default for non-destructive dialogs;
// destructive ones start on cancel.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string // e.g., " Delete ", " Yes "
	CancelLabel  string // e.g., " Cancel ", " No "
	Danger       bool   // destructive action, red styling
	Width        int

	confirmSelected bool
}

// NewDeleteDialog creates a destructive-action dialog. Cancel is selected
// initially so a stray enter cannot delete anything.
func NewDeleteDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Delete ",
		CancelLabel:  " Cancel ",
		Danger:       true,
		Width:        ModalWidthMedium,
	}
}

// ToggleButton moves selection between the two buttons.
func (d *ConfirmDialog) ToggleButton() {
	d.confirmSelected = !d.confirmSelected
}

// ConfirmSelected reports whether the confirm button is currently selected.
func (d *ConfirmDialog) ConfirmSelected() bool {
	return d.confirmSelected
}

// View renders the dialog box.
func (d *ConfirmDialog) View() string {
	borderColor := styles.Primary
	if d.Danger {
		borderColor = styles.Error
	}

	box := styles.ModalBox.
		BorderForeground(borderColor).
		Width(d.Width)

	confirmStyle := styles.Button
	cancelStyle := styles.Button
	if d.confirmSelected {
		confirmStyle = styles.ButtonFocused
		if d.Danger {
			confirmStyle = styles.ButtonDangerFocused
		}
	} else {
		cancelStyle = styles.ButtonFocused
		if d.Danger {
			confirmStyle = styles.ButtonDanger
		}
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		confirmStyle.Render(d.ConfirmLabel),
		"  ",
		cancelStyle.Render(d.CancelLabel),
	)

	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(styles.Body.Width(d.Width - 6).Render(d.Message))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(d.Width-6, lipgloss.Center, buttons))

	return box.Render(b.String())
}
