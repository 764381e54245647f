// Package ui provides shared UI components and helpers for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dimStyle is applied to background content behind a modal. Existing ANSI
// codes are stripped first; SGR 2 (faint) does not reliably combine with
// color codes already present in the line.
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// OverlayModal centers modal over background, dimming every background cell
// the modal does not cover. Both arguments are full rendered frames.
func OverlayModal(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	modalLines := strings.Split(modal, "\n")

	modalWidth := widestLine(modalLines)
	startX := (width - modalWidth) / 2
	startY := (height - len(modalLines)) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	out := make([]string, 0, height)
	for y := 0; y < height; y++ {
		var bg string
		if y < len(bgLines) {
			bg = bgLines[y]
		}
		row := y - startY
		if row >= 0 && row < len(modalLines) {
			out = append(out, spliceRow(bg, modalLines[row], startX, modalWidth, width))
		} else {
			out = append(out, dimStyle.Render(ansi.Strip(bg)))
		}
	}
	return strings.Join(out, "\n")
}

// spliceRow lays modalLine over bgLine at column startX. The uncovered
// stretches of the background are dimmed. Cuts are made on visual width so
// wide runes and escape codes in the background cannot shift the modal.
func spliceRow(bgLine, modalLine string, startX, modalWidth, totalWidth int) string {
	var b strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if startX > 0 {
		left := ansi.Truncate(stripped, startX, "")
		b.WriteString(dimStyle.Render(left))
		if w := ansi.StringWidth(left); w < startX {
			b.WriteString(strings.Repeat(" ", startX-w))
		}
	}

	b.WriteString(modalLine)

	rightStart := startX + modalWidth
	if rightStart < totalWidth && bgWidth > rightStart {
		b.WriteString(dimStyle.Render(ansi.Cut(stripped, rightStart, bgWidth)))
	}
	return b.String()
}

// widestLine returns the maximum visual width across lines.
func widestLine(lines []string) int {
	max := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > max {
			max = w
		}
	}
	return max
}
