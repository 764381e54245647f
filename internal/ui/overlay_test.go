package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestOverlayModalCentersContent(t *testing.T) {
	bg := strings.TrimRight(strings.Repeat("xxxxxxxxxx\n", 9), "\n")
	modal := "MODAL"

	out := OverlayModal(bg, modal, 10, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}

	// Modal row is vertically centered, horizontally at (10-5)/2 = 2
	mid := ansi.Strip(lines[4])
	if mid != "xxMODALxxx" {
		t.Errorf("middle line = %q, want %q", mid, "xxMODALxxx")
	}
}

func TestOverlayModalDimsBackground(t *testing.T) {
	bg := "hello\nworld"
	out := OverlayModal(bg, "M", 5, 2)

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "\x1b[") {
			t.Errorf("line %d has no styling, background should be dimmed", i)
		}
	}
}

func TestOverlayModalStripsBackgroundColors(t *testing.T) {
	bg := "\x1b[31mred line\x1b[0m"
	out := OverlayModal(bg, "M", 20, 1)

	if strings.Contains(out, "\x1b[31m") {
		t.Error("original background color should be stripped before dimming")
	}
	if !strings.Contains(ansi.Strip(out), "red line") {
		t.Error("background text should survive")
	}
}

func TestOverlayModalPadsShortBackground(t *testing.T) {
	// One-line background under a 5-line viewport
	out := OverlayModal("short", "MODAL", 20, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
}

func TestOverlayModalOversizedModal(t *testing.T) {
	// A modal wider than the viewport is pinned to column zero
	out := OverlayModal("bg", "WIDE MODAL CONTENT", 5, 1)
	if !strings.HasPrefix(ansi.Strip(out), "WIDE MODAL CONTENT") {
		t.Errorf("oversized modal should start at column 0, got %q", ansi.Strip(out))
	}
}

func TestSpliceRowKeepsRightBackground(t *testing.T) {
	row := spliceRow("0123456789", "MM", 4, 2, 10)
	plain := ansi.Strip(row)
	if plain != "0123MM6789" {
		t.Errorf("spliceRow = %q, want %q", plain, "0123MM6789")
	}
}

func TestWidestLine(t *testing.T) {
	if got := widestLine([]string{"a", "abc", "ab"}); got != 3 {
		t.Errorf("widestLine = %d, want 3", got)
	}
	if got := widestLine(nil); got != 0 {
		t.Errorf("widestLine(nil) = %d, want 0", got)
	}
}
