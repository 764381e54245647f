package ui

import (
	"strings"
	"testing"
)

func TestNewDeleteDialog_StartsOnCancel(t *testing.T) {
	d := NewDeleteDialog("Delete note?", "This cannot be undone.")

	if !d.Danger {
		t.Error("delete dialog should be marked destructive")
	}
	if d.ConfirmSelected() {
		t.Error("destructive dialog should start with cancel selected")
	}
	if d.ConfirmLabel != " Delete " || d.CancelLabel != " Cancel " {
		t.Errorf("unexpected button labels %q / %q", d.ConfirmLabel, d.CancelLabel)
	}
	if d.Width != ModalWidthMedium {
		t.Errorf("expected width %d, got %d", ModalWidthMedium, d.Width)
	}
}

func TestConfirmDialog_ToggleButton(t *testing.T) {
	d := NewDeleteDialog("Delete note?", "Really?")

	d.ToggleButton()
	if !d.ConfirmSelected() {
		t.Error("toggle should move selection to confirm")
	}
	d.ToggleButton()
	if d.ConfirmSelected() {
		t.Error("second toggle should move selection back to cancel")
	}
}

func TestConfirmDialog_View(t *testing.T) {
	d := NewDeleteDialog("Delete note?", "Are you sure?")
	output := d.View()

	if !strings.Contains(output, "Delete note?") {
		t.Error("render should contain title")
	}
	if !strings.Contains(output, "Are you sure?") {
		t.Error("render should contain message")
	}
	if !strings.Contains(output, "Delete") {
		t.Error("render should contain confirm label")
	}
	if !strings.Contains(output, "Cancel") {
		t.Error("render should contain cancel label")
	}
}
