package dock

import "testing"

func TestClassify(t *testing.T) {
	work := Rect{X: 0, Y: 0, W: 1920, H: 1040}
	const (
		winW = 400
		winH = 800
		peek = 20
		edge = 50
	)

	tests := []struct {
		name string
		winX int
		want State
	}{
		{"flush left", 0, DockedLeftVisible},
		{"near left within threshold", 40, DockedLeftVisible},
		{"just past left threshold", 51, Undocked},
		{"center", 760, Undocked},
		{"flush right", 1520, DockedRightVisible},
		{"near right within threshold", 1480, DockedRightVisible},
		{"hidden left exact peek", -winW + peek, DockedLeftHidden},
		{"hidden left partial slide", -winW + peek + edge, DockedLeftHidden},
		{"hidden right exact peek", 1920 - peek, DockedRightHidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := Rect{X: tt.winX, Y: 100, W: winW, H: winH}
			if got := classify(win, work, peek, edge); got != tt.want {
				t.Errorf("classify(x=%d) = %v, want %v", tt.winX, got, tt.want)
			}
		})
	}
}

func TestClassify_OffsetWorkArea(t *testing.T) {
	// Secondary display whose work area does not start at the origin.
	work := Rect{X: 1920, Y: 0, W: 1920, H: 1040}
	win := Rect{X: 1920 - 400 + 20, Y: 100, W: 400, H: 800}

	if got := classify(win, work, 20, 50); got != DockedLeftHidden {
		t.Errorf("classify = %v, want %v", got, DockedLeftHidden)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Undocked, "undocked"},
		{DockedLeftVisible, "docked-left"},
		{DockedLeftHidden, "hidden-left"},
		{DockedRightVisible, "docked-right"},
		{DockedRightHidden, "hidden-right"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_Hidden(t *testing.T) {
	if !DockedLeftHidden.Hidden() || !DockedRightHidden.Hidden() {
		t.Error("hidden states should report Hidden")
	}
	if Undocked.Hidden() || DockedLeftVisible.Hidden() || DockedRightVisible.Hidden() {
		t.Error("visible states should not report Hidden")
	}
}
