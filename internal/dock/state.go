package dock

// State is the tracked docking state of the window. It is an explicit state
// machine value, not a per-tick geometric re-derivation: the controller only
// commits a new state after the same classification has been observed for a
// configurable number of consecutive ticks.
type State int

const (
	// Undocked means the window is not near a dockable edge.
	Undocked State = iota
	// DockedLeftVisible means the window sits fully visible at the left edge.
	DockedLeftVisible
	// DockedLeftHidden means the window is pushed off the left edge with
	// only the peek strip exposed.
	DockedLeftHidden
	// DockedRightVisible means the window sits fully visible at the right edge.
	DockedRightVisible
	// DockedRightHidden means the window is pushed off the right edge with
	// only the peek strip exposed.
	DockedRightHidden
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case DockedLeftVisible:
		return "docked-left"
	case DockedLeftHidden:
		return "hidden-left"
	case DockedRightVisible:
		return "docked-right"
	case DockedRightHidden:
		return "hidden-right"
	default:
		return "undocked"
	}
}

// Hidden reports whether the state is one of the hidden variants.
func (s State) Hidden() bool {
	return s == DockedLeftHidden || s == DockedRightHidden
}

// Edge identifies a horizontal screen edge.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
)

// classify derives the raw docking state from window geometry alone.
// Hidden checks run before docked checks: a hidden window exposes at most the
// peek strip, which places its x-origin far outside the edge threshold.
func classify(win, work Rect, peekWidth, edgeThreshold int) State {
	// Hidden left: origin pushed off-screen, only a sliver past the left
	// work-area edge remains.
	if win.X < work.X {
		if exposed := win.Right() - work.X; exposed > 0 && exposed <= peekWidth+edgeThreshold {
			return DockedLeftHidden
		}
	}
	// Hidden right: mirror image.
	if win.Right() > work.Right() {
		if exposed := work.Right() - win.X; exposed > 0 && exposed <= peekWidth+edgeThreshold {
			return DockedRightHidden
		}
	}
	if abs(win.X-work.X) <= edgeThreshold {
		return DockedLeftVisible
	}
	if abs(win.Right()-work.Right()) <= edgeThreshold {
		return DockedRightVisible
	}
	return Undocked
}
