package dock

import (
	"errors"
	"testing"
)

// fakeHost is a scriptable Host for controller tests.
type fakeHost struct {
	cursor    Point
	cursorErr error
	displays  []Display
	win       Rect
	winOK     bool
	moveErr   error
	moves     []int
}

func (h *fakeHost) CursorPosition() (Point, error) { return h.cursor, h.cursorErr }
func (h *fakeHost) Displays() []Display            { return h.displays }
func (h *fakeHost) WindowBounds() (Rect, bool)     { return h.win, h.winOK }

func (h *fakeHost) MoveWindow(x int) error {
	if h.moveErr != nil {
		return h.moveErr
	}
	h.moves = append(h.moves, x)
	h.win.X = x
	return nil
}

var testOpts = Options{EdgeThreshold: 50, PeekWidth: 20, Hysteresis: 2}

func singleDisplay() []Display {
	return []Display{{
		Bounds:   Rect{X: 0, Y: 0, W: 1920, H: 1080},
		WorkArea: Rect{X: 0, Y: 0, W: 1920, H: 1040},
	}}
}

// settle runs enough ticks for the hysteresis filter to commit the observed
// state without triggering further movement.
func settle(c *Controller, ticks int) {
	for i := 0; i < ticks; i++ {
		c.Tick()
	}
}

func TestController_RevealOnPeekStripEntry(t *testing.T) {
	host := &fakeHost{
		displays: singleDisplay(),
		// Hidden left: x = workX - winW + peek = 0 - 400 + 20 = -380.
		win:    Rect{X: -380, Y: 100, W: 400, H: 800},
		winOK:  true,
		cursor: Point{X: 960, Y: 500},
	}
	c := NewController(host, testOpts, nil)
	settle(c, 2)
	if c.State() != DockedLeftHidden {
		t.Fatalf("state = %v, want %v", c.State(), DockedLeftHidden)
	}

	// Cursor enters the peek strip within the window's vertical span.
	host.cursor = Point{X: 5, Y: 500}
	c.Tick()

	if len(host.moves) != 1 || host.moves[0] != 0 {
		t.Fatalf("moves = %v, want [0]", host.moves)
	}
	if c.State() != DockedLeftVisible {
		t.Errorf("state = %v, want %v", c.State(), DockedLeftVisible)
	}
}

func TestController_NoRevealOutsideWindowSpan(t *testing.T) {
	host := &fakeHost{
		displays: singleDisplay(),
		win:      Rect{X: -380, Y: 100, W: 400, H: 800},
		winOK:    true,
		cursor:   Point{X: 960, Y: 500},
	}
	c := NewController(host, testOpts, nil)
	settle(c, 2)

	// In the strip horizontally, but below the window's span.
	host.cursor = Point{X: 5, Y: 950}
	c.Tick()

	if len(host.moves) != 0 {
		t.Errorf("moves = %v, want none", host.moves)
	}
}

func TestController_HideWhenCursorLeaves(t *testing.T) {
	host := &fakeHost{
		displays: singleDisplay(),
		win:      Rect{X: 0, Y: 100, W: 400, H: 800},
		winOK:    true,
		cursor:   Point{X: 200, Y: 500}, // inside the window
	}
	c := NewController(host, testOpts, nil)
	settle(c, 2)
	if c.State() != DockedLeftVisible {
		t.Fatalf("state = %v, want %v", c.State(), DockedLeftVisible)
	}

	host.cursor = Point{X: 1200, Y: 500}
	c.Tick()

	want := 0 - 400 + 20 // workX - winW + peek
	if len(host.moves) != 1 || host.moves[0] != want {
		t.Fatalf("moves = %v, want [%d]", host.moves, want)
	}
	if c.State() != DockedLeftHidden {
		t.Errorf("state = %v, want %v", c.State(), DockedLeftHidden)
	}
}

func TestController_HideRight(t *testing.T) {
	host := &fakeHost{
		displays: singleDisplay(),
		win:      Rect{X: 1520, Y: 100, W: 400, H: 800},
		winOK:    true,
		cursor:   Point{X: 1700, Y: 500},
	}
	c := NewController(host, testOpts, nil)
	settle(c, 2)

	host.cursor = Point{X: 200, Y: 500}
	c.Tick()

	want := 1920 - 20 // work right edge - peek
	if len(host.moves) != 1 || host.moves[0] != want {
		t.Fatalf("moves = %v, want [%d]", host.moves, want)
	}
	if c.State() != DockedRightHidden {
		t.Errorf("state = %v, want %v", c.State(), DockedRightHidden)
	}
}

func TestController_NeighborSuppressesHide(t *testing.T) {
	displays := []Display{
		{Bounds: Rect{X: 0, Y: 0, W: 1920, H: 1080}, WorkArea: Rect{X: 0, Y: 0, W: 1920, H: 1040}},
		{Bounds: Rect{X: -1920, Y: 0, W: 1920, H: 1080}, WorkArea: Rect{X: -1920, Y: 0, W: 1920, H: 1040}},
	}
	host := &fakeHost{
		displays: displays,
		win:      Rect{X: 0, Y: 100, W: 400, H: 800},
		winOK:    true,
		cursor:   Point{X: 200, Y: 500},
	}
	c := NewController(host, testOpts, nil)
	settle(c, 2)

	// Cursor far away; the left edge has a neighbor, so never hide.
	host.cursor = Point{X: 1800, Y: 500}
	settle(c, 5)

	if len(host.moves) != 0 {
		t.Errorf("moves = %v, want none with a left neighbor", host.moves)
	}
	if c.State() != DockedLeftVisible {
		t.Errorf("state = %v, want %v", c.State(), DockedLeftVisible)
	}
}

func TestController_DestroyedWindowSkipsTick(t *testing.T) {
	host := &fakeHost{
		displays: singleDisplay(),
		win:      Rect{X: 0, Y: 100, W: 400, H: 800},
		winOK:    false,
		cursor:   Point{X: 1800, Y: 500},
	}
	c := NewController(host, testOpts, nil)
	settle(c, 5)

	if len(host.moves) != 0 {
		t.Errorf("moves = %v, want none when window is gone", host.moves)
	}
	if c.State() != Undocked {
		t.Errorf("state = %v, want %v", c.State(), Undocked)
	}
}

func TestController_CursorErrorSkipsTick(t *testing.T) {
	host := &fakeHost{
		displays:  singleDisplay(),
		win:       Rect{X: 0, Y: 100, W: 400, H: 800},
		winOK:     true,
		cursorErr: errors.New("no pointer"),
	}
	c := NewController(host, testOpts, nil)
	settle(c, 3)

	if len(host.moves) != 0 {
		t.Errorf("moves = %v, want none on cursor error", host.moves)
	}
}

func TestController_HysteresisDelaysStateChange(t *testing.T) {
	host := &fakeHost{
		displays: singleDisplay(),
		win:      Rect{X: 0, Y: 100, W: 400, H: 800},
		winOK:    true,
		cursor:   Point{X: 200, Y: 500},
	}
	c := NewController(host, Options{EdgeThreshold: 50, PeekWidth: 20, Hysteresis: 3}, nil)

	c.Tick()
	if c.State() != Undocked {
		t.Fatalf("state after 1 tick = %v, want %v", c.State(), Undocked)
	}
	c.Tick()
	if c.State() != Undocked {
		t.Fatalf("state after 2 ticks = %v, want %v", c.State(), Undocked)
	}
	c.Tick()
	if c.State() != DockedLeftVisible {
		t.Fatalf("state after 3 ticks = %v, want %v", c.State(), DockedLeftVisible)
	}
}

func TestController_MoveFailureKeepsState(t *testing.T) {
	host := &fakeHost{
		displays: singleDisplay(),
		win:      Rect{X: 0, Y: 100, W: 400, H: 800},
		winOK:    true,
		cursor:   Point{X: 200, Y: 500},
	}
	c := NewController(host, testOpts, nil)
	settle(c, 2)

	host.moveErr = errors.New("window busy")
	host.cursor = Point{X: 1200, Y: 500}
	c.Tick()

	if c.State() != DockedLeftVisible {
		t.Errorf("state = %v, want unchanged %v after failed move", c.State(), DockedLeftVisible)
	}
}

func TestController_Defaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.PollInterval != defaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", o.PollInterval, defaultPollInterval)
	}
	if o.EdgeThreshold != defaultEdgeThreshold || o.PeekWidth != defaultPeekWidth || o.Hysteresis != defaultHysteresis {
		t.Errorf("unexpected defaults: %+v", o)
	}
}
