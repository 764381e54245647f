package dock

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Host is the capability boundary to the desktop windowing system. The
// controller only ever reads geometry and moves the window horizontally;
// everything else about the window belongs to the host runtime.
type Host interface {
	// CursorPosition returns the pointer position in desktop coordinates.
	CursorPosition() (Point, error)
	// Displays returns a snapshot of all connected monitors.
	Displays() []Display
	// WindowBounds returns the managed window's bounds. ok is false once
	// the window handle has been destroyed.
	WindowBounds() (Rect, bool)
	// MoveWindow repositions the window to the given x-origin, preserving
	// y-origin, width and height.
	MoveWindow(x int) error
}

// Options tunes the controller. Zero values are replaced with defaults.
type Options struct {
	PollInterval  time.Duration // sample period (default 100ms)
	EdgeThreshold int           // docked classification tolerance in px (default 50)
	PeekWidth     int           // visible strip when hidden, in px (default 20)
	Hysteresis    int           // consecutive agreeing ticks before a state change (default 2)
}

const (
	defaultPollInterval  = 100 * time.Millisecond
	defaultEdgeThreshold = 50
	defaultPeekWidth     = 20
	defaultHysteresis    = 2
)

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = defaultPollInterval
	}
	if o.EdgeThreshold <= 0 {
		o.EdgeThreshold = defaultEdgeThreshold
	}
	if o.PeekWidth <= 0 {
		o.PeekWidth = defaultPeekWidth
	}
	if o.Hysteresis <= 0 {
		o.Hysteresis = defaultHysteresis
	}
	return o
}

// Controller runs the edge-docking poll loop against a Host.
type Controller struct {
	host Host
	opts Options
	log  *slog.Logger

	mu             sync.Mutex
	state          State
	candidate      State
	candidateTicks int
}

// NewController creates a controller. logger may be nil.
func NewController(host Host, opts Options, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		host: host,
		opts: opts.withDefaults(),
		log:  logger,
	}
}

// State returns the current tracked docking state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Run polls until ctx is cancelled. Ticks never overlap; the loop owns its
// ticker and tears it down on return.
func (c *Controller) Run(ctx context.Context) {
	ticker := time.NewTicker(c.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}

// Tick samples geometry once and repositions the window if warranted.
// A missing window handle or a failed cursor read skips the tick.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	win, ok := c.host.WindowBounds()
	if !ok {
		return
	}
	cursor, err := c.host.CursorPosition()
	if err != nil {
		return
	}
	displays := c.host.Displays()
	disp, ok := NearestDisplay(displays, cursor)
	if !ok {
		return
	}
	work := disp.WorkArea

	c.observe(classify(win, work, c.opts.PeekWidth, c.opts.EdgeThreshold))

	switch c.state {
	case DockedLeftHidden:
		if c.cursorInPeekStrip(cursor, win, work, EdgeLeft) || win.Contains(cursor.X, cursor.Y) {
			c.move(work.X, DockedLeftVisible)
		}
	case DockedRightHidden:
		if c.cursorInPeekStrip(cursor, win, work, EdgeRight) || win.Contains(cursor.X, cursor.Y) {
			c.move(work.Right()-win.W, DockedRightVisible)
		}
	case DockedLeftVisible:
		// Docking only makes sense at the true outer boundary of the
		// desktop; a neighboring display on this edge suppresses hiding.
		if hasNeighbor(disp, displays, EdgeLeft) {
			return
		}
		if !win.Contains(cursor.X, cursor.Y) {
			c.move(work.X-win.W+c.opts.PeekWidth, DockedLeftHidden)
		}
	case DockedRightVisible:
		if hasNeighbor(disp, displays, EdgeRight) {
			return
		}
		if !win.Contains(cursor.X, cursor.Y) {
			c.move(work.Right()-c.opts.PeekWidth, DockedRightHidden)
		}
	}
}

// observe feeds a raw classification into the hysteresis filter. The tracked
// state only changes after Options.Hysteresis consecutive identical
// observations, so a window mid-move cannot flicker the state.
func (c *Controller) observe(observed State) {
	if observed == c.state {
		c.candidateTicks = 0
		return
	}
	if observed == c.candidate && c.candidateTicks > 0 {
		c.candidateTicks++
	} else {
		c.candidate = observed
		c.candidateTicks = 1
	}
	if c.candidateTicks >= c.opts.Hysteresis {
		c.log.Debug("dock state change", "from", c.state, "to", observed)
		c.state = observed
		c.candidateTicks = 0
	}
}

// move repositions the window and commits the resulting state immediately.
// Self-induced moves bypass hysteresis: the outcome is known, not observed.
func (c *Controller) move(x int, next State) {
	if err := c.host.MoveWindow(x); err != nil {
		c.log.Debug("dock move failed", "x", x, "err", err)
		return
	}
	c.state = next
	c.candidateTicks = 0
}

// cursorInPeekStrip reports whether the cursor sits in the exposed peek strip
// on the given edge while vertically within the window's span.
func (c *Controller) cursorInPeekStrip(cursor Point, win, work Rect, edge Edge) bool {
	if cursor.Y < win.Y || cursor.Y >= win.Bottom() {
		return false
	}
	switch edge {
	case EdgeLeft:
		return cursor.X >= work.X && cursor.X < work.X+c.opts.PeekWidth
	case EdgeRight:
		return cursor.X >= work.Right()-c.opts.PeekWidth && cursor.X < work.Right()
	}
	return false
}
