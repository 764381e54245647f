// Package dock implements the edge-docking controller: a periodic sampler
// that keeps the host window peeking at a screen edge while the cursor is
// elsewhere and reveals it when the cursor approaches.
package dock

// Point is a position in virtual desktop coordinates.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in virtual desktop coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) is inside the rectangle.
// Edges at X+W and Y+H are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the exclusive right edge coordinate.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge coordinate.
func (r Rect) Bottom() int { return r.Y + r.H }

// Display is a snapshot of one connected monitor.
type Display struct {
	Bounds   Rect // full monitor bounds
	WorkArea Rect // bounds minus taskbars/docks
}

// neighborTolerance is the maximum gap, in pixels, between two display edges
// for the displays to count as directly abutting.
const neighborTolerance = 10

// NearestDisplay returns the display whose bounds are closest to p.
// A display containing p has distance zero. Returns false when displays
// is empty.
func NearestDisplay(displays []Display, p Point) (Display, bool) {
	if len(displays) == 0 {
		return Display{}, false
	}
	best := displays[0]
	bestDist := rectDistance(best.Bounds, p)
	for _, d := range displays[1:] {
		if dist := rectDistance(d.Bounds, p); dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best, true
}

// rectDistance returns the squared distance from p to the nearest point of r.
func rectDistance(r Rect, p Point) int {
	dx := 0
	if p.X < r.X {
		dx = r.X - p.X
	} else if p.X >= r.Right() {
		dx = p.X - r.Right() + 1
	}
	dy := 0
	if p.Y < r.Y {
		dy = r.Y - p.Y
	} else if p.Y >= r.Bottom() {
		dy = p.Y - r.Bottom() + 1
	}
	return dx*dx + dy*dy
}

// hasNeighbor reports whether any display in others directly abuts the given
// edge of d. Two displays abut when the facing edge coordinates differ by
// less than neighborTolerance and their vertical spans overlap.
func hasNeighbor(d Display, others []Display, edge Edge) bool {
	for _, o := range others {
		if o == d {
			continue
		}
		if !verticalOverlap(d.Bounds, o.Bounds) {
			continue
		}
		switch edge {
		case EdgeLeft:
			if abs(o.Bounds.Right()-d.Bounds.X) < neighborTolerance {
				return true
			}
		case EdgeRight:
			if abs(o.Bounds.X-d.Bounds.Right()) < neighborTolerance {
				return true
			}
		}
	}
	return false
}

// verticalOverlap reports whether the vertical spans of a and b intersect.
func verticalOverlap(a, b Rect) bool {
	return a.Y < b.Bottom() && b.Y < a.Bottom()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
