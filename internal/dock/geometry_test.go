package dock

import "testing"

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	tests := []struct {
		name   string
		x, y   int
		expect bool
	}{
		{"inside", 15, 30, true},
		{"top-left corner", 10, 20, true},
		{"right edge exclusive", 40, 30, false},
		{"bottom edge exclusive", 15, 60, false},
		{"just inside right", 39, 30, true},
		{"just inside bottom", 15, 59, true},
		{"left of rect", 9, 30, false},
		{"above rect", 15, 19, false},
		{"far outside", 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%+v.Contains(%d, %d) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestNearestDisplay(t *testing.T) {
	left := Display{Bounds: Rect{X: 0, Y: 0, W: 1920, H: 1080}, WorkArea: Rect{X: 0, Y: 0, W: 1920, H: 1040}}
	right := Display{Bounds: Rect{X: 1920, Y: 0, W: 1920, H: 1080}, WorkArea: Rect{X: 1920, Y: 0, W: 1920, H: 1040}}
	displays := []Display{left, right}

	tests := []struct {
		name   string
		cursor Point
		want   Display
	}{
		{"inside left", Point{X: 500, Y: 500}, left},
		{"inside right", Point{X: 2500, Y: 500}, right},
		{"boundary belongs to right", Point{X: 1920, Y: 500}, right},
		{"below left display", Point{X: 500, Y: 2000}, left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NearestDisplay(displays, tt.cursor)
			if !ok {
				t.Fatal("expected a display")
			}
			if got != tt.want {
				t.Errorf("NearestDisplay(%+v) = %+v, want %+v", tt.cursor, got, tt.want)
			}
		})
	}
}

func TestNearestDisplay_Empty(t *testing.T) {
	if _, ok := NearestDisplay(nil, Point{}); ok {
		t.Error("expected no display for empty slice")
	}
}

func TestHasNeighbor(t *testing.T) {
	primary := Display{Bounds: Rect{X: 0, Y: 0, W: 1920, H: 1080}}
	rightOf := Display{Bounds: Rect{X: 1920, Y: 0, W: 1920, H: 1080}}
	leftOf := Display{Bounds: Rect{X: -1920, Y: 0, W: 1920, H: 1080}}
	above := Display{Bounds: Rect{X: 0, Y: -1080, W: 1920, H: 1080}}
	farRight := Display{Bounds: Rect{X: 2400, Y: 0, W: 1920, H: 1080}}
	offsetRight := Display{Bounds: Rect{X: 1920, Y: 1080, W: 1920, H: 1080}}

	tests := []struct {
		name   string
		others []Display
		edge   Edge
		expect bool
	}{
		{"abutting right", []Display{primary, rightOf}, EdgeRight, true},
		{"abutting left", []Display{primary, leftOf}, EdgeLeft, true},
		{"no neighbor right", []Display{primary, leftOf}, EdgeRight, false},
		{"gap too large", []Display{primary, farRight}, EdgeRight, false},
		{"stacked above is not horizontal neighbor", []Display{primary, above}, EdgeLeft, false},
		{"abutting x but no vertical overlap", []Display{primary, offsetRight}, EdgeRight, false},
		{"single display", []Display{primary}, EdgeLeft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasNeighbor(primary, tt.others, tt.edge); got != tt.expect {
				t.Errorf("hasNeighbor(%v) = %v, want %v", tt.edge, got, tt.expect)
			}
		})
	}
}
