package entity

import "testing"

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{name: "center", p: Vec2{X: 60, Y: 45}, expected: true},
		{name: "top-left corner is inside", p: Vec2{X: 10, Y: 20}, expected: true},
		{name: "bottom-right corner is inside", p: Vec2{X: 110, Y: 70}, expected: true},
		{name: "left of rect", p: Vec2{X: 9, Y: 45}, expected: false},
		{name: "below rect", p: Vec2{X: 60, Y: 71}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.expected {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.expected)
			}
		})
	}
}

func TestRect_IntersectsAndUnion(t *testing.T) {
	left := Rect{X: 0, Y: 0, W: 50, H: 100}
	right := Rect{X: 50, Y: 0, W: 50, H: 100}

	if left.Intersects(right) {
		t.Error("adjacent rects must not intersect")
	}
	if got := left.Union(right); got != (Rect{X: 0, Y: 0, W: 100, H: 100}) {
		t.Errorf("Union = %v", got)
	}
	if !left.Intersects(Rect{X: 49, Y: 99, W: 10, H: 10}) {
		t.Error("overlapping rects must intersect")
	}
}

func TestRect_Inset(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 20}
	if got := r.Inset(24); got.H != 0 || got.Y != 20 {
		t.Errorf("Inset larger than height = %v", got)
	}
	if got := r.Inset(5); got != (Rect{X: 0, Y: 5, W: 100, H: 15}) {
		t.Errorf("Inset(5) = %v", got)
	}
}

func TestEdgeSet_Valid(t *testing.T) {
	tests := []struct {
		name     string
		set      EdgeSet
		expected bool
	}{
		{name: "empty", set: 0, expected: false},
		{name: "single side", set: Edges(EdgeLeft), expected: true},
		{name: "corner", set: Edges(EdgeTop, EdgeRight), expected: true},
		{name: "opposite vertical", set: Edges(EdgeTop, EdgeBottom), expected: false},
		{name: "opposite horizontal", set: Edges(EdgeLeft, EdgeRight), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Valid(); got != tt.expected {
				t.Errorf("Valid() = %v, want %v", got, tt.expected)
			}
		})
	}
}
