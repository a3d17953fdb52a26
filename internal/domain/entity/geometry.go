// Package entity defines the plain data types of the docking engine.
// These types carry no behaviour beyond pure geometry and conversions.
package entity

import "math"

// Vec2 is a 2D point or extent in pixels.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in container pixels.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Size returns the width and height.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.W, Y: r.H}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether two rectangles share interior area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: math.Max(r.Right(), o.Right()) - x,
		H: math.Max(r.Bottom(), o.Bottom()) - y,
	}
}

// Inset returns r shrunk by top on the top edge only.
// Used to carve the title strip off a frame rectangle.
func (r Rect) Inset(top float64) Rect {
	if top > r.H {
		top = r.H
	}
	return Rect{X: r.X, Y: r.Y + top, W: r.W, H: r.H - top}
}

// Edge names one side of a rectangle.
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// EdgeSet is a set of edges; corners are expressed as two edges.
type EdgeSet uint8

// Has reports whether e is part of the set.
func (s EdgeSet) Has(e Edge) bool {
	return s&EdgeSet(e) != 0
}

// Edges builds an EdgeSet from individual edges.
func Edges(edges ...Edge) EdgeSet {
	var s EdgeSet
	for _, e := range edges {
		s |= EdgeSet(e)
	}
	return s
}

// Valid reports whether the set describes a side or a corner.
// Opposite edges (top+bottom, left+right) never appear together.
func (s EdgeSet) Valid() bool {
	if s == 0 {
		return false
	}
	if s.Has(EdgeTop) && s.Has(EdgeBottom) {
		return false
	}
	if s.Has(EdgeLeft) && s.Has(EdgeRight) {
		return false
	}
	return true
}
