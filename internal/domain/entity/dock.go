package entity

import (
	"fmt"
	"strings"
)

// DockLocation enumerates where a panel can be placed.
type DockLocation string

const (
	DockModal   DockLocation = "modal"   // Floating frame that blocks input until closed
	DockFloat   DockLocation = "float"   // Floating frame
	DockTop     DockLocation = "top"     // Split above the target
	DockLeft    DockLocation = "left"    // Split left of the target
	DockRight   DockLocation = "right"   // Split right of the target
	DockBottom  DockLocation = "bottom"  // Split below the target
	DockStacked DockLocation = "stacked" // Another tab next to the target
)

// DockLocations lists every location in declaration order.
var DockLocations = []DockLocation{DockModal, DockFloat, DockTop, DockLeft, DockRight, DockBottom, DockStacked}

// ParseDockLocation parses a location name case-insensitively.
func ParseDockLocation(s string) (DockLocation, error) {
	loc := DockLocation(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range DockLocations {
		if l == loc {
			return loc, nil
		}
	}
	return "", fmt.Errorf("unknown dock location %q", s)
}

// IsFloating reports whether the location detaches the panel from the tree.
func (l DockLocation) IsFloating() bool {
	return l == DockFloat || l == DockModal
}

// IsEdge reports whether the location splits its target.
func (l DockLocation) IsEdge() bool {
	switch l {
	case DockTop, DockLeft, DockRight, DockBottom:
		return true
	}
	return false
}

// Leading reports whether a split at this location puts the new pane first (left/top).
func (l DockLocation) Leading() bool {
	return l == DockLeft || l == DockTop
}

// Orientation returns the splitter orientation a split at this location creates.
func (l DockLocation) Orientation() Orientation {
	if l == DockTop || l == DockBottom {
		return Vertical
	}
	return Horizontal
}

// Orientation is the axis a Splitter divides along.
type Orientation bool

const (
	Vertical   Orientation = false // Top and bottom panes
	Horizontal Orientation = true  // Left and right panes
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Axis returns the component of v along the orientation's split axis.
func (o Orientation) Axis(v Vec2) float64 {
	if o == Horizontal {
		return v.X
	}
	return v.Y
}

// Cross returns the component of v across the split axis.
func (o Orientation) Cross(v Vec2) float64 {
	if o == Horizontal {
		return v.Y
	}
	return v.X
}
