// Package docking implements the docking layout engine: a tree of splitters,
// frames, drawers and panels, the mutations that keep that tree a consistent
// partition of the container, drag-and-drop anchor resolution and layout
// save/restore.
//
// A Docker is single-threaded. Every call, including Scheduler callbacks,
// must come from the goroutine that owns it.
package docking

import (
	"errors"
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
)

var (
	// ErrMalformedLayout is returned when a serialized layout cannot be parsed or is structurally invalid.
	ErrMalformedLayout = errors.New("malformed layout")
	// ErrUnknownPanelType is returned when a layout references an unregistered panel type.
	ErrUnknownPanelType = errors.New("unknown panel type")
	// ErrInvalidNode reports a broken tree invariant.
	ErrInvalidNode = errors.New("invalid node")
)

// PlaceholderType is the panel type name of the synthetic placeholder panel.
const PlaceholderType = "__dockyardPlaceholder"

// Options tunes geometry and interaction. Zero fields fall back to DefaultOptions.
type Options struct {
	// EdgeBand is the fraction of a frame dimension used as an edge drop band.
	EdgeBand float64
	// TitleHeight is the height of a frame's title strip in pixels.
	TitleHeight float64
	// DrawerHandle is the size of a collapsed drawer in pixels.
	DrawerHandle float64
	// ResizeQuiet is how long container resizes must pause before RESIZE_ENDED.
	ResizeQuiet time.Duration
	// FloatingSize is the default floating frame size as a fraction of the container.
	FloatingSize entity.Vec2
	// MinPanelSize is the minimum size given to new panels.
	MinPanelSize entity.Vec2
	// BarGrab is the half-width in pixels of a splitter bar's grab zone.
	BarGrab float64
	// EdgeGrab is the width in pixels of a floating frame's resize border.
	EdgeGrab float64
	// FloatOffset shifts a panel floated by MovePanel away from its old position.
	FloatOffset float64
	// DragThreshold is how far the pointer travels before a press becomes a drag.
	DragThreshold float64
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		EdgeBand:      0.25,
		TitleHeight:   24,
		DrawerHandle:  12,
		ResizeQuiet:   150 * time.Millisecond,
		FloatingSize:  entity.Vec2{X: 0.4, Y: 0.4},
		MinPanelSize:  entity.Vec2{X: 50, Y: 50},
		BarGrab:       4,
		EdgeGrab:      6,
		FloatOffset:   20,
		DragThreshold: 3,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.EdgeBand <= 0 || o.EdgeBand >= 0.5 {
		o.EdgeBand = def.EdgeBand
	}
	if o.TitleHeight <= 0 {
		o.TitleHeight = def.TitleHeight
	}
	if o.DrawerHandle <= 0 {
		o.DrawerHandle = def.DrawerHandle
	}
	if o.ResizeQuiet <= 0 {
		o.ResizeQuiet = def.ResizeQuiet
	}
	if o.FloatingSize.X <= 0 || o.FloatingSize.X > 1 {
		o.FloatingSize.X = def.FloatingSize.X
	}
	if o.FloatingSize.Y <= 0 || o.FloatingSize.Y > 1 {
		o.FloatingSize.Y = def.FloatingSize.Y
	}
	if o.MinPanelSize.X <= 0 {
		o.MinPanelSize.X = def.MinPanelSize.X
	}
	if o.MinPanelSize.Y <= 0 {
		o.MinPanelSize.Y = def.MinPanelSize.Y
	}
	if o.BarGrab <= 0 {
		o.BarGrab = def.BarGrab
	}
	if o.EdgeGrab <= 0 {
		o.EdgeGrab = def.EdgeGrab
	}
	if o.FloatOffset == 0 {
		o.FloatOffset = def.FloatOffset
	}
	if o.DragThreshold <= 0 {
		o.DragThreshold = def.DragThreshold
	}
	return o
}
