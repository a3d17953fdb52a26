package docking

import (
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Splitter divides its rectangle between exactly two panes along one axis.
// pos is the fraction of the axis given to pane 0; it is kept as a fraction
// so proportions survive container resizes.
type Splitter struct {
	base

	orientation entity.Orientation
	panes       [2]NodeID
	pos         float64
	scrollable  [2]bool
}

func newSplitter(d *Docker, orientation entity.Orientation) *Splitter {
	s := &Splitter{orientation: orientation, pos: 0.5}
	d.register(s, &s.base)
	d.splitters = append(d.splitters, s.id)
	return s
}

func (s *Splitter) Kind() entity.NodeKind { return entity.KindSplitter }

// Orientation returns Horizontal for left/right panes, Vertical for top/bottom.
func (s *Splitter) Orientation() entity.Orientation { return s.orientation }

// Pane returns the node in slot index (0 or 1).
func (s *Splitter) Pane(index int) Node {
	if index < 0 || index > 1 {
		return nil
	}
	return s.docker.Node(s.panes[index])
}

// SetPane puts n into slot index, reparenting it under the splitter.
// The previous occupant is detached but not destroyed.
func (s *Splitter) SetPane(index int, n Node) {
	if index < 0 || index > 1 {
		return
	}
	if old := s.docker.Node(s.panes[index]); old != nil && old.ParentID() == s.id && s.panes[1-index] != old.ID() {
		old.setParent(0)
	}
	s.panes[index] = 0
	if n != nil {
		s.panes[index] = n.ID()
		n.setParent(s.id)
	}
	s.docker.update()
}

// Pos returns the stored split fraction.
func (s *Splitter) Pos() float64 { return s.pos }

// SetPos sets the split fraction, clamped so neither pane drops below its
// minimum (or grows past its maximum) at the current size.
func (s *Splitter) SetPos(fraction float64) {
	s.setPos(fraction)
	s.docker.update()
}

func (s *Splitter) setPos(fraction float64) {
	if math.IsNaN(fraction) {
		return
	}
	fraction = entity.Clamp(fraction, 0, 1)
	if !s.draggable() {
		// A collapsed drawer pane keeps the fraction for its next expansion.
		s.pos = fraction
		return
	}
	s.pos = s.clampPos(fraction, s.length())
}

// Scrollable reports whether a pane scrolls instead of shrinking.
func (s *Splitter) Scrollable(index int) bool {
	return index >= 0 && index <= 1 && s.scrollable[index]
}

// SetScrollable marks a pane as scrollable.
func (s *Splitter) SetScrollable(index int, scrollable bool) {
	if index >= 0 && index <= 1 {
		s.scrollable[index] = scrollable
	}
}

func (s *Splitter) length() float64 {
	return s.orientation.Axis(s.rect.Size())
}

// clampPos bounds fraction so pane sizes respect their min/max at length.
// When the constraints conflict the minimum of pane 0 wins.
func (s *Splitter) clampPos(fraction, length float64) float64 {
	if length <= 0 {
		return fraction
	}
	d := s.docker
	min0 := s.orientation.Axis(d.minSizeOf(s.panes[0]))
	min1 := s.orientation.Axis(d.minSizeOf(s.panes[1]))
	max0 := s.orientation.Axis(d.maxSizeOf(s.panes[0]))
	max1 := s.orientation.Axis(d.maxSizeOf(s.panes[1]))

	lo := math.Max(min0/length, 1-max1/length)
	hi := math.Min(max0/length, 1-min1/length)
	return entity.Clamp(entity.Clamp(fraction, lo, hi), 0, 1)
}

// findBestPos picks 0.5, moved to the nearest position the pane limits allow.
func (s *Splitter) findBestPos() {
	s.pos = s.clampPos(0.5, s.length())
}

// paneLengths splits length between the panes. Collapsed drawers get
// exactly their handle size, the other pane takes the rest.
func (s *Splitter) paneLengths(length float64) (float64, float64) {
	d := s.docker
	handle := d.opts.DrawerHandle
	if dr := d.Drawer(s.panes[0]); dr != nil && !dr.expanded {
		first := math.Min(handle, length)
		return first, length - first
	}
	if dr := d.Drawer(s.panes[1]); dr != nil && !dr.expanded {
		second := math.Min(handle, length)
		return length - second, second
	}
	first := entity.FractionToPixels(s.clampPos(s.pos, length), length)
	return first, length - first
}

// PaneRects returns the rectangles of both panes. They partition Rect exactly.
func (s *Splitter) PaneRects() (entity.Rect, entity.Rect) {
	r := s.rect
	if s.orientation == entity.Horizontal {
		w0, _ := s.paneLengths(r.W)
		return entity.Rect{X: r.X, Y: r.Y, W: w0, H: r.H},
			entity.Rect{X: r.X + w0, Y: r.Y, W: r.W - w0, H: r.H}
	}
	h0, _ := s.paneLengths(r.H)
	return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: h0},
		entity.Rect{X: r.X, Y: r.Y + h0, W: r.W, H: r.H - h0}
}

// BarRect returns the grab zone of the bar between the panes.
func (s *Splitter) BarRect() entity.Rect {
	first, _ := s.PaneRects()
	grab := s.docker.opts.BarGrab
	if s.orientation == entity.Horizontal {
		return entity.Rect{X: first.Right() - grab, Y: s.rect.Y, W: 2 * grab, H: s.rect.H}
	}
	return entity.Rect{X: s.rect.X, Y: first.Bottom() - grab, W: s.rect.W, H: 2 * grab}
}

// draggable reports whether the bar can be moved (no collapsed drawer pane).
func (s *Splitter) draggable() bool {
	for _, id := range s.panes {
		if dr := s.docker.Drawer(id); dr != nil && !dr.expanded {
			return false
		}
	}
	return true
}

// other returns the pane that is not child.
func (s *Splitter) other(child NodeID) NodeID {
	if s.panes[0] == child {
		return s.panes[1]
	}
	return s.panes[0]
}

// minSizeOf returns the minimum size of any tree node.
func (d *Docker) minSizeOf(id NodeID) entity.Vec2 {
	switch n := d.Node(id).(type) {
	case *Frame:
		return n.minSize()
	case *Splitter:
		a, b := d.minSizeOf(n.panes[0]), d.minSizeOf(n.panes[1])
		if n.orientation == entity.Horizontal {
			return entity.Vec2{X: a.X + b.X, Y: math.Max(a.Y, b.Y)}
		}
		return entity.Vec2{X: math.Max(a.X, b.X), Y: a.Y + b.Y}
	case *Drawer:
		handle := d.opts.DrawerHandle
		if !n.expanded || n.root == 0 {
			return n.edgeVec(handle, 0)
		}
		inner := d.minSizeOf(n.root)
		if n.sideways() {
			return entity.Vec2{X: inner.X + handle, Y: inner.Y}
		}
		return entity.Vec2{X: inner.X, Y: inner.Y + handle}
	}
	return entity.Vec2{}
}

// maxSizeOf returns the maximum size of any tree node; components may be +Inf.
func (d *Docker) maxSizeOf(id NodeID) entity.Vec2 {
	inf := entity.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	switch n := d.Node(id).(type) {
	case *Frame:
		return n.maxSize()
	case *Splitter:
		a, b := d.maxSizeOf(n.panes[0]), d.maxSizeOf(n.panes[1])
		if n.orientation == entity.Horizontal {
			return entity.Vec2{X: a.X + b.X, Y: math.Min(a.Y, b.Y)}
		}
		return entity.Vec2{X: math.Min(a.X, b.X), Y: a.Y + b.Y}
	case *Drawer:
		if !n.expanded {
			return n.edgeVec(d.opts.DrawerHandle, math.Inf(1))
		}
		if n.root == 0 {
			return inf
		}
		inner := d.maxSizeOf(n.root)
		handle := d.opts.DrawerHandle
		if n.sideways() {
			return entity.Vec2{X: inner.X + handle, Y: inner.Y}
		}
		return entity.Vec2{X: inner.X, Y: inner.Y + handle}
	}
	return inf
}
