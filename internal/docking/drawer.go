package docking

import (
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Drawer is a collapsible region docked to an outer edge. Collapsing only
// changes the size its parent splitter gives it, so expanding again
// restores the previous proportions exactly.
type Drawer struct {
	base

	edge     entity.DockLocation
	root     NodeID
	expanded bool
}

func newDrawer(d *Docker, edge entity.DockLocation) *Drawer {
	dr := &Drawer{edge: edge}
	d.register(dr, &dr.base)
	d.drawers = append(d.drawers, dr.id)
	return dr
}

func (dr *Drawer) Kind() entity.NodeKind { return entity.KindDrawer }

// Edge returns the outer edge the drawer is bound to.
func (dr *Drawer) Edge() entity.DockLocation { return dr.edge }

// Root returns the drawer's content node, nil when empty.
func (dr *Drawer) Root() Node { return dr.docker.Node(dr.root) }

// IsExpanded reports whether the drawer shows its content.
func (dr *Drawer) IsExpanded() bool { return dr.expanded }

// Expand shows the drawer's content.
func (dr *Drawer) Expand() {
	if dr.expanded {
		return
	}
	dr.expanded = true
	dr.docker.log.Debug().Uint64("node_id", uint64(dr.id)).Msg("drawer expanded")
	dr.docker.update()
}

// Collapse shrinks the drawer to its handle.
func (dr *Drawer) Collapse() {
	if !dr.expanded {
		return
	}
	dr.expanded = false
	dr.docker.log.Debug().Uint64("node_id", uint64(dr.id)).Msg("drawer collapsed")
	dr.docker.update()
}

// Toggle flips between expanded and collapsed.
func (dr *Drawer) Toggle() {
	if dr.expanded {
		dr.Collapse()
	} else {
		dr.Expand()
	}
}

// sideways reports whether the drawer sits on the left or right edge.
func (dr *Drawer) sideways() bool {
	return dr.edge == entity.DockLeft || dr.edge == entity.DockRight
}

// edgeVec builds a vector with along on the drawer's axis and cross on the other.
func (dr *Drawer) edgeVec(along, cross float64) entity.Vec2 {
	if dr.sideways() {
		return entity.Vec2{X: along, Y: cross}
	}
	return entity.Vec2{X: cross, Y: along}
}

// HandleRect returns the toggle strip on the drawer's inner side.
func (dr *Drawer) HandleRect() entity.Rect {
	r := dr.rect
	h := dr.docker.opts.DrawerHandle
	switch dr.edge {
	case entity.DockLeft:
		h = math.Min(h, r.W)
		return entity.Rect{X: r.Right() - h, Y: r.Y, W: h, H: r.H}
	case entity.DockRight:
		h = math.Min(h, r.W)
		return entity.Rect{X: r.X, Y: r.Y, W: h, H: r.H}
	case entity.DockTop:
		h = math.Min(h, r.H)
		return entity.Rect{X: r.X, Y: r.Bottom() - h, W: r.W, H: h}
	default:
		h = math.Min(h, r.H)
		return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: h}
	}
}

// ContentRect returns the area available to the drawer's root.
func (dr *Drawer) ContentRect() entity.Rect {
	r := dr.rect
	handle := dr.HandleRect()
	switch dr.edge {
	case entity.DockLeft:
		return entity.Rect{X: r.X, Y: r.Y, W: r.W - handle.W, H: r.H}
	case entity.DockRight:
		return entity.Rect{X: r.X + handle.W, Y: r.Y, W: r.W - handle.W, H: r.H}
	case entity.DockTop:
		return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H - handle.H}
	default:
		return entity.Rect{X: r.X, Y: r.Y + handle.H, W: r.W, H: r.H - handle.H}
	}
}
