package docking

import "github.com/bnema/dockyard/internal/domain/entity"

// Anchor is a resolved drop intent.
type Anchor struct {
	Location entity.DockLocation
	// Target is the frame or drawer the drop lands on.
	Target NodeID
	// IsSelf is set when Target is the frame being dragged from.
	IsSelf bool
	// Rect is the geometry the drop would produce.
	Rect entity.Rect
	// TabIndex is the insertion index for drops on a title strip, -1 otherwise.
	TabIndex int
}

// Ghost is the preview of one drag gesture. A nil anchor means the drop
// would float the dragged panels.
type Ghost struct {
	anchor *Anchor
	// rect is the preview rectangle: the anchor's rect, or the floating
	// rectangle under the pointer when there is no anchor.
	rect  entity.Rect
	mouse entity.Vec2
	// size is the size of the dragged frame, used for floating previews.
	size entity.Vec2
}

// Anchor returns the resolved anchor, false when the drop would float.
func (g *Ghost) Anchor() (Anchor, bool) {
	if g == nil || g.anchor == nil {
		return Anchor{}, false
	}
	return *g.anchor, true
}

// Rect returns the preview rectangle.
func (g *Ghost) Rect() entity.Rect {
	if g == nil {
		return entity.Rect{}
	}
	return g.rect
}

// Mouse returns the last pointer position.
func (g *Ghost) Mouse() entity.Vec2 {
	if g == nil {
		return entity.Vec2{}
	}
	return g.mouse
}

// floatingRect places a rectangle of the dragged size under the pointer.
func (g *Ghost) floatingRect() entity.Rect {
	return entity.Rect{X: g.mouse.X - g.size.X/2, Y: g.mouse.Y - 10, W: g.size.X, H: g.size.Y}
}

func (g *Ghost) set(a *Anchor) {
	g.anchor = a
	if a == nil {
		g.rect = g.floatingRect()
		return
	}
	g.rect = a.Rect
}

// ResolveAnchor computes the anchor a drop of dragged at mouse would use.
// dragged is the frame the gesture started from; wholeFrame is set when all
// its panels are dragged. A nil result means "float".
func (d *Docker) ResolveAnchor(mouse entity.Vec2, dragged *Frame, wholeFrame bool) *Anchor {
	var draggedID NodeID
	if dragged != nil {
		draggedID = dragged.id
	}

	// Topmost first: modal, then floating frames, then the docked tree.
	stack := make([]NodeID, 0, len(d.modal)+len(d.floating))
	for i := len(d.modal) - 1; i >= 0; i-- {
		stack = append(stack, d.modal[i])
	}
	for i := len(d.floating) - 1; i >= 0; i-- {
		stack = append(stack, d.floating[i])
	}
	for _, id := range stack {
		f := d.Frame(id)
		if f == nil || !f.rect.Contains(mouse) {
			continue
		}
		if id == draggedID && wholeFrame {
			// The frame travels with the pointer.
			continue
		}
		if f.modal && id != draggedID {
			return nil
		}
		if a := d.checkAnchorDrop(f, mouse, id == draggedID, wholeFrame, true); a != nil {
			return a
		}
	}

	var found *Anchor
	d.walk(d.root, func(n Node) bool {
		if found != nil || !n.Rect().Contains(mouse) {
			return false
		}
		switch t := n.(type) {
		case *Drawer:
			if !t.expanded || t.root == 0 || t.HandleRect().Contains(mouse) {
				found = &Anchor{
					Location: entity.DockStacked,
					Target:   t.id,
					Rect:     d.drawerPreview(t),
					TabIndex: -1,
				}
				return false
			}
			return t.ContentRect().Contains(mouse)
		case *Frame:
			found = d.checkAnchorDrop(t, mouse, t.id == draggedID, wholeFrame, true)
			return false
		}
		return true
	})
	return found
}

// checkAnchorDrop tests the zones of one frame: the title strip (stack or
// reorder), four edge bands (split) and the center (stack). Edges are
// tested top, left, right, bottom so corners resolve deterministically.
func (d *Docker) checkAnchorDrop(f *Frame, mouse entity.Vec2, isSelf, wholeFrame, allowTabReorder bool) *Anchor {
	r := f.rect
	if !r.Contains(mouse) {
		return nil
	}

	if title := f.TitleRect(); !title.Empty() && title.Contains(mouse) {
		if isSelf && !allowTabReorder {
			return nil
		}
		return &Anchor{
			Location: entity.DockStacked,
			Target:   f.id,
			IsSelf:   isSelf,
			Rect:     r,
			TabIndex: f.insertionIndex(mouse),
		}
	}

	canSplit := !f.floating && !(isSelf && (wholeFrame || f.Len() <= 1))
	if canSplit {
		band := d.opts.EdgeBand
		edge := func(loc entity.DockLocation, preview entity.Rect) *Anchor {
			return &Anchor{Location: loc, Target: f.id, IsSelf: isSelf, Rect: preview, TabIndex: -1}
		}
		switch {
		case mouse.Y <= r.Y+r.H*band:
			return edge(entity.DockTop, entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H / 2})
		case mouse.X <= r.X+r.W*band:
			return edge(entity.DockLeft, entity.Rect{X: r.X, Y: r.Y, W: r.W / 2, H: r.H})
		case mouse.X >= r.Right()-r.W*band:
			return edge(entity.DockRight, entity.Rect{X: r.X + r.W/2, Y: r.Y, W: r.W / 2, H: r.H})
		case mouse.Y >= r.Bottom()-r.H*band:
			return edge(entity.DockBottom, entity.Rect{X: r.X, Y: r.Y + r.H/2, W: r.W, H: r.H / 2})
		}
	}

	return &Anchor{Location: entity.DockStacked, Target: f.id, IsSelf: isSelf, Rect: r, TabIndex: -1}
}

// drawerPreview is the rectangle the drawer would cover once expanded.
func (d *Docker) drawerPreview(dr *Drawer) entity.Rect {
	s := d.Splitter(dr.parent)
	if s == nil || dr.expanded {
		return dr.rect
	}
	r := s.rect
	first := entity.FractionToPixels(s.pos, s.length())
	idx := 0
	if s.panes[1] == dr.id {
		idx = 1
	}
	if s.orientation == entity.Horizontal {
		if idx == 0 {
			return entity.Rect{X: r.X, Y: r.Y, W: first, H: r.H}
		}
		return entity.Rect{X: r.X + first, Y: r.Y, W: r.W - first, H: r.H}
	}
	if idx == 0 {
		return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: first}
	}
	return entity.Rect{X: r.X, Y: r.Y + first, W: r.W, H: r.H - first}
}
