package docking

import "github.com/bnema/dockyard/internal/domain/entity"

// gestureTracker brackets panel geometry events during a continuous gesture:
// the first change of a panel emits *_STARTED, the end of the gesture emits
// *_ENDED for every panel that changed.
type gestureTracker struct {
	depth   int
	moved   map[NodeID]bool
	resized map[NodeID]bool
}

func (g *gestureTracker) active() bool { return g.depth > 0 }

func (d *Docker) beginGesture() {
	if d.gesture.depth == 0 {
		d.gesture.moved = make(map[NodeID]bool)
		d.gesture.resized = make(map[NodeID]bool)
	}
	d.gesture.depth++
}

func (d *Docker) endGesture() {
	if d.gesture.depth == 0 {
		return
	}
	d.gesture.depth--
	if d.gesture.depth > 0 {
		return
	}
	moved, resized := d.gesture.moved, d.gesture.resized
	d.gesture.moved, d.gesture.resized = nil, nil
	for _, p := range d.Panels() {
		if moved[p.id] {
			p.emit(entity.EventMoveEnded, nil)
		}
		if resized[p.id] {
			p.emit(entity.EventResizeEnded, nil)
		}
	}
}

// update measures the container and lays out the docked tree and the
// floating frames. Calls made from event handlers during a pass are
// folded into one extra pass.
func (d *Docker) update() {
	if d.updating {
		d.dirty = true
		return
	}
	d.updating = true

	settled := false
	for pass := 0; pass < 4; pass++ {
		d.dirty = false
		d.layoutPass()
		if !d.dirty {
			settled = true
			break
		}
	}
	d.updating = false
	if !settled {
		d.log.Warn().Msg("layout did not settle after repeated passes")
	}
	if d.scheduler == nil && d.resize.state == resizeSettling {
		d.settleResize(d.resize.generation)
	}
}

func (d *Docker) layoutPass() {
	size := d.container.Measure()
	if d.measured && size != d.size {
		d.size = size
		d.noteContainerResize()
	}
	d.size = size
	d.measured = true

	bounds := entity.Rect{W: size.X, H: size.Y}
	d.layoutNode(d.root, bounds, false)

	for _, id := range append(append([]NodeID{}, d.floating...), d.modal...) {
		f := d.Frame(id)
		if f == nil {
			continue
		}
		d.layoutFrame(f, entity.Rect{X: f.pos.X, Y: f.pos.Y, W: f.size.X, H: f.size.Y}, false)
	}
}

// layoutNode assigns rect to a tree node and recurses. hidden marks
// content inside collapsed drawers.
func (d *Docker) layoutNode(id NodeID, rect entity.Rect, hidden bool) {
	switch n := d.Node(id).(type) {
	case *Splitter:
		n.rect = rect
		first, second := n.PaneRects()
		d.layoutNode(n.panes[0], first, hidden)
		d.layoutNode(n.panes[1], second, hidden)
	case *Drawer:
		n.rect = rect
		content := n.ContentRect()
		if !n.expanded {
			content.W, content.H = 0, 0
		}
		d.layoutNode(n.root, content, hidden || !n.expanded)
	case *Frame:
		d.layoutFrame(n, rect, hidden)
	}
}

func (d *Docker) layoutFrame(f *Frame, rect entity.Rect, hidden bool) {
	f.rect = rect
	if !f.floating {
		f.pos = rect.Pos()
		f.size = rect.Size()
	}
	content := f.ContentRect()
	for i, p := range f.Panels() {
		p.applyLayout(content, !hidden && i == f.curTab)
	}
}
