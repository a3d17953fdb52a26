package docking

import (
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// PointerButton identifies the pressed button.
type PointerButton uint8

const (
	ButtonLeft PointerButton = iota
	ButtonMiddle
	ButtonRight
)

// TargetKind names the draggable element a pointer event landed on.
type TargetKind uint8

const (
	TargetNone        TargetKind = iota
	TargetSplitterBar            // Node is the splitter
	TargetFrameTitle             // Node is the frame, outside any tab
	TargetTab                    // Node is the frame, Index the tab
	TargetFrameEdge              // Node is a floating frame, Edges the grabbed border
	TargetDrawerBar              // Node is the drawer
	TargetPanel                  // Node is the panel under the pointer
)

// Target is the identity of the element under the pointer.
type Target struct {
	Kind  TargetKind
	Node  NodeID
	Index int
	Edges entity.EdgeSet
}

// PointerEvent is one sample of the pointer stream. A zero Target lets the
// docker hit-test the position itself.
type PointerEvent struct {
	X, Y   float64
	Button PointerButton
	Target Target
}

// Pos returns the event position.
func (e PointerEvent) Pos() entity.Vec2 { return entity.Vec2{X: e.X, Y: e.Y} }

// DragKind is the state of the drag machine.
type DragKind uint8

const (
	DragNone DragKind = iota
	DragSplitter
	DragFrameMove
	DragFrameResize
	DragTabReorder
)

func (k DragKind) String() string {
	switch k {
	case DragSplitter:
		return "splitter-resize"
	case DragFrameMove:
		return "frame-move"
	case DragFrameResize:
		return "frame-resize"
	case DragTabReorder:
		return "tab-reorder"
	}
	return "idle"
}

type dragState struct {
	kind DragKind
	// pending is set between a press and the pointer passing the drag threshold.
	pending bool
	origin  entity.Vec2

	node  NodeID // splitter or frame
	panel NodeID // dragged tab, 0 when the whole frame is dragged
	// wholeFrame drags every panel of the frame.
	wholeFrame bool
	// dockable is false when the dragged panels cannot leave their frame.
	dockable bool

	edges      entity.EdgeSet
	originRect entity.Rect
	originPos  float64
	originTab  int

	ghost    *Ghost
	gestured bool

	middle Target
}

func (s *dragState) involves(id NodeID) bool {
	return (s.kind != DragNone || s.pending) && (s.node == id || s.panel == id)
}

// DragKind returns the current drag state.
func (d *Docker) DragKind() DragKind { return d.drag.kind }

// Ghost returns the preview of the current dock drag, nil otherwise.
func (d *Docker) Ghost() *Ghost { return d.drag.ghost }

// HitTest returns the draggable element at point, topmost first.
func (d *Docker) HitTest(point entity.Vec2) Target {
	for _, list := range [][]NodeID{d.modal, d.floating} {
		for i := len(list) - 1; i >= 0; i-- {
			f := d.Frame(list[i])
			if f == nil || !f.rect.Contains(point) {
				continue
			}
			if edges := f.edgesAt(point, d.opts.EdgeGrab); edges.Valid() {
				return Target{Kind: TargetFrameEdge, Node: f.id, Edges: edges}
			}
			return d.frameTarget(f, point)
		}
	}

	var hit Target
	d.walk(d.root, func(n Node) bool {
		if hit.Kind != TargetNone || !n.Rect().Contains(point) {
			return false
		}
		switch t := n.(type) {
		case *Splitter:
			if t.draggable() && t.BarRect().Contains(point) {
				hit = Target{Kind: TargetSplitterBar, Node: t.id}
				return false
			}
		case *Drawer:
			if t.HandleRect().Contains(point) {
				hit = Target{Kind: TargetDrawerBar, Node: t.id}
				return false
			}
			return t.expanded
		case *Frame:
			hit = d.frameTarget(t, point)
			return false
		}
		return true
	})
	return hit
}

func (d *Docker) frameTarget(f *Frame, point entity.Vec2) Target {
	if f.TitleRect().Contains(point) && f.TitleRect().H > 0 {
		if idx := f.TabAt(point); idx >= 0 {
			return Target{Kind: TargetTab, Node: f.id, Index: idx}
		}
		return Target{Kind: TargetFrameTitle, Node: f.id}
	}
	if p := f.Panel(-1); p != nil {
		return Target{Kind: TargetPanel, Node: p.id}
	}
	return Target{}
}

// targetFrame returns the frame a target belongs to, nil for bars.
func (d *Docker) targetFrame(t Target) *Frame {
	switch t.Kind {
	case TargetFrameTitle, TargetTab, TargetFrameEdge:
		return d.Frame(t.Node)
	case TargetPanel:
		if p := d.Panel(t.Node); p != nil {
			return p.Frame()
		}
	}
	return nil
}

// PointerDown starts a gesture. It returns true when the press was consumed.
func (d *Docker) PointerDown(ev PointerEvent) bool {
	if d.drag.kind != DragNone || d.drag.pending {
		return false
	}
	pos := ev.Pos()
	t := ev.Target
	if t.Kind == TargetNone {
		t = d.HitTest(pos)
	}

	f := d.targetFrame(t)
	if n := len(d.modal); n > 0 && (f == nil || f.id != d.modal[n-1]) {
		d.log.Debug().Msg("pointer press blocked by modal frame")
		return false
	}
	if f != nil {
		d.Focus(f)
	}

	switch ev.Button {
	case ButtonMiddle:
		if t.Kind == TargetTab {
			d.drag.middle = t
			return true
		}
		return false
	case ButtonRight:
		return false
	}

	switch t.Kind {
	case TargetSplitterBar:
		s := d.Splitter(t.Node)
		if s == nil || !s.draggable() {
			return false
		}
		d.drag = dragState{kind: DragSplitter, node: s.id, origin: pos, originPos: s.pos}
		d.beginGesture()
		d.drag.gestured = true
		return true

	case TargetFrameEdge:
		if f == nil || !f.floating || !t.Edges.Valid() {
			return false
		}
		d.drag = dragState{kind: DragFrameResize, node: f.id, origin: pos, edges: t.Edges, originRect: f.rect}
		d.beginGesture()
		d.drag.gestured = true
		return true

	case TargetDrawerBar:
		if dr := d.Drawer(t.Node); dr != nil {
			dr.Toggle()
			return true
		}
		return false

	case TargetTab:
		if f == nil {
			return false
		}
		f.SetCurrentTab(t.Index)
		p := f.Panel(t.Index)
		if p == nil || !p.moveable {
			return true
		}
		d.drag = dragState{
			pending:    true,
			node:       f.id,
			panel:      p.id,
			origin:     pos,
			originRect: f.rect,
			originTab:  t.Index,
			dockable:   true,
		}
		return true

	case TargetFrameTitle:
		if f == nil {
			return false
		}
		dockable := true
		for _, p := range f.Panels() {
			if !p.moveable {
				dockable = false
			}
		}
		if !dockable && !f.floating {
			return true
		}
		d.drag = dragState{
			pending:    true,
			node:       f.id,
			origin:     pos,
			originRect: f.rect,
			wholeFrame: true,
			dockable:   dockable,
		}
		return true

	case TargetPanel:
		return f != nil
	}
	return false
}

// PointerMove advances the active gesture. It returns true when the docker
// state changed.
func (d *Docker) PointerMove(ev PointerEvent) bool {
	pos := ev.Pos()
	if d.drag.pending {
		if math.Hypot(pos.X-d.drag.origin.X, pos.Y-d.drag.origin.Y) < d.opts.DragThreshold {
			return false
		}
		d.startDrag()
	}

	switch d.drag.kind {
	case DragSplitter:
		s := d.Splitter(d.drag.node)
		if s == nil || s.length() <= 0 {
			return false
		}
		offset := s.orientation.Axis(pos) - s.orientation.Axis(s.rect.Pos())
		s.setPos(entity.PixelsToFraction(offset, s.length()))
		d.update()
		return true

	case DragFrameResize:
		f := d.Frame(d.drag.node)
		if f == nil {
			return false
		}
		f.resizeEdges(d.drag.edges, d.drag.originRect, entity.Vec2{X: pos.X - d.drag.origin.X, Y: pos.Y - d.drag.origin.Y})
		d.update()
		return true

	case DragTabReorder:
		f := d.Frame(d.drag.node)
		if f == nil {
			return false
		}
		if f.TitleRect().Contains(pos) {
			if to := f.TabAt(pos); to >= 0 {
				return f.MoveTab(f.indexOf(d.drag.panel), to)
			}
			return false
		}
		d.beginDock(pos)
		d.updateGhost(pos)
		return true

	case DragFrameMove:
		f := d.Frame(d.drag.node)
		if f == nil {
			return false
		}
		if d.drag.wholeFrame && f.floating {
			o := d.drag.originRect
			f.moveTo(entity.Vec2{X: o.X + pos.X - d.drag.origin.X, Y: o.Y + pos.Y - d.drag.origin.Y})
			d.update()
		}
		d.updateGhost(pos)
		return true
	}
	return false
}

func (d *Docker) startDrag() {
	d.drag.pending = false
	if d.drag.panel != 0 {
		d.drag.kind = DragTabReorder
		return
	}
	d.drag.kind = DragFrameMove
	if f := d.Frame(d.drag.node); f != nil && f.floating {
		d.beginGesture()
		d.drag.gestured = true
	}
	if d.drag.dockable {
		d.beginDock(d.drag.origin)
	}
}

// beginDock switches to a dock drag with a fresh ghost and broadcasts BEGIN_DOCK.
func (d *Docker) beginDock(pos entity.Vec2) {
	d.drag.kind = DragFrameMove
	if d.drag.ghost != nil {
		return
	}
	size := d.drag.originRect.Size()
	d.drag.ghost = &Ghost{mouse: pos, size: size}
	d.drag.ghost.set(nil)

	source := d.drag.panel
	if source == 0 {
		source = d.drag.node
	}
	d.log.Debug().Uint64("node_id", uint64(source)).Bool("whole_frame", d.drag.wholeFrame).Msg("dock drag started")
	d.Trigger(entity.EventBeginDock, source)
}

func (d *Docker) updateGhost(pos entity.Vec2) {
	g := d.drag.ghost
	if g == nil {
		return
	}
	g.mouse = pos
	g.set(d.ResolveAnchor(pos, d.Frame(d.drag.node), d.drag.wholeFrame))
}

// PointerUp finishes the active gesture and commits it.
func (d *Docker) PointerUp(ev PointerEvent) bool {
	pos := ev.Pos()

	if d.drag.middle.Kind != TargetNone {
		pressed := d.drag.middle
		d.drag.middle = Target{}
		t := ev.Target
		if t.Kind == TargetNone {
			t = d.HitTest(pos)
		}
		if ev.Button != ButtonMiddle || t.Kind != TargetTab || t.Node != pressed.Node || t.Index != pressed.Index {
			return false
		}
		if f := d.Frame(t.Node); f != nil {
			return d.RemovePanel(f.Panel(t.Index))
		}
		return false
	}

	if d.drag.pending {
		d.drag = dragState{}
		return true
	}

	state := d.drag
	switch state.kind {
	case DragNone:
		return false
	case DragSplitter, DragFrameResize, DragTabReorder:
		d.drag = dragState{}
	case DragFrameMove:
		d.updateGhost(pos)
		d.drag = dragState{}
		if state.ghost != nil {
			d.commitDock(state)
			d.Trigger(entity.EventEndDock, nil)
		}
	}
	if state.gestured {
		d.endGesture()
	}
	d.update()
	return true
}

// Cancel abandons the active gesture without committing it. Splitter and
// frame geometry return to where the gesture started; a dock drag emits
// END_DOCK.
func (d *Docker) Cancel() {
	state := d.drag
	d.drag = dragState{}
	if state.kind == DragNone {
		return
	}

	switch state.kind {
	case DragSplitter:
		if s := d.Splitter(state.node); s != nil {
			s.pos = state.originPos
		}
	case DragFrameResize, DragFrameMove:
		if f := d.Frame(state.node); f != nil && f.floating && (state.kind == DragFrameResize || state.wholeFrame) {
			f.pos = state.originRect.Pos()
			f.size = state.originRect.Size()
		}
	case DragTabReorder:
		if f := d.Frame(state.node); f != nil {
			f.MoveTab(f.indexOf(state.panel), state.originTab)
		}
	}

	d.update()
	if state.gestured {
		d.endGesture()
	}
	if state.ghost != nil {
		d.Trigger(entity.EventEndDock, nil)
	}
	d.log.Debug().Str("drag", state.kind.String()).Msg("gesture cancelled")
}

// commitDock applies the ghost's anchor to the dragged panels.
func (d *Docker) commitDock(state dragState) {
	f := d.Frame(state.node)
	if f == nil {
		return
	}
	var panels []*Panel
	if state.wholeFrame {
		for _, p := range f.Panels() {
			if p.moveable {
				panels = append(panels, p)
			}
		}
	} else if p := d.Panel(state.panel); p != nil {
		panels = []*Panel{p}
	}
	if len(panels) == 0 {
		return
	}
	first := panels[0]
	rest := panels[1:]
	stackRest := func() {
		for _, p := range rest {
			d.MovePanel(p, entity.DockStacked, first, nil)
		}
	}

	anchor := state.ghost.anchor
	if anchor == nil {
		if state.wholeFrame && f.floating {
			return
		}
		r := state.ghost.floatingRect()
		d.MovePanel(first, entity.DockFloat, nil, &entity.Placement{
			X: entity.Px(r.X), Y: entity.Px(r.Y), W: entity.Px(r.W), H: entity.Px(r.H),
		})
		stackRest()
		return
	}

	if dr := d.Drawer(anchor.Target); dr != nil {
		for _, p := range panels {
			d.moveToDrawer(p, dr)
		}
		return
	}

	tf := d.Frame(anchor.Target)
	if tf == nil {
		return
	}
	size := &entity.Placement{W: entity.Px(anchor.Rect.W), H: entity.Px(anchor.Rect.H)}

	if anchor.IsSelf {
		if anchor.Location == entity.DockStacked {
			if anchor.TabIndex >= 0 && !state.wholeFrame {
				from := tf.indexOf(first.id)
				to := anchor.TabIndex
				if to > from {
					to--
				}
				tf.MoveTab(from, to)
			}
			return
		}
		// Split the frame with one of its own tabs: dock next to a sibling.
		var sibling *Panel
		for _, p := range tf.Panels() {
			if p.id != first.id {
				sibling = p
				break
			}
		}
		if sibling == nil {
			return
		}
		d.MovePanel(first, anchor.Location, sibling, size)
		return
	}

	if anchor.Location == entity.DockStacked {
		index := anchor.TabIndex
		for _, p := range panels {
			d.moveToFrame(p, tf, index)
			if index >= 0 {
				index++
			}
		}
		return
	}
	d.MovePanel(first, anchor.Location, tf.Panel(-1), size)
	stackRest()
}
