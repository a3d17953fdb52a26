package docking

import (
	"slices"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func validLocation(location entity.DockLocation) bool {
	return slices.Contains(entity.DockLocations, location)
}

// liveTarget returns target if it is a live panel attached to a frame.
func (d *Docker) liveTarget(target *Panel) *Panel {
	if target == nil || d.Panel(target.id) != target || target.Frame() == nil {
		return nil
	}
	return target
}

// AddPanel creates a panel of a registered type and docks it at location
// relative to target (or to the whole layout when target is nil). rect is an
// optional size/position request. It returns nil for an unknown type or an
// invalid location.
func (d *Docker) AddPanel(typeName string, location entity.DockLocation, target *Panel, rect *entity.Placement) *Panel {
	log := d.log.With().Str("panel_type", typeName).Str("location", string(location)).Logger()
	log.Debug().Bool("has_target", target != nil).Msg("adding panel")

	if !validLocation(location) {
		log.Warn().Msg("add panel: invalid dock location")
		return nil
	}
	if _, ok := d.types[typeName]; !ok {
		log.Warn().Msg("add panel: unknown panel type")
		return nil
	}
	if target != nil && d.liveTarget(target) == nil {
		log.Warn().Msg("add panel: target is not a live panel, docking at root level")
	}

	p := d.createPanel(typeName)
	d.insertPanel(p, location, d.liveTarget(target), rect)
	d.dropPlaceholderFor(p)
	d.update()

	log.Info().Uint64("node_id", uint64(p.id)).Uint64("frame_id", uint64(p.parent)).Msg("panel added")
	return p
}

func (d *Docker) insertPanel(p *Panel, location entity.DockLocation, target *Panel, rect *entity.Placement) {
	if location == entity.DockStacked {
		d.addPanelGrouped(p, target, -1)
		return
	}
	d.addPanelAlone(p, location, target, rect)
}

// addPanelGrouped adds p as a new current tab of target's frame, or of the
// first frame of the main area when target is nil.
func (d *Docker) addPanelGrouped(p *Panel, target *Panel, index int) {
	var f *Frame
	if target != nil {
		f = target.Frame()
	} else {
		f = d.mainFrame()
	}
	if f == nil {
		d.addPanelAlone(p, entity.DockRight, nil, nil)
		return
	}
	f.addPanel(p, index)
	f.curTab = f.indexOf(p.id)
}

// addPanelAlone gives p its own frame: floating, split against target's
// frame, or split against the root.
func (d *Docker) addPanelAlone(p *Panel, location entity.DockLocation, target *Panel, rect *entity.Placement) {
	if location.IsFloating() {
		d.addFloating(p, location == entity.DockModal, rect)
		return
	}

	anchor := d.root
	if target != nil {
		if tf := target.Frame(); tf != nil && !tf.floating {
			anchor = tf.id
		}
	}
	// A frame showing only the placeholder takes the panel in place.
	if ph := d.Placeholder(); ph != nil && ph.parent == anchor && ph.Frame().Len() == 1 {
		ph.Frame().addPanel(p, -1)
		return
	}

	f := newFrame(d, false)
	f.addPanel(p, -1)
	if anchor == 0 {
		d.root = f.id
		f.setParent(0)
		return
	}
	if !location.IsEdge() {
		location = entity.DockRight
	}
	d.splitAround(anchor, f, location, rect, p.initSize)
}

func (d *Docker) addFloating(p *Panel, modal bool, rect *entity.Placement) {
	f := newFrame(d, true)
	f.modal = modal
	f.addPanel(p, -1)

	hint := p.initSize
	if hint.X <= 0 || hint.Y <= 0 {
		hint = entity.Vec2{X: d.size.X * d.opts.FloatingSize.X, Y: d.size.Y * d.opts.FloatingSize.Y}
	}
	res := rect.Resolve(d.size, hint)
	if res.W <= 0 {
		res.W = hint.X
	}
	if res.H <= 0 {
		res.H = hint.Y
	}
	minS, maxS := f.minSize(), f.maxSize()
	f.size = entity.Vec2{X: entity.Clamp(res.W, minS.X, maxS.X), Y: entity.Clamp(res.H, minS.Y, maxS.Y)}

	pos := entity.Vec2{X: (d.size.X - f.size.X) / 2, Y: (d.size.Y - f.size.Y) / 2}
	if res.HasX {
		pos.X = res.X
	}
	if res.HasY {
		pos.Y = res.Y
	}
	f.moveTo(pos)

	if modal {
		d.modal = append(d.modal, f.id)
	} else {
		d.floating = append(d.floating, f.id)
	}
	d.Focus(f)
}

// splitAround replaces the target node's slot with a new splitter holding
// the target and n, n on the side named by location. The split position
// comes from rect or sizeHint along the split axis, else the best position.
func (d *Docker) splitAround(targetID NodeID, n Node, location entity.DockLocation, rect *entity.Placement, sizeHint entity.Vec2) *Splitter {
	target := d.Node(targetID)
	slot := target.Rect()
	if slot.Empty() {
		slot = entity.Rect{W: d.size.X, H: d.size.Y}
	}

	orientation := location.Orientation()
	s := newSplitter(d, orientation)
	d.replaceChild(target.ParentID(), targetID, s.id)
	if location.Leading() {
		s.panes = [2]NodeID{n.ID(), targetID}
	} else {
		s.panes = [2]NodeID{targetID, n.ID()}
	}
	n.setParent(s.id)
	target.setParent(s.id)
	s.rect = slot

	res := rect.Resolve(d.size, sizeHint)
	along := orientation.Axis(entity.Vec2{X: res.W, Y: res.H})
	length := s.length()
	if along <= 0 || length <= 0 {
		s.findBestPos()
		return s
	}
	fraction := entity.PixelsToFraction(along, length)
	if !location.Leading() {
		fraction = 1 - fraction
	}
	s.setPos(fraction)
	return s
}

// RemovePanel closes a panel. Non-closeable or unknown panels are left
// alone and false is returned.
func (d *Docker) RemovePanel(p *Panel) bool {
	if p == nil || d.Panel(p.id) != p {
		return false
	}
	if !p.closeable {
		d.log.Debug().Uint64("node_id", uint64(p.id)).Msg("remove panel ignored: not closeable")
		return false
	}
	d.destroyPanel(p)
	d.ensurePlaceholder()
	d.update()
	d.log.Info().Uint64("node_id", uint64(p.id)).Str("panel_type", p.typeName).Msg("panel removed")
	return true
}

func (d *Docker) destroyPanel(p *Panel) {
	if d.drag.involves(p.id) {
		d.Cancel()
	}
	p.emit(entity.EventClosed, nil)
	d.detach(p)
	delete(d.nodes, p.id)
	if d.placeholder == p.id {
		d.placeholder = 0
	}
	p.handlers = handlerTable{}
}

// detach takes p out of its frame. An emptied frame is either filled with
// the placeholder (last moveable panel of the main area) or torn down,
// collapsing its parent splitter.
func (d *Docker) detach(p *Panel) {
	f := p.Frame()
	if f == nil {
		return
	}
	last := d.isLastPanel(p)
	if f.removePanel(p) {
		return
	}
	if !p.placeholder && last && d.placeholder == 0 && !f.floating && d.ancestorDrawer(f.id) == nil {
		ph := d.createPlaceholder()
		f.addPanel(ph, -1)
		d.placeholder = ph.id
		d.log.Debug().Uint64("frame_id", uint64(f.id)).Msg("placeholder installed")
		return
	}
	d.removeFrame(f)
}

// ensurePlaceholder gives an empty main area a frame holding the placeholder.
// When only drawers are docked, the frame goes opposite the root drawer.
func (d *Docker) ensurePlaceholder() {
	if d.placeholder != 0 || d.mainFrame() != nil {
		return
	}
	ph := d.createPlaceholder()
	f := newFrame(d, false)
	f.addPanel(ph, -1)
	d.placeholder = ph.id

	if d.root == 0 {
		d.root = f.id
	} else {
		location := entity.DockRight
		if dr, ok := d.Node(d.root).(*Drawer); ok {
			location = oppositeEdge(dr.edge)
		}
		d.splitAround(d.root, f, location, nil, entity.Vec2{})
	}
	d.log.Debug().Uint64("frame_id", uint64(f.id)).Msg("placeholder installed")
}

func oppositeEdge(edge entity.DockLocation) entity.DockLocation {
	switch edge {
	case entity.DockLeft:
		return entity.DockRight
	case entity.DockRight:
		return entity.DockLeft
	case entity.DockTop:
		return entity.DockBottom
	}
	return entity.DockTop
}

// isLastPanel reports whether no other moveable panel lives in the main
// area (floating frames and drawers excluded).
func (d *Docker) isLastPanel(p *Panel) bool {
	last := true
	d.walk(d.root, func(n Node) bool {
		switch t := n.(type) {
		case *Drawer:
			return false
		case *Panel:
			if t.id != p.id && t.moveable && !t.placeholder {
				last = false
			}
		}
		return last
	})
	return last
}

// dropPlaceholderFor removes the placeholder once p, a moveable panel, has
// landed in the main area.
func (d *Docker) dropPlaceholderFor(p *Panel) {
	ph := d.Placeholder()
	if ph == nil || ph == p || !p.moveable {
		return
	}
	f := p.Frame()
	if f == nil || f.floating || d.ancestorDrawer(f.id) != nil {
		return
	}
	d.detach(ph)
	delete(d.nodes, ph.id)
	d.placeholder = 0
	d.log.Debug().Uint64("node_id", uint64(p.id)).Msg("placeholder removed")
}

// removeFrame deletes an empty frame and collapses its parent splitter.
func (d *Docker) removeFrame(f *Frame) {
	d.frames = slices.DeleteFunc(d.frames, func(id NodeID) bool { return id == f.id })
	d.floating = slices.DeleteFunc(d.floating, func(id NodeID) bool { return id == f.id })
	d.modal = slices.DeleteFunc(d.modal, func(id NodeID) bool { return id == f.id })

	switch parent := d.Node(f.parent).(type) {
	case *Splitter:
		d.collapseSplitter(parent, f.id)
	case *Drawer:
		parent.root = 0
	case nil:
		if d.root == f.id {
			d.root = 0
		}
	}
	delete(d.nodes, f.id)
	if d.focus == f.id {
		d.refocus()
	}
}

// collapseSplitter replaces s by its surviving pane. One level only.
func (d *Docker) collapseSplitter(s *Splitter, removed NodeID) {
	survivor := s.other(removed)
	d.replaceChild(s.parent, s.id, survivor)
	d.splitters = slices.DeleteFunc(d.splitters, func(id NodeID) bool { return id == s.id })
	delete(d.nodes, s.id)
}

// MovePanel detaches p and docks it again at location relative to target.
// The panel's previous frame size becomes its size hint. It returns false
// when the move is impossible (unknown panel, placeholder, stacking onto its
// own frame, target equal to p).
func (d *Docker) MovePanel(p *Panel, location entity.DockLocation, target *Panel, rect *entity.Placement) bool {
	if p == nil || d.Panel(p.id) != p || p.placeholder || p.Frame() == nil {
		return false
	}
	log := d.log.With().Uint64("node_id", uint64(p.id)).Str("location", string(location)).Logger()
	if !validLocation(location) {
		log.Warn().Msg("move panel: invalid dock location")
		return false
	}
	target = d.liveTarget(target)
	if target == p {
		log.Debug().Msg("move panel ignored: target is the panel itself")
		return false
	}
	from := p.Frame()
	if location == entity.DockStacked && target != nil && target.Frame() == from {
		log.Debug().Msg("move panel ignored: already in target frame")
		return false
	}

	prevFloating := from.floating
	prevRect := from.rect
	d.detach(p)
	p.initSize = prevRect.Size()

	if location.IsFloating() {
		placed := entity.Placement{
			X: entity.Px(prevRect.X + d.opts.FloatOffset),
			Y: entity.Px(prevRect.Y + d.opts.FloatOffset),
			W: entity.Px(prevRect.W),
			H: entity.Px(prevRect.H),
		}
		if rect != nil {
			if rect.X != nil {
				placed.X = rect.X
			}
			if rect.Y != nil {
				placed.Y = rect.Y
			}
			if rect.W != nil {
				placed.W = rect.W
			}
			if rect.H != nil {
				placed.H = rect.H
			}
		}
		rect = &placed
	}

	d.insertPanel(p, location, target, rect)
	d.dropPlaceholderFor(p)
	d.finishMove(p, prevFloating)
	log.Info().Uint64("frame_id", uint64(p.parent)).Msg("panel moved")
	return true
}

// finishMove lays out, emits ATTACHED/DETACHED on a floating change and MOVED.
func (d *Docker) finishMove(p *Panel, prevFloating bool) {
	d.update()
	if now := p.IsFloating(); now != prevFloating {
		if now {
			p.emit(entity.EventDetached, nil)
		} else {
			p.emit(entity.EventAttached, nil)
		}
	}
	p.emit(entity.EventMoved, nil)
	d.Focus(p.Frame())
}

// moveToFrame moves p into frame f as the tab at index.
func (d *Docker) moveToFrame(p *Panel, f *Frame, index int) {
	prevFloating := p.IsFloating()
	d.detach(p)
	if d.Frame(f.id) == nil {
		return
	}
	if index > f.Len() {
		index = f.Len()
	}
	f.addPanel(p, index)
	f.curTab = f.indexOf(p.id)
	d.dropPlaceholderFor(p)
	d.finishMove(p, prevFloating)
}

// AddDrawer wraps the current root in a splitter with a new collapsed drawer
// on edge. The drawer takes a quarter of the axis when expanded.
func (d *Docker) AddDrawer(edge entity.DockLocation) *Drawer {
	if !edge.IsEdge() {
		d.log.Warn().Str("location", string(edge)).Msg("add drawer: location is not an edge")
		return nil
	}
	dr := newDrawer(d, edge)
	if d.root == 0 {
		d.root = dr.id
		d.update()
		return dr
	}

	old := d.root
	s := newSplitter(d, edge.Orientation())
	d.root = s.id
	if edge.Leading() {
		s.panes = [2]NodeID{dr.id, old}
		s.pos = 0.25
	} else {
		s.panes = [2]NodeID{old, dr.id}
		s.pos = 0.75
	}
	dr.setParent(s.id)
	d.Node(old).setParent(s.id)
	d.update()

	d.log.Info().Uint64("node_id", uint64(dr.id)).Str("edge", string(edge)).Msg("drawer added")
	return dr
}

// AddPanelToDrawer creates a panel inside dr and expands it. location
// STACKED (or a non-edge) stacks onto the drawer's first frame; an edge
// splits the drawer's content.
func (d *Docker) AddPanelToDrawer(typeName string, dr *Drawer, location entity.DockLocation) *Panel {
	if dr == nil || d.Drawer(dr.id) != dr {
		return nil
	}
	if _, ok := d.types[typeName]; !ok {
		d.log.Warn().Str("panel_type", typeName).Msg("add panel to drawer: unknown panel type")
		return nil
	}
	p := d.createPanel(typeName)
	d.insertIntoDrawer(p, dr, location)
	d.update()
	d.log.Info().Uint64("node_id", uint64(p.id)).Uint64("drawer_id", uint64(dr.id)).Msg("panel added to drawer")
	return p
}

func (d *Docker) insertIntoDrawer(p *Panel, dr *Drawer, location entity.DockLocation) {
	dr.expanded = true
	if dr.root == 0 {
		f := newFrame(d, false)
		f.addPanel(p, -1)
		dr.root = f.id
		f.setParent(dr.id)
		return
	}
	if !location.IsEdge() {
		f := d.firstFrame(dr.id)
		f.addPanel(p, -1)
		f.curTab = f.indexOf(p.id)
		return
	}
	f := newFrame(d, false)
	f.addPanel(p, -1)
	d.splitAround(dr.root, f, location, nil, p.initSize)
}

// moveToDrawer moves p into dr, stacking onto its first frame.
func (d *Docker) moveToDrawer(p *Panel, dr *Drawer) {
	prevFloating := p.IsFloating()
	d.detach(p)
	if d.Drawer(dr.id) == nil {
		return
	}
	d.insertIntoDrawer(p, dr, entity.DockStacked)
	d.finishMove(p, prevFloating)
}
