package docking

import "github.com/bnema/dockyard/internal/domain/entity"

// NodeID identifies a node owned by a Docker.
type NodeID = entity.NodeID

// Node is one of *Splitter, *Frame, *Drawer or *Panel.
// Parent links are ids resolved through the owning Docker's arena.
type Node interface {
	ID() NodeID
	Kind() entity.NodeKind
	// ParentID returns the owning node, 0 for the tree root, floating frames
	// and panels in transition.
	ParentID() NodeID
	// Rect returns the last laid out rectangle in container pixels.
	Rect() entity.Rect

	setParent(NodeID)
}

// base carries the fields shared by every node.
type base struct {
	id     NodeID
	parent NodeID
	docker *Docker
	rect   entity.Rect
}

func (b *base) ID() NodeID              { return b.id }
func (b *base) ParentID() NodeID        { return b.parent }
func (b *base) Rect() entity.Rect       { return b.rect }
func (b *base) setParent(parent NodeID) { b.parent = parent }

// register adds n to the arena under a fresh id.
func (d *Docker) register(n Node, b *base) {
	d.nextID++
	b.id = d.nextID
	b.docker = d
	d.nodes[b.id] = n
}

// Node looks up any node by id.
func (d *Docker) Node(id NodeID) Node {
	if id == 0 {
		return nil
	}
	return d.nodes[id]
}

// Panel looks up a panel by id.
func (d *Docker) Panel(id NodeID) *Panel {
	p, _ := d.Node(id).(*Panel)
	return p
}

// Frame looks up a frame by id.
func (d *Docker) Frame(id NodeID) *Frame {
	f, _ := d.Node(id).(*Frame)
	return f
}

// Splitter looks up a splitter by id.
func (d *Docker) Splitter(id NodeID) *Splitter {
	s, _ := d.Node(id).(*Splitter)
	return s
}

// Drawer looks up a drawer by id.
func (d *Docker) Drawer(id NodeID) *Drawer {
	dr, _ := d.Node(id).(*Drawer)
	return dr
}

// replaceChild puts replacement where old used to live under parent.
// A zero parent means the docker root.
func (d *Docker) replaceChild(parent, old, replacement NodeID) {
	switch p := d.Node(parent).(type) {
	case nil:
		if d.root == old {
			d.root = replacement
		}
	case *Splitter:
		for i := range p.panes {
			if p.panes[i] == old {
				p.panes[i] = replacement
			}
		}
	case *Drawer:
		if p.root == old {
			p.root = replacement
		}
	}
	if n := d.Node(replacement); n != nil {
		n.setParent(parent)
	}
}

// ancestorDrawer returns the drawer containing id, or nil.
func (d *Docker) ancestorDrawer(id NodeID) *Drawer {
	for n := d.Node(id); n != nil; n = d.Node(n.ParentID()) {
		if dr, ok := n.(*Drawer); ok && dr.id != id {
			return dr
		}
	}
	return nil
}

// walk visits the docked tree depth-first, pre-order.
func (d *Docker) walk(id NodeID, fn func(Node) bool) {
	n := d.Node(id)
	if n == nil || !fn(n) {
		return
	}
	switch t := n.(type) {
	case *Splitter:
		d.walk(t.panes[0], fn)
		d.walk(t.panes[1], fn)
	case *Drawer:
		d.walk(t.root, fn)
	case *Frame:
		for _, p := range t.panels {
			d.walk(p, fn)
		}
	}
}

// mainFrame returns the first frame of the main area, skipping drawers.
func (d *Docker) mainFrame() *Frame {
	var found *Frame
	d.walk(d.root, func(n Node) bool {
		if found != nil {
			return false
		}
		switch t := n.(type) {
		case *Frame:
			found = t
			return false
		case *Drawer:
			return false
		}
		return true
	})
	return found
}

// firstFrame returns the first frame in tree order under id. Drawers below
// id are skipped; a drawer passed as id is searched.
func (d *Docker) firstFrame(id NodeID) *Frame {
	var found *Frame
	d.walk(id, func(n Node) bool {
		if found != nil {
			return false
		}
		switch t := n.(type) {
		case *Frame:
			found = t
			return false
		case *Drawer:
			// Drawer frames are not candidates for the main area.
			return t.id == id
		}
		return true
	})
	return found
}
