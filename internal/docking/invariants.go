package docking

import (
	"errors"
	"fmt"
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

const geometryTolerance = 1e-6

// CheckInvariants verifies the structural invariants of the tree and
// returns every violation joined into one error, nil when healthy.
func (d *Docker) CheckInvariants() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidNode}, args...)...))
	}

	reached := make(map[NodeID]bool, len(d.nodes))
	var check func(id, parent NodeID, hidden bool)
	check = func(id, parent NodeID, hidden bool) {
		n := d.Node(id)
		if n == nil {
			fail("node %d under %d does not exist", id, parent)
			return
		}
		if reached[id] {
			fail("node %d is reachable twice", id)
			return
		}
		reached[id] = true
		if n.ParentID() != parent {
			fail("node %d has parent %d, expected %d", id, n.ParentID(), parent)
		}

		switch t := n.(type) {
		case *Splitter:
			if t.panes[0] == 0 || t.panes[1] == 0 {
				fail("splitter %d has an empty pane", id)
			}
			if t.pos < 0 || t.pos > 1 || math.IsNaN(t.pos) {
				fail("splitter %d position %v outside [0,1]", id, t.pos)
			}
			if !hidden {
				checkPartition(t, fail)
			}
			for _, child := range t.panes {
				if child != 0 {
					check(child, id, hidden)
				}
			}
		case *Drawer:
			if !t.edge.IsEdge() {
				fail("drawer %d has edge %q", id, t.edge)
			}
			if t.root != 0 {
				check(t.root, id, hidden || !t.expanded)
			}
		case *Frame:
			checkFrame(d, t, fail)
			for _, p := range t.panels {
				check(p, id, hidden)
			}
		case *Panel:
			if _, ok := d.Node(parent).(*Frame); !ok {
				fail("panel %d is a direct tree child", id)
			}
		}
	}

	if d.root != 0 {
		check(d.root, 0, false)
	}
	for _, list := range [][]NodeID{d.floating, d.modal} {
		for _, id := range list {
			f := d.Frame(id)
			if f == nil {
				fail("floating entry %d is not a frame", id)
				continue
			}
			if !f.floating {
				fail("frame %d is listed as floating but is docked", id)
			}
			check(id, 0, false)
		}
	}

	for id := range d.nodes {
		if !reached[id] {
			fail("node %d is not reachable from the root or floating frames", id)
		}
	}

	placeholders := 0
	for _, p := range d.Panels() {
		if p.placeholder {
			placeholders++
			if p.id != d.placeholder {
				fail("placeholder %d is not tracked", p.id)
			}
			if f := p.Frame(); f != nil && (f.floating || d.ancestorDrawer(f.id) != nil) {
				fail("placeholder %d is outside the main area", p.id)
			}
		}
	}
	if placeholders > 1 {
		fail("%d placeholder panels", placeholders)
	}

	return errors.Join(errs...)
}

func checkFrame(d *Docker, f *Frame, fail func(string, ...any)) {
	if len(f.panels) == 0 {
		fail("frame %d has no panels", f.id)
		return
	}
	if f.curTab < 0 || f.curTab >= len(f.panels) {
		fail("frame %d current tab %d out of range", f.id, f.curTab)
	}
	if f.floating && f.parent != 0 {
		fail("floating frame %d has parent %d", f.id, f.parent)
	}
	if f.modal && !f.floating {
		fail("modal frame %d is docked", f.id)
	}
	if f.floating {
		return
	}
	if d.ancestorDrawer(f.id) == nil && d.root != f.id && d.Node(f.parent) == nil {
		fail("docked frame %d is detached", f.id)
	}
}

// checkPartition verifies the panes tile the splitter rect along its axis.
func checkPartition(s *Splitter, fail func(string, ...any)) {
	a, b := s.PaneRects()
	r := s.rect
	if a.Intersects(b) {
		fail("splitter %d panes overlap", s.id)
	}
	u := a.Union(b)
	if !near(u.X, r.X) || !near(u.Y, r.Y) || !near(u.W, r.W) || !near(u.H, r.H) {
		fail("splitter %d panes cover %v instead of %v", s.id, u, r)
	}
	if s.orientation == entity.Horizontal && !near(a.W+b.W, r.W) {
		fail("splitter %d pane widths do not add up", s.id)
	}
	if s.orientation == entity.Vertical && !near(a.H+b.H, r.H) {
		fail("splitter %d pane heights do not add up", s.id)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= geometryTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
