package docking

import (
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Frame is a tabbed container holding an ordered list of panels.
type Frame struct {
	base

	panels []NodeID
	curTab int

	floating bool
	modal    bool
	// pos and size are authoritative for floating frames only.
	pos  entity.Vec2
	size entity.Vec2
}

func newFrame(d *Docker, floating bool) *Frame {
	f := &Frame{curTab: -1, floating: floating}
	d.register(f, &f.base)
	d.frames = append(d.frames, f.id)
	return f
}

func (f *Frame) Kind() entity.NodeKind { return entity.KindFrame }

// Floating reports whether the frame is detached from the tree.
func (f *Frame) Floating() bool { return f.floating }

// Modal reports whether the frame is a modal floating frame.
func (f *Frame) Modal() bool { return f.modal }

// Len returns the number of tabs.
func (f *Frame) Len() int { return len(f.panels) }

// Panels returns the panels in tab order.
func (f *Frame) Panels() []*Panel {
	out := make([]*Panel, 0, len(f.panels))
	for _, id := range f.panels {
		if p := f.docker.Panel(id); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// CurrentTab returns the index of the visible tab, -1 when empty.
func (f *Frame) CurrentTab() int { return f.curTab }

// Panel returns the panel at index, or the current panel when index < 0.
func (f *Frame) Panel(index int) *Panel {
	if index < 0 {
		index = f.curTab
	}
	if index < 0 || index >= len(f.panels) {
		return nil
	}
	return f.docker.Panel(f.panels[index])
}

// SetCurrentTab makes the tab at index visible. Out-of-range indexes are clamped.
func (f *Frame) SetCurrentTab(index int) {
	if len(f.panels) == 0 {
		return
	}
	index = int(entity.Clamp(float64(index), 0, float64(len(f.panels)-1)))
	if index == f.curTab {
		return
	}
	d := f.docker
	focused := d.focus == f.id
	if focused {
		if prev := f.Panel(-1); prev != nil {
			prev.emit(entity.EventLostFocus, nil)
		}
	}
	f.curTab = index
	if focused {
		f.Panel(-1).emit(entity.EventGainFocus, nil)
	}
	d.update()
}

// Pos returns the top-left corner of a floating frame.
func (f *Frame) Pos() entity.Vec2 { return f.pos }

// Size returns the size of a floating frame.
func (f *Frame) Size() entity.Vec2 { return f.size }

// TitleRect returns the title strip of the frame.
func (f *Frame) TitleRect() entity.Rect {
	h := math.Min(f.docker.opts.TitleHeight, f.rect.H)
	if !f.showsTitle() {
		h = 0
	}
	return entity.Rect{X: f.rect.X, Y: f.rect.Y, W: f.rect.W, H: h}
}

// ContentRect returns the frame rect below the title strip.
func (f *Frame) ContentRect() entity.Rect {
	return f.rect.Inset(f.TitleRect().H)
}

func (f *Frame) showsTitle() bool {
	for _, p := range f.Panels() {
		if p.titleVisible {
			return true
		}
	}
	return false
}

// TabRects returns the tab rectangles along the title strip, one per panel.
// Panels with a hidden title get an empty rect.
func (f *Frame) TabRects() []entity.Rect {
	title := f.TitleRect()
	out := make([]entity.Rect, len(f.panels))
	shown := 0
	for _, p := range f.Panels() {
		if p.titleVisible {
			shown++
		}
	}
	if shown == 0 || title.H == 0 {
		return out
	}
	w := title.W / float64(shown)
	x := title.X
	for i, p := range f.Panels() {
		if !p.titleVisible {
			continue
		}
		out[i] = entity.Rect{X: x, Y: title.Y, W: w, H: title.H}
		x += w
	}
	return out
}

// TabAt returns the tab under point, -1 if none.
func (f *Frame) TabAt(point entity.Vec2) int {
	for i, r := range f.TabRects() {
		if !r.Empty() && r.Contains(point) {
			return i
		}
	}
	return -1
}

// insertionIndex returns the tab index a drop at point would insert at.
func (f *Frame) insertionIndex(point entity.Vec2) int {
	for i, r := range f.TabRects() {
		if r.Empty() {
			continue
		}
		if point.X < r.Center().X {
			return i
		}
	}
	return len(f.panels)
}

func (f *Frame) indexOf(panel NodeID) int {
	for i, id := range f.panels {
		if id == panel {
			return i
		}
	}
	return -1
}

// addPanel inserts p at index (append when index < 0 or past the end).
// The first panel becomes current.
func (f *Frame) addPanel(p *Panel, index int) {
	if index < 0 || index > len(f.panels) {
		index = len(f.panels)
	}
	f.panels = append(f.panels, 0)
	copy(f.panels[index+1:], f.panels[index:])
	f.panels[index] = p.id
	p.setParent(f.id)

	if f.curTab < 0 {
		f.curTab = 0
	} else if index <= f.curTab && len(f.panels) > 1 {
		f.curTab++
	}
	if f.modal {
		p.moveable = false
	}
	f.docker.container.Reparent(p.id, f.id)
}

// removePanel takes p out of the tab list. It returns false when the frame
// is left empty and must be torn down or filled with a placeholder.
func (f *Frame) removePanel(p *Panel) bool {
	idx := f.indexOf(p.id)
	if idx < 0 {
		return len(f.panels) > 0
	}
	f.panels = append(f.panels[:idx], f.panels[idx+1:]...)
	if f.curTab >= idx {
		f.curTab--
	}
	if f.curTab < 0 && len(f.panels) > 0 {
		f.curTab = 0
	}
	p.setParent(0)
	f.docker.container.Reparent(p.id, 0)
	return len(f.panels) > 0
}

// MoveTab reorders a tab, keeping the current panel current.
func (f *Frame) MoveTab(from, to int) bool {
	if from < 0 || from >= len(f.panels) {
		return false
	}
	to = int(entity.Clamp(float64(to), 0, float64(len(f.panels)-1)))
	if from == to {
		return false
	}
	current := f.panels[f.curTab]
	id := f.panels[from]
	f.panels = append(f.panels[:from], f.panels[from+1:]...)
	f.panels = append(f.panels, 0)
	copy(f.panels[to+1:], f.panels[to:])
	f.panels[to] = id
	f.curTab = f.indexOf(current)
	f.docker.update()
	return true
}

// minSize is the largest panel minimum plus the title strip.
func (f *Frame) minSize() entity.Vec2 {
	var out entity.Vec2
	for _, p := range f.Panels() {
		out.X = math.Max(out.X, p.minSize.X)
		out.Y = math.Max(out.Y, p.minSize.Y)
	}
	out.Y += f.TitleHeight()
	return out
}

// maxSize is the smallest panel maximum plus the title strip.
func (f *Frame) maxSize() entity.Vec2 {
	out := entity.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	for _, p := range f.Panels() {
		out.X = math.Min(out.X, p.maxSize.X)
		out.Y = math.Min(out.Y, p.maxSize.Y)
	}
	out.Y += f.TitleHeight()
	return out
}

// TitleHeight returns the height of the title strip this frame reserves.
func (f *Frame) TitleHeight() float64 {
	if !f.showsTitle() {
		return 0
	}
	return f.docker.opts.TitleHeight
}

// moveTo places a floating frame with its top-left at pos, kept inside the container.
func (f *Frame) moveTo(pos entity.Vec2) {
	bounds := f.docker.size
	f.pos = entity.Vec2{
		X: entity.Clamp(pos.X, 0, math.Max(0, bounds.X-f.size.X)),
		Y: entity.Clamp(pos.Y, 0, math.Max(0, bounds.Y-f.size.Y)),
	}
}

// resizeEdges drags the given edges of a floating frame from origin by delta,
// clamped to the frame's min/max size. Opposite edges stay put.
func (f *Frame) resizeEdges(edges entity.EdgeSet, origin entity.Rect, delta entity.Vec2) {
	minS, maxS := f.minSize(), f.maxSize()
	r := origin

	if edges.Has(entity.EdgeLeft) {
		w := entity.Clamp(origin.W-delta.X, minS.X, maxS.X)
		r.X = origin.Right() - w
		r.W = w
	}
	if edges.Has(entity.EdgeRight) {
		r.W = entity.Clamp(origin.W+delta.X, minS.X, maxS.X)
	}
	if edges.Has(entity.EdgeTop) {
		h := entity.Clamp(origin.H-delta.Y, minS.Y, maxS.Y)
		r.Y = origin.Bottom() - h
		r.H = h
	}
	if edges.Has(entity.EdgeBottom) {
		r.H = entity.Clamp(origin.H+delta.Y, minS.Y, maxS.Y)
	}

	f.pos = r.Pos()
	f.size = r.Size()
}

// edgesAt returns which resize borders of a floating frame are under point.
func (f *Frame) edgesAt(point entity.Vec2, grab float64) entity.EdgeSet {
	r := f.rect
	if !f.floating || !r.Contains(point) {
		return 0
	}
	var set entity.EdgeSet
	if point.Y-r.Y <= grab {
		set |= entity.EdgeSet(entity.EdgeTop)
	} else if r.Bottom()-point.Y <= grab {
		set |= entity.EdgeSet(entity.EdgeBottom)
	}
	if point.X-r.X <= grab {
		set |= entity.EdgeSet(entity.EdgeLeft)
	} else if r.Right()-point.X <= grab {
		set |= entity.EdgeSet(entity.EdgeRight)
	}
	return set
}
