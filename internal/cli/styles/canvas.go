package styles

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/docking"
	"github.com/bnema/dockyard/internal/domain/entity"
)

type paint uint8

const (
	paintNone paint = iota
	paintText
	paintFrame
	paintFocused
	paintFloating
	paintDrawer
	paintActiveTab
	paintInactiveTab
	paintGhost
)

type box struct {
	h, v, tl, tr, bl, br rune
}

var (
	frameBox = box{h: '─', v: '│', tl: '┌', tr: '┐', bl: '└', br: '┘'}
	ghostBox = box{h: '═', v: '║', tl: '╔', tr: '╗', bl: '╚', br: '╝'}
)

// Canvas rasterizes a docking layout onto a grid of terminal cells.
// One cell covers CellW x CellH container pixels.
type Canvas struct {
	theme  *Theme
	cellW  float64
	cellH  float64
	cols   int
	rows   int
	runes  [][]rune
	paints [][]paint
}

// NewCanvas creates a blank canvas of cols x rows cells.
func NewCanvas(theme *Theme, cols, rows int, cellW, cellH float64) *Canvas {
	cols = max(cols, 0)
	rows = max(rows, 0)
	c := &Canvas{
		theme:  theme,
		cellW:  cellW,
		cellH:  cellH,
		cols:   cols,
		rows:   rows,
		runes:  make([][]rune, rows),
		paints: make([][]paint, rows),
	}
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", cols))
		c.paints[y] = make([]paint, cols)
	}
	return c
}

// Draw paints the docked tree, then floating and modal frames bottom to
// top, then the drag ghost.
func (c *Canvas) Draw(d *docking.Docker) {
	focused := d.Focused()
	if root := d.Root(); root != nil {
		c.drawNode(root, focused)
	}
	for _, f := range d.FloatingFrames() {
		c.drawFrame(f, f == focused, paintFloating)
	}
	for _, f := range d.ModalFrames() {
		c.drawFrame(f, f == focused, paintFloating)
	}
	if g := d.Ghost(); g != nil && d.DragKind() != docking.DragNone {
		c.drawGhost(g)
	}
}

func (c *Canvas) drawNode(n docking.Node, focused *docking.Frame) {
	switch t := n.(type) {
	case *docking.Frame:
		c.drawFrame(t, t == focused, paintFrame)
		return
	case *docking.Drawer:
		c.drawDrawer(t)
		if !t.IsExpanded() {
			return
		}
	}
	for _, child := range childrenOf(n) {
		c.drawNode(child, focused)
	}
}

func (c *Canvas) drawFrame(f *docking.Frame, focused bool, border paint) {
	x0, y0, x1, y1, ok := c.cellRect(f.Rect())
	if !ok {
		return
	}
	if focused {
		border = paintFocused
	}
	c.fill(x0, y0, x1, y1, ' ', paintNone)
	c.drawBox(x0, y0, x1, y1, frameBox, border)

	tabs := f.TabRects()
	for i, p := range f.Panels() {
		if i >= len(tabs) || tabs[i].Empty() {
			continue
		}
		tx0, _, tx1, _, ok := c.cellRect(tabs[i])
		if !ok {
			continue
		}
		tx0, tx1 = max(tx0, x0+1), min(tx1, x1-1)
		style := paintInactiveTab
		if i == f.CurrentTab() {
			style = paintActiveTab
		}
		c.text(tx0, y0, tx1, " "+p.Title()+" ", style)
	}

	if cur := f.Panel(f.CurrentTab()); cur != nil && y1-y0 >= 2 {
		label := cur.TypeName()
		if cur.IsPlaceholder() {
			label = "drop panels here"
		}
		c.text(x0+2, y0+1, x1-1, label, paintText)
	}
}

func (c *Canvas) drawDrawer(dr *docking.Drawer) {
	x0, y0, x1, y1, ok := c.cellRect(dr.HandleRect())
	if !ok {
		return
	}
	c.fill(x0, y0, x1, y1, '░', paintDrawer)
	arrow := drawerArrow(dr.Edge(), dr.IsExpanded())
	c.set((x0+x1)/2, (y0+y1)/2, arrow, paintDrawer)
}

func drawerArrow(edge entity.DockLocation, expanded bool) rune {
	arrows := map[entity.DockLocation][2]rune{
		entity.DockLeft:   {'▶', '◀'},
		entity.DockRight:  {'◀', '▶'},
		entity.DockTop:    {'▼', '▲'},
		entity.DockBottom: {'▲', '▼'},
	}
	pair, ok := arrows[edge]
	if !ok {
		return '■'
	}
	if expanded {
		return pair[1]
	}
	return pair[0]
}

func (c *Canvas) drawGhost(g *docking.Ghost) {
	x0, y0, x1, y1, ok := c.cellRect(g.Rect())
	if !ok {
		return
	}
	c.drawBox(x0, y0, x1, y1, ghostBox, paintGhost)
	label := "float"
	if a, ok := g.Anchor(); ok {
		label = string(a.Location)
	}
	c.text(x0+1, y0, x1-1, " "+label+" ", paintGhost)
}

// cellRect maps a pixel rectangle to inclusive cell bounds clipped to the canvas.
func (c *Canvas) cellRect(r entity.Rect) (x0, y0, x1, y1 int, ok bool) {
	if r.Empty() || c.cellW <= 0 || c.cellH <= 0 {
		return 0, 0, 0, 0, false
	}
	x0 = int(math.Floor(r.X / c.cellW))
	y0 = int(math.Floor(r.Y / c.cellH))
	x1 = int(math.Ceil(r.Right()/c.cellW)) - 1
	y1 = int(math.Ceil(r.Bottom()/c.cellH)) - 1
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.cols-1), min(y1, c.rows-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

func (c *Canvas) set(x, y int, r rune, p paint) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.runes[y][x] = r
	c.paints[y][x] = p
}

func (c *Canvas) fill(x0, y0, x1, y1 int, r rune, p paint) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, r, p)
		}
	}
}

func (c *Canvas) drawBox(x0, y0, x1, y1 int, b box, p paint) {
	for x := x0; x <= x1; x++ {
		c.set(x, y0, b.h, p)
		c.set(x, y1, b.h, p)
	}
	for y := y0; y <= y1; y++ {
		c.set(x0, y, b.v, p)
		c.set(x1, y, b.v, p)
	}
	if x1 > x0 && y1 > y0 {
		c.set(x0, y0, b.tl, p)
		c.set(x1, y0, b.tr, p)
		c.set(x0, y1, b.bl, p)
		c.set(x1, y1, b.br, p)
	}
}

// text writes s from column x0, truncated at column limit.
func (c *Canvas) text(x0, y, limit int, s string, p paint) {
	x := x0
	for _, r := range s {
		if x > limit {
			return
		}
		c.set(x, y, r, p)
		x++
	}
}

func (c *Canvas) style(p paint) (lipgloss.Style, bool) {
	switch p {
	case paintText:
		return c.theme.Subtle, true
	case paintFrame:
		return c.theme.Frame, true
	case paintFocused:
		return c.theme.FrameFocused, true
	case paintFloating:
		return c.theme.Floating, true
	case paintDrawer:
		return c.theme.Drawer, true
	case paintActiveTab:
		return c.theme.ActiveTab, true
	case paintInactiveTab:
		return c.theme.InactiveTab, true
	case paintGhost:
		return c.theme.Ghost, true
	}
	return lipgloss.Style{}, false
}

// Plain returns the canvas without styling.
func (c *Canvas) Plain() string {
	lines := make([]string, c.rows)
	for y, row := range c.runes {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

// String renders the canvas, styling each run of equally painted cells.
func (c *Canvas) String() string {
	lines := make([]string, c.rows)
	for y := range c.runes {
		var sb strings.Builder
		start := 0
		for x := 1; x <= c.cols; x++ {
			if x < c.cols && c.paints[y][x] == c.paints[y][start] {
				continue
			}
			run := string(c.runes[y][start:x])
			if style, ok := c.style(c.paints[y][start]); ok {
				run = style.Render(run)
			}
			sb.WriteString(run)
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
