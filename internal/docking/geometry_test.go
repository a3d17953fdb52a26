package docking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestSplitter_PanesPartitionRect(t *testing.T) {
	d, _ := newTestDocker(t)
	a := d.AddPanel(testType, entity.DockRight, nil, nil)
	b := d.AddPanel(testType, entity.DockRight, a, nil)
	d.AddPanel(testType, entity.DockBottom, b, &entity.Placement{H: entity.Px(137)})
	d.AddPanel(testType, entity.DockLeft, a, &entity.Placement{W: entity.Pct(13)})

	for _, fraction := range []float64{0, 0.1, 1.0 / 3, 0.5, 0.9, 1} {
		for _, s := range d.Splitters() {
			s.SetPos(fraction)
			first, second := s.PaneRects()
			r := s.Rect()
			assert.False(t, first.Intersects(second))
			u := first.Union(second)
			assert.InDelta(t, r.X, u.X, 1e-9)
			assert.InDelta(t, r.Y, u.Y, 1e-9)
			assert.InDelta(t, r.W, u.W, 1e-9)
			assert.InDelta(t, r.H, u.H, 1e-9)
			assert.GreaterOrEqual(t, s.Pos(), 0.0)
			assert.LessOrEqual(t, s.Pos(), 1.0)
		}
		requireHealthy(t, d)
	}
}

func TestSplitter_PositionSurvivesContainerResize(t *testing.T) {
	d, c := newTestDocker(t)
	left, right := sideBySide(t, d)
	s := d.Root().(*Splitter)
	s.SetPos(0.5)
	require.Equal(t, 400.0, left.Frame().Rect().W)

	c.SetSize(1600, 600)
	d.Update()
	requireHealthy(t, d)

	assert.Equal(t, 0.5, s.Pos())
	assert.Equal(t, 800.0, left.Frame().Rect().W)
	assert.Equal(t, 800.0, right.Frame().Rect().X)
	assert.Equal(t, entity.Vec2{X: 1600, Y: 600}, d.Size())
}

func TestSplitter_ClampsToPanelLimits(t *testing.T) {
	d, _ := newTestDocker(t)
	left, right := sideBySide(t, d)
	s := d.Root().(*Splitter)

	left.SetMinSize(entity.Vec2{X: 200, Y: 0})
	s.SetPos(0.1)
	assert.InDelta(t, 0.25, s.Pos(), 1e-9)

	right.SetMaxSize(entity.Vec2{X: 300, Y: math.Inf(1)})
	s.SetPos(0.5)
	assert.InDelta(t, 0.625, s.Pos(), 1e-9)

	s.SetPos(0.95)
	assert.InDelta(t, 0.9375, s.Pos(), 1e-9, "pane 1 keeps its default minimum")
	requireHealthy(t, d)
}

func TestSplitter_ConflictingLimitsFavourFirstPane(t *testing.T) {
	d, _ := newTestDocker(t)
	left, right := sideBySide(t, d)
	left.SetMinSize(entity.Vec2{X: 600, Y: 0})
	right.SetMinSize(entity.Vec2{X: 600, Y: 0})

	s := d.Root().(*Splitter)
	s.SetPos(0.5)
	assert.InDelta(t, 0.75, s.Pos(), 1e-9)
	requireHealthy(t, d)
}

func TestSplitter_SetPosIgnoresNaN(t *testing.T) {
	d, _ := newTestDocker(t)
	sideBySide(t, d)
	s := d.Root().(*Splitter)
	s.SetPos(0.3)
	s.SetPos(math.NaN())
	assert.InDelta(t, 0.3, s.Pos(), 1e-9)
}

func TestSplitter_SetPaneAndScrollable(t *testing.T) {
	d, _ := newTestDocker(t)
	left, right := sideBySide(t, d)
	s := d.Root().(*Splitter)

	assert.Nil(t, s.Pane(2))
	s.SetScrollable(1, true)
	assert.True(t, s.Scrollable(1))
	assert.False(t, s.Scrollable(0))
	assert.False(t, s.Scrollable(5))

	lf, rf := left.Frame(), right.Frame()
	s.SetPane(0, rf)
	s.SetPane(1, lf)
	requireHealthy(t, d)
	assert.Equal(t, 0.0, right.Frame().Rect().X)
	assert.Equal(t, 400.0, left.Frame().Rect().X)
}

func TestFrame_Geometry(t *testing.T) {
	d, _ := newTestDocker(t)
	a := d.AddPanel(testType, entity.DockRight, nil, nil)
	b := d.AddPanel(testType, entity.DockStacked, a, nil)
	f := a.Frame()

	assert.Equal(t, entity.Rect{W: 800, H: 24}, f.TitleRect())
	assert.Equal(t, entity.Rect{Y: 24, W: 800, H: 576}, f.ContentRect())
	assert.Equal(t, []entity.Rect{{W: 400, H: 24}, {X: 400, W: 400, H: 24}}, f.TabRects())
	assert.Equal(t, 0, f.TabAt(entity.Vec2{X: 10, Y: 10}))
	assert.Equal(t, 1, f.TabAt(entity.Vec2{X: 500, Y: 10}))
	assert.Equal(t, -1, f.TabAt(entity.Vec2{X: 500, Y: 100}))

	a.SetTitleVisible(false)
	b.SetTitleVisible(false)
	d.Update()
	assert.True(t, f.TitleRect().Empty())
	assert.Equal(t, entity.Rect{W: 800, H: 600}, b.Rect())
	assert.Equal(t, 0.0, f.TitleHeight())
}

func TestFrame_Tabs(t *testing.T) {
	d, _ := newTestDocker(t)
	a := d.AddPanel(testType, entity.DockRight, nil, nil)
	b := d.AddPanel(testType, entity.DockStacked, a, nil)
	c := d.AddPanel(testType, entity.DockStacked, a, nil)
	f := a.Frame()
	require.Equal(t, 2, f.CurrentTab())

	f.SetCurrentTab(0)
	assert.Same(t, a, f.Panel(-1))
	assert.True(t, a.IsVisible())
	assert.False(t, c.IsVisible())

	require.True(t, f.MoveTab(0, 2))
	assert.Equal(t, []*Panel{b, c, a}, f.Panels())
	assert.Same(t, a, f.Panel(-1), "the current panel stays current")
	assert.False(t, f.MoveTab(1, 1))
	assert.False(t, f.MoveTab(9, 0))

	f.SetCurrentTab(99)
	assert.Equal(t, 2, f.CurrentTab())

	require.True(t, d.RemovePanel(a))
	assert.Equal(t, 1, f.CurrentTab())
	assert.Same(t, c, f.Panel(-1))
	requireHealthy(t, d)
}

func TestGestureBracketsGeometryEvents(t *testing.T) {
	d, _ := newTestDocker(t)
	left, right := sideBySide(t, d)
	rec := record(d, entity.EventResizeStarted, entity.EventResized, entity.EventResizeEnded,
		entity.EventMoveStarted, entity.EventMoved, entity.EventMoveEnded)

	bar := d.Root().(*Splitter).BarRect().Center()
	require.True(t, d.PointerDown(PointerEvent{X: bar.X, Y: bar.Y}))
	require.True(t, d.PointerMove(PointerEvent{X: 300, Y: bar.Y}))
	require.True(t, d.PointerMove(PointerEvent{X: 200, Y: bar.Y}))
	require.True(t, d.PointerUp(PointerEvent{X: 200, Y: bar.Y}))

	assert.Equal(t, []entity.EventType{
		entity.EventResizeStarted, entity.EventResized,
		entity.EventResized,
		entity.EventResizeEnded,
	}, rec.types(left.ID()))
	assert.Equal(t, 1, rec.count(entity.EventMoveStarted, right.ID()))
	assert.Equal(t, 2, rec.count(entity.EventMoved, right.ID()))
	assert.Equal(t, 1, rec.count(entity.EventMoveEnded, right.ID()))
	assert.Equal(t, 1, rec.count(entity.EventResizeEnded, right.ID()))

	rec.reset()
	d.Root().(*Splitter).SetPos(0.5)
	assert.Equal(t, []entity.EventType{entity.EventResized}, rec.types(left.ID()),
		"programmatic changes outside a gesture emit no STARTED/ENDED")
}
