package docking

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/container"
)

// buildSample creates a layout with a split, a stacked frame, a drawer and
// a floating frame.
func buildSample(t *testing.T, d *Docker) {
	t.Helper()
	a := d.AddPanel(testType, entity.DockRight, nil, nil)
	b := d.AddPanel(testType, entity.DockRight, a, nil)
	d.AddPanel(testType, entity.DockStacked, a, nil)
	a.Frame().SetCurrentTab(0)
	a.SetTitle("Notes")
	b.SetMinSize(entity.Vec2{X: 120, Y: 80})
	d.Root().(*Splitter).SetPos(0.3)

	dr := d.AddDrawer(entity.DockBottom)
	d.AddPanelToDrawer(testType, dr, entity.DockStacked)
	dr.Collapse()

	d.AddPanel(testType, entity.DockFloat, nil, &entity.Placement{
		X: entity.Px(10), Y: entity.Px(20), W: entity.Px(300), H: entity.Px(200),
	})
	requireHealthy(t, d)
}

func TestSaveRestore_RoundTrip(t *testing.T) {
	src, _ := newTestDocker(t)
	buildSample(t, src)

	data, err := src.Save()
	require.NoError(t, err)

	dst, c := newTestDocker(t)
	require.NoError(t, dst.Restore(data))
	requireHealthy(t, dst)

	again, err := dst.Save()
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))

	assert.Len(t, dst.FindPanels(""), 5)
	assert.Len(t, dst.FloatingFrames(), 1)
	assert.Equal(t, entity.Vec2{X: 10, Y: 20}, dst.FloatingFrames()[0].Pos())
	assert.Equal(t, entity.Vec2{X: 300, Y: 200}, dst.FloatingFrames()[0].Size())
	assert.Len(t, c.Mounted(), 5)

	notes := dst.FindPanels(testType)[0]
	assert.Equal(t, "Notes", notes.Title())
	assert.Equal(t, 0, notes.Frame().CurrentTab())
	require.Len(t, dst.Drawers(), 1)
	assert.False(t, dst.Drawers()[0].IsExpanded())
}

func TestSaveRestore_Infinity(t *testing.T) {
	src, _ := newTestDocker(t)
	p := src.AddPanel(testType, entity.DockRight, nil, nil)
	p.SetMaxSize(entity.Vec2{X: math.Inf(1), Y: 400})
	p.On(entity.EventSaveLayout, func(ev entity.Event) {
		state := ev.Data.(entity.CustomState)
		state["limit"] = math.Inf(1)
		state["zoom"] = 1.5
	})

	data, err := src.Save()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"Infinity"`))

	dst, _ := newTestDocker(t)
	var restored entity.CustomState
	dst.On(entity.EventRestoreLayout, func(ev entity.Event) {
		restored = ev.Data.(entity.CustomState)
	})
	require.NoError(t, dst.Restore(data))

	q := dst.FindPanels(testType)[0]
	assert.True(t, math.IsInf(q.MaxSize().X, 1))
	assert.Equal(t, 400.0, q.MaxSize().Y)
	require.NotNil(t, restored)
	limit, ok := restored["limit"].(float64)
	require.True(t, ok, "infinity comes back as a number, got %T", restored["limit"])
	assert.True(t, math.IsInf(limit, 1))
	assert.Equal(t, 1.5, restored["zoom"])
}

func TestSaveRestore_Placeholder(t *testing.T) {
	src, _ := newTestDocker(t)
	p := src.AddPanel(testType, entity.DockRight, nil, nil)
	require.True(t, src.RemovePanel(p))
	data, err := src.Save()
	require.NoError(t, err)

	dst, _ := newTestDocker(t)
	require.NoError(t, dst.Restore(data))
	requireHealthy(t, dst)
	require.NotNil(t, dst.Placeholder())
	assert.False(t, dst.Placeholder().Closeable())
}

func TestSaveRestore_EmptyLayout(t *testing.T) {
	src, _ := newTestDocker(t)
	data, err := src.Save()
	require.NoError(t, err)

	dst, _ := newTestDocker(t)
	dst.AddPanel(testType, entity.DockRight, nil, nil)
	require.NoError(t, dst.Restore(data))
	requireHealthy(t, dst)
	assert.Empty(t, dst.FindPanels(""))
	require.NotNil(t, dst.Placeholder())
	assert.Equal(t, Node(dst.Placeholder().Frame()), dst.Root())
}

func TestRestore_RejectsWithoutMutating(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"not json", `{`, ErrMalformedLayout},
		{"unknown node type", `{"version":1,"root":{"type":"window"},"floating":[]}`, ErrMalformedLayout},
		{"newer version", `{"version":99,"root":null,"floating":[]}`, ErrMalformedLayout},
		{"empty frame", `{"version":1,"root":{"type":"frame","floating":false,"panels":[],"currentTab":0,"position":{"x":0,"y":0},"size":{"x":0,"y":0}},"floating":[]}`, ErrMalformedLayout},
		{"unknown panel type", `{"version":1,"root":{"type":"frame","floating":false,"panels":[{"type":"panel","panelType":"ghost","minSize":{"x":0,"y":0},"maxSize":{"x":"Infinity","y":"Infinity"}}],"currentTab":0,"position":{"x":0,"y":0},"size":{"x":0,"y":0}},"floating":[]}`, ErrUnknownPanelType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDocker(t)
			keep := d.AddPanel(testType, entity.DockRight, nil, nil)

			err := d.Restore([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Same(t, keep, d.Panel(keep.ID()), "the current layout is left untouched")
			requireHealthy(t, d)
		})
	}
}

func TestRestore_RejectsPlaceholderAndModalMisuse(t *testing.T) {
	split := func(a, b *entity.LayoutNode) *entity.LayoutNode {
		return &entity.LayoutNode{Type: entity.NodeTypeSplitter, Splitter: &entity.SplitterLayout{
			Horizontal: true,
			Position:   0.5,
			Panes:      []*entity.LayoutNode{a, b},
		}}
	}
	floating := func(n *entity.LayoutNode) *entity.LayoutNode {
		n.Frame.Floating = true
		n.Frame.Size = entity.Vec2{X: 200, Y: 100}
		return n
	}
	modal := frameNode(testType)
	modal.Frame.Modal = true

	tests := []struct {
		name    string
		doc     *entity.LayoutDocument
		wantErr string
	}{
		{
			name:    "two placeholders",
			doc:     &entity.LayoutDocument{Root: split(frameNode(PlaceholderType), frameNode(PlaceholderType))},
			wantErr: "second placeholder",
		},
		{
			name:    "docked modal frame",
			doc:     &entity.LayoutDocument{Root: split(frameNode(testType), modal)},
			wantErr: "modal but not floating",
		},
		{
			name: "placeholder in a floating frame",
			doc: &entity.LayoutDocument{
				Root:     frameNode(testType),
				Floating: []*entity.LayoutNode{floating(frameNode(PlaceholderType))},
			},
			wantErr: "placeholder inside the floating frame",
		},
		{
			name: "placeholder in a drawer",
			doc: &entity.LayoutDocument{Root: split(frameNode(testType), &entity.LayoutNode{
				Type:   entity.NodeTypeDrawer,
				Drawer: &entity.DrawerLayout{Edge: entity.DockRight, Root: frameNode(PlaceholderType)},
			})},
			wantErr: "placeholder inside the drawer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doc.Version = entity.LayoutVersion
			payload, err := json.Marshal(tt.doc)
			require.NoError(t, err)

			d, _ := newTestDocker(t)
			buildSample(t, d)
			before, err := d.Save()
			require.NoError(t, err)

			err = d.Restore(payload)
			require.ErrorIs(t, err, ErrMalformedLayout)
			assert.Contains(t, err.Error(), tt.wantErr)

			after, err := d.Save()
			require.NoError(t, err)
			assert.JSONEq(t, string(before), string(after), "the current layout is left untouched")
			requireHealthy(t, d)
		})
	}
}

func TestValidateDocument_ReportsPath(t *testing.T) {
	d, _ := newTestDocker(t)
	doc := &entity.LayoutDocument{
		Version: entity.LayoutVersion,
		Root: &entity.LayoutNode{Type: entity.NodeTypeSplitter, Splitter: &entity.SplitterLayout{
			Horizontal: true,
			Position:   0.5,
			Panes: []*entity.LayoutNode{
				frameNode(testType),
				frameNode("ghost"),
			},
		}},
	}
	err := d.ValidateDocument(doc)
	require.ErrorIs(t, err, ErrUnknownPanelType)
	assert.Contains(t, err.Error(), "$.root.panes[1].panels[0]")
}

func TestRestore_EmitsRestoreLayoutAndFocuses(t *testing.T) {
	src, _ := newTestDocker(t)
	buildSample(t, src)
	data, err := src.Save()
	require.NoError(t, err)

	var doc entity.LayoutDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	c := container.NewFixed(800, 600)
	dst := New(context.Background(), c, nil, Options{})
	inits := 0
	require.True(t, dst.RegisterPanelType(testType, PanelTypeOptions{
		OnCreate: func(p *Panel, _ map[string]any) {
			p.On(entity.EventInit, func(entity.Event) { inits++ })
		},
	}))
	rec := record(dst, entity.EventRestoreLayout)

	require.NoError(t, dst.RestoreDocument(&doc))
	assert.Len(t, rec.events, doc.CountPanels())
	assert.Equal(t, 5, inits)
	require.NotNil(t, dst.Focused())
	assert.True(t, dst.Focused().Floating(), "the topmost floating frame takes focus")
}

func frameNode(panelType string) *entity.LayoutNode {
	return &entity.LayoutNode{Type: entity.NodeTypeFrame, Frame: &entity.FrameLayout{
		Panels: []*entity.LayoutNode{{Type: entity.NodeTypePanel, Panel: &entity.PanelLayout{
			PanelType: panelType,
			MaxSize:   entity.ExtentVec{X: entity.Inf, Y: entity.Inf},
		}}},
	}}
}
