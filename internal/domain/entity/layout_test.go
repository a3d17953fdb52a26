package entity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panelNode(typ string) *LayoutNode {
	return &LayoutNode{Type: NodeTypePanel, Panel: &PanelLayout{
		PanelType: typ,
		MinSize:   ExtentVec{X: 50, Y: 50},
		MaxSize:   ExtentVec{X: Inf, Y: Inf},
	}}
}

func frameNode(panels ...*LayoutNode) *LayoutNode {
	return &LayoutNode{Type: NodeTypeFrame, Frame: &FrameLayout{Panels: panels}}
}

func sampleDocument() *LayoutDocument {
	floating := frameNode(panelNode("console"))
	floating.Frame.Floating = true
	floating.Frame.Position = Vec2{X: 40, Y: 60}
	floating.Frame.Size = Vec2{X: 300, Y: 200}

	return &LayoutDocument{
		Version: LayoutVersion,
		Root: &LayoutNode{Type: NodeTypeSplitter, Splitter: &SplitterLayout{
			Horizontal: true,
			Position:   0.3,
			Panes: []*LayoutNode{
				frameNode(panelNode("tree")),
				frameNode(panelNode("editor"), panelNode("editor")),
			},
		}},
		Floating: []*LayoutNode{floating},
	}
}

func TestLayoutDocument_JSONRoundTrip(t *testing.T) {
	doc := sampleDocument()

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"splitter"`)
	assert.Contains(t, string(data), `"x":"Infinity"`)

	var back LayoutDocument
	require.NoError(t, json.Unmarshal(data, &back))
	require.NoError(t, back.Validate())

	require.Equal(t, NodeTypeSplitter, back.Root.Type)
	assert.InDelta(t, 0.3, back.Root.Splitter.Position, 1e-12)
	assert.True(t, back.Root.Splitter.Horizontal)
	editor := back.Root.Splitter.Panes[1].Frame
	require.Len(t, editor.Panels, 2)

	maxX := float64(editor.Panels[0].Panel.MaxSize.X)
	assert.True(t, math.IsInf(maxX, 1), "max size must come back as +Inf, got %v", maxX)
	assert.Equal(t, 4, back.CountPanels())
	assert.Equal(t, Vec2{X: 40, Y: 60}, back.Floating[0].Frame.Position)
}

func TestExtent_JSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "number", in: `12.5`, want: 12.5},
		{name: "positive infinity", in: `"Infinity"`, want: math.Inf(1)},
		{name: "negative infinity", in: `"-Infinity"`, want: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Extent
			require.NoError(t, json.Unmarshal([]byte(tt.in), &e))
			assert.Equal(t, tt.want, float64(e))

			out, err := json.Marshal(e)
			require.NoError(t, err)
			assert.JSONEq(t, tt.in, string(out))
		})
	}

	var e Extent
	assert.Error(t, json.Unmarshal([]byte(`"huge"`), &e))
	_, err := json.Marshal(Extent(math.NaN()))
	assert.Error(t, err)
}

func TestEncodeDecodeInfinity(t *testing.T) {
	state := CustomState{
		"limit":  math.Inf(1),
		"floor":  math.Inf(-1),
		"plain":  3.0,
		"nested": map[string]any{"max": math.Inf(1)},
		"list":   []any{1.0, math.Inf(1)},
	}

	encoded := EncodeInfinity(state)
	data, err := json.Marshal(encoded)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	decoded, ok := DecodeInfinity(raw).(map[string]any)
	require.True(t, ok)

	assert.True(t, math.IsInf(decoded["limit"].(float64), 1))
	assert.True(t, math.IsInf(decoded["floor"].(float64), -1))
	assert.Equal(t, 3.0, decoded["plain"])
	assert.True(t, math.IsInf(decoded["nested"].(map[string]any)["max"].(float64), 1))
	assert.True(t, math.IsInf(decoded["list"].([]any)[1].(float64), 1))
}

func TestLayoutDocument_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *LayoutDocument)
		wantErr string
	}{
		{name: "valid", mutate: func(*LayoutDocument) {}},
		{
			name:    "newer version",
			mutate:  func(d *LayoutDocument) { d.Version = LayoutVersion + 1 },
			wantErr: "newer than supported",
		},
		{
			name:    "splitter with one pane",
			mutate:  func(d *LayoutDocument) { d.Root.Splitter.Panes = d.Root.Splitter.Panes[:1] },
			wantErr: "$.root.panes must hold exactly 2",
		},
		{
			name:    "position out of range",
			mutate:  func(d *LayoutDocument) { d.Root.Splitter.Position = 1.5 },
			wantErr: "$.root.position",
		},
		{
			name:    "empty frame",
			mutate:  func(d *LayoutDocument) { d.Root.Splitter.Panes[0].Frame.Panels = nil },
			wantErr: "$.root.panes[0].panels must not be empty",
		},
		{
			name:    "current tab out of range",
			mutate:  func(d *LayoutDocument) { d.Root.Splitter.Panes[1].Frame.CurrentTab = 2 },
			wantErr: "currentTab 2 out of range",
		},
		{
			name:    "docked frame flagged floating",
			mutate:  func(d *LayoutDocument) { d.Root.Splitter.Panes[0].Frame.Floating = true },
			wantErr: "floating but lives in the docked tree",
		},
		{
			name:    "floating list holds docked frame",
			mutate:  func(d *LayoutDocument) { d.Floating[0].Frame.Floating = false },
			wantErr: "$.floating[0] must have floating=true",
		},
		{
			name:    "docked frame flagged modal",
			mutate:  func(d *LayoutDocument) { d.Root.Splitter.Panes[1].Frame.Modal = true },
			wantErr: "$.root.panes[1] is modal but not floating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDocument()
			tt.mutate(doc)
			err := doc.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLayout)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLayoutNode_UnmarshalUnknownType(t *testing.T) {
	var n LayoutNode
	err := json.Unmarshal([]byte(`{"type":"window"}`), &n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window")
}
