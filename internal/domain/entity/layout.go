package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// LayoutVersion is the current schema version of serialized layouts.
// Increment when making breaking changes to the serialization format.
const LayoutVersion = 1

// InfinityToken is how an unbounded extent is written in a serialized layout.
const InfinityToken = "Infinity"

// NodeType discriminates serialized layout nodes.
type NodeType string

const (
	NodeTypeSplitter NodeType = "splitter"
	NodeTypeDrawer   NodeType = "drawer"
	NodeTypeFrame    NodeType = "frame"
	NodeTypePanel    NodeType = "panel"
)

// LayoutDocument is the root of a serialized layout.
type LayoutDocument struct {
	Version  int           `json:"version"`
	Root     *LayoutNode   `json:"root"`
	Floating []*LayoutNode `json:"floating"`
}

// LayoutNode is one node of a serialized layout. Exactly one of the
// type-specific blocks is set, matching Type.
type LayoutNode struct {
	Type     NodeType
	Splitter *SplitterLayout
	Drawer   *DrawerLayout
	Frame    *FrameLayout
	Panel    *PanelLayout
}

// SplitterLayout is the serialized form of a Splitter.
type SplitterLayout struct {
	Horizontal bool          `json:"horizontal"`
	Position   float64       `json:"position"`
	Panes      []*LayoutNode `json:"panes"`
}

// DrawerLayout is the serialized form of a Drawer.
type DrawerLayout struct {
	Edge     DockLocation `json:"edge"`
	Expanded bool         `json:"expanded"`
	Root     *LayoutNode  `json:"root,omitempty"`
}

// FrameLayout is the serialized form of a Frame.
type FrameLayout struct {
	Floating   bool          `json:"floating"`
	Modal      bool          `json:"modal,omitempty"`
	Panels     []*LayoutNode `json:"panels"`
	CurrentTab int           `json:"currentTab"`
	Position   Vec2          `json:"position"`
	Size       Vec2          `json:"size"`
}

// PanelLayout is the serialized form of a Panel.
type PanelLayout struct {
	PanelType   string      `json:"panelType"`
	Title       string      `json:"title,omitempty"`
	MinSize     ExtentVec   `json:"minSize"`
	MaxSize     ExtentVec   `json:"maxSize"`
	CustomState CustomState `json:"customState,omitempty"`
}

// MarshalJSON flattens the node into {"type": ..., type-specific fields...}.
func (n *LayoutNode) MarshalJSON() ([]byte, error) {
	var body any
	switch n.Type {
	case NodeTypeSplitter:
		body = n.Splitter
	case NodeTypeDrawer:
		body = n.Drawer
	case NodeTypeFrame:
		body = n.Frame
	case NodeTypePanel:
		body = n.Panel
	default:
		return nil, fmt.Errorf("marshal layout node: unknown type %q", n.Type)
	}
	if body == nil || isNilBlock(n) {
		return nil, fmt.Errorf("marshal layout node: missing %s block", n.Type)
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	typ, _ := json.Marshal(n.Type)
	fields["type"] = typ
	return json.Marshal(fields)
}

func isNilBlock(n *LayoutNode) bool {
	switch n.Type {
	case NodeTypeSplitter:
		return n.Splitter == nil
	case NodeTypeDrawer:
		return n.Drawer == nil
	case NodeTypeFrame:
		return n.Frame == nil
	case NodeTypePanel:
		return n.Panel == nil
	}
	return true
}

// UnmarshalJSON reads the discriminator first and decodes the matching block.
func (n *LayoutNode) UnmarshalJSON(data []byte) error {
	var head struct {
		Type NodeType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	n.Type = head.Type
	switch head.Type {
	case NodeTypeSplitter:
		n.Splitter = &SplitterLayout{}
		return json.Unmarshal(data, n.Splitter)
	case NodeTypeDrawer:
		n.Drawer = &DrawerLayout{}
		return json.Unmarshal(data, n.Drawer)
	case NodeTypeFrame:
		n.Frame = &FrameLayout{}
		return json.Unmarshal(data, n.Frame)
	case NodeTypePanel:
		n.Panel = &PanelLayout{}
		return json.Unmarshal(data, n.Panel)
	default:
		return fmt.Errorf("unknown layout node type %q", head.Type)
	}
}

// Extent is a size component that may be unbounded (+Inf).
// It serializes +Inf/-Inf as the "Infinity"/"-Infinity" tokens and reads them back as numbers.
type Extent float64

// Inf is an unbounded extent.
var Inf = Extent(math.Inf(1))

// MarshalJSON writes infinities as string tokens.
func (e Extent) MarshalJSON() ([]byte, error) {
	f := float64(e)
	switch {
	case math.IsInf(f, 1):
		return json.Marshal(InfinityToken)
	case math.IsInf(f, -1):
		return json.Marshal("-" + InfinityToken)
	case math.IsNaN(f):
		return nil, errors.New("extent is NaN")
	}
	return json.Marshal(f)
}

// UnmarshalJSON accepts numbers and the infinity tokens.
func (e *Extent) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*e = Extent(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("extent must be a number or %q", InfinityToken)
	}
	switch s {
	case InfinityToken:
		*e = Extent(math.Inf(1))
	case "-" + InfinityToken:
		*e = Extent(math.Inf(-1))
	default:
		return fmt.Errorf("extent must be a number or %q, got %q", InfinityToken, s)
	}
	return nil
}

// ExtentVec is a Vec2 whose components may be unbounded.
type ExtentVec struct {
	X Extent `json:"x"`
	Y Extent `json:"y"`
}

// NewExtentVec converts a Vec2.
func NewExtentVec(v Vec2) ExtentVec {
	return ExtentVec{X: Extent(v.X), Y: Extent(v.Y)}
}

// Vec2 converts back to plain floats.
func (v ExtentVec) Vec2() Vec2 {
	return Vec2{X: float64(v.X), Y: float64(v.Y)}
}

// EncodeInfinity returns a copy of v where float infinities are replaced by tokens.
// Maps and slices are walked recursively; other values are returned unchanged.
func EncodeInfinity(v any) any {
	switch t := v.(type) {
	case float64:
		if math.IsInf(t, 1) {
			return InfinityToken
		}
		if math.IsInf(t, -1) {
			return "-" + InfinityToken
		}
		return t
	case float32:
		return EncodeInfinity(float64(t))
	case CustomState:
		return CustomState(encodeMap(t))
	case map[string]any:
		return encodeMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = EncodeInfinity(item)
		}
		return out
	}
	return v
}

func encodeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, item := range m {
		out[k] = EncodeInfinity(item)
	}
	return out
}

// DecodeInfinity is the inverse of EncodeInfinity.
func DecodeInfinity(v any) any {
	switch t := v.(type) {
	case string:
		switch t {
		case InfinityToken:
			return math.Inf(1)
		case "-" + InfinityToken:
			return math.Inf(-1)
		}
		return t
	case CustomState:
		return CustomState(decodeMap(t))
	case map[string]any:
		return decodeMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = DecodeInfinity(item)
		}
		return out
	}
	return v
}

func decodeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, item := range m {
		out[k] = DecodeInfinity(item)
	}
	return out
}

// ErrInvalidLayout wraps every structural validation failure.
var ErrInvalidLayout = errors.New("invalid layout")

// Validate checks the document's structure without consulting any registry.
// Errors carry a JSON-path-like location of the offending node.
func (d *LayoutDocument) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidLayout)
	}
	if d.Version > LayoutVersion {
		return fmt.Errorf("%w: version %d is newer than supported version %d", ErrInvalidLayout, d.Version, LayoutVersion)
	}
	if d.Root != nil {
		if err := validateNode(d.Root, "$.root", false); err != nil {
			return err
		}
	}
	for i, f := range d.Floating {
		path := fmt.Sprintf("$.floating[%d]", i)
		if f == nil || f.Type != NodeTypeFrame || f.Frame == nil {
			return fmt.Errorf("%w: %s must be a frame", ErrInvalidLayout, path)
		}
		if !f.Frame.Floating {
			return fmt.Errorf("%w: %s must have floating=true", ErrInvalidLayout, path)
		}
		if err := validateNode(f, path, true); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(n *LayoutNode, path string, allowFloating bool) error {
	if n == nil {
		return fmt.Errorf("%w: %s is null", ErrInvalidLayout, path)
	}
	if isNilBlock(n) {
		return fmt.Errorf("%w: %s has unknown or empty type %q", ErrInvalidLayout, path, n.Type)
	}
	switch n.Type {
	case NodeTypeSplitter:
		s := n.Splitter
		if len(s.Panes) != 2 {
			return fmt.Errorf("%w: %s.panes must hold exactly 2 nodes, got %d", ErrInvalidLayout, path, len(s.Panes))
		}
		if math.IsNaN(s.Position) || s.Position < 0 || s.Position > 1 {
			return fmt.Errorf("%w: %s.position must be within [0,1], got %v", ErrInvalidLayout, path, s.Position)
		}
		for i, p := range s.Panes {
			if p != nil && p.Type == NodeTypePanel {
				return fmt.Errorf("%w: %s.panes[%d] cannot be a bare panel", ErrInvalidLayout, path, i)
			}
			if err := validateNode(p, fmt.Sprintf("%s.panes[%d]", path, i), false); err != nil {
				return err
			}
		}
	case NodeTypeDrawer:
		dr := n.Drawer
		if !dr.Edge.IsEdge() {
			return fmt.Errorf("%w: %s.edge must be top, left, right or bottom, got %q", ErrInvalidLayout, path, dr.Edge)
		}
		if dr.Root != nil {
			if dr.Root.Type == NodeTypePanel || dr.Root.Type == NodeTypeDrawer {
				return fmt.Errorf("%w: %s.root must be a frame or splitter", ErrInvalidLayout, path)
			}
			if err := validateNode(dr.Root, path+".root", false); err != nil {
				return err
			}
		}
	case NodeTypeFrame:
		f := n.Frame
		if f.Floating && !allowFloating {
			return fmt.Errorf("%w: %s is floating but lives in the docked tree", ErrInvalidLayout, path)
		}
		if f.Modal && !f.Floating {
			return fmt.Errorf("%w: %s is modal but not floating", ErrInvalidLayout, path)
		}
		if len(f.Panels) == 0 {
			return fmt.Errorf("%w: %s.panels must not be empty", ErrInvalidLayout, path)
		}
		if f.CurrentTab < 0 || f.CurrentTab >= len(f.Panels) {
			return fmt.Errorf("%w: %s.currentTab %d out of range [0,%d)", ErrInvalidLayout, path, f.CurrentTab, len(f.Panels))
		}
		for i, p := range f.Panels {
			pp := fmt.Sprintf("%s.panels[%d]", path, i)
			if p == nil || p.Type != NodeTypePanel || p.Panel == nil {
				return fmt.Errorf("%w: %s must be a panel", ErrInvalidLayout, pp)
			}
			if p.Panel.PanelType == "" {
				return fmt.Errorf("%w: %s.panelType is empty", ErrInvalidLayout, pp)
			}
		}
	case NodeTypePanel:
		return fmt.Errorf("%w: %s: a panel must live inside a frame", ErrInvalidLayout, path)
	}
	return nil
}

// Walk visits every node of the document depth-first (root tree, then floating frames).
func (d *LayoutDocument) Walk(fn func(path string, n *LayoutNode) bool) {
	if d.Root != nil {
		walkNode(d.Root, "$.root", fn)
	}
	for i, f := range d.Floating {
		walkNode(f, fmt.Sprintf("$.floating[%d]", i), fn)
	}
}

func walkNode(n *LayoutNode, path string, fn func(string, *LayoutNode) bool) {
	if n == nil || !fn(path, n) {
		return
	}
	switch n.Type {
	case NodeTypeSplitter:
		if n.Splitter == nil {
			return
		}
		for i, p := range n.Splitter.Panes {
			walkNode(p, fmt.Sprintf("%s.panes[%d]", path, i), fn)
		}
	case NodeTypeDrawer:
		if n.Drawer != nil && n.Drawer.Root != nil {
			walkNode(n.Drawer.Root, path+".root", fn)
		}
	case NodeTypeFrame:
		if n.Frame == nil {
			return
		}
		for i, p := range n.Frame.Panels {
			walkNode(p, fmt.Sprintf("%s.panels[%d]", path, i), fn)
		}
	}
}

// CountPanels returns the number of panels in the document.
func (d *LayoutDocument) CountPanels() int {
	count := 0
	d.Walk(func(_ string, n *LayoutNode) bool {
		if n.Type == NodeTypePanel {
			count++
		}
		return true
	})
	return count
}
