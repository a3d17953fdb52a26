package docking

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Snapshot captures the current layout. Each panel is asked for its custom
// state through SAVE_LAYOUT; handlers write into the CustomState payload.
func (d *Docker) Snapshot() *entity.LayoutDocument {
	doc := &entity.LayoutDocument{
		Version:  entity.LayoutVersion,
		Root:     d.saveNode(d.root),
		Floating: []*entity.LayoutNode{},
	}
	for _, id := range append(append([]NodeID{}, d.floating...), d.modal...) {
		if n := d.saveNode(id); n != nil {
			doc.Floating = append(doc.Floating, n)
		}
	}
	return doc
}

// Save serializes the layout to JSON. Infinite extents are written as the
// "Infinity" token.
func (d *Docker) Save() ([]byte, error) {
	doc := d.Snapshot()
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode layout: %w", err)
	}
	d.log.Info().Int("panels", doc.CountPanels()).Int("floating", len(doc.Floating)).Msg("layout saved")
	return data, nil
}

func (d *Docker) saveNode(id NodeID) *entity.LayoutNode {
	switch n := d.Node(id).(type) {
	case *Splitter:
		return &entity.LayoutNode{Type: entity.NodeTypeSplitter, Splitter: &entity.SplitterLayout{
			Horizontal: n.orientation == entity.Horizontal,
			Position:   n.pos,
			Panes:      []*entity.LayoutNode{d.saveNode(n.panes[0]), d.saveNode(n.panes[1])},
		}}
	case *Drawer:
		return &entity.LayoutNode{Type: entity.NodeTypeDrawer, Drawer: &entity.DrawerLayout{
			Edge:     n.edge,
			Expanded: n.expanded,
			Root:     d.saveNode(n.root),
		}}
	case *Frame:
		fl := &entity.FrameLayout{
			Floating:   n.floating,
			Modal:      n.modal,
			CurrentTab: n.curTab,
			Position:   n.pos,
			Size:       n.size,
		}
		for _, p := range n.Panels() {
			fl.Panels = append(fl.Panels, d.saveNode(p.id))
		}
		return &entity.LayoutNode{Type: entity.NodeTypeFrame, Frame: fl}
	case *Panel:
		state := entity.CustomState{}
		n.emit(entity.EventSaveLayout, state)
		pl := &entity.PanelLayout{
			PanelType: n.typeName,
			MinSize:   entity.NewExtentVec(n.minSize),
			MaxSize:   entity.NewExtentVec(n.maxSize),
		}
		if n.title != n.typeName {
			pl.Title = n.title
		}
		if len(state) > 0 {
			pl.CustomState, _ = entity.EncodeInfinity(state).(entity.CustomState)
		}
		return &entity.LayoutNode{Type: entity.NodeTypePanel, Panel: pl}
	}
	return nil
}

// Restore replaces the layout with a serialized one. The payload is fully
// validated first; on error the current layout is left untouched.
func (d *Docker) Restore(data []byte) error {
	var doc entity.LayoutDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedLayout, err)
	}
	return d.RestoreDocument(&doc)
}

// ValidateDocument checks a document against the structure rules and the
// panel-type catalog without touching the layout.
func (d *Docker) ValidateDocument(doc *entity.LayoutDocument) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedLayout, err)
	}
	var err error
	placeholders := 0
	doc.Walk(func(path string, n *entity.LayoutNode) bool {
		if err != nil {
			return false
		}
		switch n.Type {
		case entity.NodeTypeDrawer:
			if countPlaceholders(n.Drawer.Root) > 0 {
				err = fmt.Errorf("%w: placeholder inside the drawer at %s", ErrMalformedLayout, path)
			}
			return err == nil
		case entity.NodeTypeFrame:
			if n.Frame.Floating && countPlaceholders(n) > 0 {
				err = fmt.Errorf("%w: placeholder inside the floating frame at %s", ErrMalformedLayout, path)
			}
			return err == nil
		case entity.NodeTypePanel:
		default:
			return true
		}
		typ := n.Panel.PanelType
		if typ == PlaceholderType {
			placeholders++
			if placeholders > 1 {
				err = fmt.Errorf("%w: second placeholder at %s", ErrMalformedLayout, path)
			}
			return false
		}
		if _, ok := d.types[typ]; !ok {
			err = fmt.Errorf("%w: %q at %s", ErrUnknownPanelType, typ, path)
		}
		return false
	})
	return err
}

func countPlaceholders(n *entity.LayoutNode) int {
	count := 0
	sub := entity.LayoutDocument{Root: n}
	sub.Walk(func(_ string, n *entity.LayoutNode) bool {
		if n.Type == entity.NodeTypePanel && n.Panel != nil && n.Panel.PanelType == PlaceholderType {
			count++
		}
		return true
	})
	return count
}

// RestoreDocument replaces the layout with doc after validating it.
// RESTORE_LAYOUT is emitted on every restored panel once the tree is built.
func (d *Docker) RestoreDocument(doc *entity.LayoutDocument) error {
	if err := d.ValidateDocument(doc); err != nil {
		d.log.Warn().Err(err).Msg("layout restore rejected")
		return err
	}

	d.clearTree()
	restored := make(map[NodeID]entity.CustomState)
	d.root = d.buildNode(doc.Root, 0, restored)
	d.ensurePlaceholder()
	for _, n := range doc.Floating {
		f := d.buildFrame(n.Frame, 0, restored)
		if f.modal {
			d.modal = append(d.modal, f.id)
		} else {
			d.floating = append(d.floating, f.id)
		}
	}

	d.update()
	for _, p := range d.Panels() {
		if state, ok := restored[p.id]; ok {
			p.emit(entity.EventRestoreLayout, state)
		}
	}
	d.refocus()
	if d.focus == 0 {
		d.Focus(d.mainFrame())
	}

	d.log.Info().Int("panels", doc.CountPanels()).Int("floating", len(doc.Floating)).Msg("layout restored")
	return nil
}

func (d *Docker) buildNode(n *entity.LayoutNode, parent NodeID, restored map[NodeID]entity.CustomState) NodeID {
	if n == nil {
		return 0
	}
	switch n.Type {
	case entity.NodeTypeSplitter:
		orientation := entity.Vertical
		if n.Splitter.Horizontal {
			orientation = entity.Horizontal
		}
		s := newSplitter(d, orientation)
		s.setParent(parent)
		s.pos = entity.Clamp(n.Splitter.Position, 0, 1)
		s.panes[0] = d.buildNode(n.Splitter.Panes[0], s.id, restored)
		s.panes[1] = d.buildNode(n.Splitter.Panes[1], s.id, restored)
		return s.id
	case entity.NodeTypeDrawer:
		dr := newDrawer(d, n.Drawer.Edge)
		dr.setParent(parent)
		dr.expanded = n.Drawer.Expanded
		dr.root = d.buildNode(n.Drawer.Root, dr.id, restored)
		return dr.id
	case entity.NodeTypeFrame:
		return d.buildFrame(n.Frame, parent, restored).id
	}
	return 0
}

func (d *Docker) buildFrame(fl *entity.FrameLayout, parent NodeID, restored map[NodeID]entity.CustomState) *Frame {
	f := newFrame(d, fl.Floating)
	f.setParent(parent)
	f.modal = fl.Modal
	f.pos = fl.Position
	f.size = fl.Size

	for _, pn := range fl.Panels {
		pl := pn.Panel
		var p *Panel
		if pl.PanelType == PlaceholderType {
			p = d.createPlaceholder()
			d.placeholder = p.id
		} else {
			p = d.createPanel(pl.PanelType)
			if pl.Title != "" {
				p.title = pl.Title
			}
			p.minSize = pl.MinSize.Vec2()
			p.maxSize = pl.MaxSize.Vec2()
		}
		f.addPanel(p, -1)

		state := entity.CustomState{}
		if decoded, ok := entity.DecodeInfinity(map[string]any(pl.CustomState)).(map[string]any); ok && decoded != nil {
			state = decoded
		}
		restored[p.id] = state
	}
	f.curTab = fl.CurrentTab
	return f
}
