package docking

import "slices"

// PanelTypeOptions describes a registered panel type.
type PanelTypeOptions struct {
	// OnCreate is called for every new panel of the type. Required.
	OnCreate func(p *Panel, options map[string]any)
	Title    string
	Icon     string
	FAIcon   string
	// IsPrivate excludes the type from creation menus.
	IsPrivate bool
	// Limit caps live instances offered by OfferablePanelTypes. Zero means no cap.
	// AddPanel does not enforce it.
	Limit int
	// Options is forwarded to OnCreate.
	Options map[string]any
}

// RegisterPanelType adds a panel type to the catalog. It returns false when
// the name is empty, reserved, already registered or OnCreate is nil.
func (d *Docker) RegisterPanelType(name string, opts PanelTypeOptions) bool {
	log := d.log.With().Str("panel_type", name).Logger()
	switch {
	case name == "" || name == PlaceholderType:
		log.Warn().Msg("rejected panel type with reserved name")
		return false
	case opts.OnCreate == nil:
		log.Warn().Msg("rejected panel type without OnCreate")
		return false
	}
	if _, exists := d.types[name]; exists {
		log.Warn().Msg("panel type already registered")
		return false
	}
	d.types[name] = opts
	d.typeOrder = append(d.typeOrder, name)
	log.Debug().Bool("private", opts.IsPrivate).Int("limit", opts.Limit).Msg("panel type registered")
	return true
}

// PanelTypes lists registered type names in registration order.
func (d *Docker) PanelTypes(includePrivate bool) []string {
	out := make([]string, 0, len(d.typeOrder))
	for _, name := range d.typeOrder {
		if !includePrivate && d.types[name].IsPrivate {
			continue
		}
		out = append(out, name)
	}
	return out
}

// PanelTypeInfo returns the options a type was registered with.
func (d *Docker) PanelTypeInfo(name string) (PanelTypeOptions, bool) {
	opts, ok := d.types[name]
	return opts, ok
}

// OfferablePanelTypes lists the public types a creation menu may offer:
// those below their instance limit.
func (d *Docker) OfferablePanelTypes() []string {
	out := make([]string, 0, len(d.typeOrder))
	for _, name := range d.PanelTypes(false) {
		if limit := d.types[name].Limit; limit > 0 && len(d.FindPanels(name)) >= limit {
			continue
		}
		out = append(out, name)
	}
	return out
}

// FindPanels returns live panels of typeName in creation order. An empty
// name matches every panel except the placeholder.
func (d *Docker) FindPanels(typeName string) []*Panel {
	var out []*Panel
	for _, p := range d.Panels() {
		if p.placeholder {
			continue
		}
		if typeName == "" || p.typeName == typeName {
			out = append(out, p)
		}
	}
	return out
}

// Panels returns every live panel, the placeholder included, in creation order.
func (d *Docker) Panels() []*Panel {
	ids := make([]NodeID, 0, len(d.nodes))
	for id, n := range d.nodes {
		if _, ok := n.(*Panel); ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	out := make([]*Panel, len(ids))
	for i, id := range ids {
		out[i] = d.nodes[id].(*Panel)
	}
	return out
}

// createPanel instantiates a registered type. Panels in transition have no parent.
func (d *Docker) createPanel(typeName string) *Panel {
	opts, ok := d.types[typeName]
	if !ok {
		return nil
	}
	p := newPanel(d, typeName, opts.Title)
	if p.title == "" {
		p.title = typeName
	}
	p.options = opts.Options
	opts.OnCreate(p, opts.Options)
	return p
}

// createPlaceholder builds the non-closeable, title-less placeholder panel.
func (d *Docker) createPlaceholder() *Panel {
	p := newPanel(d, PlaceholderType, "")
	p.placeholder = true
	p.closeable = false
	p.moveable = false
	p.titleVisible = false
	return p
}
