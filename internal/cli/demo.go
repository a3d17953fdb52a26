package cli

import (
	"fmt"

	"github.com/bnema/dockyard/internal/docking"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// DemoPanelTypes are the panel types BuildDemoLayout uses.
var DemoPanelTypes = []string{"editor", "files", "console", "inspector"}

// BuildDemoLayout fills d with an IDE-like layout: a file tree on the left,
// two editor tabs, a console below them, a collapsed inspector drawer on
// the right and one floating inspector.
func BuildDemoLayout(d *docking.Docker) error {
	for _, name := range DemoPanelTypes {
		if _, ok := d.PanelTypeInfo(name); !ok {
			return fmt.Errorf("%w: %q is required by the demo layout", docking.ErrUnknownPanelType, name)
		}
	}
	d.Clear()

	editor := d.AddPanel("editor", entity.DockRight, nil, nil)
	steps := []func() bool{
		func() bool { return editor != nil },
		func() bool { return d.AddPanel("editor", entity.DockStacked, editor, nil) != nil },
		func() bool {
			return d.AddPanel("files", entity.DockLeft, editor, &entity.Placement{W: entity.Pct(20)}) != nil
		},
		func() bool {
			return d.AddPanel("console", entity.DockBottom, editor, &entity.Placement{H: entity.Pct(30)}) != nil
		},
		func() bool {
			dr := d.AddDrawer(entity.DockRight)
			if dr == nil || d.AddPanelToDrawer("inspector", dr, entity.DockStacked) == nil {
				return false
			}
			dr.Collapse()
			return true
		},
		func() bool {
			return d.AddPanel("inspector", entity.DockFloat, nil, &entity.Placement{
				X: entity.Pct(55), Y: entity.Pct(10), W: entity.Px(320), H: entity.Px(200),
			}) != nil
		},
	}
	for i, step := range steps {
		if !step() {
			return fmt.Errorf("build demo layout: step %d failed", i+1)
		}
	}

	editor.Focus()
	return d.CheckInvariants()
}
