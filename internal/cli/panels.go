package cli

import (
	"strings"
	"unicode"

	"github.com/bnema/dockyard/internal/docking"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// RegisterPanelTypes registers headless panel types. Each panel gets a
// title-cased title and a "pin" toggle button. Names that are already
// registered are skipped. It returns the names that were added.
func RegisterPanelTypes(d *docking.Docker, types []string) []string {
	var added []string
	for _, name := range types {
		if _, known := d.PanelTypeInfo(name); known {
			continue
		}
		ok := d.RegisterPanelType(name, docking.PanelTypeOptions{
			Title:    TitleCase(name),
			OnCreate: onCreatePanel,
		})
		if ok {
			added = append(added, name)
		}
	}
	return added
}

func onCreatePanel(p *docking.Panel, _ map[string]any) {
	p.AddButton("pin", "", "Pin", true)
}

// RegisterDocumentTypes registers every panel type a document references
// that d does not know yet, so a layout can be checked for structure alone.
func RegisterDocumentTypes(d *docking.Docker, doc *entity.LayoutDocument) []string {
	var missing []string
	seen := make(map[string]bool)
	doc.Walk(func(_ string, n *entity.LayoutNode) bool {
		if n.Type != entity.NodeTypePanel {
			return true
		}
		if n.Panel == nil {
			return false
		}
		name := n.Panel.PanelType
		if name == docking.PlaceholderType || seen[name] {
			return false
		}
		seen[name] = true
		if _, ok := d.PanelTypeInfo(name); !ok {
			missing = append(missing, name)
		}
		return false
	})
	return RegisterPanelTypes(d, missing)
}

// TitleCase turns a panel type name like "file-browser" into "File Browser".
func TitleCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
