package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/docking"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutRenderer renders docking trees and layout checks.
type LayoutRenderer struct {
	theme *Theme
	// Geometry adds each node's rectangle to the tree.
	Geometry bool
}

// NewLayoutRenderer creates a new layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderTree renders the docked tree followed by the floating and modal frames.
func (r *LayoutRenderer) RenderTree(d *docking.Docker) string {
	var sb strings.Builder

	size := d.Size()
	sb.WriteString(r.theme.Title.Render(fmt.Sprintf("Layout %gx%g", size.X, size.Y)))
	sb.WriteString("\n")

	if root := d.Root(); root != nil {
		r.renderNode(&sb, d, root, "", true)
	}

	floating := append(d.FloatingFrames(), d.ModalFrames()...)
	if len(floating) > 0 {
		sb.WriteString(r.theme.Subtitle.Render("Floating"))
		sb.WriteString("\n")
		for i, f := range floating {
			r.renderNode(&sb, d, f, "", i == len(floating)-1)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func (r *LayoutRenderer) renderNode(sb *strings.Builder, d *docking.Docker, n docking.Node, prefix string, last bool) {
	branch, childPrefix := "├─ ", prefix+"│  "
	if last {
		branch, childPrefix = "└─ ", prefix+"   "
	}

	sb.WriteString(r.theme.Subtle.Render(prefix + branch))
	sb.WriteString(r.label(d, n))
	if r.Geometry {
		sb.WriteString(" ")
		sb.WriteString(r.theme.Subtle.Render(FormatRect(n.Rect())))
	}
	sb.WriteString("\n")

	children := childrenOf(n)
	for i, child := range children {
		r.renderNode(sb, d, child, childPrefix, i == len(children)-1)
	}
}

func (r *LayoutRenderer) label(d *docking.Docker, n docking.Node) string {
	switch t := n.(type) {
	case *docking.Splitter:
		icon := IconSplitH
		if t.Orientation() == entity.Vertical {
			icon = IconSplitV
		}
		return r.theme.Splitter.Render(fmt.Sprintf("%s %s %.0f%%", icon, t.Orientation(), t.Pos()*100))
	case *docking.Drawer:
		state := "collapsed"
		if t.IsExpanded() {
			state = "expanded"
		}
		return r.theme.Drawer.Render(fmt.Sprintf("%s drawer %s %s", IconDrawer, t.Edge(), state))
	case *docking.Frame:
		style, icon, kind := r.theme.Frame, IconFrame, "frame"
		switch {
		case t.Modal():
			style, icon, kind = r.theme.Floating, IconFloating, "modal"
		case t.Floating():
			style, icon, kind = r.theme.Floating, IconFloating, "floating"
		}
		if d.Focused() == t {
			style = r.theme.FrameFocused
		}
		return style.Render(fmt.Sprintf("%s %s (%d)", icon, kind, t.Len()))
	case *docking.Panel:
		text := fmt.Sprintf("%s %s", IconPanel, t.Title())
		if t.Title() != t.TypeName() {
			text += r.theme.Subtle.Render(" [" + t.TypeName() + "]")
		}
		if t.IsPlaceholder() {
			return r.theme.Subtle.Render(IconPanel + " placeholder")
		}
		if t.IsVisible() {
			return r.theme.Highlight.Render(IconCursor+" ") + r.theme.Normal.Render(text)
		}
		return r.theme.Normal.Render(text)
	}
	return ""
}

func childrenOf(n docking.Node) []docking.Node {
	switch t := n.(type) {
	case *docking.Splitter:
		var out []docking.Node
		for i := 0; i < 2; i++ {
			if c := t.Pane(i); c != nil {
				out = append(out, c)
			}
		}
		return out
	case *docking.Drawer:
		if c := t.Root(); c != nil {
			return []docking.Node{c}
		}
	case *docking.Frame:
		panels := t.Panels()
		out := make([]docking.Node, 0, len(panels))
		for _, p := range panels {
			out = append(out, p)
		}
		return out
	}
	return nil
}

// FormatRect formats a rectangle as "x,y wxh".
func FormatRect(rect entity.Rect) string {
	return fmt.Sprintf("%.0f,%.0f %.0fx%.0f", rect.X, rect.Y, rect.W, rect.H)
}

// RenderCheck renders one layout file check.
func (r *LayoutRenderer) RenderCheck(path string, panels int, err error) string {
	if err != nil {
		return fmt.Sprintf("  %s %s\n    %s",
			lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX),
			r.theme.Normal.Render(path),
			r.theme.ErrorStyle.Render(strings.ReplaceAll(err.Error(), "\n", "\n    ")),
		)
	}
	return fmt.Sprintf("  %s %s %s",
		lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck),
		r.theme.Normal.Render(path),
		r.theme.Subtle.Render(fmt.Sprintf("(%d panels)", panels)),
	)
}

// RenderSummary renders the totals of a validation run.
func (r *LayoutRenderer) RenderSummary(ok, failed int) string {
	if failed == 0 {
		return r.theme.SuccessStyle.Render(fmt.Sprintf("%d layout(s) valid", ok))
	}
	return r.theme.WarningStyle.Render(fmt.Sprintf("%d valid, %d invalid", ok, failed))
}
