package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PreviewKeyMap defines keybindings for the layout preview.
type PreviewKeyMap struct {
	AddTab      key.Binding
	SplitRight  key.Binding
	SplitBottom key.Binding
	Float       key.Binding
	Drawer      key.Binding
	NextType    key.Binding
	NextTab     key.Binding
	Close       key.Binding
	Save        key.Binding
	Restore     key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTab, k.SplitRight, k.SplitBottom, k.Float, k.Close, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddTab, k.SplitRight, k.SplitBottom, k.Float},
		{k.Drawer, k.NextType, k.NextTab, k.Close},
		{k.Save, k.Restore, k.Cancel},
		{k.Help, k.Quit},
	}
}

// DefaultPreviewKeyMap returns the default preview keybindings.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		AddTab: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add tab"),
		),
		SplitRight: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "split right"),
		),
		SplitBottom: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split below"),
		),
		Float: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "float"),
		),
		Drawer: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bottom drawer"),
		),
		NextType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next panel type"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save layout"),
		),
		Restore: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "restore layout"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
