package docking

import (
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Button is a custom title-bar button of a panel.
type Button struct {
	Name       string
	Icon       string
	Tip        string
	Toggleable bool
	Toggled    bool
}

// Panel is a single unit of dockable content. Its content is owned by the
// host application; the engine only tracks geometry, flags and events.
type Panel struct {
	base

	typeName string
	title    string
	// options is the opaque per-type configuration forwarded to OnCreate.
	options map[string]any

	initSize entity.Vec2
	minSize  entity.Vec2
	maxSize  entity.Vec2

	moveable     bool
	closeable    bool
	titleVisible bool
	placeholder  bool

	buttons []*Button
	scroll  entity.Vec2

	visible     bool
	initialized bool
	handlers    handlerTable
}

func newPanel(d *Docker, typeName, title string) *Panel {
	p := &Panel{
		typeName:     typeName,
		title:        title,
		minSize:      d.opts.MinPanelSize,
		maxSize:      entity.Vec2{X: math.Inf(1), Y: math.Inf(1)},
		moveable:     true,
		closeable:    true,
		titleVisible: true,
		handlers:     handlerTable{},
	}
	d.register(p, &p.base)
	return p
}

func (p *Panel) Kind() entity.NodeKind { return entity.KindPanel }

// TypeName returns the registered type the panel was created from.
func (p *Panel) TypeName() string { return p.typeName }

// Title returns the tab title.
func (p *Panel) Title() string { return p.title }

// SetTitle changes the tab title.
func (p *Panel) SetTitle(title string) { p.title = title }

// Options returns the configuration the panel type was registered with.
func (p *Panel) Options() map[string]any { return p.options }

// Pos returns the top-left corner of the panel's content area.
func (p *Panel) Pos() entity.Vec2 { return p.rect.Pos() }

// Size returns the size of the panel's content area.
func (p *Panel) Size() entity.Vec2 { return p.rect.Size() }

// InitSize returns the preferred size used when the panel is next inserted.
func (p *Panel) InitSize() entity.Vec2 { return p.initSize }

// SetInitSize sets the preferred size used when the panel is next inserted.
func (p *Panel) SetInitSize(size entity.Vec2) { p.initSize = size }

// MinSize returns the smallest content size the panel accepts.
func (p *Panel) MinSize() entity.Vec2 { return p.minSize }

// SetMinSize sets the minimum content size; negative components become 0.
func (p *Panel) SetMinSize(size entity.Vec2) {
	p.minSize = entity.Vec2{X: math.Max(0, size.X), Y: math.Max(0, size.Y)}
	p.docker.update()
}

// MaxSize returns the largest content size; components may be +Inf.
func (p *Panel) MaxSize() entity.Vec2 { return p.maxSize }

// SetMaxSize sets the maximum content size. Use math.Inf(1) for unbounded.
func (p *Panel) SetMaxSize(size entity.Vec2) {
	p.maxSize = size
	p.docker.update()
}

// Moveable reports whether the panel can be dragged.
func (p *Panel) Moveable() bool { return p.moveable }

// SetMoveable toggles dragging. Modal panels stay non-moveable.
func (p *Panel) SetMoveable(moveable bool) {
	if f := p.Frame(); f != nil && f.modal {
		return
	}
	p.moveable = moveable
}

// Closeable reports whether Close removes the panel.
func (p *Panel) Closeable() bool { return p.closeable }

// SetCloseable toggles whether Close removes the panel.
func (p *Panel) SetCloseable(closeable bool) {
	if p.placeholder {
		return
	}
	p.closeable = closeable
}

// TitleVisible reports whether the panel shows a tab.
func (p *Panel) TitleVisible() bool { return p.titleVisible }

// SetTitleVisible toggles the panel's tab.
func (p *Panel) SetTitleVisible(visible bool) { p.titleVisible = visible }

// IsPlaceholder reports whether this is the synthetic placeholder panel.
func (p *Panel) IsPlaceholder() bool { return p.placeholder }

// IsVisible reports whether the panel is the shown tab of a visible frame.
func (p *Panel) IsVisible() bool { return p.visible }

// Frame returns the owning frame, nil while in transition.
func (p *Panel) Frame() *Frame {
	return p.docker.Frame(p.parent)
}

// IsFloating reports whether the panel lives in a floating frame.
func (p *Panel) IsFloating() bool {
	f := p.Frame()
	return f != nil && f.floating
}

// Close asks the docker to remove the panel. No-op when not closeable.
func (p *Panel) Close() bool {
	return p.docker.RemovePanel(p)
}

// Focus makes the panel the current tab and focuses its frame.
func (p *Panel) Focus() {
	f := p.Frame()
	if f == nil {
		return
	}
	if idx := f.indexOf(p.id); idx >= 0 {
		f.SetCurrentTab(idx)
	}
	p.docker.Focus(f)
}

// Scroll returns the last reported scroll offset.
func (p *Panel) Scroll() entity.Vec2 { return p.scroll }

// SetScroll records a scroll offset reported by the host and emits SCROLLED.
func (p *Panel) SetScroll(offset entity.Vec2) {
	if offset == p.scroll {
		return
	}
	prev := p.scroll
	p.scroll = offset
	p.emit(entity.EventScrolled, entity.ScrollEvent{Previous: prev, Current: offset})
}

// AddButton adds a custom button. Returns false if name is taken.
func (p *Panel) AddButton(name, icon, tip string, toggleable bool) bool {
	if p.button(name) != nil {
		return false
	}
	p.buttons = append(p.buttons, &Button{Name: name, Icon: icon, Tip: tip, Toggleable: toggleable})
	p.emit(entity.EventUpdated, nil)
	return true
}

// RemoveButton removes a custom button.
func (p *Panel) RemoveButton(name string) bool {
	for i, b := range p.buttons {
		if b.Name == name {
			p.buttons = append(p.buttons[:i], p.buttons[i+1:]...)
			p.emit(entity.EventUpdated, nil)
			return true
		}
	}
	return false
}

// Buttons returns a copy of the custom buttons in order.
func (p *Panel) Buttons() []Button {
	out := make([]Button, len(p.buttons))
	for i, b := range p.buttons {
		out[i] = *b
	}
	return out
}

// ButtonState returns the toggle state of a button.
func (p *Panel) ButtonState(name string) (toggled, ok bool) {
	b := p.button(name)
	if b == nil {
		return false, false
	}
	return b.Toggled, true
}

// SetButtonState sets the toggle state of a toggleable button without emitting BUTTON.
func (p *Panel) SetButtonState(name string, toggled bool) bool {
	b := p.button(name)
	if b == nil || !b.Toggleable {
		return false
	}
	b.Toggled = toggled
	return true
}

// ClickButton simulates a click: toggleable buttons flip, then BUTTON is emitted.
func (p *Panel) ClickButton(name string) bool {
	b := p.button(name)
	if b == nil {
		return false
	}
	if b.Toggleable {
		b.Toggled = !b.Toggled
	}
	p.emit(entity.EventButton, entity.ButtonEvent{Name: b.Name, IsToggled: b.Toggled})
	return true
}

func (p *Panel) button(name string) *Button {
	for _, b := range p.buttons {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// applyLayout stores the laid out content rect and emits geometry events.
func (p *Panel) applyLayout(rect entity.Rect, visible bool) {
	if !p.initialized {
		p.initialized = true
		p.rect = rect
		p.visible = visible
		p.emit(entity.EventInit, nil)
		return
	}

	d := p.docker
	moved := rect.Pos() != p.rect.Pos()
	resized := rect.Size() != p.rect.Size()
	p.rect = rect

	if moved {
		if d.gesture.active() && !d.gesture.moved[p.id] {
			d.gesture.moved[p.id] = true
			p.emit(entity.EventMoveStarted, nil)
		}
		p.emit(entity.EventMoved, nil)
	}
	if resized {
		if d.gesture.active() && !d.gesture.resized[p.id] {
			d.gesture.resized[p.id] = true
			p.emit(entity.EventResizeStarted, nil)
		}
		p.emit(entity.EventResized, nil)
	}
	if moved || resized {
		p.emit(entity.EventUpdated, nil)
	}
	if visible != p.visible {
		p.visible = visible
		p.emit(entity.EventVisibilityChanged, entity.VisibilityEvent{Visible: visible})
	}
}
