// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/docking"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/container"
	"github.com/bnema/dockyard/internal/infrastructure/scheduler"
	"github.com/bnema/dockyard/internal/infrastructure/snapshot"
	"github.com/bnema/dockyard/internal/logging"
)

const tickInterval = 50 * time.Millisecond

// PreviewConfig holds the preview's dependencies.
type PreviewConfig struct {
	// NewDocker builds the docker hosted by the preview.
	NewDocker func(port.Container, port.Scheduler) *docking.Docker
	// CellWidth and CellHeight are the pixel size of one terminal cell.
	CellWidth  float64
	CellHeight float64
	// LayoutFile is where ctrl+s saves and ctrl+r restores.
	LayoutFile string
	// AutosaveInterval is the quiet period before changes are written to
	// LayoutFile. Zero disables autosave.
	AutosaveInterval time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// ConfigChangedMsg carries a reloaded configuration into the preview.
type ConfigChangedMsg struct {
	Config *config.Config
}

type tickMsg time.Time

type layoutSavedMsg struct {
	path string
	err  error
}

type layoutLoadedMsg struct {
	path string
	data []byte
	err  error
}

// PreviewModel hosts a live docker in the terminal. The terminal is the
// container and mouse events are the pointer stream.
type PreviewModel struct {
	// UI components
	help help.Model
	keys styles.PreviewKeyMap

	// Engine
	docker    *docking.Docker
	container *container.Fixed
	queue     *scheduler.Queue
	store     *snapshot.FileStore
	autosave  *snapshot.Service

	// State
	cellW    float64
	cellH    float64
	typeIdx  int
	pressed  docking.PointerButton
	width    int
	height   int
	status   string
	err      error
	quitting bool

	// Dependencies
	ctx   context.Context
	theme *styles.Theme
}

// NewPreviewModel creates the preview and loads its initial layout: the
// saved layout file when there is one, else the demo layout.
func NewPreviewModel(ctx context.Context, theme *styles.Theme, cfg PreviewConfig) PreviewModel {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	m := PreviewModel{
		help:      styles.NewStyledHelp(theme),
		keys:      styles.DefaultPreviewKeyMap(),
		container: container.NewFixed(0, 0),
		queue:     scheduler.NewQueue(now()),
		store:     snapshot.NewFileStore(cfg.LayoutFile),
		cellW:     cfg.CellWidth,
		cellH:     cfg.CellHeight,
		width:     80,
		height:    24,
		ctx:       logging.WithComponent(ctx, "preview"),
		theme:     theme,
	}
	m.docker = cfg.NewDocker(m.container, m.queue)
	m.resize()
	m.loadInitialLayout()
	if cfg.LayoutFile != "" && cfg.AutosaveInterval > 0 {
		m.startAutosave(cfg.AutosaveInterval)
	}
	return m
}

// startAutosave writes the layout back once it has been left alone for
// interval. Changes made while loading the initial layout are not saved.
func (m *PreviewModel) startAutosave(interval time.Duration) {
	svc := snapshot.NewService(m.docker, m.store, m.queue, interval)
	for _, ev := range snapshot.DirtyEvents {
		m.docker.On(ev, func(entity.Event) { svc.MarkDirty() })
	}
	svc.Start(logging.WithLayoutFile(m.ctx, m.store.Path))
	m.autosave = svc
}

// Docker returns the hosted docker.
func (m PreviewModel) Docker() *docking.Docker { return m.docker }

// Status returns the last status line message.
func (m PreviewModel) Status() string { return m.status }

// Autosave returns the autosave service, nil when autosave is off.
func (m PreviewModel) Autosave() *snapshot.Service { return m.autosave }

func (m *PreviewModel) loadInitialLayout() {
	log := logging.FromContext(m.ctx)

	if path := m.store.Path; path != "" {
		data, err := m.store.LoadLayout(m.ctx)
		switch {
		case err == nil:
			if err := m.restore(data); err == nil {
				m.status = "restored " + path
				return
			}
			log.Warn().Err(m.err).Str("layout_file", path).Msg("saved layout rejected, using demo layout")
		case !errors.Is(err, os.ErrNotExist):
			log.Warn().Err(err).Str("layout_file", path).Msg("read saved layout")
		}
	}

	if err := cli.BuildDemoLayout(m.docker); err != nil {
		log.Debug().Err(err).Msg("demo layout unavailable")
		m.docker.Clear()
		if types := m.docker.OfferablePanelTypes(); len(types) > 0 {
			m.docker.AddPanel(types[0], entity.DockRight, nil, nil)
		}
	}
	m.status = "demo layout"
}

// restore applies a serialized layout, registering unknown panel types first.
func (m *PreviewModel) restore(data []byte) error {
	var doc entity.LayoutDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		m.err = fmt.Errorf("%w: %w", docking.ErrMalformedLayout, err)
		return m.err
	}
	cli.RegisterDocumentTypes(m.docker, &doc)
	if err := m.docker.RestoreDocument(&doc); err != nil {
		m.err = err
		return err
	}
	m.err = nil
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		m.queue.RunDue(time.Time(msg))
		return m, tick()

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ConfigChangedMsg:
		return m.handleConfigChanged(msg), nil

	case layoutSavedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = "saved " + msg.path
		}
		return m, nil

	case layoutLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if err := m.restore(msg.data); err == nil {
			m.status = "restored " + msg.path
		}
		return m, nil
	}

	return m, nil
}

// pointer maps a terminal cell to the pixel at its center.
func (m PreviewModel) pointer(x, y int, button docking.PointerButton) docking.PointerEvent {
	return docking.PointerEvent{
		X:      float64(x)*m.cellW + m.cellW/2,
		Y:      float64(y)*m.cellH + m.cellH/2,
		Button: button,
	}
}

func (m PreviewModel) handleMouse(msg tea.MouseMsg) PreviewModel {
	switch msg.Action {
	case tea.MouseActionPress:
		button, ok := pointerButton(msg.Button)
		if !ok {
			return m
		}
		m.pressed = button
		m.docker.PointerDown(m.pointer(msg.X, msg.Y, button))
	case tea.MouseActionMotion:
		m.docker.PointerMove(m.pointer(msg.X, msg.Y, m.pressed))
	case tea.MouseActionRelease:
		m.docker.PointerUp(m.pointer(msg.X, msg.Y, m.pressed))
		m.pressed = docking.ButtonLeft
	}
	return m
}

func pointerButton(b tea.MouseButton) (docking.PointerButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return docking.ButtonLeft, true
	case tea.MouseButtonMiddle:
		return docking.ButtonMiddle, true
	case tea.MouseButtonRight:
		return docking.ButtonRight, true
	}
	return 0, false
}

func (m PreviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.autosave != nil {
			if err := m.autosave.Stop(m.ctx); err != nil {
				logging.FromContext(m.ctx).Error().Err(err).Msg("final layout save failed")
			}
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.Cancel):
		m.docker.Cancel()
	case key.Matches(msg, m.keys.NextType):
		m.typeIdx++
		m.status = "panel type: " + m.panelType()
	case key.Matches(msg, m.keys.AddTab):
		m.add(entity.DockStacked)
	case key.Matches(msg, m.keys.SplitRight):
		m.add(entity.DockRight)
	case key.Matches(msg, m.keys.SplitBottom):
		m.add(entity.DockBottom)
	case key.Matches(msg, m.keys.Float):
		m.add(entity.DockFloat)
	case key.Matches(msg, m.keys.Drawer):
		m.toggleDrawer()
	case key.Matches(msg, m.keys.NextTab):
		if f := m.docker.Focused(); f != nil && f.Len() > 0 {
			f.SetCurrentTab((f.CurrentTab() + 1) % f.Len())
		}
	case key.Matches(msg, m.keys.Close):
		if p := m.focusedPanel(); p != nil && !p.Close() {
			m.status = p.Title() + " cannot be closed"
		}
	case key.Matches(msg, m.keys.Save):
		return m, m.save()
	case key.Matches(msg, m.keys.Restore):
		return m, m.load()
	}
	return m, nil
}

// panelType returns the type new panels are created with.
func (m PreviewModel) panelType() string {
	types := m.docker.OfferablePanelTypes()
	if len(types) == 0 {
		return ""
	}
	return types[m.typeIdx%len(types)]
}

func (m PreviewModel) focusedPanel() *docking.Panel {
	f := m.docker.Focused()
	if f == nil {
		return nil
	}
	p := f.Panel(-1)
	if p == nil || p.IsPlaceholder() {
		return nil
	}
	return p
}

func (m *PreviewModel) add(location entity.DockLocation) {
	typ := m.panelType()
	if typ == "" {
		m.status = "no panel type available"
		return
	}
	p := m.docker.AddPanel(typ, location, m.focusedPanel(), nil)
	if p == nil {
		m.status = "could not add " + typ
		return
	}
	p.Focus()
	m.status = fmt.Sprintf("added %s (%s)", p.Title(), location)
}

// toggleDrawer creates the bottom drawer with one panel, or toggles it.
func (m *PreviewModel) toggleDrawer() {
	for _, dr := range m.docker.Drawers() {
		if dr.Edge() == entity.DockBottom {
			dr.Toggle()
			return
		}
	}
	dr := m.docker.AddDrawer(entity.DockBottom)
	if dr == nil {
		return
	}
	if typ := m.panelType(); typ != "" {
		m.docker.AddPanelToDrawer(typ, dr, entity.DockStacked)
	}
}

func (m PreviewModel) save() tea.Cmd {
	ctx, store := m.ctx, m.store
	data, err := m.docker.Save()
	return func() tea.Msg {
		if err != nil {
			return layoutSavedMsg{path: store.Path, err: err}
		}
		return layoutSavedMsg{path: store.Path, err: store.SaveLayout(ctx, data)}
	}
}

func (m PreviewModel) load() tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		data, err := store.LoadLayout(ctx)
		return layoutLoadedMsg{path: store.Path, data: data, err: err}
	}
}

func (m PreviewModel) handleConfigChanged(msg ConfigChangedMsg) PreviewModel {
	if msg.Config == nil {
		return m
	}
	m.docker.SetOptions(msg.Config.DockingOptions())
	if msg.Config.Preview.CellWidth > 0 && msg.Config.Preview.CellHeight > 0 {
		m.cellW, m.cellH = msg.Config.Preview.CellWidth, msg.Config.Preview.CellHeight
	}
	m.resize()
	m.status = "configuration reloaded"
	logging.FromContext(m.ctx).Info().Float64("edge_band", msg.Config.Docking.EdgeBand).Msg("docking options reloaded")
	return m
}

// canvasRows is the number of terminal rows left for the layout.
func (m PreviewModel) canvasRows() int {
	return max(m.height-lipgloss.Height(m.footer()), 1)
}

// resize matches the container to the canvas area.
func (m *PreviewModel) resize() {
	m.help.Width = m.width
	m.container.SetSize(float64(m.width)*m.cellW, float64(m.canvasRows())*m.cellH)
	if m.docker != nil {
		m.docker.Update()
	}
}

func (m PreviewModel) footer() string {
	return m.statusBar() + "\n" + m.help.View(m.keys)
}

func (m PreviewModel) statusBar() string {
	text := fmt.Sprintf("%s %s  %s %d  drag: %s",
		styles.IconPanel, m.panelType(),
		styles.IconFrame, len(m.docker.FindPanels("")),
		m.docker.DragKind(),
	)
	if m.docker.Resizing() {
		text += "  resizing"
	}
	switch {
	case m.err != nil:
		text += "  " + m.theme.ErrorStyle.Render(m.err.Error())
	case m.status != "":
		text += "  " + m.status
	}
	return m.theme.StatusBar.Width(m.width).MaxHeight(1).Render(text)
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	if m.quitting {
		return ""
	}
	canvas := styles.NewCanvas(m.theme, m.width, m.canvasRows(), m.cellW, m.cellH)
	canvas.Draw(m.docker)
	return canvas.String() + "\n" + m.footer()
}
