package docking

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// Docker is the root controller of one docking layout. It owns the node
// arena, the panel-type catalog, event handlers and the drag state.
type Docker struct {
	log       zerolog.Logger
	container port.Container
	scheduler port.Scheduler
	opts      Options

	nodes  map[NodeID]Node
	nextID NodeID
	root   NodeID

	// floating and modal hold frames in z-order, topmost last.
	floating  []NodeID
	modal     []NodeID
	frames    []NodeID
	splitters []NodeID
	drawers   []NodeID

	placeholder NodeID
	focus       NodeID

	types     map[string]PanelTypeOptions
	typeOrder []string

	handlers    handlerTable
	nextHandler HandlerID

	size     entity.Vec2
	measured bool
	gesture  gestureTracker
	drag     dragState
	resize   resizeDebounce

	// updating guards against re-entrant layout passes from event handlers.
	updating bool
	dirty    bool
}

// New creates a docker laid out into container. The main area starts with
// the placeholder. A nil scheduler makes every container resize settle
// immediately.
func New(ctx context.Context, container port.Container, scheduler port.Scheduler, opts Options) *Docker {
	logger := logging.FromContext(ctx).With().Str("component", "docker").Logger()

	d := &Docker{
		log:       logger,
		container: container,
		scheduler: scheduler,
		opts:      opts.withDefaults(),
		nodes:     make(map[NodeID]Node),
		types:     make(map[string]PanelTypeOptions),
		handlers:  handlerTable{},
	}
	d.ensurePlaceholder()
	d.update()

	d.log.Debug().
		Float64("width", d.size.X).
		Float64("height", d.size.Y).
		Float64("edge_band", d.opts.EdgeBand).
		Msg("docker created")
	return d
}

// Options returns the active tuning.
func (d *Docker) Options() Options { return d.opts }

// SetOptions replaces the tuning and re-lays out the tree.
func (d *Docker) SetOptions(opts Options) {
	d.opts = opts.withDefaults()
	d.log.Info().Float64("edge_band", d.opts.EdgeBand).Float64("title_height", d.opts.TitleHeight).Msg("docker options updated")
	d.update()
}

// Size returns the last measured container size.
func (d *Docker) Size() entity.Vec2 { return d.size }

// Root returns the root of the docked tree, nil when empty.
func (d *Docker) Root() Node { return d.Node(d.root) }

// Placeholder returns the placeholder panel, nil when none is installed.
func (d *Docker) Placeholder() *Panel { return d.Panel(d.placeholder) }

// Focused returns the focused frame.
func (d *Docker) Focused() *Frame { return d.Frame(d.focus) }

// Frames returns every frame in creation order.
func (d *Docker) Frames() []*Frame {
	return collect(d.frames, d.Frame)
}

// Splitters returns every splitter in creation order.
func (d *Docker) Splitters() []*Splitter {
	return collect(d.splitters, d.Splitter)
}

// Drawers returns every drawer in creation order.
func (d *Docker) Drawers() []*Drawer {
	return collect(d.drawers, d.Drawer)
}

// FloatingFrames returns non-modal floating frames bottom to top.
func (d *Docker) FloatingFrames() []*Frame {
	return collect(d.floating, d.Frame)
}

// ModalFrames returns modal frames bottom to top.
func (d *Docker) ModalFrames() []*Frame {
	return collect(d.modal, d.Frame)
}

func collect[T any](ids []NodeID, lookup func(NodeID) *T) []*T {
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		if n := lookup(id); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Focus makes f the focused frame. Focusing a floating frame raises it.
func (d *Docker) Focus(f *Frame) {
	if f == nil || d.Frame(f.id) == nil {
		return
	}
	switch {
	case f.modal:
		d.modal = raise(d.modal, f.id)
	case f.floating:
		d.floating = raise(d.floating, f.id)
	}
	if d.focus == f.id {
		return
	}

	if prev := d.Frame(d.focus); prev != nil {
		if p := prev.Panel(-1); p != nil {
			p.emit(entity.EventLostFocus, nil)
		}
	}
	d.focus = f.id
	if p := f.Panel(-1); p != nil {
		p.emit(entity.EventGainFocus, nil)
	}
	d.log.Debug().Uint64("node_id", uint64(f.id)).Msg("frame focused")
}

// raise moves id to the end of the z-ordered list.
func raise(list []NodeID, id NodeID) []NodeID {
	idx := slices.Index(list, id)
	if idx < 0 || idx == len(list)-1 {
		return list
	}
	list = append(list[:idx], list[idx+1:]...)
	return append(list, id)
}

// refocus picks the topmost modal frame, else the topmost floating frame.
func (d *Docker) refocus() {
	d.focus = 0
	switch {
	case len(d.modal) > 0:
		d.Focus(d.Frame(d.modal[len(d.modal)-1]))
	case len(d.floating) > 0:
		d.Focus(d.Frame(d.floating[len(d.floating)-1]))
	}
}

// Clear tears the whole tree down and leaves the placeholder in the main
// area. Registered types and docker-wide handlers survive.
func (d *Docker) Clear() {
	d.clearTree()
	d.ensurePlaceholder()
	d.update()
}

func (d *Docker) clearTree() {
	d.Cancel()
	for _, p := range d.Panels() {
		d.container.Reparent(p.id, 0)
	}
	d.nodes = make(map[NodeID]Node)
	d.root = 0
	d.floating = nil
	d.modal = nil
	d.frames = nil
	d.splitters = nil
	d.drawers = nil
	d.placeholder = 0
	d.focus = 0
	d.gesture = gestureTracker{}
	d.log.Debug().Msg("docker cleared")
}

// Update re-measures the container and lays the tree out again.
// Hosts call it whenever the container may have changed size.
func (d *Docker) Update() {
	d.update()
}
