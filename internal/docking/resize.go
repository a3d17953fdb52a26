package docking

import (
	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// resizeState is the container-resize debounce machine.
type resizeState uint8

const (
	resizeQuiet resizeState = iota
	resizeSettling
)

type resizeDebounce struct {
	state resizeState
	timer port.Timer
	// generation invalidates callbacks of timers that were stopped too late.
	generation uint64
}

// Resizing reports whether a container resize burst is in progress.
func (d *Docker) Resizing() bool { return d.resize.state == resizeSettling }

// noteContainerResize is called for every observed container size change.
// The first change of a burst broadcasts RESIZE_STARTED; RESIZE_ENDED
// follows once no change arrived for the quiet interval.
func (d *Docker) noteContainerResize() {
	if d.resize.state == resizeQuiet {
		d.resize.state = resizeSettling
		d.log.Debug().Float64("width", d.size.X).Float64("height", d.size.Y).Msg("container resize started")
		d.Trigger(entity.EventResizeStarted, nil)
	}

	if d.resize.timer != nil {
		d.resize.timer.Stop()
		d.resize.timer = nil
	}
	d.resize.generation++
	if d.scheduler == nil {
		// Settled by update once the pass is over.
		return
	}
	gen := d.resize.generation
	d.resize.timer = d.scheduler.AfterFunc(d.opts.ResizeQuiet, func() {
		d.settleResize(gen)
	})
}

func (d *Docker) settleResize(gen uint64) {
	if gen != d.resize.generation || d.resize.state != resizeSettling {
		return
	}
	d.resize.state = resizeQuiet
	d.resize.timer = nil
	d.log.Debug().Float64("width", d.size.X).Float64("height", d.size.Y).Msg("container resize settled")
	d.Trigger(entity.EventResizeEnded, nil)
}
