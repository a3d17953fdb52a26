// Package container provides headless port.Container implementations.
package container

import (
	"slices"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// Fixed is an in-memory container with a settable size. It records which
// frame hosts each panel so headless callers can inspect mounts.
type Fixed struct {
	mu        sync.RWMutex
	size      entity.Vec2
	hosts     map[entity.NodeID]entity.NodeID
	reparents int
}

// NewFixed creates a container of the given size in pixels.
func NewFixed(width, height float64) *Fixed {
	return &Fixed{
		size:  entity.Vec2{X: width, Y: height},
		hosts: make(map[entity.NodeID]entity.NodeID),
	}
}

// SetSize changes the measured size. The docker notices on its next update.
func (c *Fixed) SetSize(width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.size = entity.Vec2{X: width, Y: height}
}

// Measure returns the current size.
func (c *Fixed) Measure() entity.Vec2 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// Reparent records panel as mounted under host, or unmounts it for host 0.
func (c *Fixed) Reparent(panel, host entity.NodeID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reparents++
	if host == 0 {
		delete(c.hosts, panel)
		return
	}
	c.hosts[panel] = host
}

// Host returns the frame currently hosting panel.
func (c *Fixed) Host(panel entity.NodeID) (entity.NodeID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	host, ok := c.hosts[panel]
	return host, ok
}

// Mounted returns the ids of every mounted panel in ascending order.
func (c *Fixed) Mounted() []entity.NodeID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.NodeID, 0, len(c.hosts))
	for id := range c.hosts {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Reparents returns how many Reparent calls were made.
func (c *Fixed) Reparents() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reparents
}

var _ port.Container = (*Fixed)(nil)
