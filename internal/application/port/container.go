package port

import "github.com/bnema/dockyard/internal/domain/entity"

// Container is the host surface a docker lays its tree out into.
// The engine never draws; it only measures the surface and tells the host
// which node currently hosts each panel's content.
type Container interface {
	// Measure returns the current width and height of the surface in pixels.
	Measure() entity.Vec2

	// Reparent mounts the content of panel under host.
	// A zero host means the panel is in transition and must be unmounted.
	Reparent(panel, host entity.NodeID)
}
