package docking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/container"
)

const testType = "editor"

// newTestDocker returns an 800x600 docker with the "editor" type registered.
func newTestDocker(t *testing.T) (*Docker, *container.Fixed) {
	t.Helper()
	c := container.NewFixed(800, 600)
	d := New(context.Background(), c, nil, Options{})
	require.True(t, d.RegisterPanelType(testType, PanelTypeOptions{
		OnCreate: func(*Panel, map[string]any) {},
	}))
	return d, c
}

// sideBySide builds two frames split left/right and returns their panels.
func sideBySide(t *testing.T, d *Docker) (*Panel, *Panel) {
	t.Helper()
	left := d.AddPanel(testType, entity.DockRight, nil, nil)
	require.NotNil(t, left)
	right := d.AddPanel(testType, entity.DockRight, left, nil)
	require.NotNil(t, right)
	requireHealthy(t, d)
	return left, right
}

func requireHealthy(t *testing.T, d *Docker) {
	t.Helper()
	require.NoError(t, d.CheckInvariants())
}

// recorder collects docker-wide events in order.
type recorder struct {
	events []entity.Event
}

func record(d *Docker, types ...entity.EventType) *recorder {
	r := &recorder{}
	for _, typ := range types {
		d.On(typ, func(ev entity.Event) { r.events = append(r.events, ev) })
	}
	return r
}

func (r *recorder) count(typ entity.EventType, source NodeID) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == typ && ev.Source == source {
			n++
		}
	}
	return n
}

func (r *recorder) types(source NodeID) []entity.EventType {
	var out []entity.EventType
	for _, ev := range r.events {
		if ev.Source == source {
			out = append(out, ev.Type)
		}
	}
	return out
}

func (r *recorder) reset() { r.events = nil }
