package styles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestLayoutRenderer_RenderTree(t *testing.T) {
	d := newStyledDocker(t, 800, 600)
	left := d.AddPanel("editor", entity.DockRight, nil, nil)
	require.NotNil(t, left)
	right := d.AddPanel("console", entity.DockRight, left, nil)
	require.NotNil(t, right)
	right.SetTitle("Logs")
	require.NotNil(t, d.AddPanel("editor", entity.DockFloat, nil, nil))

	r := NewLayoutRenderer(NewTheme())
	out := r.RenderTree(d)

	assert.Contains(t, out, "Layout 800x600")
	assert.Contains(t, out, "horizontal")
	assert.Contains(t, out, "└─ ")
	assert.Contains(t, out, "Logs")
	assert.Contains(t, out, "[console]")
	assert.Contains(t, out, "Floating")
	assert.Contains(t, out, "floating (1)")
}

func TestLayoutRenderer_Geometry(t *testing.T) {
	d := newStyledDocker(t, 800, 600)
	require.NotNil(t, d.AddPanel("editor", entity.DockRight, nil, nil))

	r := NewLayoutRenderer(NewTheme())
	r.Geometry = true

	assert.Contains(t, r.RenderTree(d), "0,0 800x600")
}

func TestLayoutRenderer_Empty(t *testing.T) {
	d := newStyledDocker(t, 800, 600)
	out := NewLayoutRenderer(NewTheme()).RenderTree(d)
	assert.Contains(t, out, "frame (1)")
	assert.Contains(t, out, "placeholder")
}

func TestLayoutRenderer_RenderCheck(t *testing.T) {
	r := NewLayoutRenderer(NewTheme())

	ok := r.RenderCheck("a.json", 3, nil)
	assert.Contains(t, ok, "a.json")
	assert.Contains(t, ok, "(3 panels)")

	failed := r.RenderCheck("b.json", 0, errors.New("malformed layout: root"))
	assert.Contains(t, failed, "b.json")
	assert.Contains(t, failed, "malformed layout: root")
}

func TestLayoutRenderer_RenderSummary(t *testing.T) {
	r := NewLayoutRenderer(NewTheme())
	assert.Contains(t, r.RenderSummary(2, 0), "2 layout(s) valid")
	assert.Contains(t, r.RenderSummary(1, 1), "1 valid, 1 invalid")
}

func TestFormatRect(t *testing.T) {
	assert.Equal(t, "10,20 300x150", FormatRect(entity.Rect{X: 10.2, Y: 19.6, W: 300, H: 150}))
}

func TestConfigRenderer(t *testing.T) {
	r := NewConfigRenderer(NewTheme())
	assert.Contains(t, r.RenderConfigInfo("/tmp/config.toml"), "/tmp/config.toml")
	assert.Contains(t, r.RenderError(errors.New("boom")), "Config error: boom")
	assert.Contains(t, r.RenderNoConfigFile("/tmp/x.toml"), "created on first run")
}
