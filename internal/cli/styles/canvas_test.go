package styles

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/docking"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/container"
)

func newStyledDocker(t *testing.T, width, height float64) *docking.Docker {
	t.Helper()
	d := docking.New(context.Background(), container.NewFixed(width, height), nil, docking.Options{})
	for _, name := range []string{"editor", "console"} {
		require.True(t, d.RegisterPanelType(name, docking.PanelTypeOptions{
			OnCreate: func(*docking.Panel, map[string]any) {},
		}))
	}
	return d
}

func TestCanvas_SingleFrame(t *testing.T) {
	d := newStyledDocker(t, 160, 64)
	require.NotNil(t, d.AddPanel("editor", entity.DockRight, nil, nil))

	c := NewCanvas(NewTheme(), 20, 4, 8, 16)
	c.Draw(d)

	lines := strings.Split(c.Plain(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "┌ editor ──────────┐", lines[0])
	assert.Equal(t, "│ editor           │", lines[1])
	assert.Equal(t, "└──────────────────┘", lines[3])
}

func TestCanvas_SideBySideFramesDoNotOverlap(t *testing.T) {
	d := newStyledDocker(t, 320, 64)
	left := d.AddPanel("editor", entity.DockRight, nil, nil)
	require.NotNil(t, d.AddPanel("console", entity.DockRight, left, nil))

	c := NewCanvas(NewTheme(), 40, 4, 8, 16)
	c.Draw(d)

	lines := strings.Split(c.Plain(), "\n")
	bottom := []rune(lines[3])
	require.Len(t, bottom, 40)
	assert.Equal(t, '└', bottom[0])
	assert.Equal(t, '┘', bottom[19])
	assert.Equal(t, '└', bottom[20])
	assert.Equal(t, '┘', bottom[39])
	assert.Contains(t, lines[0], " console ")
}

func TestCanvas_EmptyLayoutShowsPlaceholder(t *testing.T) {
	d := newStyledDocker(t, 192, 64)

	c := NewCanvas(NewTheme(), 24, 4, 8, 16)
	c.Draw(d)

	lines := strings.Split(c.Plain(), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "drop panels here")
}

func TestCanvas_ClipsOutOfBounds(t *testing.T) {
	c := NewCanvas(NewTheme(), 4, 2, 8, 16)

	x0, y0, x1, y1, ok := c.cellRect(entity.Rect{X: -16, Y: 8, W: 200, H: 200})
	require.True(t, ok)
	assert.Equal(t, []int{0, 0, 3, 1}, []int{x0, y0, x1, y1})

	_, _, _, _, ok = c.cellRect(entity.Rect{X: 100, Y: 100, W: 0, H: 10})
	assert.False(t, ok)
}

func TestCanvas_StringKeepsText(t *testing.T) {
	d := newStyledDocker(t, 160, 64)
	require.NotNil(t, d.AddPanel("editor", entity.DockRight, nil, nil))

	c := NewCanvas(NewTheme(), 20, 4, 8, 16)
	c.Draw(d)

	assert.Contains(t, c.String(), "editor")
	assert.Len(t, strings.Split(c.String(), "\n"), 4)
}

func TestDrawerArrow(t *testing.T) {
	assert.Equal(t, '▲', drawerArrow(entity.DockBottom, false))
	assert.Equal(t, '▼', drawerArrow(entity.DockBottom, true))
	assert.Equal(t, '▶', drawerArrow(entity.DockLeft, false))
	assert.Equal(t, '■', drawerArrow(entity.DockStacked, false))
}
