package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/docking"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/container"
)

func newDocker(t *testing.T, types ...string) *docking.Docker {
	t.Helper()
	d := docking.New(context.Background(), container.NewFixed(800, 600), nil, docking.Options{})
	RegisterPanelTypes(d, types)
	return d
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"editor", "Editor"},
		{"file-browser", "File Browser"},
		{"log_view", "Log View"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleCase(tt.in))
		})
	}
}

func TestRegisterPanelTypes(t *testing.T) {
	d := newDocker(t)

	added := RegisterPanelTypes(d, []string{"editor", "console", "editor"})
	assert.Equal(t, []string{"editor", "console"}, added)

	p := d.AddPanel("console", entity.DockRight, nil, nil)
	require.NotNil(t, p)
	assert.Equal(t, "Console", p.Title())
	require.Len(t, p.Buttons(), 1)
	assert.Equal(t, "pin", p.Buttons()[0].Name)
}

func TestRegisterDocumentTypes(t *testing.T) {
	src := newDocker(t, "editor", "console", "graph")
	left := src.AddPanel("editor", entity.DockRight, nil, nil)
	require.NotNil(t, left)
	require.NotNil(t, src.AddPanel("graph", entity.DockRight, left, nil))
	require.NotNil(t, src.AddPanel("graph", entity.DockFloat, nil, nil))

	dst := newDocker(t, "editor")
	doc := src.Snapshot()
	require.ErrorIs(t, dst.ValidateDocument(doc), docking.ErrUnknownPanelType)

	assert.Equal(t, []string{"graph"}, RegisterDocumentTypes(dst, doc))
	require.NoError(t, dst.RestoreDocument(doc))
	assert.Len(t, dst.FindPanels("graph"), 2)
}

func TestRegisterDocumentTypes_SkipsPlaceholder(t *testing.T) {
	src := newDocker(t, "editor")
	p := src.AddPanel("editor", entity.DockRight, nil, nil)
	require.True(t, src.RemovePanel(p))

	data, err := src.Save()
	require.NoError(t, err)
	var doc entity.LayoutDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Empty(t, RegisterDocumentTypes(newDocker(t), &doc))
}
