package docking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestCheckInvariants_HealthyLayouts(t *testing.T) {
	d, _ := newTestDocker(t)
	require.NoError(t, d.CheckInvariants(), "placeholder only")

	left, _ := sideBySide(t, d)
	d.AddPanel(testType, entity.DockStacked, left, nil)
	d.AddPanel(testType, entity.DockFloat, nil, nil)
	dr := d.AddDrawer(entity.DockBottom)
	d.AddPanelToDrawer(testType, dr, entity.DockStacked)
	require.NoError(t, d.CheckInvariants())

	data, err := d.Save()
	require.NoError(t, err)
	dst, _ := newTestDocker(t)
	require.NoError(t, dst.Restore(data))
	assert.NoError(t, dst.CheckInvariants())
}

func TestCheckInvariants_ReportsBrokenTree(t *testing.T) {
	t.Run("panel as root", func(t *testing.T) {
		d, _ := newTestDocker(t)
		p := d.AddPanel(testType, entity.DockRight, nil, nil)
		d.root = p.id

		err := d.CheckInvariants()
		require.ErrorIs(t, err, ErrInvalidNode)
		assert.Contains(t, err.Error(), "direct tree child")
	})

	t.Run("empty frame", func(t *testing.T) {
		d, _ := newTestDocker(t)
		p := d.AddPanel(testType, entity.DockRight, nil, nil)
		f := p.Frame()
		f.panels = nil

		err := d.CheckInvariants()
		require.ErrorIs(t, err, ErrInvalidNode)
		assert.Contains(t, err.Error(), "has no panels")
	})

	t.Run("placeholder in a floating frame", func(t *testing.T) {
		d, _ := newTestDocker(t)
		floating := d.AddPanel(testType, entity.DockFloat, nil, nil)
		ph := d.Placeholder()
		require.NotNil(t, ph)
		d.detach(ph)
		floating.Frame().addPanel(ph, -1)

		err := d.CheckInvariants()
		require.ErrorIs(t, err, ErrInvalidNode)
		assert.Contains(t, err.Error(), "outside the main area")
	})
}
