package config

import (
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_RequiresLoad(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)

	assert.Error(t, mgr.Watch())
}

func TestWatch_ReloadsAndNotifies(t *testing.T) {
	root := isolateXDG(t)
	path := writeConfig(t, root, "[docking]\nedge_band = 0.3\n")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var notified atomic.Int32
	mgr.OnConfigChange(func(cfg *Config) {
		notified.Add(1)
	})
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "watching twice is a no-op")

	require.NoError(t, os.WriteFile(path, []byte("[docking]\nedge_band = 0.2\n"), filePerm))

	require.Eventually(t, func() bool {
		return mgr.Get().Docking.EdgeBand == 0.2
	}, 5*time.Second, 20*time.Millisecond)
	assert.Positive(t, notified.Load())
}
