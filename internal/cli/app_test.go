package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/container"
	"github.com/bnema/dockyard/internal/logging"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestNewApp_LoadsDefaults(t *testing.T) {
	root := isolateXDG(t)

	app, err := NewApp(AppOptions{Output: &bytes.Buffer{}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Equal(t, config.DefaultConfig().Docking, app.Config.Docking)
	assert.FileExists(t, filepath.Join(root, "config", "dockyard", "config.toml"))
	assert.NotNil(t, logging.FromContext(app.Context()))
}

func TestNewApp_ExplicitConfigFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[docking]\nedge_band = 0.3\n\n[panels]\ntypes = [\"alpha\", \"beta\"]\n"), 0o644))

	app, err := NewApp(AppOptions{ConfigFile: path, Output: &bytes.Buffer{}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.InDelta(t, 0.3, app.Config.Docking.EdgeBand, 1e-9)
	assert.Equal(t, []string{"alpha", "beta"}, app.Config.Panels.Types)

	d := app.NewDocker(container.NewFixed(800, 600), nil)
	assert.Equal(t, []string{"alpha", "beta"}, d.PanelTypes(true))
	assert.InDelta(t, 0.3, d.Options().EdgeBand, 1e-9)
}

func TestNewApp_MissingExplicitFile(t *testing.T) {
	isolateXDG(t)

	_, err := NewApp(AppOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}

func TestNewApp_LogsToFile(t *testing.T) {
	root := isolateXDG(t)

	app, err := NewApp(AppOptions{LogToFile: true})
	require.NoError(t, err)

	d := app.NewDocker(container.NewFixed(800, 600), nil)
	require.NotNil(t, d.AddPanel("editor", entity.DockRight, nil, nil))
	require.NoError(t, app.Close())

	data, err := os.ReadFile(filepath.Join(root, "state", "dockyard", "logs", previewLogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "panel added")
}

func TestNewLogger_QuietOnStderr(t *testing.T) {
	cfg := config.DefaultConfig()

	logger, cleanup, err := newLogger(cfg, AppOptions{})
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger, cleanup, err = newLogger(cfg, AppOptions{Verbose: true})
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewLogger_Output(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = "json"
	var buf bytes.Buffer

	logger, cleanup, err := newLogger(cfg, AppOptions{Output: &buf})
	require.NoError(t, err)
	defer cleanup()

	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"message":"hello"`)
}
