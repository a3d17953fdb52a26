package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory into a temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func writeConfig(t *testing.T, root, content string) string {
	t.Helper()
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func TestSetDefaults_LoadThroughViper(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	cfg, err := mgr.unmarshalConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	path := filepath.Join(root, "config", appName, configFileName)
	assert.FileExists(t, path)
	assert.Equal(t, path, mgr.ConfigFile())
	assert.Equal(t, DefaultConfig(), mgr.Get())

	for _, dir := range []string{"data", "state"} {
		assert.DirExists(t, filepath.Join(root, dir, appName))
	}
}

func TestLoad_ReadsFileOverDefaults(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, `
[docking]
edge_band = 0.3
title_height = 30

[panels]
types = ["notes", "terminal"]

[logging]
level = "DEBUG"
`)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.InDelta(t, 0.3, cfg.Docking.EdgeBand, 1e-9)
	assert.InDelta(t, 30.0, cfg.Docking.TitleHeight, 1e-9)
	assert.InDelta(t, 12.0, cfg.Docking.DrawerHandle, 1e-9)
	assert.Equal(t, []string{"notes", "terminal"}, cfg.Panels.Types)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "[docking]\nedge_band = 0.3\n")
	t.Setenv("DOCKYARD_DOCKING_EDGE_BAND", "0.15")
	t.Setenv("DOCKYARD_LOG_FORMAT", "json")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.InDelta(t, 0.15, cfg.Docking.EdgeBand, 1e-9)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "[docking]\nedge_band = 0.9\n")

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docking.edge_band")
	assert.Equal(t, DefaultConfig(), mgr.Get(), "Get falls back to defaults before a successful load")
}

func TestLoad_RejectsMalformedFile(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "[docking\nedge_band = \n")

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestLoad_ExplicitFile(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[preview]\ncell_width = 10\n"), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(path)
	require.NoError(t, mgr.Load())

	assert.InDelta(t, 10.0, mgr.Get().Preview.CellWidth, 1e-9)
	assert.NoFileExists(t, filepath.Join(root, "config", appName, configFileName))
}

func TestLoad_MissingExplicitFileIsAnError(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(filepath.Join(root, "missing.toml"))

	require.Error(t, mgr.Load())
	assert.NoFileExists(t, filepath.Join(root, "missing.toml"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " Warning "
	cfg.Logging.Format = ""
	cfg.Panels.Types = nil

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, DefaultPanelTypes, cfg.Panels.Types)
}

func TestGet_ReturnsACopy(t *testing.T) {
	mgr := &Manager{viper: viper.New(), config: DefaultConfig()}

	cfg := mgr.Get()
	cfg.Docking.EdgeBand = 0.4
	cfg.Panels.Types[0] = "changed"

	assert.InDelta(t, 0.25, mgr.Get().Docking.EdgeBand, 1e-9)
	assert.Equal(t, "editor", mgr.Get().Panels.Types[0])
}
