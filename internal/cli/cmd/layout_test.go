package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/config"
	"github.com/bnema/dockyard/internal/docking"
	"github.com/bnema/dockyard/internal/infrastructure/container"
)

func headlessDocker(types ...string) dockerFactory {
	return func() *docking.Docker {
		d := docking.New(context.Background(), container.NewFixed(defaultLayoutWidth, defaultLayoutHeight), nil, docking.Options{})
		cli.RegisterPanelTypes(d, types)
		return d
	}
}

func writeDemo(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := demoLayout(headlessDocker()())
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, layoutFilePerm))
	return path
}

func TestDemoLayout_IsIndentedAndRestorable(t *testing.T) {
	data, err := demoLayout(headlessDocker()())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  "))
	assert.True(t, json.Valid(data))

	d := headlessDocker(cli.DemoPanelTypes...)()
	require.NoError(t, d.Restore(data))
	assert.Len(t, d.FindPanels(""), 6)
}

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeDemo(t, dir, "good.json")
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"version":1,"root":{"type":"nope"}}`), layoutFilePerm))
	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte("not json"), layoutFilePerm))
	missing := filepath.Join(dir, "missing.json")

	paths := []string{good, broken, garbage, missing}
	results := validateFiles(context.Background(), paths, 2, false, headlessDocker(cli.DemoPanelTypes...))

	require.Len(t, results, len(paths))
	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
	}
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 6, results[0].Panels)
	assert.ErrorIs(t, results[1].Err, docking.ErrMalformedLayout)
	assert.ErrorIs(t, results[2].Err, docking.ErrMalformedLayout)
	assert.ErrorIs(t, results[3].Err, os.ErrNotExist)
}

func TestValidateFiles_UnknownTypes(t *testing.T) {
	path := writeDemo(t, t.TempDir(), "layout.json")

	strict := validateFiles(context.Background(), []string{path}, 1, false, headlessDocker("editor"))
	assert.ErrorIs(t, strict[0].Err, docking.ErrUnknownPanelType)

	lenient := validateFiles(context.Background(), []string{path}, 1, true, headlessDocker("editor"))
	assert.NoError(t, lenient[0].Err)
	assert.Equal(t, 6, lenient[0].Panels)
}

func TestValidateFiles_ManyFilesInParallel(t *testing.T) {
	dir := t.TempDir()
	src := writeDemo(t, dir, "src.json")
	data, err := os.ReadFile(src)
	require.NoError(t, err)

	var paths []string
	for i := range 16 {
		p := filepath.Join(dir, "copy"+strings.Repeat("x", i)+".json")
		require.NoError(t, os.WriteFile(p, data, layoutFilePerm))
		paths = append(paths, p)
	}

	results := validateFiles(context.Background(), paths, 4, false, headlessDocker(cli.DemoPanelTypes...))
	for _, res := range results {
		assert.NoError(t, res.Err, res.Path)
	}
}

func TestValidateFiles_CancelledContext(t *testing.T) {
	path := writeDemo(t, t.TempDir(), "layout.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := validateFiles(ctx, []string{path}, 1, false, headlessDocker(cli.DemoPanelTypes...))
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	failed := printResults(&buf, styles.NewLayoutRenderer(styles.NewTheme()), []checkResult{
		{Path: "a.json", Panels: 2},
		{Path: "b.json", Err: docking.ErrMalformedLayout},
	})

	assert.Equal(t, 1, failed)
	assert.Contains(t, buf.String(), "a.json")
	assert.Contains(t, buf.String(), "malformed layout")
	assert.Contains(t, buf.String(), "1 valid, 1 invalid")
}

func TestWriteSchema(t *testing.T) {
	for _, which := range []string{"config", "layout"} {
		t.Run(which, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeSchema(&buf, which))
			assert.True(t, json.Valid(buf.Bytes()))
		})
	}

	assert.Error(t, writeSchema(&bytes.Buffer{}, "nope"))
}

func TestResolvePreviewLayout(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", filepath.Join(t.TempDir(), "data"))
	t.Cleanup(func() { previewLayoutFile = "" })

	cfg := config.DefaultConfig()
	path, err := resolvePreviewLayout(cfg)
	require.NoError(t, err)
	assert.Equal(t, "layout.json", filepath.Base(path))

	cfg.Preview.LayoutFile = "/tmp/from-config.json"
	path, err = resolvePreviewLayout(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-config.json", path)

	previewLayoutFile = "/tmp/from-flag.json"
	path, err = resolvePreviewLayout(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-flag.json", path)
}

func TestUserManDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	dir, err := userManDir()
	require.NoError(t, err)
	assert.Equal(t, "/data/man/man1", dir)
}

func TestGenerateDocs(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, generateDocs(&out, rootCmd, "markdown", dir))
	assert.FileExists(t, filepath.Join(dir, "dockyard.md"))
	assert.FileExists(t, filepath.Join(dir, "dockyard_layout_validate.md"))
	assert.Contains(t, out.String(), "dockyard_layout_inspect.md")

	err := generateDocs(&out, rootCmd, "html", dir)
	assert.ErrorContains(t, err, `unsupported format "html"`)
}
