package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()

	assert.Equal(t, configSchemaID, string(schema.ID))
	data, err := json.Marshal(schema)
	require.NoError(t, err)

	for _, key := range []string{"edge_band", "resize_quiet_ms", "cell_width", "types"} {
		assert.Contains(t, string(data), `"`+key+`"`)
	}
}

func TestGenerateLayoutSchema(t *testing.T) {
	schema := GenerateLayoutSchema()

	for _, def := range []string{"LayoutDocument", "SplitterLayout", "DrawerLayout", "FrameLayout", "PanelLayout"} {
		assert.Contains(t, schema.Definitions, def)
	}

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"const":"splitter"`)
	assert.Contains(t, s, `"const":"panel"`)
	assert.Contains(t, s, `"Infinity"`)
	assert.Contains(t, s, `"panelType"`)
	assert.Contains(t, s, `"stacked"`)
}

func TestWriteSchemaFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteSchemaFiles(dir))

	for _, name := range []string{"config.schema.json", "layout.schema.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.True(t, json.Valid(data), name)
	}
}
