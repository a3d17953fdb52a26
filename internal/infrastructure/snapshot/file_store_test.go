package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "layout.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.SaveLayout(ctx, []byte("first")))
	require.NoError(t, store.SaveLayout(ctx, []byte("second")))

	data, err := store.LoadLayout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
}

func TestFileStore_Missing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "layout.json"))
	_, err := store.LoadLayout(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileStore_NoPath(t *testing.T) {
	store := NewFileStore("")
	assert.ErrorIs(t, store.SaveLayout(context.Background(), nil), ErrNoPath)
	_, err := store.LoadLayout(context.Background())
	assert.ErrorIs(t, err, ErrNoPath)
}
