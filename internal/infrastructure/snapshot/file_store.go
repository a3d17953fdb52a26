package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// ErrNoPath is returned by a FileStore without a path.
var ErrNoPath = errors.New("no layout file configured")

// FileStore keeps a layout in a single JSON file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// SaveLayout writes data through a temporary file in the same directory
// and renames it over the layout file.
func (f *FileStore) SaveLayout(_ context.Context, data []byte) error {
	if f.Path == "" {
		return ErrNoPath
	}
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}

// LoadLayout reads the layout file.
func (f *FileStore) LoadLayout(_ context.Context) ([]byte, error) {
	if f.Path == "" {
		return nil, ErrNoPath
	}
	return os.ReadFile(f.Path)
}
