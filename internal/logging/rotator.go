package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileWriter is an io.Writer appending to a log file and rotating it once it
// grows past maxSize. Rotated files are kept as name.1 (newest) .. name.N.
// Used when stderr is owned by a terminal UI.
type FileWriter struct {
	mu          sync.Mutex
	path        string
	maxSize     int64 // bytes
	maxBackups  int
	currentFile *os.File
	currentSize int64
}

// NewFileWriter opens (or creates) path for appending.
func NewFileWriter(path string, maxSizeMB, maxBackups int) (*FileWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := &FileWriter{
		path:       path,
		maxSize:    int64(maxSizeMB) * 1024 * 1024, // Convert MB to bytes
		maxBackups: maxBackups,
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *FileWriter) open() error {
	if info, err := os.Stat(w.path); err == nil {
		w.currentSize = info.Size()
	}

	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	w.currentFile = file
	return nil
}

func (w *FileWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentFile == nil {
		if err := w.open(); err != nil {
			return 0, err
		}
	}

	if w.maxSize > 0 && w.currentSize > 0 && w.currentSize+int64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err = w.currentFile.Write(p)
	w.currentSize += int64(n)
	return n, err
}

// rotate shifts name.i to name.i+1, dropping the oldest, then reopens path.
func (w *FileWriter) rotate() error {
	if err := w.currentFile.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	w.currentFile = nil

	if w.maxBackups <= 0 {
		if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to truncate log file: %w", err)
		}
	} else {
		_ = os.Remove(w.backupName(w.maxBackups))
		for i := w.maxBackups - 1; i >= 1; i-- {
			if _, err := os.Stat(w.backupName(i)); err == nil {
				if err := os.Rename(w.backupName(i), w.backupName(i+1)); err != nil {
					return fmt.Errorf("failed to rotate log file: %w", err)
				}
			}
		}
		if err := os.Rename(w.path, w.backupName(1)); err != nil {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	w.currentSize = 0
	return w.open()
}

func (w *FileWriter) backupName(i int) string {
	return fmt.Sprintf("%s.%d", w.path, i)
}

// Close closes the current file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentFile == nil {
		return nil
	}
	err := w.currentFile.Close()
	w.currentFile = nil
	return err
}
