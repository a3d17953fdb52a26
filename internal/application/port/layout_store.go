package port

import "context"

// LayoutStore persists serialized layout documents.
type LayoutStore interface {
	// SaveLayout replaces the stored layout with data.
	SaveLayout(ctx context.Context, data []byte) error
	// LoadLayout returns the stored layout. A missing layout wraps os.ErrNotExist.
	LoadLayout(ctx context.Context) ([]byte, error)
}
