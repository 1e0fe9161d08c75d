package ports

import (
	"context"
	"io"
)

// BlobStore persists raw document content addressed by stored filename.
// The registry row is the source of truth; the store is an opaque
// collaborator and performs no existence bookkeeping of its own.
type BlobStore interface {
	Save(ctx context.Context, filename string, content io.Reader) error
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
}
