// Package storage implements the document blob store on the local
// filesystem under a fixed root directory.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore writes and reads blobs addressed by stored filename. Paths
// are derived deterministically from the filename; its base component
// is used so a crafted name can never escape the root.
type DiskStore struct {
	root string
}

// NewDiskStore ensures the root directory exists and returns the store.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create document root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(_ context.Context, filename string, content io.Reader) error {
	f, err := os.Create(s.path(filename))
	if err != nil {
		return fmt.Errorf("create blob: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		_ = f.Close()
		return fmt.Errorf("write blob: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close blob: %w", err)
	}
	return nil
}

func (s *DiskStore) Open(_ context.Context, filename string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(filename))
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}

func (s *DiskStore) path(filename string) string {
	return filepath.Join(s.root, filepath.Base(filename))
}
