// Package storage provides the blob-storage collaborator for uploaded
// product images. The local-disk implementation writes files under a
// directory that the HTTP layer serves back as /static/images.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const publicPrefix = "/static/images"

// LocalImageStore saves uploads to a directory on the local filesystem.
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore creates the target directory when missing.
func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Save writes content to disk under filename and returns the public URL.
// The filename is sanitised to its base name so uploads cannot escape the
// target directory.
func (s *LocalImageStore) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	name := filepath.Base(filename)
	target := filepath.Join(s.dir, name)

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("write image file: %w", err)
	}

	return publicPrefix + "/" + name, nil
}
