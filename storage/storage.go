// Package storage reads and writes project files through viant/afs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/viant/afs"
)

// DefaultFileMode is used for files written by the tools.
const DefaultFileMode os.FileMode = 0o644

// Store resolves paths against a root directory. Absolute paths and URLs
// with a scheme are used as given.
type Store struct {
	fs   afs.Service
	root string
}

// New creates a store rooted at root ("" or "." for the working directory).
func New(root string) *Store {
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Store{fs: afs.New(), root: root}
}

// Root returns the absolute root directory.
func (s *Store) Root() string {
	return s.root
}

// Resolve returns the location of path as seen by the store.
func (s *Store) Resolve(path string) string {
	if filepath.IsAbs(path) || hasScheme(path) {
		return path
	}
	return filepath.Join(s.root, path)
}

// Exists reports whether path exists.
func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	return s.fs.Exists(ctx, s.Resolve(path))
}

// ReadFile returns the full contents of path. A missing file yields an error
// matching fs.ErrNotExist.
func (s *Store) ReadFile(ctx context.Context, path string) ([]byte, error) {
	location := s.Resolve(path)

	ok, err := s.fs.Exists(ctx, location)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", location, fs.ErrNotExist)
	}

	rc, err := s.fs.OpenURL(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// WriteFile replaces the contents of path.
func (s *Store) WriteFile(ctx context.Context, path string, data []byte) error {
	return s.fs.Upload(ctx, s.Resolve(path), DefaultFileMode, bytes.NewReader(data))
}

func hasScheme(path string) bool {
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == ':':
			return i > 1 && i+2 < len(path) && path[i+1] == '/' && path[i+2] == '/'
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '+', c == '-', c == '.':
		default:
			return false
		}
	}
	return false
}
