package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// ErrInvalidPath is returned for paths that escape the store root.
var ErrInvalidPath = errors.New("invalid asset path")

// AferoStore serves assets from an afero filesystem. Production wraps the
// embedded web assets; tests use an in-memory filesystem.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewEmbeddedStore exposes the sub-directory root of an embedded filesystem.
func NewEmbeddedStore(embedded fs.FS, root string) (*AferoStore, error) {
	sub, err := fs.Sub(embedded, root)
	if err != nil {
		return nil, fmt.Errorf("open embedded assets %q: %w", root, err)
	}
	return NewAferoStore(afero.FromIOFS{FS: sub}), nil
}

// Open opens an asset for reading.
func (s *AferoStore) Open(ctx context.Context, name string) (io.ReadSeekCloser, error) {
	clean, err := cleanPath(name)
	if err != nil {
		return nil, err
	}
	return s.fs.OpenFile(clean, os.O_RDONLY, 0)
}

// Stat describes an asset without opening it.
func (s *AferoStore) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	clean, err := cleanPath(name)
	if err != nil {
		return nil, err
	}
	return s.fs.Stat(clean)
}

// cleanPath turns a URL-ish path into a slash separated relative path.
func cleanPath(name string) (string, error) {
	clean := path.Clean("/" + name)
	clean = strings.TrimPrefix(clean, "/")
	if clean == "" || clean == "." || !fs.ValidPath(clean) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	return clean, nil
}
