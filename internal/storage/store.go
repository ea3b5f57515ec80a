package storage

import (
	"context"
	"io"
	"os"
)

// Store defines the interface for a read-only asset backend.
type Store interface {
	Open(ctx context.Context, path string) (io.ReadSeekCloser, error)
	Stat(ctx context.Context, path string) (os.FileInfo, error)
}
