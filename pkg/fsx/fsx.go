package fsx

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when the requested path does not exist
var ErrNotFound = errors.New("fsx: file not found")

// FileSystem abstracts the blob store that backs uploaded assets.
// Paths are relative and use forward slashes regardless of the backend.
type FileSystem interface {
	// Join builds a backend-appropriate path from segments
	Join(parts ...string) string

	// WriteFile persists data under path, replacing any existing content
	WriteFile(ctx context.Context, path string, data []byte) error

	// ReadFile returns the full content at path, ErrNotFound when absent
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// ReadFileStream opens the content at path for streaming reads
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)

	// DeleteFile removes the file at path, ErrNotFound when absent
	DeleteFile(ctx context.Context, path string) error

	// Exists reports whether a file is present at path
	Exists(ctx context.Context, path string) (bool, error)
}

// IsNotFound reports whether err means the path was absent
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
