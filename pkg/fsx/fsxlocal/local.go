package fsxlocal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/roster-ats/roster/pkg/fsx"
)

// LocalFileSystem implements fsx.FileSystem on a directory of the local disk.
// All paths are resolved relative to the root and may not escape it.
type LocalFileSystem struct {
	root string
}

// NewLocalFileSystem creates a filesystem rooted at root, creating the
// directory if needed.
func NewLocalFileSystem(root string) (*LocalFileSystem, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create root %s: %w", root, err)
	}
	return &LocalFileSystem{root: root}, nil
}

// Root returns the directory this filesystem is rooted at
func (l *LocalFileSystem) Root() string {
	return l.root
}

func (l *LocalFileSystem) Join(parts ...string) string {
	return path.Join(parts...)
}

// resolve maps a relative path onto the root, rejecting escapes
func (l *LocalFileSystem) resolve(p string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(p))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("path %q escapes filesystem root", p)
	}
	return filepath.Join(l.root, clean), nil
}

func (l *LocalFileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	full, err := l.resolve(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create parent dir for %s: %w", p, err)
	}

	// Write to a temp sibling and rename so readers never observe a
	// partially written file.
	tmp := full + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	if err := os.Rename(tmp, full); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", p, err)
	}
	return nil
}

func (l *LocalFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	full, err := l.resolve(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fsx.ErrNotFound
	}
	return data, err
}

func (l *LocalFileSystem) ReadFileStream(ctx context.Context, p string) (io.ReadCloser, error) {
	full, err := l.resolve(p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fsx.ErrNotFound
	}
	return f, err
}

func (l *LocalFileSystem) DeleteFile(ctx context.Context, p string) error {
	full, err := l.resolve(p)
	if err != nil {
		return err
	}
	err = os.Remove(full)
	if errors.Is(err, fs.ErrNotExist) {
		return fsx.ErrNotFound
	}
	return err
}

func (l *LocalFileSystem) Exists(ctx context.Context, p string) (bool, error) {
	full, err := l.resolve(p)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
