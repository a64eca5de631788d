// internal/app/store/snapshot/file.go
package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File is a Backend that persists the blob as a single file on disk.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated snapshot.
type File struct {
	path string
}

// NewFile returns a file backend rooted at path, creating the parent
// directory if needed.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &File{path: path}, nil
}

func (f *File) Load(ctx context.Context) ([]byte, bool, error) {
	b, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot file: %w", err)
	}
	return b, true, nil
}

func (f *File) Store(ctx context.Context, b []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}
	return nil
}

func (f *File) Close(ctx context.Context) error { return nil }
