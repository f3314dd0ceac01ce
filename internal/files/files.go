// Package files wraps file access with a small, distinguishable error
// taxonomy so callers can tell a missing input from a permission problem
// without inspecting OS error strings.
package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Err* are the distinguishable failure classes for file access. Every
// returned error wraps one of these (or the raw OS error) together with the
// offending path.
var (
	ErrNotFound   = errors.New("not found")
	ErrPermission = errors.New("permission denied")
)

// Stat reports metadata for path with the package error taxonomy applied.
func Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%s: %w", path, ErrPermission)
	case err != nil:
		return nil, fmt.Errorf("inspecting %s: %w", path, err)
	}
	return info, nil
}

// Read returns the contents of the file at path.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%s: %w", path, ErrPermission)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Write writes data to the file at path, creating intermediate directories
// as needed.
func Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return fmt.Errorf("%s: %w", dir, ErrPermission)
			}
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%s: %w", path, ErrPermission)
		}
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
