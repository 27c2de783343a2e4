// Package versionfile locates and overwrites the canonical VERSION file.
package versionfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/indaco/podbump/internal/core"
)

// DefaultName is the file name looked up at the root of the working directory.
const DefaultName = "VERSION"

// Locate returns the path of the version file named name directly under dir.
// It fails with core.ErrVersionFileNotFound when dir or the file is missing.
func Locate(ctx context.Context, fsys core.FileSystem, dir, name string) (string, error) {
	if name == "" {
		name = DefaultName
	}

	info, err := fsys.Stat(ctx, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("could not find %s: directory %q does not exist: %w", name, dir, core.ErrVersionFileNotFound)
		}
		return "", fmt.Errorf("could not access directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("could not find %s: %q is not a directory: %w", name, dir, core.ErrVersionFileNotFound)
	}

	path := filepath.Join(dir, name)
	info, err = fsys.Stat(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("could not find %s file in %q: %w", name, dir, core.ErrVersionFileNotFound)
		}
		return "", fmt.Errorf("could not access %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%q is a directory: %w", path, core.ErrVersionFileNotFound)
	}

	return path, nil
}

// Read returns the current content of the version file, verbatim.
func Read(ctx context.Context, fsys core.FileSystem, path string) (string, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to read version file %q: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the whole content of the version file with version. No
// newline is appended.
func Write(ctx context.Context, fsys core.FileSystem, path, version string) error {
	if err := fsys.WriteFile(ctx, path, []byte(version), core.PermFile); err != nil {
		return fmt.Errorf("failed to write version file %q: %w", path, err)
	}
	return nil
}
