package discovery

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/indaco/podbump/internal/core"
)

// Finder collects manifest files under a root directory.
type Finder struct {
	fs       core.FileSystem
	suffixes []string
	excludes []string
}

// NewFinder creates a Finder matching suffixes and skipping directories whose
// name or path matches one of the excludes glob patterns. An empty suffixes
// list falls back to DefaultSuffixes.
func NewFinder(fs core.FileSystem, suffixes, excludes []string) *Finder {
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes()
	}
	return &Finder{
		fs:       fs,
		suffixes: suffixes,
		excludes: excludes,
	}
}

// Suffixes returns the suffixes the Finder matches.
func (f *Finder) Suffixes() []string {
	return f.suffixes
}

// Find returns every matching file reachable from root, in lexical
// depth-first order. Directory symlinks are not followed. A read failure on
// any directory aborts the walk.
func (f *Finder) Find(ctx context.Context, root string) ([]string, error) {
	var found []string
	if err := f.walk(ctx, root, &found); err != nil {
		return nil, err
	}
	return found, nil
}

func (f *Finder) walk(ctx context.Context, dir string, found *[]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := f.fs.ReadDir(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if f.shouldExclude(name, path) {
				continue
			}
			if err := f.walk(ctx, path, found); err != nil {
				return err
			}
			continue
		}

		if MatchesSuffix(name, f.suffixes) {
			*found = append(*found, path)
		}
	}

	return nil
}

// shouldExclude checks a directory against the configured exclude patterns.
func (f *Finder) shouldExclude(name, path string) bool {
	for _, pattern := range f.excludes {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, path); matched {
			return true
		}
	}
	return false
}
