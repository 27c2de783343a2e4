package podspec

import (
	"context"
	"fmt"

	"github.com/indaco/podbump/internal/core"
)

// Result describes what Update did to a single manifest.
type Result struct {
	// Path is the manifest that was processed.
	Path string

	// Replacements is the number of version assignments rewritten.
	Replacements int

	// Changed reports whether the file content differs and was written back.
	Changed bool
}

// Writer reads, rewrites and writes manifests through a core.FileSystem.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a Writer backed by fs.
func NewWriter(fs core.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// Update rewrites the version in the manifest at path. Files whose content
// would not change are left alone.
func (w *Writer) Update(ctx context.Context, path, version string) (Result, error) {
	result := Result{Path: path}

	data, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		return result, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	var updated []byte
	if IsJSON(path) {
		out, changed, err := RewriteJSON(data, version)
		if err != nil {
			return result, fmt.Errorf("failed to rewrite manifest %q: %w", path, err)
		}
		if changed {
			result.Replacements = 1
		}
		updated = out
	} else {
		out, n := Rewrite(string(data), version)
		result.Replacements = n
		updated = []byte(out)
	}

	if string(updated) == string(data) {
		return result, nil
	}

	if err := w.fs.WriteFile(ctx, path, updated, core.PermFile); err != nil {
		return result, fmt.Errorf("failed to write manifest %q: %w", path, err)
	}
	result.Changed = true

	return result, nil
}
