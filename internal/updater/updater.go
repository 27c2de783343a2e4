// Package updater runs the podbump pipeline: write the version file, rewrite
// every manifest, then optionally refresh CocoaPods lockfiles.
//
// The pipeline is fail-fast and not transactional. Files written before a
// failure stay written; in particular the version file is already updated
// when no manifests are found.
package updater

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/indaco/podbump/internal/core"
	"github.com/indaco/podbump/internal/discovery"
	"github.com/indaco/podbump/internal/podspec"
	"github.com/indaco/podbump/internal/versionfile"
)

// Logger receives progress messages.
type Logger interface {
	Infof(format string, args ...any)
	Successf(format string, args ...any)
	Skipf(format string, args ...any)
}

// Installer refreshes dependency lockfiles after the manifests change.
type Installer interface {
	Dirs(ctx context.Context, root string, manifests []string) ([]string, error)
	Run(ctx context.Context, dir string) error
}

// Options describes a single run.
type Options struct {
	// Dir is the project root holding the version file.
	Dir string

	// Version is written verbatim.
	Version string

	// VersionFile is the version file name. Defaults to versionfile.DefaultName.
	VersionFile string

	// Suffixes are the manifest suffixes. Defaults to discovery.DefaultSuffixes.
	Suffixes []string

	// Exclude holds directory glob patterns skipped while searching.
	Exclude []string
}

// Summary reports what a run changed.
type Summary struct {
	VersionFile     string
	PreviousVersion string
	Updated         []string
	Unchanged       []string
	InstallDirs     []string
}

// Updater wires the pipeline steps together.
type Updater struct {
	fs        core.FileSystem
	log       Logger
	installer Installer
}

// New creates an Updater. A nil installer skips the install step.
func New(fs core.FileSystem, log Logger, installer Installer) *Updater {
	return &Updater{
		fs:        fs,
		log:       log,
		installer: installer,
	}
}

// Run executes the pipeline. The returned Summary is populated up to the
// point of failure.
func (u *Updater) Run(ctx context.Context, opts Options) (*Summary, error) {
	summary := &Summary{}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	path, err := versionfile.Locate(ctx, u.fs, dir, opts.VersionFile)
	if err != nil {
		return summary, err
	}
	summary.VersionFile = path

	previous, err := versionfile.Read(ctx, u.fs, path)
	if err != nil {
		return summary, err
	}
	summary.PreviousVersion = previous

	u.log.Infof("Updating %s: %q -> %q", path, previous, opts.Version)
	if err := versionfile.Write(ctx, u.fs, path, opts.Version); err != nil {
		return summary, err
	}

	finder := discovery.NewFinder(u.fs, opts.Suffixes, opts.Exclude)
	manifests, err := finder.Find(ctx, dir)
	if err != nil {
		return summary, err
	}
	if len(manifests) == 0 {
		return summary, fmt.Errorf("could not find any %s files in %q: %w",
			discovery.DescribeSuffixes(finder.Suffixes()), dir, core.ErrNoManifests)
	}
	u.log.Infof("Found %d manifest(s)", len(manifests))

	writer := podspec.NewWriter(u.fs)
	for _, manifest := range manifests {
		result, err := writer.Update(ctx, manifest, opts.Version)
		if err != nil {
			return summary, err
		}

		name := relPath(dir, manifest)
		switch {
		case result.Changed:
			summary.Updated = append(summary.Updated, manifest)
			u.log.Successf("%s (%d assignment(s))", name, result.Replacements)
		case result.Replacements == 0:
			summary.Unchanged = append(summary.Unchanged, manifest)
			u.log.Skipf("%s has no version assignment", name)
		default:
			summary.Unchanged = append(summary.Unchanged, manifest)
			u.log.Skipf("%s already at %s", name, opts.Version)
		}
	}

	if u.installer == nil {
		u.log.Skipf("pod install skipped")
		return summary, nil
	}

	dirs, err := u.installer.Dirs(ctx, dir, manifests)
	if err != nil {
		return summary, err
	}
	for _, d := range dirs {
		u.log.Infof("Running pod install in %s", d)
		if err := u.installer.Run(ctx, d); err != nil {
			return summary, err
		}
		summary.InstallDirs = append(summary.InstallDirs, d)
	}

	return summary, nil
}

// relPath returns path relative to root for display, or path unchanged.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
