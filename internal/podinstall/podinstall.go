// Package podinstall shells out to CocoaPods to refresh lockfiles after the
// manifests have been rewritten.
package podinstall

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/indaco/podbump/internal/core"
)

// DefaultCommand is the executable invoked when none is configured.
const DefaultCommand = "pod"

// Podfile is the file that marks a directory as a CocoaPods project.
const Podfile = "Podfile"

// execCommand is swapped in tests.
var execCommand = exec.CommandContext

// Options configures a Runner.
type Options struct {
	// Command is the executable to run. Defaults to DefaultCommand.
	Command string

	// Fast skips the spec repo update (`--no-repo-update`).
	Fast bool
}

// Runner runs `pod install` in CocoaPods project directories.
type Runner struct {
	fs      core.FileSystem
	command string
	fast    bool
}

// NewRunner creates a Runner.
func NewRunner(fs core.FileSystem, opts Options) *Runner {
	command := opts.Command
	if command == "" {
		command = DefaultCommand
	}
	return &Runner{
		fs:      fs,
		command: command,
		fast:    opts.Fast,
	}
}

// Args returns the arguments passed to the pod executable.
func (r *Runner) Args() []string {
	args := []string{"install"}
	if r.fast {
		args = append(args, "--no-repo-update")
	}
	return args
}

// Dirs returns the directories that hold a Podfile, chosen among root and the
// directories of the given manifests. The result is sorted and unique.
func (r *Runner) Dirs(ctx context.Context, root string, manifests []string) ([]string, error) {
	candidates := []string{filepath.Clean(root)}
	for _, m := range manifests {
		candidates = append(candidates, filepath.Dir(m))
	}
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	var dirs []string
	for _, dir := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := r.fs.Stat(ctx, filepath.Join(dir, Podfile))
		if err != nil || info.IsDir() {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// Run executes the install command inside dir.
func (r *Runner) Run(ctx context.Context, dir string) error {
	cmd := execCommand(ctx, r.command, r.Args()...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return fmt.Errorf("%s %s failed in %q: %s: %w", r.command, strings.Join(r.Args(), " "), dir, stderrMsg, err)
		}
		return fmt.Errorf("%s %s failed in %q: %w", r.command, strings.Join(r.Args(), " "), dir, err)
	}
	return nil
}
