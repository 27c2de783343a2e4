// Package cli defines the podbump command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/indaco/podbump/internal/config"
	"github.com/indaco/podbump/internal/core"
	"github.com/indaco/podbump/internal/discovery"
	"github.com/indaco/podbump/internal/podinstall"
	"github.com/indaco/podbump/internal/printer"
	"github.com/indaco/podbump/internal/tui"
	"github.com/indaco/podbump/internal/updater"
	"github.com/indaco/podbump/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

func init() {
	// -v is taken by --verbose.
	urfavecli.VersionFlag = &urfavecli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

// New builds the root podbump command writing progress to stdout and
// diagnostics to stderr.
func New(stdout, stderr io.Writer) *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "podbump",
		Version:   version.GetVersion(),
		Usage:     "Write a release version to VERSION and every .podspec under a directory",
		UsageText: "podbump [--verbose] [--dir path] [--skip_pod_install | --fast_pod_install] <version>",
		ArgsUsage: "<version>",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Print progress messages",
				Sources: urfavecli.EnvVars("PODBUMP_VERBOSE"),
			},
			&urfavecli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Project directory holding the VERSION file",
				Value:   ".",
				Sources: urfavecli.EnvVars("PODBUMP_DIR"),
			},
			&urfavecli.BoolFlag{
				Name:  "skip_pod_install",
				Usage: "Do not run pod install after updating the manifests",
			},
			&urfavecli.BoolFlag{
				Name:  "fast_pod_install",
				Usage: "Run pod install with --no-repo-update",
			},
			&urfavecli.BoolFlag{
				Name:  "json",
				Usage: "Also update .podspec.json manifests",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))
			return ctx, nil
		},
		Action: run,
	}
}

// run resolves flags and configuration and executes the update pipeline.
func run(ctx context.Context, cmd *urfavecli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("expected exactly one <version> argument, got %d", cmd.NArg())
	}
	newVersion := cmd.Args().First()
	dir := cmd.String("dir")

	fs := core.NewOSFileSystem()
	cfg, cfgPath, err := config.Load(ctx, fs, dir)
	if err != nil {
		return err
	}
	results := config.Validate(cfg)
	if err := config.Err(results); err != nil {
		return err
	}

	log := printer.NewLogger(cmd.Root().Writer, cmd.Bool("verbose"))
	if cfgPath != "" {
		log.Infof("Using config %s", cfgPath)
	}
	for _, w := range config.Warnings(results) {
		log.Infof("%s %s", printer.Warning("warning:"), w)
	}

	suffixes := cfg.Suffixes
	if cmd.Bool("json") && !slices.Contains(suffixes, discovery.PodspecJSONSuffix) {
		suffixes = append(slices.Clone(suffixes), discovery.PodspecJSONSuffix)
	}

	var installer updater.Installer
	if !cmd.Bool("skip_pod_install") && !cfg.PodInstall.Skip {
		installer = &spinningInstaller{
			Runner: podinstall.NewRunner(fs, podinstall.Options{
				Command: cfg.PodInstall.Command,
				Fast:    cmd.Bool("fast_pod_install") || cfg.PodInstall.Fast,
			}),
		}
	}

	summary, err := updater.New(fs, log, installer).Run(ctx, updater.Options{
		Dir:         dir,
		Version:     newVersion,
		VersionFile: cfg.VersionFile,
		Suffixes:    suffixes,
		Exclude:     cfg.Exclude,
	})
	if err != nil {
		return err
	}

	log.Successf("Updated %s and %d manifest(s) to %s", summary.VersionFile, len(summary.Updated), printer.Bold(newVersion))
	return nil
}

// spinningInstaller shows a spinner while pod install runs.
type spinningInstaller struct {
	*podinstall.Runner
}

func (s *spinningInstaller) Run(ctx context.Context, dir string) error {
	return tui.RunWithSpinner(ctx, "pod install in "+dir, func(ctx context.Context) error {
		return s.Runner.Run(ctx, dir)
	})
}
