// Command podbump writes a release version to the VERSION file and to the
// version field of every CocoaPods podspec under a directory.
package main

import (
	"context"
	"io"
	"os"

	"github.com/indaco/podbump/internal/cli"
	"github.com/indaco/podbump/internal/printer"
)

func main() {
	if err := runCLI(os.Args, os.Stdout, os.Stderr); err != nil {
		printer.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// runCLI builds and runs the root command.
func runCLI(args []string, stdout, stderr io.Writer) error {
	return cli.New(stdout, stderr).Run(context.Background(), args)
}
