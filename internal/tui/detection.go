// Package tui decides whether podbump may draw animated terminal output and
// draws it when it can.
package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables set by common CI providers.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_HOME",
	"BUILDKITE",
	"BITBUCKET_BUILD_NUMBER",
	"BITRISE_IO",
	"CODEMAGIC",
	"XCS", // Xcode Cloud
	"TF_BUILD",
}

// isTerminalFn is swapped in tests.
var isTerminalFn = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// IsInteractive reports whether stdout is a terminal outside of CI. Animated
// output such as spinners is only shown when it returns true.
func IsInteractive() bool {
	if !isTerminalFn() {
		return false
	}
	return !InCI()
}

// InCI reports whether a known CI environment variable is set.
func InCI() bool {
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return isTerminalFn()
}
