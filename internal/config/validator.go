package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Field is the configuration key that was checked.
	Field string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validate checks cfg and returns one result per check.
func Validate(cfg *Config) []ValidationResult {
	var results []ValidationResult
	add := func(field string, passed bool, message string, warning bool) {
		results = append(results, ValidationResult{Field: field, Passed: passed, Message: message, Warning: warning})
	}

	switch {
	case cfg.VersionFile == "":
		add("version_file", false, "version_file must not be empty", false)
	case strings.ContainsRune(cfg.VersionFile, '/') || strings.ContainsRune(cfg.VersionFile, filepath.Separator):
		add("version_file", false, fmt.Sprintf("version_file %q must be a file name, not a path", cfg.VersionFile), false)
	default:
		add("version_file", true, "", false)
	}

	if len(cfg.Suffixes) == 0 {
		add("suffixes", false, "at least one manifest suffix is required", false)
	}
	for i, suffix := range cfg.Suffixes {
		switch {
		case suffix == "":
			add("suffixes", false, fmt.Sprintf("suffix #%d is empty", i+1), false)
		case !strings.HasPrefix(suffix, "."):
			add("suffixes", false, fmt.Sprintf("suffix %q does not start with a dot and may match unrelated files", suffix), true)
		case slices.Index(cfg.Suffixes, suffix) != i:
			add("suffixes", false, fmt.Sprintf("suffix %q is listed more than once", suffix), true)
		default:
			add("suffixes", true, "", false)
		}
	}

	for _, pattern := range cfg.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			add("exclude", false, fmt.Sprintf("invalid exclude pattern %q: %v", pattern, err), false)
			continue
		}
		add("exclude", true, "", false)
	}

	if cfg.PodInstall != nil && strings.TrimSpace(cfg.PodInstall.Command) != cfg.PodInstall.Command {
		add("pod_install.command", false, fmt.Sprintf("command %q has surrounding whitespace", cfg.PodInstall.Command), false)
	}

	return results
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	return ErrorCount(results) > 0
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// Warnings returns the messages of the results flagged as warnings.
func Warnings(results []ValidationResult) []string {
	var warnings []string
	for _, r := range results {
		if r.Warning {
			warnings = append(warnings, r.Message)
		}
	}
	return warnings
}

// Err joins every failed check into a single error, or returns nil.
func Err(results []ValidationResult) error {
	var errs []error
	for _, r := range results {
		if !r.Passed && !r.Warning {
			errs = append(errs, fmt.Errorf("%s: %s", r.Field, r.Message))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
}
