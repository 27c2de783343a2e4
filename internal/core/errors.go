package core

import "errors"

var (
	// ErrVersionFileNotFound is returned when the version file cannot be located
	// under the working directory.
	ErrVersionFileNotFound = errors.New("version file not found")

	// ErrNoManifests is returned when the directory walk finds no manifest files.
	ErrNoManifests = errors.New("no manifest files found")
)
