package core

import "os"

const (
	// PermOwnerRW is read/write for the owner only.
	PermOwnerRW os.FileMode = 0o600

	// PermFile is the default mode for files podbump creates (rw-r--r--).
	PermFile os.FileMode = 0o644

	// PermDir is the default mode for directories created in tests and fixtures.
	PermDir os.FileMode = 0o755
)
