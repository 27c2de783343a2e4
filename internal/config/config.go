// Package config loads the optional podbump project configuration from
// .podbump.yaml or .podbump.toml.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/podbump/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath names an explicit configuration file, overriding lookup.
const EnvConfigPath = "PODBUMP_CONFIG"

// DefaultFiles are looked up in the project directory, in order.
var DefaultFiles = []string{".podbump.yaml", ".podbump.yml", ".podbump.toml"}

// PodInstallConfig controls the `pod install` step.
type PodInstallConfig struct {
	Skip    bool   `yaml:"skip" toml:"skip"`
	Fast    bool   `yaml:"fast" toml:"fast"`
	Command string `yaml:"command,omitempty" toml:"command,omitempty"`
}

// Config is the podbump project configuration.
type Config struct {
	// VersionFile is the name of the version file at the project root.
	VersionFile string `yaml:"version_file,omitempty" toml:"version_file,omitempty"`

	// Suffixes are the manifest file suffixes to search for.
	Suffixes []string `yaml:"suffixes,omitempty" toml:"suffixes,omitempty"`

	// Exclude holds glob patterns of directories to skip while searching.
	Exclude []string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`

	PodInstall *PodInstallConfig `yaml:"pod_install,omitempty" toml:"pod_install,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		VersionFile: "VERSION",
		Suffixes:    []string{".podspec"},
		PodInstall:  &PodInstallConfig{},
	}
}

// Load reads the configuration for the project in dir. It returns the
// defaults and an empty path when no configuration file exists.
func Load(ctx context.Context, fsys core.FileSystem, dir string) (*Config, string, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		cfg, err := LoadFile(ctx, fsys, filepath.Clean(envPath))
		if err != nil {
			return nil, "", err
		}
		return cfg, envPath, nil
	}

	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		cfg, err := LoadFile(ctx, fsys, path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}

	return Default(), "", nil
}

// LoadFile decodes a single configuration file, choosing the format from its
// extension. Unknown keys are rejected. Missing fields take default values.
func LoadFile(ctx context.Context, fsys core.FileSystem, path string) (*Config, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.VersionFile == "" {
		c.VersionFile = def.VersionFile
	}
	if len(c.Suffixes) == 0 {
		c.Suffixes = def.Suffixes
	}
	if c.PodInstall == nil {
		c.PodInstall = def.PodInstall
	}
}
