package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/podbump/internal/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), core.PermDir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), core.PermFile); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

const fooPodspec = `Pod::Spec.new do |s|
  s.name         = "Foo"
  s.version      = "1.0.0"
  s.summary      = "Foo components."
end
`

func TestRunCLI_UpdatesVersionAndPodspec(t *testing.T) {
	t.Setenv("PODBUMP_CONFIG", "")
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "VERSION"), "1.0.0")
	writeFile(t, filepath.Join(tmp, "Foo.podspec"), fooPodspec)

	var stdout, stderr bytes.Buffer
	err := runCLI([]string{"podbump", "--dir", tmp, "--skip_pod_install", "2.0.0"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := readFile(t, filepath.Join(tmp, "VERSION")); got != "2.0.0" {
		t.Errorf("VERSION = %q, want %q", got, "2.0.0")
	}
	want := strings.Replace(fooPodspec, `s.version      = "1.0.0"`, `s.version      = "2.0.0"`, 1)
	if got := readFile(t, filepath.Join(tmp, "Foo.podspec")); got != want {
		t.Errorf("Foo.podspec = %q, want %q", got, want)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output without --verbose, got %q", stdout.String())
	}
}

func TestRunCLI_Verbose(t *testing.T) {
	t.Setenv("PODBUMP_CONFIG", "")
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "VERSION"), "1.0.0")
	writeFile(t, filepath.Join(tmp, "ios", "Foo.podspec"), fooPodspec)

	var stdout, stderr bytes.Buffer
	err := runCLI([]string{"podbump", "-v", "--dir", tmp, "--skip_pod_install", "2.0.0"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := stdout.String()
	for _, want := range []string{"VERSION", "Found 1 manifest(s)", filepath.Join("ios", "Foo.podspec"), "pod install skipped"} {
		if !strings.Contains(output, want) {
			t.Errorf("verbose output missing %q:\n%s", want, output)
		}
	}
}

func TestRunCLI_NoPodspecs(t *testing.T) {
	t.Setenv("PODBUMP_CONFIG", "")
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "VERSION"), "1.0.0")
	writeFile(t, filepath.Join(tmp, "README.md"), "# readme\n")

	var stdout, stderr bytes.Buffer
	err := runCLI([]string{"podbump", "--dir", tmp, "--skip_pod_install", "2.0.0"}, &stdout, &stderr)
	if !errors.Is(err, core.ErrNoManifests) {
		t.Fatalf("expected ErrNoManifests, got %v", err)
	}
	if !strings.Contains(err.Error(), "could not find any .podspec files") {
		t.Errorf("unexpected message: %v", err)
	}
	if got := readFile(t, filepath.Join(tmp, "VERSION")); got != "2.0.0" {
		t.Errorf("VERSION = %q, want it updated without rollback", got)
	}
}

func TestRunCLI_MissingVersionFile(t *testing.T) {
	t.Setenv("PODBUMP_CONFIG", "")
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "Foo.podspec"), fooPodspec)

	var stdout, stderr bytes.Buffer
	err := runCLI([]string{"podbump", "--dir", tmp, "2.0.0"}, &stdout, &stderr)
	if !errors.Is(err, core.ErrVersionFileNotFound) {
		t.Fatalf("expected ErrVersionFileNotFound, got %v", err)
	}
	if got := readFile(t, filepath.Join(tmp, "Foo.podspec")); got != fooPodspec {
		t.Errorf("Foo.podspec touched: %q", got)
	}
}

func TestRunCLI_MissingDirectory(t *testing.T) {
	t.Setenv("PODBUMP_CONFIG", "")
	var stdout, stderr bytes.Buffer
	err := runCLI([]string{"podbump", "--dir", filepath.Join(t.TempDir(), "nope"), "2.0.0"}, &stdout, &stderr)
	if !errors.Is(err, core.ErrVersionFileNotFound) {
		t.Fatalf("expected ErrVersionFileNotFound, got %v", err)
	}
}

func TestRunCLI_MissingArgument(t *testing.T) {
	t.Setenv("PODBUMP_CONFIG", "")
	var stdout, stderr bytes.Buffer
	err := runCLI([]string{"podbump", "--dir", t.TempDir()}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected error for missing version, got nil")
	}
	if !strings.Contains(err.Error(), "<version>") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunCLI_ConfigFile(t *testing.T) {
	t.Setenv("PODBUMP_CONFIG", "")
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, ".podbump.yaml"), "version_file: version.txt\npod_install:\n  skip: true\n")
	writeFile(t, filepath.Join(tmp, "version.txt"), "1.0.0")
	writeFile(t, filepath.Join(tmp, "Foo.podspec"), fooPodspec)
	// A Podfile would trigger pod install unless the config skips it.
	writeFile(t, filepath.Join(tmp, "Podfile"), "target 'App' do\nend\n")

	var stdout, stderr bytes.Buffer
	err := runCLI([]string{"podbump", "--dir", tmp, "3.0.0"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, filepath.Join(tmp, "version.txt")); got != "3.0.0" {
		t.Errorf("version.txt = %q", got)
	}
}

func TestRunCLI_JSONFlag(t *testing.T) {
	t.Setenv("PODBUMP_CONFIG", "")
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "VERSION"), "1.0.0")
	writeFile(t, filepath.Join(tmp, "Foo.podspec.json"), "{\n  \"name\": \"Foo\",\n  \"version\": \"1.0.0\"\n}\n")

	var stdout, stderr bytes.Buffer
	err := runCLI([]string{"podbump", "--dir", tmp, "--skip_pod_install", "--json", "2.0.0"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, filepath.Join(tmp, "Foo.podspec.json")); !strings.Contains(got, `"version": "2.0.0"`) {
		t.Errorf("Foo.podspec.json = %q", got)
	}
}

func TestRunCLI_NoPodfileSkipsInstall(t *testing.T) {
	t.Setenv("PODBUMP_CONFIG", "")
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "VERSION"), "1.0.0")
	writeFile(t, filepath.Join(tmp, "Foo.podspec"), fooPodspec)

	// Without a Podfile there is nothing to install, so pod is never executed.
	var stdout, stderr bytes.Buffer
	if err := runCLI([]string{"podbump", "--dir", tmp, "--fast_pod_install", "2.0.0"}, &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
