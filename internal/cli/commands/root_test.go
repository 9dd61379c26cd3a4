package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "bbmodel" {
		t.Errorf("expected Use to be 'bbmodel', got %s", cmd.Use)
	}
	if cmd.Short == "" || cmd.Long == "" {
		t.Error("expected Short and Long descriptions to be set")
	}

	for _, expected := range []string{"version", "init", "validate", "describe", "export"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected command %s to be registered", expected)
		}
	}

	for _, flag := range []string{"config-dir", "format", "log-level", "no-color"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent flag --%s", flag)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	Version = "1.0.0-test"
	GitCommit = "abc123"
	BuildDate = "2026-01-01"
	GoVersion = "go1.23"

	stdout, _, err := run(t, t.TempDir(), "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	for _, want := range []string{"bbmodel version: 1.0.0-test", "Git commit: abc123", "Build date: 2026-01-01", "Go version: go1.23"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("version output missing %q\ngot:\n%s", want, stdout)
		}
	}
}

func TestWriteVersion_RuntimeFallback(t *testing.T) {
	GoVersion = "unknown"
	defer func() { GoVersion = "unknown" }()

	var buf bytes.Buffer
	writeVersion(&buf)
	if !strings.Contains(buf.String(), "Go version: go") {
		t.Errorf("expected runtime Go version, got:\n%s", buf.String())
	}
}

func TestRoot_RejectsBadFlags(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := run(t, dir, "--format", "xml", "version"); err == nil {
		t.Error("expected error for unsupported --format")
	}
	if _, _, err := run(t, dir, "--log-level", "chatty", "version"); err == nil {
		t.Error("expected error for unsupported --log-level")
	}
}

func TestRoot_ReportsConfigErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "buildingblocks.yml", "output:\n  format: xml\n")

	_, stderr, err := run(t, dir, "version")
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !strings.Contains(stderr, "CONFIGURATION ERROR") {
		t.Errorf("expected configuration error banner, got:\n%s", stderr)
	}
}
