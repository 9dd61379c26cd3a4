package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const ledgerFixture = "../../document/testdata/ledger.yml"

// run executes the root command with args inside an isolated config dir.
func run(t *testing.T, configDir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config-dir", configDir, "--no-color"}, args...))

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeFile writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// copyLedger copies the shared ledger fixture into dir as name.
func copyLedger(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(ledgerFixture)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	return writeFile(t, dir, name, string(data))
}
