package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytrout/buildingblocks/internal/document"
)

func TestExport_ConvertsAndCompresses(t *testing.T) {
	dir := t.TempDir()
	in := copyLedger(t, dir, "ledger.yml")
	out := filepath.Join(dir, "dist", "ledger.json.gz")

	stdout, _, err := run(t, dir, "export", in, out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Exported "+in+" to "+out)

	want, err := document.Load(in)
	require.NoError(t, err)
	got, err := document.Load(out)
	require.NoError(t, err)

	assert.Equal(t, want.Count(), got.Count())
	assert.True(t, want.Application.Equal(got.Application))
	require.Len(t, got.Entities, 1)
	assert.True(t, want.Entities[0].Equal(got.Entities[0]))
}

func TestExport_RefusesInvalidUnlessForced(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "dup.yml", duplicateFields)
	out := filepath.Join(dir, "dup.json")

	_, stderr, err := run(t, dir, "export", in, out)
	require.Error(t, err)
	assert.Contains(t, stderr, "DOC003")
	assert.NoFileExists(t, out)

	_, _, err = run(t, dir, "export", "--force", in, out)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestExport_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	in := copyLedger(t, dir, "ledger.yml")

	_, _, err := run(t, dir, "export", in, filepath.Join(dir, "ledger.xml"))
	assert.Error(t, err)
}
