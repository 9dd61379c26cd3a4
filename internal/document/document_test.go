package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytrout/buildingblocks/pkg/guard"
	"github.com/mytrout/buildingblocks/pkg/models"
	"github.com/mytrout/buildingblocks/pkg/native"
)

func loadLedger(t *testing.T) *Document {
	t.Helper()
	doc, err := Load(filepath.Join("testdata", "ledger.yml"))
	require.NoError(t, err)
	return doc
}

func TestLoad_YAML(t *testing.T) {
	doc := loadLedger(t)

	require.NotNil(t, doc.Application)
	assert.Equal(t, "Ledger", doc.Application.Name())
	assert.Equal(t, "https://example.com/license", doc.Application.LicenseURI().String())

	require.Len(t, doc.Concepts, 1)
	require.Len(t, doc.Lookups, 1)
	assert.Len(t, doc.Lookups[0].Items(), 2)

	require.Len(t, doc.Entities, 1)
	customer := doc.Entities[0]
	assert.Equal(t, "Customer", customer.Name())
	assert.True(t, customer.Modifiers().Has(models.EntityRecord|models.EntityExtensible))

	fields := customer.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "String", fields[0].FieldType().Name())
	assert.Equal(t, "System", fields[0].FieldType().Namespace())
	assert.Equal(t, native.String.GUID(), fields[0].FieldType().ID())
	assert.Equal(t, "Money", fields[1].FieldType().Name())
	assert.Equal(t, "List<String>", fields[2].FieldType().Name())
	assert.True(t, fields[2].Modifiers().Has(models.FieldParamArray))

	require.Len(t, doc.Relationships, 1)
	assert.Equal(t, models.CardinalityOneToMany, doc.Relationships[0].Cardinality())

	assert.Equal(t, Count{Concepts: 1, Lookups: 1, Entities: 1, Fields: 3, Relationships: 1}, doc.Count())
	assert.Empty(t, Validate(doc))
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "model.txt"))
	assert.ErrorContains(t, err, "unsupported document extension")

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("entities:\n  - entityId: "+uuid.NewString()+"\n    name: \"  \"\n    description: d\n    fields: []\n"), 0o644))
	_, err = Load(bad)
	require.ErrorIs(t, err, guard.ErrBlankValue)
	assert.Equal(t, "name", guard.ParamOf(err))
	assert.Contains(t, err.Error(), bad)

	unknown := filepath.Join(dir, "unknown.yml")
	require.NoError(t, os.WriteFile(unknown, []byte("widgets: []\n"), 0o644))
	_, err = Load(unknown)
	assert.Error(t, err)
}

func TestDecode_EmptyYAML(t *testing.T) {
	doc, err := Decode([]byte("\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Count{}, doc.Count())

	_, err = Decode(nil, FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("{}"), Format("toml"))
	assert.Error(t, err)
}

func TestSerialize_RoundTrip(t *testing.T) {
	doc := loadLedger(t)

	data, err := Serialize(doc)
	require.NoError(t, err)

	again, err := Serialize(doc)
	require.NoError(t, err)
	assert.Equal(t, data, again, "serialization must be deterministic")

	back, err := Decode(data, FormatJSON)
	require.NoError(t, err)
	assertSameDocument(t, doc, back)

	yamlData, err := Encode(doc, FormatYAML)
	require.NoError(t, err)
	fromYAML, err := Decode(yamlData, FormatYAML)
	require.NoError(t, err)
	assertSameDocument(t, doc, fromYAML)

	_, err = Serialize(nil)
	assert.Error(t, err)
}

func TestWriteToFile(t *testing.T) {
	doc := loadLedger(t)
	dir := t.TempDir()

	for _, name := range []string{"out/ledger.json", "out/ledger.yaml", "out/ledger.json.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteToFile(doc, path))

			back, err := Load(path)
			require.NoError(t, err)
			assertSameDocument(t, doc, back)
		})
	}

	assert.Error(t, WriteToFile(nil, filepath.Join(dir, "x.json")))
	assert.Error(t, WriteToFile(doc, ""))
	assert.Error(t, WriteToFile(doc, filepath.Join(dir, "x.txt")))
}

func TestCompress(t *testing.T) {
	data := []byte(`{"entities":[]}`)
	compressed, err := Compress(data)
	require.NoError(t, err)

	out, err := Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	_, err = Compress(nil)
	assert.Error(t, err)
	_, err = Decompress([]byte("not gzip"))
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	doc := loadLedger(t)

	types, err := doc.Types()
	require.NoError(t, err)

	names := make([]string, 0, len(types))
	for _, ct := range types {
		names = append(names, ct.Name())
	}
	assert.Equal(t, []string{"Money", "AccountStatus", "Customer"}, names)
}

func TestFormats(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)

	f, err = FormatFromPath("a/b/model.JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
}

func assertSameDocument(t *testing.T, want, got *Document) {
	t.Helper()
	assert.True(t, want.Application.Equal(got.Application), "application")
	require.Len(t, got.Concepts, len(want.Concepts))
	for i := range want.Concepts {
		assert.True(t, want.Concepts[i].Equal(got.Concepts[i]), "concept %d", i)
	}
	require.Len(t, got.Lookups, len(want.Lookups))
	for i := range want.Lookups {
		assert.True(t, want.Lookups[i].Equal(got.Lookups[i]), "lookup %d", i)
	}
	require.Len(t, got.Entities, len(want.Entities))
	for i := range want.Entities {
		assert.True(t, want.Entities[i].Equal(got.Entities[i]), "entity %d", i)
	}
	require.Len(t, got.Relationships, len(want.Relationships))
	for i := range want.Relationships {
		assert.True(t, want.Relationships[i].Equal(got.Relationships[i]), "relationship %d", i)
	}
}
