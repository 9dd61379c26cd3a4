package models

import (
	"testing"

	"github.com/google/uuid"
	"pgregory.net/rapid"

	"github.com/mytrout/buildingblocks/pkg/native"
)

func drawID(t *rapid.T, label string) uuid.UUID {
	b := rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, label)
	id, err := uuid.FromBytes(b)
	if err != nil {
		t.Fatalf("uuid from bytes: %v", err)
	}
	if id == uuid.Nil {
		id[15] = 1
	}
	return id
}

func drawName(t *rapid.T, label string) string {
	return rapid.StringMatching(`[A-Z][A-Za-z0-9]{0,15}`).Draw(t, label)
}

var scalarNatives = []native.Type{
	native.String, native.Int32, native.Int64, native.Boolean, native.Decimal, native.Guid, native.DateTime,
}

// drawCoreType builds a concept, native or (nested) generic CoreType.
func drawCoreType(t *rapid.T, depth int) *CoreType {
	kind := rapid.IntRange(0, 2).Draw(t, "kind")
	if depth <= 0 && kind == 2 {
		kind = 1
	}

	var (
		ct  *CoreType
		err error
	)
	switch kind {
	case 0:
		ct, err = NewConceptType(drawID(t, "conceptId"), drawName(t, "concept"))
	case 1:
		ct, err = NewNativeType(rapid.SampledFrom(scalarNatives).Draw(t, "native"))
	default:
		def := rapid.SampledFrom([]native.Type{native.List, native.Dictionary}).Draw(t, "definition")
		gt, gerr := NewNativeType(def)
		if gerr != nil {
			t.Fatalf("definition: %v", gerr)
		}
		params := make([]*CoreType, def.GenericArity())
		for i := range params {
			params[i] = drawCoreType(t, depth-1)
		}
		ct, err = NewGenericType(drawID(t, "genericId"), gt, params...)
	}
	if err != nil {
		t.Fatalf("draw core type: %v", err)
	}
	return ct
}

func TestProperty_CoreTypeEqualityAndHash(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ct := drawCoreType(t, 2)

		if !ct.Equal(ct) {
			t.Fatalf("%s is not equal to itself", ct)
		}
		clone, err := ct.With(nil)
		if err != nil {
			t.Fatalf("With(nil): %v", err)
		}
		if clone == ct {
			t.Fatalf("With(nil) returned the same instance")
		}
		if !ct.Equal(clone) || !clone.Equal(ct) {
			t.Fatalf("clone of %s is not equal", ct)
		}
		if ct.Hash() != clone.Hash() {
			t.Fatalf("equal values hash differently: %s", ct)
		}
		if ct.Name() != clone.Name() || ct.Namespace() != clone.Namespace() {
			t.Fatalf("clone computes a different name")
		}
	})
}

func TestProperty_ArrayNameSuffix(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ct := drawCoreType(t, 2)
		id := drawID(t, "arrayId")

		arr, err := ct.With(func(p *CoreTypeParams) {
			p.ID = id
			p.IsArray = true
		})
		if err != nil {
			t.Fatalf("array: %v", err)
		}
		if arr.Name() != ct.Name()+"[]" {
			t.Fatalf("array name %q, scalar %q", arr.Name(), ct.Name())
		}
		if arr.ID() != id {
			t.Fatalf("array id %s, want %s", arr.ID(), id)
		}
		if arr.Namespace() != ct.Namespace() {
			t.Fatalf("array namespace %q, scalar %q", arr.Namespace(), ct.Namespace())
		}
	})
}

func TestProperty_GenericNameListsParameters(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := drawCoreType(t, 1)
		value := drawCoreType(t, 1)

		dict, err := NewGenericType(drawID(t, "dictId"), nativeTypeOrFail(t, native.Dictionary), key, value)
		if err != nil {
			t.Fatalf("dictionary: %v", err)
		}
		want := "Dictionary<" + key.Name() + "," + value.Name() + ">"
		if dict.Name() != want {
			t.Fatalf("got %q, want %q", dict.Name(), want)
		}
		if dict.Namespace() != "System.Collections.Generic" {
			t.Fatalf("namespace %q", dict.Namespace())
		}
	})
}

func TestProperty_ConceptSingleFieldChange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := drawID(t, "id")
		name := drawName(t, "name")
		other := drawName(t, "other")

		a, err := NewConcept(id, name)
		if err != nil {
			t.Fatalf("concept: %v", err)
		}
		b, err := NewConcept(id, name)
		if err != nil {
			t.Fatalf("concept: %v", err)
		}
		if !a.Equal(b) || a.Hash() != b.Hash() {
			t.Fatalf("identical concepts differ")
		}

		renamed, err := a.With(func(p *ConceptParams) { p.Name = other })
		if err != nil {
			t.Fatalf("rename: %v", err)
		}
		if (other == name) != a.Equal(renamed) {
			t.Fatalf("rename %q -> %q: equal=%v", name, other, a.Equal(renamed))
		}
	})
}

func nativeTypeOrFail(t *rapid.T, nt native.Type) *CoreType {
	ct, err := NewNativeType(nt)
	if err != nil {
		t.Fatalf("native: %v", err)
	}
	return ct
}
