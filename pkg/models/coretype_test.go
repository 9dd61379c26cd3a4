package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytrout/buildingblocks/internal/resources"
	"github.com/mytrout/buildingblocks/pkg/guard"
	"github.com/mytrout/buildingblocks/pkg/native"
)

func TestUnknownType(t *testing.T) {
	assert.Equal(t, uuid.Nil, UnknownType.ID())
	assert.True(t, UnknownType.IsConcept())
	assert.False(t, UnknownType.IsEntity())
	assert.False(t, UnknownType.IsLookup())
	assert.False(t, UnknownType.IsGeneric())
	assert.False(t, UnknownType.IsNative())
	assert.False(t, UnknownType.IsArray())
	assert.Equal(t, "Unknown", UnknownType.Name())
	assert.Equal(t, "", UnknownType.Namespace())
}

func TestCoreType_GenericNames(t *testing.T) {
	str := stringType(t)
	i32 := nativeType(t, native.Int32)

	dict, err := NewGenericType(genericID, nativeType(t, native.Dictionary), str, str)
	require.NoError(t, err)

	nested, err := NewGenericType(genericID, nativeType(t, native.Dictionary), str, listOf(t, i32))
	require.NoError(t, err)

	strArray, err := NewNativeArrayType(arrayID, native.String)
	require.NoError(t, err)

	entityType, err := NewEntityType(testEntity(t))
	require.NoError(t, err)

	tests := []struct {
		name string
		ct   *CoreType
		want string
	}{
		{"single parameter", listOf(t, str), "List<String>"},
		{"two parameters", dict, "Dictionary<String,String>"},
		{"nested generic", nested, "Dictionary<String,List<Int32>>"},
		{"array parameter", listOf(t, strArray), "List<String[]>"},
		{"entity parameter", listOf(t, entityType), "List<Customer>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ct.Name())
			assert.Equal(t, tt.want, tt.ct.Name(), "Name must be repeatable")
			assert.Equal(t, tt.want, tt.ct.String())
		})
	}
}

func TestCoreType_ConceptAsGenericDefinition(t *testing.T) {
	repo, err := NewConceptType(conceptID, "Repository")
	require.NoError(t, err)
	entityType, err := NewEntityType(testEntity(t))
	require.NoError(t, err)

	// Concepts declare no arity so any non-empty parameter list is accepted.
	ct, err := NewGenericType(genericID, repo, entityType, stringType(t))
	require.NoError(t, err)

	assert.Equal(t, "Repository<Customer,String>", ct.Name())
	assert.Equal(t, "", ct.Namespace())
}

func TestCoreType_ArraySuffix(t *testing.T) {
	entity := testEntity(t)
	lookup := testLookup(t)
	list := nativeType(t, native.List)
	str := stringType(t)

	pairs := []struct {
		name   string
		scalar func() (*CoreType, error)
		array  func() (*CoreType, error)
	}{
		{
			"concept",
			func() (*CoreType, error) { return NewConceptType(conceptID, "Money") },
			func() (*CoreType, error) { return NewConceptArrayType(arrayID, "Money") },
		},
		{
			"entity",
			func() (*CoreType, error) { return NewEntityType(entity) },
			func() (*CoreType, error) { return NewEntityArrayType(arrayID, entity) },
		},
		{
			"lookup",
			func() (*CoreType, error) { return NewLookupType(lookup) },
			func() (*CoreType, error) { return NewLookupArrayType(arrayID, lookup) },
		},
		{
			"native",
			func() (*CoreType, error) { return NewNativeType(native.Guid) },
			func() (*CoreType, error) { return NewNativeArrayType(arrayID, native.Guid) },
		},
		{
			"generic",
			func() (*CoreType, error) { return NewGenericType(genericID, list, str) },
			func() (*CoreType, error) { return NewGenericArrayType(arrayID, list, str) },
		},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			scalar, err := tt.scalar()
			require.NoError(t, err)
			array, err := tt.array()
			require.NoError(t, err)

			assert.False(t, scalar.IsArray())
			assert.True(t, array.IsArray())
			assert.Equal(t, scalar.Name()+"[]", array.Name())
			assert.Equal(t, arrayID, array.ID())
			assert.NotEqual(t, scalar.ID(), array.ID())
			assert.False(t, scalar.Equal(array))
		})
	}
}

func TestCoreType_ScalarIDs(t *testing.T) {
	entityType, err := NewEntityType(testEntity(t))
	require.NoError(t, err)
	assert.Equal(t, customerID, entityType.ID())

	lookupType, err := NewLookupType(testLookup(t))
	require.NoError(t, err)
	assert.Equal(t, lookupID, lookupType.ID())

	assert.Equal(t, native.String.GUID(), stringType(t).ID())
}

func TestCoreType_Namespace(t *testing.T) {
	entityType, err := NewEntityType(testEntity(t))
	require.NoError(t, err)
	lookupType, err := NewLookupType(testLookup(t))
	require.NoError(t, err)
	concept, err := NewConceptType(conceptID, "Money")
	require.NoError(t, err)

	assert.Equal(t, "System", stringType(t).Namespace())
	assert.Equal(t, "System.Collections.Generic", listOf(t, stringType(t)).Namespace())
	assert.Equal(t, "", entityType.Namespace())
	assert.Equal(t, "", lookupType.Namespace())
	assert.Equal(t, "", concept.Namespace())
}

func TestCoreType_OriginAccessors(t *testing.T) {
	entity := testEntity(t)
	lookup := testLookup(t)

	entityType, err := NewEntityType(entity)
	require.NoError(t, err)
	assert.True(t, entityType.IsEntity())
	assert.Same(t, entity, entityType.Entity())
	assert.Nil(t, entityType.Lookup())
	assert.Nil(t, entityType.InternalType())
	assert.False(t, entityType.IsPrimitive())

	lookupType, err := NewLookupType(lookup)
	require.NoError(t, err)
	assert.True(t, lookupType.IsLookup())
	assert.Same(t, lookup, lookupType.Lookup())

	i32 := nativeType(t, native.Int32)
	assert.True(t, i32.IsNative())
	assert.True(t, i32.IsPrimitive())
	assert.True(t, i32.IsValueType())
	assert.False(t, stringType(t).IsValueType())

	list := listOf(t, stringType(t))
	assert.True(t, list.IsGeneric())
	assert.True(t, list.GenericType().IsNative())
	params := list.GenericTypeParameters()
	require.Len(t, params, 1)
	params[0] = nil
	assert.NotNil(t, list.GenericTypeParameters()[0], "parameters are returned as a copy")
}

func TestNewGenericType_Validation(t *testing.T) {
	list := nativeType(t, native.List)
	str := stringType(t)

	t.Run("missing generic type", func(t *testing.T) {
		_, err := NewGenericType(genericID, nil, str)
		require.ErrorIs(t, err, guard.ErrMissingValue)
		assert.Equal(t, "genericType", guard.ParamOf(err))
	})

	tests := []struct {
		name    string
		params  []*CoreType
		message string
	}{
		{"zero parameters", []*CoreType{}, resources.Format(resources.GenericOneEntry, "genericTypeParameters")},
		{"nil parameter", []*CoreType{str, nil}, resources.Format(resources.GenericNotNull, "genericTypeParameters")},
		{"arity mismatch", []*CoreType{str, str}, resources.Format(resources.GenericParametersCountMatch, "genericTypeParameters", "genericType")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenericType(genericID, list, tt.params...)
			require.ErrorIs(t, err, guard.ErrOutOfRange)

			var rng *guard.OutOfRangeError
			require.ErrorAs(t, err, &rng)
			assert.Equal(t, "genericTypeParameters", rng.Param)
			assert.Equal(t, tt.params, rng.Actual)
			assert.Equal(t, tt.message, rng.Message)
		})
	}

	t.Run("no variadic arguments", func(t *testing.T) {
		_, err := NewGenericType(genericID, list)
		require.ErrorIs(t, err, guard.ErrOutOfRange)
		assert.Equal(t, "genericTypeParameters", guard.ParamOf(err))
	})

	t.Run("missing parameter list", func(t *testing.T) {
		_, err := newCoreType(CoreTypeParams{ID: genericID, Origin: GenericOrigin{Type: list}})
		require.ErrorIs(t, err, guard.ErrMissingValue)
		assert.Equal(t, "genericTypeParameters", guard.ParamOf(err))
	})

	t.Run("messages differ per case", func(t *testing.T) {
		seen := map[string]bool{}
		for _, tt := range tests {
			seen[tt.message] = true
		}
		assert.Len(t, seen, len(tests))
	})
}

func TestCoreType_ConstructorErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*CoreType, error)
		param string
		want  error
	}{
		{"nil entity", func() (*CoreType, error) { return NewEntityType(nil) }, "entity", guard.ErrMissingValue},
		{"nil entity array", func() (*CoreType, error) { return NewEntityArrayType(arrayID, nil) }, "entity", guard.ErrMissingValue},
		{"nil lookup", func() (*CoreType, error) { return NewLookupType(nil) }, "lookup", guard.ErrMissingValue},
		{"nil lookup array", func() (*CoreType, error) { return NewLookupArrayType(arrayID, nil) }, "lookup", guard.ErrMissingValue},
		{"nil native", func() (*CoreType, error) { return NewNativeType(nil) }, "internalType", guard.ErrMissingValue},
		{"nil native array", func() (*CoreType, error) { return NewNativeArrayType(arrayID, nil) }, "internalType", guard.ErrMissingValue},
		{"typed nil native", func() (*CoreType, error) { return NewNativeType((*native.Descriptor)(nil)) }, "internalType", guard.ErrMissingValue},
		{"typed nil native array", func() (*CoreType, error) { return NewNativeArrayType(arrayID, (*native.Descriptor)(nil)) }, "internalType", guard.ErrMissingValue},
		{"nil origin", func() (*CoreType, error) { return newCoreType(CoreTypeParams{ID: arrayID}) }, "origin", guard.ErrMissingValue},
	}
	for _, v := range blankValues {
		v := v
		tests = append(tests, struct {
			name  string
			build func() (*CoreType, error)
			param string
			want  error
		}{"blank concept " + quote(v), func() (*CoreType, error) { return NewConceptType(conceptID, v) }, "conceptName", guard.ErrBlankValue})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := tt.build()
			assert.Nil(t, ct)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.param, guard.ParamOf(err))
		})
	}
}

func TestCoreType_EqualHashWith(t *testing.T) {
	a := listOf(t, stringType(t))
	b := listOf(t, stringType(t))

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(nil))

	clone, err := a.With(nil)
	require.NoError(t, err)
	assert.NotSame(t, a, clone)
	assert.True(t, a.Equal(clone))
	assert.Equal(t, a.Hash(), clone.Hash())

	otherID, err := a.With(func(p *CoreTypeParams) { p.ID = arrayID })
	require.NoError(t, err)
	assert.False(t, a.Equal(otherID))

	asArray, err := a.With(func(p *CoreTypeParams) { p.IsArray = true })
	require.NoError(t, err)
	assert.False(t, a.Equal(asArray))
	assert.Equal(t, "List<String>[]", asArray.Name())

	otherParam, err := a.With(func(p *CoreTypeParams) {
		p.Origin = GenericOrigin{Type: nativeType(t, native.List), Parameters: []*CoreType{nativeType(t, native.Int64)}}
	})
	require.NoError(t, err)
	assert.False(t, a.Equal(otherParam))

	_, err = a.With(func(p *CoreTypeParams) { p.Origin = ConceptOrigin{Name: " "} })
	require.ErrorIs(t, err, guard.ErrBlankValue)
}

func TestCoreType_EqualAcrossOrigins(t *testing.T) {
	concept, err := NewConceptType(customerID, "Customer")
	require.NoError(t, err)
	entityType, err := NewEntityType(testEntity(t))
	require.NoError(t, err)

	// Same id and same display name, different origin.
	assert.Equal(t, concept.Name(), entityType.Name())
	assert.False(t, concept.Equal(entityType))
	assert.False(t, entityType.Equal(concept))
}
