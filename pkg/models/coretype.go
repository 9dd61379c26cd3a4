package models

import (
	"reflect"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/mytrout/buildingblocks/internal/resources"
	"github.com/mytrout/buildingblocks/pkg/guard"
	"github.com/mytrout/buildingblocks/pkg/native"
)

// Origin is where a CoreType comes from. Exactly one origin is active per
// CoreType; the set of implementations is closed.
type Origin interface {
	isOrigin()
}

// ConceptOrigin derives a CoreType from a named concept.
type ConceptOrigin struct {
	Name string
}

// EntityOrigin derives a CoreType from an Entity.
type EntityOrigin struct {
	Entity *Entity
}

// LookupOrigin derives a CoreType from a Lookup.
type LookupOrigin struct {
	Lookup *Lookup
}

// GenericOrigin binds parameters to a generic type, as in List<String>.
type GenericOrigin struct {
	Type       *CoreType
	Parameters []*CoreType
}

// NativeOrigin derives a CoreType from a host-platform type.
type NativeOrigin struct {
	Type native.Type
}

func (ConceptOrigin) isOrigin() {}
func (EntityOrigin) isOrigin()  {}
func (LookupOrigin) isOrigin()  {}
func (GenericOrigin) isOrigin() {}
func (NativeOrigin) isOrigin()  {}

// UnknownType is the CoreType used when nothing better is known.
var UnknownType = &CoreType{id: uuid.Nil, origin: ConceptOrigin{Name: "Unknown"}}

// CoreType describes a type that fields, base classes and relationships can
// refer to. Its Name and Namespace are computed from the origin on each call.
type CoreType struct {
	id     uuid.UUID
	origin Origin
	array  bool
}

// CoreTypeParams are the stored parts of a CoreType, used by With.
type CoreTypeParams struct {
	ID      uuid.UUID
	Origin  Origin
	IsArray bool
}

// NewConceptType creates a concept-origin CoreType.
func NewConceptType(id uuid.UUID, conceptName string) (*CoreType, error) {
	return newCoreType(CoreTypeParams{ID: id, Origin: ConceptOrigin{Name: conceptName}})
}

// NewConceptArrayType creates an array of a concept.
func NewConceptArrayType(arrayID uuid.UUID, conceptName string) (*CoreType, error) {
	return newCoreType(CoreTypeParams{ID: arrayID, Origin: ConceptOrigin{Name: conceptName}, IsArray: true})
}

// NewEntityType wraps an Entity. The CoreType shares the entity's id.
func NewEntityType(entity *Entity) (*CoreType, error) {
	if err := guard.NotNil("entity", entity == nil); err != nil {
		return nil, err
	}
	return newCoreType(CoreTypeParams{ID: entity.EntityID(), Origin: EntityOrigin{Entity: entity}})
}

// NewEntityArrayType wraps an Entity as an array with its own id.
func NewEntityArrayType(arrayID uuid.UUID, entity *Entity) (*CoreType, error) {
	return newCoreType(CoreTypeParams{ID: arrayID, Origin: EntityOrigin{Entity: entity}, IsArray: true})
}

// NewLookupType wraps a Lookup. The CoreType shares the lookup's id.
func NewLookupType(lookup *Lookup) (*CoreType, error) {
	if err := guard.NotNil("lookup", lookup == nil); err != nil {
		return nil, err
	}
	return newCoreType(CoreTypeParams{ID: lookup.LookupID(), Origin: LookupOrigin{Lookup: lookup}})
}

// NewLookupArrayType wraps a Lookup as an array with its own id.
func NewLookupArrayType(arrayID uuid.UUID, lookup *Lookup) (*CoreType, error) {
	return newCoreType(CoreTypeParams{ID: arrayID, Origin: LookupOrigin{Lookup: lookup}, IsArray: true})
}

// NewGenericType binds parameters to genericType. At least one parameter is
// required, none may be nil, and when genericType wraps an open generic
// definition the count must match its arity.
func NewGenericType(id uuid.UUID, genericType *CoreType, parameters ...*CoreType) (*CoreType, error) {
	return newCoreType(CoreTypeParams{ID: id, Origin: GenericOrigin{Type: genericType, Parameters: orEmpty(parameters)}})
}

// NewGenericArrayType is NewGenericType for an array of the instantiation.
func NewGenericArrayType(arrayID uuid.UUID, genericType *CoreType, parameters ...*CoreType) (*CoreType, error) {
	return newCoreType(CoreTypeParams{ID: arrayID, Origin: GenericOrigin{Type: genericType, Parameters: orEmpty(parameters)}, IsArray: true})
}

// NewNativeType wraps a native type. The CoreType's id is the type's GUID.
func NewNativeType(t native.Type) (*CoreType, error) {
	if err := guard.NotNil("internalType", isNilType(t)); err != nil {
		return nil, err
	}
	return newCoreType(CoreTypeParams{ID: t.GUID(), Origin: NativeOrigin{Type: t}})
}

// isNilType also catches a nil pointer stored in the interface.
func isNilType(t native.Type) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// NewNativeArrayType wraps a native type as an array with its own id.
func NewNativeArrayType(arrayID uuid.UUID, t native.Type) (*CoreType, error) {
	return newCoreType(CoreTypeParams{ID: arrayID, Origin: NativeOrigin{Type: t}, IsArray: true})
}

// orEmpty keeps variadic calls without arguments distinct from an absent
// parameter list, which only the decoders can produce.
func orEmpty(parameters []*CoreType) []*CoreType {
	if parameters == nil {
		return []*CoreType{}
	}
	return parameters
}

func newCoreType(p CoreTypeParams) (*CoreType, error) {
	switch o := p.Origin.(type) {
	case ConceptOrigin:
		if err := guard.NotBlank("conceptName", o.Name); err != nil {
			return nil, err
		}
	case EntityOrigin:
		if err := guard.NotNil("entity", o.Entity == nil); err != nil {
			return nil, err
		}
	case LookupOrigin:
		if err := guard.NotNil("lookup", o.Lookup == nil); err != nil {
			return nil, err
		}
	case NativeOrigin:
		if err := guard.NotNil("internalType", isNilType(o.Type)); err != nil {
			return nil, err
		}
	case GenericOrigin:
		if err := validateGeneric(o); err != nil {
			return nil, err
		}
		o.Parameters = slices.Clone(o.Parameters)
		p.Origin = o
	default:
		return nil, guard.Missing("origin")
	}

	return &CoreType{id: p.ID, origin: p.Origin, array: p.IsArray}, nil
}

func validateGeneric(o GenericOrigin) error {
	const param = "genericTypeParameters"

	if err := guard.NotNil("genericType", o.Type == nil); err != nil {
		return err
	}
	if err := guard.NotNil(param, o.Parameters == nil); err != nil {
		return err
	}
	if len(o.Parameters) == 0 {
		return guard.OutOfRange(param, o.Parameters, resources.Format(resources.GenericOneEntry, param))
	}
	if slices.Contains(o.Parameters, nil) {
		return guard.OutOfRange(param, o.Parameters, resources.Format(resources.GenericNotNull, param))
	}
	if t := o.Type.InternalType(); t != nil && t.IsGenericTypeDefinition() && t.GenericArity() != len(o.Parameters) {
		return guard.OutOfRange(param, o.Parameters, resources.Format(resources.GenericParametersCountMatch, param, "genericType"))
	}
	return nil
}

// ID returns the identifier. Array variants carry their own id.
func (c *CoreType) ID() uuid.UUID { return c.id }

// Origin returns the active origin. Generic parameter slices are copies.
func (c *CoreType) Origin() Origin {
	if g, ok := c.origin.(GenericOrigin); ok {
		g.Parameters = slices.Clone(g.Parameters)
		return g
	}
	return c.origin
}

// IsArray reports whether this is the array variant of its origin.
func (c *CoreType) IsArray() bool { return c.array }

// IsConcept reports whether the origin is a concept.
func (c *CoreType) IsConcept() bool {
	_, ok := c.origin.(ConceptOrigin)
	return ok
}

// IsEntity reports whether the origin is an Entity.
func (c *CoreType) IsEntity() bool {
	_, ok := c.origin.(EntityOrigin)
	return ok
}

// IsLookup reports whether the origin is a Lookup.
func (c *CoreType) IsLookup() bool {
	_, ok := c.origin.(LookupOrigin)
	return ok
}

// IsGeneric reports whether the origin is a generic instantiation.
func (c *CoreType) IsGeneric() bool {
	_, ok := c.origin.(GenericOrigin)
	return ok
}

// IsNative reports whether the origin is a native type.
func (c *CoreType) IsNative() bool {
	_, ok := c.origin.(NativeOrigin)
	return ok
}

// IsPrimitive mirrors the wrapped native type; false for other origins.
func (c *CoreType) IsPrimitive() bool {
	t := c.InternalType()
	return t != nil && t.IsPrimitive()
}

// IsValueType mirrors the wrapped native type; false for other origins.
func (c *CoreType) IsValueType() bool {
	t := c.InternalType()
	return t != nil && t.IsValueType()
}

// Entity returns the wrapped Entity, or nil.
func (c *CoreType) Entity() *Entity {
	if o, ok := c.origin.(EntityOrigin); ok {
		return o.Entity
	}
	return nil
}

// Lookup returns the wrapped Lookup, or nil.
func (c *CoreType) Lookup() *Lookup {
	if o, ok := c.origin.(LookupOrigin); ok {
		return o.Lookup
	}
	return nil
}

// GenericType returns the generic definition, or nil.
func (c *CoreType) GenericType() *CoreType {
	if o, ok := c.origin.(GenericOrigin); ok {
		return o.Type
	}
	return nil
}

// GenericTypeParameters returns a copy of the bound parameters, or nil.
func (c *CoreType) GenericTypeParameters() []*CoreType {
	if o, ok := c.origin.(GenericOrigin); ok {
		return slices.Clone(o.Parameters)
	}
	return nil
}

// InternalType returns the wrapped native type, or nil.
func (c *CoreType) InternalType() native.Type {
	if o, ok := c.origin.(NativeOrigin); ok {
		return o.Type
	}
	return nil
}

// Name computes the display name: the origin's name, generic parameters in
// angle brackets, and a trailing "[]" for arrays.
func (c *CoreType) Name() string {
	var name string
	switch o := c.origin.(type) {
	case ConceptOrigin:
		name = o.Name
	case EntityOrigin:
		name = o.Entity.Name()
	case NativeOrigin:
		name = o.Type.Name()
	case LookupOrigin:
		name = o.Lookup.Name()
	case GenericOrigin:
		name = genericName(o)
	}

	if c.array {
		return name + "[]"
	}
	return name
}

func genericName(o GenericOrigin) string {
	var b strings.Builder

	if t := o.Type.InternalType(); t != nil {
		b.WriteString(native.BaseName(t.Name()))
	} else {
		b.WriteString(native.BaseName(o.Type.Name()))
	}

	b.WriteByte('<')
	for i, p := range o.Parameters {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.Name())
	}
	b.WriteByte('>')
	return b.String()
}

// Namespace is the native type's namespace, or the generic definition's
// native namespace, or "".
func (c *CoreType) Namespace() string {
	if t := c.InternalType(); t != nil {
		return t.Namespace()
	}
	if g := c.GenericType(); g != nil {
		if t := g.InternalType(); t != nil {
			return t.Namespace()
		}
	}
	return ""
}

func (c *CoreType) String() string { return c.Name() }

// Params returns the stored parts for use with With.
func (c *CoreType) Params() CoreTypeParams {
	return CoreTypeParams{ID: c.id, Origin: c.Origin(), IsArray: c.array}
}

// With returns a new CoreType with edit applied to a copy of the stored parts.
// A nil edit produces an equal, distinct copy. The id is taken as given.
func (c *CoreType) With(edit func(*CoreTypeParams)) (*CoreType, error) {
	p := c.Params()
	if edit != nil {
		edit(&p)
	}
	return newCoreType(p)
}

// Equal reports structural equality.
func (c *CoreType) Equal(other *CoreType) bool {
	if c == nil || other == nil {
		return false
	}
	if c == other {
		return true
	}
	if c.id != other.id || c.array != other.array {
		return false
	}

	switch a := c.origin.(type) {
	case ConceptOrigin:
		b, ok := other.origin.(ConceptOrigin)
		return ok && a.Name == b.Name
	case EntityOrigin:
		b, ok := other.origin.(EntityOrigin)
		return ok && a.Entity.Equal(b.Entity)
	case LookupOrigin:
		b, ok := other.origin.(LookupOrigin)
		return ok && a.Lookup.Equal(b.Lookup)
	case NativeOrigin:
		b, ok := other.origin.(NativeOrigin)
		return ok && native.Same(a.Type, b.Type)
	case GenericOrigin:
		b, ok := other.origin.(GenericOrigin)
		return ok && a.Type.Equal(b.Type) && slices.EqualFunc(a.Parameters, b.Parameters, (*CoreType).Equal)
	}
	return false
}

// Hash returns a hash consistent with Equal.
func (c *CoreType) Hash() uint64 {
	h := newHasher("CoreType")
	h.id(c.id)
	h.bool(c.array)

	switch o := c.origin.(type) {
	case ConceptOrigin:
		h.str("concept")
		h.str(o.Name)
	case EntityOrigin:
		h.str("entity")
		h.u64(o.Entity.Hash())
	case LookupOrigin:
		h.str("lookup")
		h.u64(o.Lookup.Hash())
	case NativeOrigin:
		h.str("native")
		h.id(o.Type.GUID())
		h.str(o.Type.FullName())
	case GenericOrigin:
		h.str("generic")
		h.u64(o.Type.Hash())
		h.int(len(o.Parameters))
		for _, p := range o.Parameters {
			h.u64(p.Hash())
		}
	}
	return h.sum()
}
