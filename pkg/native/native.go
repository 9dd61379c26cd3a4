// Package native describes the host-platform types a CoreType can wrap:
// strings, integers, generic collection definitions and so on.
//
// A Type exposes only what the model needs to name a type and classify it.
// Descriptor is the stock implementation; FromReflect adapts Go's own
// reflection so Go types can be described too.
package native

import (
	"strings"

	"github.com/google/uuid"
)

// ArityMarker separates a generic type definition's name from its declared
// parameter count, as in "List`1".
const ArityMarker = '`'

// Type is the read-only view of a native type.
type Type interface {
	// Name is the simple name, including any arity marker ("List`1").
	Name() string

	// Namespace is the containing namespace or package path; may be empty.
	Namespace() string

	// FullName is Namespace + "." + Name, or just Name without a namespace.
	FullName() string

	// GUID identifies the type. Stable across processes.
	GUID() uuid.UUID

	// IsPrimitive reports whether the type is a language primitive.
	IsPrimitive() bool

	// IsValueType reports whether values are copied rather than referenced.
	IsValueType() bool

	// IsGenericTypeDefinition reports whether the type is an open generic
	// definition that needs type parameters bound.
	IsGenericTypeDefinition() bool

	// GenericArity is the declared parameter count of a generic definition,
	// zero otherwise.
	GenericArity() int
}

// Descriptor is an immutable Type built from explicit values.
type Descriptor struct {
	namespace string
	name      string
	guid      uuid.UUID
	primitive bool
	valueType bool
	arity     int
}

// DescriptorOption configures a Descriptor.
type DescriptorOption func(*Descriptor)

// Primitive marks the descriptor as a primitive value type.
func Primitive() DescriptorOption {
	return func(d *Descriptor) {
		d.primitive = true
		d.valueType = true
	}
}

// ValueType marks the descriptor as a (non-primitive) value type.
func ValueType() DescriptorOption {
	return func(d *Descriptor) {
		d.valueType = true
	}
}

// GenericDefinition marks the descriptor as an open generic definition with
// the given arity.
func GenericDefinition(arity int) DescriptorOption {
	return func(d *Descriptor) {
		d.arity = arity
	}
}

// WithGUID overrides the derived GUID.
func WithGUID(id uuid.UUID) DescriptorOption {
	return func(d *Descriptor) {
		d.guid = id
	}
}

// NewDescriptor creates a descriptor. Unless overridden, the GUID is derived
// from the full name so the same type always gets the same identifier.
func NewDescriptor(namespace, name string, opts ...DescriptorOption) *Descriptor {
	d := &Descriptor{namespace: namespace, name: name}
	for _, opt := range opts {
		opt(d)
	}
	if d.guid == uuid.Nil {
		d.guid = uuid.NewSHA1(uuid.NameSpaceOID, []byte(d.FullName()))
	}
	return d
}

// Name returns the simple name.
func (d *Descriptor) Name() string { return d.name }

// Namespace returns the namespace.
func (d *Descriptor) Namespace() string { return d.namespace }

// FullName returns the namespace-qualified name.
func (d *Descriptor) FullName() string {
	return joinFullName(d.namespace, d.name)
}

// GUID returns the identifier.
func (d *Descriptor) GUID() uuid.UUID { return d.guid }

// IsPrimitive reports whether the type is primitive.
func (d *Descriptor) IsPrimitive() bool { return d.primitive }

// IsValueType reports whether the type is a value type.
func (d *Descriptor) IsValueType() bool { return d.valueType }

// IsGenericTypeDefinition reports whether the type is an open generic.
func (d *Descriptor) IsGenericTypeDefinition() bool { return d.arity > 0 }

// GenericArity returns the declared parameter count.
func (d *Descriptor) GenericArity() int { return d.arity }

func (d *Descriptor) String() string { return d.FullName() }

// BaseName strips the arity marker and everything after it.
func BaseName(name string) string {
	if i := strings.IndexRune(name, ArityMarker); i >= 0 {
		return name[:i]
	}
	return name
}

// Same reports whether two native types describe the same type.
func Same(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.GUID() == b.GUID() && a.FullName() == b.FullName()
}

func joinFullName(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}
