package models

import (
	"fmt"
	"strings"

	"github.com/mytrout/buildingblocks/pkg/guard"
)

// EntityModifiers are combinable flags changing how a generator treats an Entity.
type EntityModifiers uint32

const (
	EntityNone EntityModifiers = 0
	// EntityDecoratee marks an entity that decorators may wrap.
	EntityDecoratee EntityModifiers = 1 << (iota - 1)
	// EntityDecorator marks an entity that wraps a decoratee.
	EntityDecorator
	// EntityExtensible marks an entity that can be inherited from.
	EntityExtensible
	// EntityRecord marks an entity generated with value semantics.
	EntityRecord
)

// FieldModifiers are combinable flags changing how a generator treats a Field.
//
// FieldOptional and FieldParamArray must not both appear across the fields of one
// Entity. Field itself does not check this; see the document package.
type FieldModifiers uint32

const (
	FieldNone FieldModifiers = 0
	// FieldOptional marks a field with a default; OptionalValue carries it.
	FieldOptional FieldModifiers = 1 << (iota - 1)
	// FieldParamArray marks a trailing variadic field.
	FieldParamArray
	FieldAllowNull
	FieldAllowEmpty
	FieldAllowWhiteSpace
	FieldAllowFieldOverride
	FieldDecorated
	// FieldKey marks a field that takes part in the entity's key.
	FieldKey
)

// LookupModifiers are combinable flags for a Lookup.
type LookupModifiers uint32

const (
	LookupNone LookupModifiers = 0
	// LookupFlags marks a lookup whose item ids combine bitwise.
	LookupFlags LookupModifiers = 1
)

// RelationshipModifiers are combinable flags for a Relationship.
type RelationshipModifiers uint32

const (
	RelationshipNone                   RelationshipModifiers = 0
	RelationshipEffectiveDateRequired  RelationshipModifiers = 1
	RelationshipExpirationDateRequired RelationshipModifiers = 2
)

// RelationshipModality says whether the secondary side must exist.
type RelationshipModality int

const (
	ModalityOptional RelationshipModality = iota
	ModalityRequired
)

// RelationshipCardinality says how many of each side participate.
type RelationshipCardinality int

const (
	CardinalityOneToOne RelationshipCardinality = iota
	CardinalityOneToMany
	CardinalityManyToMany
)

type named[T ~uint32 | ~int] struct {
	value T
	name  string
}

var (
	entityModifierNames = []named[EntityModifiers]{
		{EntityDecoratee, "Decoratee"},
		{EntityDecorator, "Decorator"},
		{EntityExtensible, "Extensible"},
		{EntityRecord, "Record"},
	}
	fieldModifierNames = []named[FieldModifiers]{
		{FieldOptional, "Optional"},
		{FieldParamArray, "Params"},
		{FieldAllowNull, "AllowNull"},
		{FieldAllowEmpty, "AllowEmpty"},
		{FieldAllowWhiteSpace, "AllowWhiteSpace"},
		{FieldAllowFieldOverride, "AllowFieldOverride"},
		{FieldDecorated, "Decorated"},
		{FieldKey, "Key"},
	}
	lookupModifierNames = []named[LookupModifiers]{
		{LookupFlags, "Flags"},
	}
	relationshipModifierNames = []named[RelationshipModifiers]{
		{RelationshipEffectiveDateRequired, "EffectiveDateRequired"},
		{RelationshipExpirationDateRequired, "ExpirationDateRequired"},
	}
	modalityNames = []named[RelationshipModality]{
		{ModalityOptional, "Optional"},
		{ModalityRequired, "Required"},
	}
	cardinalityNames = []named[RelationshipCardinality]{
		{CardinalityOneToOne, "OneToOne"},
		{CardinalityOneToMany, "OneToMany"},
		{CardinalityManyToMany, "ManyToMany"},
	}
)

const noneName = "None"

func formatFlags[T ~uint32](v T, names []named[T]) string {
	if v == 0 {
		return noneName
	}
	parts := make([]string, 0, len(names))
	rest := v
	for _, n := range names {
		if v&n.value == n.value {
			parts = append(parts, n.name)
			rest &^= n.value
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

func parseFlags[T ~uint32](param, s string, names []named[T]) (T, error) {
	var v T
	s = strings.TrimSpace(s)
	if s == "" || s == noneName {
		return v, nil
	}
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		found := false
		for _, n := range names {
			if strings.EqualFold(part, n.name) {
				v |= n.value
				found = true
				break
			}
		}
		if !found && !strings.EqualFold(part, noneName) {
			return 0, guard.OutOfRange(param, s, fmt.Sprintf("unknown modifier %q", part))
		}
	}
	return v, nil
}

func formatEnum[T ~int](v T, names []named[T]) string {
	for _, n := range names {
		if n.value == v {
			return n.name
		}
	}
	return fmt.Sprintf("%d", int(v))
}

func parseEnum[T ~int](param, s string, names []named[T]) (T, error) {
	s = strings.TrimSpace(s)
	for _, n := range names {
		if strings.EqualFold(s, n.name) {
			return n.value, nil
		}
	}
	return 0, guard.OutOfRange(param, s, fmt.Sprintf("unknown value %q", s))
}

// Has reports whether every flag in f is set.
func (m EntityModifiers) Has(f EntityModifiers) bool { return m&f == f }

func (m EntityModifiers) String() string { return formatFlags(m, entityModifierNames) }

// MarshalText implements encoding.TextMarshaler
func (m EntityModifiers) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (m *EntityModifiers) UnmarshalText(b []byte) error {
	v, err := ParseEntityModifiers(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseEntityModifiers parses "Decoratee|Record" style text.
func ParseEntityModifiers(s string) (EntityModifiers, error) {
	return parseFlags("modifiers", s, entityModifierNames)
}

// Has reports whether every flag in f is set.
func (m FieldModifiers) Has(f FieldModifiers) bool { return m&f == f }

func (m FieldModifiers) String() string { return formatFlags(m, fieldModifierNames) }

// MarshalText implements encoding.TextMarshaler
func (m FieldModifiers) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (m *FieldModifiers) UnmarshalText(b []byte) error {
	v, err := ParseFieldModifiers(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseFieldModifiers parses "Optional|AllowNull" style text.
func ParseFieldModifiers(s string) (FieldModifiers, error) {
	return parseFlags("modifiers", s, fieldModifierNames)
}

// Has reports whether every flag in f is set.
func (m LookupModifiers) Has(f LookupModifiers) bool { return m&f == f }

func (m LookupModifiers) String() string { return formatFlags(m, lookupModifierNames) }

// MarshalText implements encoding.TextMarshaler
func (m LookupModifiers) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (m *LookupModifiers) UnmarshalText(b []byte) error {
	v, err := ParseLookupModifiers(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseLookupModifiers parses lookup modifier text.
func ParseLookupModifiers(s string) (LookupModifiers, error) {
	return parseFlags("modifiers", s, lookupModifierNames)
}

// Has reports whether every flag in f is set.
func (m RelationshipModifiers) Has(f RelationshipModifiers) bool { return m&f == f }

func (m RelationshipModifiers) String() string { return formatFlags(m, relationshipModifierNames) }

// MarshalText implements encoding.TextMarshaler
func (m RelationshipModifiers) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (m *RelationshipModifiers) UnmarshalText(b []byte) error {
	v, err := ParseRelationshipModifiers(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseRelationshipModifiers parses relationship modifier text.
func ParseRelationshipModifiers(s string) (RelationshipModifiers, error) {
	return parseFlags("modifiers", s, relationshipModifierNames)
}

func (m RelationshipModality) String() string { return formatEnum(m, modalityNames) }

// MarshalText implements encoding.TextMarshaler
func (m RelationshipModality) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (m *RelationshipModality) UnmarshalText(b []byte) error {
	v, err := parseEnum("modality", string(b), modalityNames)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (c RelationshipCardinality) String() string { return formatEnum(c, cardinalityNames) }

// MarshalText implements encoding.TextMarshaler
func (c RelationshipCardinality) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (c *RelationshipCardinality) UnmarshalText(b []byte) error {
	v, err := parseEnum("cardinality", string(b), cardinalityNames)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
