package models

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mytrout/buildingblocks/internal/resources"
	"github.com/mytrout/buildingblocks/pkg/guard"
)

// Entity is a class-like shape: a name, a description, an optional base type
// and an ordered list of fields.
type Entity struct {
	entityID                    uuid.UUID
	name                        string
	description                 string
	modifiers                   EntityModifiers
	primaryPrimeNumberForHash   int
	secondaryPrimeNumberForHash int
	baseCoreType                *CoreType
	fields                      []*Field
}

// EntityParams are the constructor arguments of an Entity, used by With.
type EntityParams struct {
	EntityID                    uuid.UUID
	Name                        string
	Description                 string
	Modifiers                   EntityModifiers
	PrimaryPrimeNumberForHash   int
	SecondaryPrimeNumberForHash int
	BaseCoreType                *CoreType
	Fields                      []*Field
}

// NewEntity creates an Entity. baseCoreType may be nil. The two prime numbers
// seed hash code generation downstream and are stored as given.
func NewEntity(entityID uuid.UUID, name, description string, modifiers EntityModifiers,
	primaryPrimeNumberForHash, secondaryPrimeNumberForHash int, baseCoreType *CoreType, fields ...*Field,
) (*Entity, error) {
	if fields == nil {
		fields = []*Field{}
	}
	return buildEntity(entityID, &name, &description, modifiers,
		primaryPrimeNumberForHash, secondaryPrimeNumberForHash, baseCoreType, fields)
}

// NewEntityFromParams creates an Entity from p.
func NewEntityFromParams(p EntityParams) (*Entity, error) {
	return NewEntity(p.EntityID, p.Name, p.Description, p.Modifiers,
		p.PrimaryPrimeNumberForHash, p.SecondaryPrimeNumberForHash, p.BaseCoreType, p.Fields...)
}

func buildEntity(entityID uuid.UUID, name, description *string, modifiers EntityModifiers,
	primary, secondary int, baseCoreType *CoreType, fields []*Field,
) (*Entity, error) {
	if err := guard.NotEmptyID("entityId", entityID); err != nil {
		return nil, err
	}
	n, err := guard.RequiredString("name", name)
	if err != nil {
		return nil, err
	}
	d, err := guard.RequiredString("description", description)
	if err != nil {
		return nil, err
	}
	if err := guard.NotNil("fields", fields == nil); err != nil {
		return nil, err
	}
	if slices.Contains(fields, nil) {
		return nil, guard.OutOfRange("fields", fields, resources.Format(resources.FieldsNotNull, "fields"))
	}

	return &Entity{
		entityID:                    entityID,
		name:                        n,
		description:                 d,
		modifiers:                   modifiers,
		primaryPrimeNumberForHash:   primary,
		secondaryPrimeNumberForHash: secondary,
		baseCoreType:                baseCoreType,
		fields:                      slices.Clone(fields),
	}, nil
}

// EntityID returns the identifier.
func (e *Entity) EntityID() uuid.UUID { return e.entityID }

// Name returns the name.
func (e *Entity) Name() string { return e.name }

// Description returns the description.
func (e *Entity) Description() string { return e.description }

// Modifiers returns the modifier flags.
func (e *Entity) Modifiers() EntityModifiers { return e.modifiers }

// PrimaryPrimeNumberForHash returns the first hash seed.
func (e *Entity) PrimaryPrimeNumberForHash() int { return e.primaryPrimeNumberForHash }

// SecondaryPrimeNumberForHash returns the second hash seed.
func (e *Entity) SecondaryPrimeNumberForHash() int { return e.secondaryPrimeNumberForHash }

// BaseCoreType returns the base type, or nil when the entity has none.
func (e *Entity) BaseCoreType() *CoreType { return e.baseCoreType }

// Fields returns a copy of the fields in declaration order.
func (e *Entity) Fields() []*Field { return slices.Clone(e.fields) }

// Params returns the constructor arguments.
func (e *Entity) Params() EntityParams {
	return EntityParams{
		EntityID:                    e.entityID,
		Name:                        e.name,
		Description:                 e.description,
		Modifiers:                   e.modifiers,
		PrimaryPrimeNumberForHash:   e.primaryPrimeNumberForHash,
		SecondaryPrimeNumberForHash: e.secondaryPrimeNumberForHash,
		BaseCoreType:                e.baseCoreType,
		Fields:                      slices.Clone(e.fields),
	}
}

// With returns a new Entity with edit applied to a copy of the arguments.
func (e *Entity) With(edit func(*EntityParams)) (*Entity, error) {
	p := e.Params()
	if edit != nil {
		edit(&p)
	}
	return NewEntityFromParams(p)
}

// Equal reports structural equality. The hash seeds are passthrough data for
// generated code and do not take part.
func (e *Entity) Equal(other *Entity) bool {
	if e == nil || other == nil {
		return false
	}
	if e == other {
		return true
	}
	return e.entityID == other.entityID &&
		e.name == other.name &&
		e.description == other.description &&
		e.modifiers == other.modifiers &&
		equalOptional(e.baseCoreType, other.baseCoreType) &&
		slices.EqualFunc(e.fields, other.fields, (*Field).Equal)
}

// Hash returns a hash consistent with Equal.
func (e *Entity) Hash() uint64 {
	h := newHasher("Entity")
	h.id(e.entityID)
	h.str(e.name)
	h.str(e.description)
	h.u64(uint64(e.modifiers))
	if e.baseCoreType != nil {
		h.u64(e.baseCoreType.Hash())
	} else {
		h.u64(0)
	}
	h.int(len(e.fields))
	for _, f := range e.fields {
		h.u64(f.Hash())
	}
	return h.sum()
}

func equalOptional(a, b *CoreType) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
