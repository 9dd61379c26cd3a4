package models

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/mytrout/buildingblocks/pkg/guard"
)

// Field is a member of an Entity.
type Field struct {
	fieldID          uuid.UUID
	fieldType        *CoreType
	name             string
	shortDescription string
	modifiers        FieldModifiers
	optionalValue    any
}

// FieldParams are the constructor arguments of a Field, used by With.
type FieldParams struct {
	FieldID          uuid.UUID
	FieldType        *CoreType
	Name             string
	ShortDescription string
	Modifiers        FieldModifiers
	OptionalValue    any
}

// NewField creates a Field. optionalValue is the default used when modifiers
// include FieldOptional; it is stored as given otherwise.
func NewField(fieldID uuid.UUID, fieldType *CoreType, name, shortDescription string,
	modifiers FieldModifiers, optionalValue any,
) (*Field, error) {
	return buildField(fieldID, fieldType, &name, &shortDescription, modifiers, optionalValue)
}

// NewFieldFromParams creates a Field from p.
func NewFieldFromParams(p FieldParams) (*Field, error) {
	return NewField(p.FieldID, p.FieldType, p.Name, p.ShortDescription, p.Modifiers, p.OptionalValue)
}

func buildField(fieldID uuid.UUID, fieldType *CoreType, name, shortDescription *string,
	modifiers FieldModifiers, optionalValue any,
) (*Field, error) {
	if err := guard.NotEmptyID("fieldId", fieldID); err != nil {
		return nil, err
	}
	if err := guard.NotNil("fieldType", fieldType == nil); err != nil {
		return nil, err
	}
	n, err := guard.RequiredString("name", name)
	if err != nil {
		return nil, err
	}
	d, err := guard.RequiredString("shortDescription", shortDescription)
	if err != nil {
		return nil, err
	}

	return &Field{
		fieldID:          fieldID,
		fieldType:        fieldType,
		name:             n,
		shortDescription: d,
		modifiers:        modifiers,
		optionalValue:    optionalValue,
	}, nil
}

// FieldID returns the identifier.
func (f *Field) FieldID() uuid.UUID { return f.fieldID }

// FieldType returns the field's type.
func (f *Field) FieldType() *CoreType { return f.fieldType }

// Name returns the name.
func (f *Field) Name() string { return f.name }

// ShortDescription returns the short description.
func (f *Field) ShortDescription() string { return f.shortDescription }

// Modifiers returns the modifier flags.
func (f *Field) Modifiers() FieldModifiers { return f.modifiers }

// OptionalValue returns the default value, or nil.
func (f *Field) OptionalValue() any { return f.optionalValue }

// Params returns the constructor arguments.
func (f *Field) Params() FieldParams {
	return FieldParams{
		FieldID:          f.fieldID,
		FieldType:        f.fieldType,
		Name:             f.name,
		ShortDescription: f.shortDescription,
		Modifiers:        f.modifiers,
		OptionalValue:    f.optionalValue,
	}
}

// With returns a new Field with edit applied to a copy of the arguments.
func (f *Field) With(edit func(*FieldParams)) (*Field, error) {
	p := f.Params()
	if edit != nil {
		edit(&p)
	}
	return NewFieldFromParams(p)
}

// Equal reports structural equality.
func (f *Field) Equal(other *Field) bool {
	if f == nil || other == nil {
		return false
	}
	if f == other {
		return true
	}
	return f.fieldID == other.fieldID &&
		f.fieldType.Equal(other.fieldType) &&
		f.name == other.name &&
		f.shortDescription == other.shortDescription &&
		f.modifiers == other.modifiers &&
		reflect.DeepEqual(f.optionalValue, other.optionalValue)
}

// Hash returns a hash consistent with Equal.
func (f *Field) Hash() uint64 {
	h := newHasher("Field")
	h.id(f.fieldID)
	h.u64(f.fieldType.Hash())
	h.str(f.name)
	h.str(f.shortDescription)
	h.u64(uint64(f.modifiers))
	h.any(f.optionalValue)
	return h.sum()
}
