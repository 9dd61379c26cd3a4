package models

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mytrout/buildingblocks/internal/resources"
	"github.com/mytrout/buildingblocks/pkg/guard"
)

// Lookup is a closed, named set of items, like an enumeration with metadata.
type Lookup struct {
	lookupID    uuid.UUID
	name        string
	description string
	modifiers   LookupModifiers
	items       []*LookupItem
}

// LookupParams are the constructor arguments of a Lookup, used by With.
type LookupParams struct {
	LookupID    uuid.UUID
	Name        string
	Description string
	Modifiers   LookupModifiers
	Items       []*LookupItem
}

// NewLookup creates a Lookup. Items keep the given order.
func NewLookup(lookupID uuid.UUID, name, description string, modifiers LookupModifiers, items ...*LookupItem) (*Lookup, error) {
	if items == nil {
		items = []*LookupItem{}
	}
	return buildLookup(lookupID, &name, &description, modifiers, items)
}

// NewLookupFromParams creates a Lookup from p.
func NewLookupFromParams(p LookupParams) (*Lookup, error) {
	return NewLookup(p.LookupID, p.Name, p.Description, p.Modifiers, p.Items...)
}

func buildLookup(lookupID uuid.UUID, name, description *string, modifiers LookupModifiers, items []*LookupItem) (*Lookup, error) {
	if err := guard.NotEmptyID("lookupId", lookupID); err != nil {
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
	if err := guard.NotNil("items", items == nil); err != nil {
		return nil, err
	}
	if slices.Contains(items, nil) {
		return nil, guard.OutOfRange("items", items, resources.Format(resources.ItemsNotNull, "items"))
	}

	return &Lookup{
		lookupID:    lookupID,
		name:        n,
		description: d,
		modifiers:   modifiers,
		items:       slices.Clone(items),
	}, nil
}

// LookupID returns the identifier.
func (l *Lookup) LookupID() uuid.UUID { return l.lookupID }

// Name returns the name.
func (l *Lookup) Name() string { return l.name }

// Description returns the description.
func (l *Lookup) Description() string { return l.description }

// Modifiers returns the modifier flags.
func (l *Lookup) Modifiers() LookupModifiers { return l.modifiers }

// Items returns a copy of the items in declaration order.
func (l *Lookup) Items() []*LookupItem { return slices.Clone(l.items) }

// Item finds an item by id.
func (l *Lookup) Item(id int) (*LookupItem, bool) {
	for _, it := range l.items {
		if it.ID() == id {
			return it, true
		}
	}
	return nil, false
}

// Params returns the constructor arguments.
func (l *Lookup) Params() LookupParams {
	return LookupParams{
		LookupID:    l.lookupID,
		Name:        l.name,
		Description: l.description,
		Modifiers:   l.modifiers,
		Items:       slices.Clone(l.items),
	}
}

// With returns a new Lookup with edit applied to a copy of the arguments.
func (l *Lookup) With(edit func(*LookupParams)) (*Lookup, error) {
	p := l.Params()
	if edit != nil {
		edit(&p)
	}
	return NewLookupFromParams(p)
}

// Equal reports structural equality.
func (l *Lookup) Equal(other *Lookup) bool {
	if l == nil || other == nil {
		return false
	}
	if l == other {
		return true
	}
	return l.lookupID == other.lookupID &&
		l.name == other.name &&
		l.description == other.description &&
		l.modifiers == other.modifiers &&
		slices.EqualFunc(l.items, other.items, (*LookupItem).Equal)
}

// Hash returns a hash consistent with Equal.
func (l *Lookup) Hash() uint64 {
	h := newHasher("Lookup")
	h.id(l.lookupID)
	h.str(l.name)
	h.str(l.description)
	h.u64(uint64(l.modifiers))
	h.int(len(l.items))
	for _, it := range l.items {
		h.u64(it.Hash())
	}
	return h.sum()
}
