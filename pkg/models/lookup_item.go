package models

import "github.com/mytrout/buildingblocks/pkg/guard"

// LookupItem is one entry of a Lookup. Its id is not checked; uniqueness
// within a lookup is the caller's concern.
type LookupItem struct {
	id          int
	name        string
	description string
	remarks     string
}

// LookupItemParams are the constructor arguments of a LookupItem.
type LookupItemParams struct {
	ID          int
	Name        string
	Description string
	Remarks     string
}

// NewLookupItem creates a LookupItem. remarks is optional.
func NewLookupItem(id int, name, description, remarks string) (*LookupItem, error) {
	return buildLookupItem(id, &name, &description, remarks)
}

// NewLookupItemFromParams creates a LookupItem from p.
func NewLookupItemFromParams(p LookupItemParams) (*LookupItem, error) {
	return NewLookupItem(p.ID, p.Name, p.Description, p.Remarks)
}

func buildLookupItem(id int, name, description *string, remarks string) (*LookupItem, error) {
	n, err := guard.RequiredString("name", name)
	if err != nil {
		return nil, err
	}
	d, err := guard.RequiredString("description", description)
	if err != nil {
		return nil, err
	}
	return &LookupItem{id: id, name: n, description: d, remarks: remarks}, nil
}

// ID returns the item id.
func (i *LookupItem) ID() int { return i.id }

// Name returns the name.
func (i *LookupItem) Name() string { return i.name }

// Description returns the description.
func (i *LookupItem) Description() string { return i.description }

// Remarks returns the remarks, or "".
func (i *LookupItem) Remarks() string { return i.remarks }

// Params returns the constructor arguments.
func (i *LookupItem) Params() LookupItemParams {
	return LookupItemParams{ID: i.id, Name: i.name, Description: i.description, Remarks: i.remarks}
}

// With returns a new LookupItem with edit applied to a copy of the arguments.
func (i *LookupItem) With(edit func(*LookupItemParams)) (*LookupItem, error) {
	p := i.Params()
	if edit != nil {
		edit(&p)
	}
	return NewLookupItemFromParams(p)
}

// Equal reports structural equality.
func (i *LookupItem) Equal(other *LookupItem) bool {
	if i == nil || other == nil {
		return false
	}
	return *i == *other
}

// Hash returns a hash consistent with Equal.
func (i *LookupItem) Hash() uint64 {
	h := newHasher("LookupItem")
	h.int(i.id)
	h.str(i.name)
	h.str(i.description)
	h.str(i.remarks)
	return h.sum()
}
