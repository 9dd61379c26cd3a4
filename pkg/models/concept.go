package models

import (
	"github.com/google/uuid"

	"github.com/mytrout/buildingblocks/pkg/guard"
)

// UnknownConcept stands in for an idea nobody has named yet.
var UnknownConcept = &Concept{conceptID: uuid.Nil, name: "Unknown"}

// Concept is a named placeholder for an idea not modeled as an Entity,
// Lookup or native type. Unlike other models its id may be uuid.Nil.
type Concept struct {
	conceptID uuid.UUID
	name      string
}

// ConceptParams are the constructor arguments of a Concept.
type ConceptParams struct {
	ConceptID uuid.UUID
	Name      string
}

// NewConcept creates a Concept.
func NewConcept(conceptID uuid.UUID, name string) (*Concept, error) {
	return buildConcept(conceptID, &name)
}

func buildConcept(conceptID uuid.UUID, name *string) (*Concept, error) {
	n, err := guard.RequiredString("name", name)
	if err != nil {
		return nil, err
	}
	return &Concept{conceptID: conceptID, name: n}, nil
}

// ConceptID returns the identifier.
func (c *Concept) ConceptID() uuid.UUID { return c.conceptID }

// Name returns the name.
func (c *Concept) Name() string { return c.name }

// CoreType returns a concept-origin CoreType sharing this concept's id and name.
func (c *Concept) CoreType() *CoreType {
	return &CoreType{id: c.conceptID, origin: ConceptOrigin{Name: c.name}}
}

// Params returns the constructor arguments.
func (c *Concept) Params() ConceptParams {
	return ConceptParams{ConceptID: c.conceptID, Name: c.name}
}

// With returns a new Concept with edit applied to a copy of the arguments.
func (c *Concept) With(edit func(*ConceptParams)) (*Concept, error) {
	p := c.Params()
	if edit != nil {
		edit(&p)
	}
	return NewConcept(p.ConceptID, p.Name)
}

// Equal reports structural equality.
func (c *Concept) Equal(other *Concept) bool {
	if c == nil || other == nil {
		return false
	}
	return *c == *other
}

// Hash returns a hash consistent with Equal.
func (c *Concept) Hash() uint64 {
	h := newHasher("Concept")
	h.id(c.conceptID)
	h.str(c.name)
	return h.sum()
}
