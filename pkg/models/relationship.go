package models

import (
	"github.com/google/uuid"

	"github.com/mytrout/buildingblocks/pkg/guard"
)

// Relationship associates two CoreTypes.
type Relationship struct {
	relationshipID    uuid.UUID
	primaryType       *CoreType
	modality          RelationshipModality
	cardinality       RelationshipCardinality
	secondaryCoreType *CoreType
	modifiers         RelationshipModifiers
}

// RelationshipParams are the constructor arguments of a Relationship.
type RelationshipParams struct {
	RelationshipID    uuid.UUID
	PrimaryType       *CoreType
	Modality          RelationshipModality
	Cardinality       RelationshipCardinality
	SecondaryCoreType *CoreType
	Modifiers         RelationshipModifiers
}

// NewRelationship creates a Relationship. Pass RelationshipNone when there are
// no modifiers.
func NewRelationship(relationshipID uuid.UUID, primaryType *CoreType, modality RelationshipModality,
	cardinality RelationshipCardinality, secondaryCoreType *CoreType, modifiers RelationshipModifiers,
) (*Relationship, error) {
	if err := guard.NotEmptyID("relationshipId", relationshipID); err != nil {
		return nil, err
	}
	if err := guard.NotNil("primaryType", primaryType == nil); err != nil {
		return nil, err
	}
	if err := guard.NotNil("secondaryCoreType", secondaryCoreType == nil); err != nil {
		return nil, err
	}

	return &Relationship{
		relationshipID:    relationshipID,
		primaryType:       primaryType,
		modality:          modality,
		cardinality:       cardinality,
		secondaryCoreType: secondaryCoreType,
		modifiers:         modifiers,
	}, nil
}

// NewRelationshipFromParams creates a Relationship from p.
func NewRelationshipFromParams(p RelationshipParams) (*Relationship, error) {
	return NewRelationship(p.RelationshipID, p.PrimaryType, p.Modality, p.Cardinality, p.SecondaryCoreType, p.Modifiers)
}

// RelationshipID returns the identifier.
func (r *Relationship) RelationshipID() uuid.UUID { return r.relationshipID }

// PrimaryType returns the primary side.
func (r *Relationship) PrimaryType() *CoreType { return r.primaryType }

// Modality returns whether the secondary side is required.
func (r *Relationship) Modality() RelationshipModality { return r.modality }

// Cardinality returns the cardinality.
func (r *Relationship) Cardinality() RelationshipCardinality { return r.cardinality }

// SecondaryCoreType returns the secondary side.
func (r *Relationship) SecondaryCoreType() *CoreType { return r.secondaryCoreType }

// Modifiers returns the modifier flags.
func (r *Relationship) Modifiers() RelationshipModifiers { return r.modifiers }

// Params returns the constructor arguments.
func (r *Relationship) Params() RelationshipParams {
	return RelationshipParams{
		RelationshipID:    r.relationshipID,
		PrimaryType:       r.primaryType,
		Modality:          r.modality,
		Cardinality:       r.cardinality,
		SecondaryCoreType: r.secondaryCoreType,
		Modifiers:         r.modifiers,
	}
}

// With returns a new Relationship with edit applied to a copy of the arguments.
func (r *Relationship) With(edit func(*RelationshipParams)) (*Relationship, error) {
	p := r.Params()
	if edit != nil {
		edit(&p)
	}
	return NewRelationshipFromParams(p)
}

// Equal reports structural equality.
func (r *Relationship) Equal(other *Relationship) bool {
	if r == nil || other == nil {
		return false
	}
	if r == other {
		return true
	}
	return r.relationshipID == other.relationshipID &&
		r.primaryType.Equal(other.primaryType) &&
		r.modality == other.modality &&
		r.cardinality == other.cardinality &&
		r.secondaryCoreType.Equal(other.secondaryCoreType) &&
		r.modifiers == other.modifiers
}

// Hash returns a hash consistent with Equal.
func (r *Relationship) Hash() uint64 {
	h := newHasher("Relationship")
	h.id(r.relationshipID)
	h.u64(r.primaryType.Hash())
	h.int(int(r.modality))
	h.int(int(r.cardinality))
	h.u64(r.secondaryCoreType.Hash())
	h.u64(uint64(r.modifiers))
	return h.sum()
}
