package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mytrout/buildingblocks/pkg/guard"
	"github.com/mytrout/buildingblocks/pkg/native"
)

// Wire forms. String members are pointers so an absent member can be told
// apart from an empty one; decoding always goes through the constructors.

type applicationWire struct {
	ApplicationID         uuid.UUID `json:"applicationId" yaml:"applicationId"`
	Name                  *string   `json:"name" yaml:"name"`
	CompanyName           *string   `json:"companyName" yaml:"companyName"`
	CompanyShortName      *string   `json:"companyShortName" yaml:"companyShortName"`
	Authors               *string   `json:"authors" yaml:"authors"`
	OriginalCopyrightYear int       `json:"originalCopyrightYear" yaml:"originalCopyrightYear"`
	ApplicationURI        *string   `json:"applicationUri" yaml:"applicationUri"`
	LicenseURI            *string   `json:"licenseUri" yaml:"licenseUri"`
	TermsOfServiceURI     *string   `json:"termsOfServiceUri" yaml:"termsOfServiceUri"`
	PrivacyStatementURI   *string   `json:"privacyStatementUri" yaml:"privacyStatementUri"`
}

type conceptWire struct {
	ConceptID uuid.UUID `json:"conceptId" yaml:"conceptId"`
	Name      *string   `json:"name" yaml:"name"`
}

type entityWire struct {
	EntityID                    uuid.UUID       `json:"entityId" yaml:"entityId"`
	Name                        *string         `json:"name" yaml:"name"`
	Description                 *string         `json:"description" yaml:"description"`
	Modifiers                   EntityModifiers `json:"modifiers" yaml:"modifiers"`
	PrimaryPrimeNumberForHash   int             `json:"primaryPrimeNumberForHash" yaml:"primaryPrimeNumberForHash"`
	SecondaryPrimeNumberForHash int             `json:"secondaryPrimeNumberForHash" yaml:"secondaryPrimeNumberForHash"`
	BaseCoreType                *CoreType       `json:"baseCoreType,omitempty" yaml:"baseCoreType,omitempty"`
	Fields                      *[]*Field       `json:"fields" yaml:"fields"`
}

type fieldWire struct {
	FieldID          uuid.UUID      `json:"fieldId" yaml:"fieldId"`
	FieldType        *CoreType      `json:"fieldType" yaml:"fieldType"`
	Name             *string        `json:"name" yaml:"name"`
	ShortDescription *string        `json:"shortDescription" yaml:"shortDescription"`
	Modifiers        FieldModifiers `json:"modifiers" yaml:"modifiers"`
	OptionalValue    any            `json:"optionalValue,omitempty" yaml:"optionalValue,omitempty"`
}

type lookupWire struct {
	LookupID    uuid.UUID       `json:"lookupId" yaml:"lookupId"`
	Name        *string         `json:"name" yaml:"name"`
	Description *string         `json:"description" yaml:"description"`
	Modifiers   LookupModifiers `json:"modifiers" yaml:"modifiers"`
	Items       *[]*LookupItem  `json:"items" yaml:"items"`
}

type lookupItemWire struct {
	ID          int     `json:"id" yaml:"id"`
	Name        *string `json:"name" yaml:"name"`
	Description *string `json:"description" yaml:"description"`
	Remarks     string  `json:"remarks,omitempty" yaml:"remarks,omitempty"`
}

type relationshipWire struct {
	RelationshipID    uuid.UUID               `json:"relationshipId" yaml:"relationshipId"`
	PrimaryType       *CoreType               `json:"primaryType" yaml:"primaryType"`
	Modality          RelationshipModality    `json:"modality" yaml:"modality"`
	Cardinality       RelationshipCardinality `json:"cardinality" yaml:"cardinality"`
	SecondaryCoreType *CoreType               `json:"secondaryCoreType" yaml:"secondaryCoreType"`
	Modifiers         RelationshipModifiers   `json:"modifiers" yaml:"modifiers"`
}

// coreTypeWire carries exactly one origin member. Name and Namespace are
// computed and never written.
type coreTypeWire struct {
	ID                    uuid.UUID    `json:"id" yaml:"id"`
	IsArray               bool         `json:"isArray,omitempty" yaml:"isArray,omitempty"`
	Concept               *string      `json:"concept,omitempty" yaml:"concept,omitempty"`
	Entity                *Entity      `json:"entity,omitempty" yaml:"entity,omitempty"`
	Lookup                *Lookup      `json:"lookup,omitempty" yaml:"lookup,omitempty"`
	InternalType          *string      `json:"internalType,omitempty" yaml:"internalType,omitempty"`
	GenericType           *CoreType    `json:"genericType,omitempty" yaml:"genericType,omitempty"`
	GenericTypeParameters *[]*CoreType `json:"genericTypeParameters,omitempty" yaml:"genericTypeParameters,omitempty"`
}

// Application

func (a *Application) wire() applicationWire {
	uri := func(u *url.URL) *string {
		s := u.String()
		return &s
	}
	return applicationWire{
		ApplicationID:         a.applicationID,
		Name:                  &a.name,
		CompanyName:           &a.companyName,
		CompanyShortName:      &a.companyShortName,
		Authors:               &a.authors,
		OriginalCopyrightYear: a.originalCopyrightYear,
		ApplicationURI:        uri(a.applicationURI),
		LicenseURI:            uri(a.licenseURI),
		TermsOfServiceURI:     uri(a.termsOfServiceURI),
		PrivacyStatementURI:   uri(a.privacyStatementURI),
	}
}

func (w applicationWire) build() (*Application, error) {
	parseErrs := make(map[string]error)
	parse := func(param string, raw *string) *url.URL {
		if raw == nil {
			return nil
		}
		u, err := url.Parse(*raw)
		if err != nil {
			parseErrs[param] = guard.OutOfRange(param, *raw, err.Error())
			return nil
		}
		return u
	}

	p := ApplicationParams{
		ApplicationID:         w.ApplicationID,
		OriginalCopyrightYear: w.OriginalCopyrightYear,
		ApplicationURI:        parse("applicationUri", w.ApplicationURI),
		LicenseURI:            parse("licenseUri", w.LicenseURI),
		TermsOfServiceURI:     parse("termsOfServiceUri", w.TermsOfServiceURI),
		PrivacyStatementURI:   parse("privacyStatementUri", w.PrivacyStatementURI),
	}

	a, err := buildApplication(p, w.Name, w.CompanyName, w.CompanyShortName, w.Authors)
	if err != nil {
		// A URI that failed to parse is reported where the constructor
		// would have found it missing, keeping the validation order.
		if perr, ok := parseErrs[guard.ParamOf(err)]; ok {
			return nil, perr
		}
		return nil, err
	}
	return a, nil
}

// MarshalJSON implements json.Marshaler
func (a *Application) MarshalJSON() ([]byte, error) { return json.Marshal(a.wire()) }

// UnmarshalJSON implements json.Unmarshaler
func (a *Application) UnmarshalJSON(data []byte) error {
	var w applicationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return assign(a, w.build)
}

// MarshalYAML implements yaml.Marshaler
func (a *Application) MarshalYAML() (any, error) { return a.wire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler
func (a *Application) UnmarshalYAML(node *yaml.Node) error {
	var w applicationWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return assign(a, w.build)
}

// Concept

// MarshalJSON implements json.Marshaler
func (c *Concept) MarshalJSON() ([]byte, error) {
	return json.Marshal(conceptWire{ConceptID: c.conceptID, Name: &c.name})
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Concept) UnmarshalJSON(data []byte) error {
	var w conceptWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return assign(c, func() (*Concept, error) { return buildConcept(w.ConceptID, w.Name) })
}

// MarshalYAML implements yaml.Marshaler
func (c *Concept) MarshalYAML() (any, error) {
	return conceptWire{ConceptID: c.conceptID, Name: &c.name}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *Concept) UnmarshalYAML(node *yaml.Node) error {
	var w conceptWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return assign(c, func() (*Concept, error) { return buildConcept(w.ConceptID, w.Name) })
}

// Entity

func (e *Entity) wire() entityWire {
	fields := e.Fields()
	return entityWire{
		EntityID:                    e.entityID,
		Name:                        &e.name,
		Description:                 &e.description,
		Modifiers:                   e.modifiers,
		PrimaryPrimeNumberForHash:   e.primaryPrimeNumberForHash,
		SecondaryPrimeNumberForHash: e.secondaryPrimeNumberForHash,
		BaseCoreType:                e.baseCoreType,
		Fields:                      &fields,
	}
}

func (w entityWire) build() (*Entity, error) {
	var fields []*Field
	if w.Fields != nil {
		fields = *w.Fields
		if fields == nil {
			fields = []*Field{}
		}
	}
	return buildEntity(w.EntityID, w.Name, w.Description, w.Modifiers,
		w.PrimaryPrimeNumberForHash, w.SecondaryPrimeNumberForHash, w.BaseCoreType, fields)
}

// MarshalJSON implements json.Marshaler
func (e *Entity) MarshalJSON() ([]byte, error) { return json.Marshal(e.wire()) }

// UnmarshalJSON implements json.Unmarshaler
func (e *Entity) UnmarshalJSON(data []byte) error {
	var w entityWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return assign(e, w.build)
}

// MarshalYAML implements yaml.Marshaler
func (e *Entity) MarshalYAML() (any, error) { return e.wire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler
func (e *Entity) UnmarshalYAML(node *yaml.Node) error {
	var w entityWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return assign(e, w.build)
}

// Field

func (f *Field) wire() fieldWire {
	return fieldWire{
		FieldID:          f.fieldID,
		FieldType:        f.fieldType,
		Name:             &f.name,
		ShortDescription: &f.shortDescription,
		Modifiers:        f.modifiers,
		OptionalValue:    f.optionalValue,
	}
}

func (w fieldWire) build() (*Field, error) {
	return buildField(w.FieldID, w.FieldType, w.Name, w.ShortDescription, w.Modifiers, w.OptionalValue)
}

// MarshalJSON implements json.Marshaler
func (f *Field) MarshalJSON() ([]byte, error) { return json.Marshal(f.wire()) }

// UnmarshalJSON implements json.Unmarshaler. Whole numbers in the optional
// value decode as int, matching what the YAML decoder produces.
func (f *Field) UnmarshalJSON(data []byte) error {
	var w fieldWire
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&w); err != nil {
		return err
	}
	w.OptionalValue = fromJSONNumbers(w.OptionalValue)
	return assign(f, w.build)
}

func fromJSONNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			if int64(int(i)) == i {
				return int(i)
			}
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case []any:
		for i := range x {
			x[i] = fromJSONNumbers(x[i])
		}
	case map[string]any:
		for k := range x {
			x[k] = fromJSONNumbers(x[k])
		}
	}
	return v
}

// MarshalYAML implements yaml.Marshaler
func (f *Field) MarshalYAML() (any, error) { return f.wire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	var w fieldWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return assign(f, w.build)
}

// Lookup

func (l *Lookup) wire() lookupWire {
	items := l.Items()
	return lookupWire{
		LookupID:    l.lookupID,
		Name:        &l.name,
		Description: &l.description,
		Modifiers:   l.modifiers,
		Items:       &items,
	}
}

func (w lookupWire) build() (*Lookup, error) {
	var items []*LookupItem
	if w.Items != nil {
		items = *w.Items
		if items == nil {
			items = []*LookupItem{}
		}
	}
	return buildLookup(w.LookupID, w.Name, w.Description, w.Modifiers, items)
}

// MarshalJSON implements json.Marshaler
func (l *Lookup) MarshalJSON() ([]byte, error) { return json.Marshal(l.wire()) }

// UnmarshalJSON implements json.Unmarshaler
func (l *Lookup) UnmarshalJSON(data []byte) error {
	var w lookupWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return assign(l, w.build)
}

// MarshalYAML implements yaml.Marshaler
func (l *Lookup) MarshalYAML() (any, error) { return l.wire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler
func (l *Lookup) UnmarshalYAML(node *yaml.Node) error {
	var w lookupWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return assign(l, w.build)
}

// LookupItem

func (i *LookupItem) wire() lookupItemWire {
	return lookupItemWire{ID: i.id, Name: &i.name, Description: &i.description, Remarks: i.remarks}
}

func (w lookupItemWire) build() (*LookupItem, error) {
	return buildLookupItem(w.ID, w.Name, w.Description, w.Remarks)
}

// MarshalJSON implements json.Marshaler
func (i *LookupItem) MarshalJSON() ([]byte, error) { return json.Marshal(i.wire()) }

// UnmarshalJSON implements json.Unmarshaler
func (i *LookupItem) UnmarshalJSON(data []byte) error {
	var w lookupItemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return assign(i, w.build)
}

// MarshalYAML implements yaml.Marshaler
func (i *LookupItem) MarshalYAML() (any, error) { return i.wire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler
func (i *LookupItem) UnmarshalYAML(node *yaml.Node) error {
	var w lookupItemWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return assign(i, w.build)
}

// Relationship

func (r *Relationship) wire() relationshipWire {
	return relationshipWire{
		RelationshipID:    r.relationshipID,
		PrimaryType:       r.primaryType,
		Modality:          r.modality,
		Cardinality:       r.cardinality,
		SecondaryCoreType: r.secondaryCoreType,
		Modifiers:         r.modifiers,
	}
}

func (w relationshipWire) build() (*Relationship, error) {
	return NewRelationship(w.RelationshipID, w.PrimaryType, w.Modality, w.Cardinality, w.SecondaryCoreType, w.Modifiers)
}

// MarshalJSON implements json.Marshaler
func (r *Relationship) MarshalJSON() ([]byte, error) { return json.Marshal(r.wire()) }

// UnmarshalJSON implements json.Unmarshaler
func (r *Relationship) UnmarshalJSON(data []byte) error {
	var w relationshipWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return assign(r, w.build)
}

// MarshalYAML implements yaml.Marshaler
func (r *Relationship) MarshalYAML() (any, error) { return r.wire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler
func (r *Relationship) UnmarshalYAML(node *yaml.Node) error {
	var w relationshipWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return assign(r, w.build)
}

// CoreType

func (c *CoreType) wire() coreTypeWire {
	w := coreTypeWire{ID: c.id, IsArray: c.array}
	switch o := c.origin.(type) {
	case ConceptOrigin:
		name := o.Name
		w.Concept = &name
	case EntityOrigin:
		w.Entity = o.Entity
	case LookupOrigin:
		w.Lookup = o.Lookup
	case NativeOrigin:
		name := o.Type.FullName()
		w.InternalType = &name
	case GenericOrigin:
		params := c.GenericTypeParameters()
		w.GenericType = o.Type
		w.GenericTypeParameters = &params
	}
	return w
}

func (w coreTypeWire) build(registry *native.Registry) (*CoreType, error) {
	var set []string
	if w.Concept != nil {
		set = append(set, "concept")
	}
	if w.Entity != nil {
		set = append(set, "entity")
	}
	if w.Lookup != nil {
		set = append(set, "lookup")
	}
	if w.InternalType != nil {
		set = append(set, "internalType")
	}
	if w.GenericType != nil || w.GenericTypeParameters != nil {
		set = append(set, "genericType")
	}

	switch len(set) {
	case 0:
		return nil, guard.Missing("origin")
	case 1:
	default:
		return nil, guard.OutOfRange("origin", strings.Join(set, ","), "a core type has exactly one origin")
	}

	switch set[0] {
	case "concept":
		return newCoreType(CoreTypeParams{ID: w.ID, Origin: ConceptOrigin{Name: *w.Concept}, IsArray: w.IsArray})
	case "entity":
		if w.IsArray {
			return NewEntityArrayType(w.ID, w.Entity)
		}
		return derivedID(w.ID)(NewEntityType(w.Entity))
	case "lookup":
		if w.IsArray {
			return NewLookupArrayType(w.ID, w.Lookup)
		}
		return derivedID(w.ID)(NewLookupType(w.Lookup))
	case "internalType":
		t, ok := registry.Lookup(*w.InternalType)
		if !ok {
			return nil, guard.OutOfRange("internalType", *w.InternalType, fmt.Sprintf("unknown native type %q", *w.InternalType))
		}
		if w.IsArray {
			return NewNativeArrayType(w.ID, t)
		}
		return derivedID(w.ID)(NewNativeType(t))
	default:
		var params []*CoreType
		if w.GenericTypeParameters != nil {
			params = orEmpty(*w.GenericTypeParameters)
		}
		return newCoreType(CoreTypeParams{
			ID:      w.ID,
			Origin:  GenericOrigin{Type: w.GenericType, Parameters: params},
			IsArray: w.IsArray,
		})
	}
}

// derivedID checks a decoded id against the one a scalar entity, lookup or
// native type takes from its origin. An absent id is accepted.
func derivedID(id uuid.UUID) func(*CoreType, error) (*CoreType, error) {
	return func(ct *CoreType, err error) (*CoreType, error) {
		if err != nil {
			return nil, err
		}
		if id != uuid.Nil && id != ct.id {
			return nil, guard.OutOfRange("id", id, fmt.Sprintf("a scalar core type takes its id from its origin (%s)", ct.id))
		}
		return ct, nil
	}
}

// MarshalJSON implements json.Marshaler. Name and Namespace are omitted.
func (c *CoreType) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

// UnmarshalJSON implements json.Unmarshaler. Native types are resolved
// through native.Default().
func (c *CoreType) UnmarshalJSON(data []byte) error {
	var w coreTypeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return assign(c, func() (*CoreType, error) { return w.build(native.Default()) })
}

// MarshalYAML implements yaml.Marshaler. Name and Namespace are omitted.
func (c *CoreType) MarshalYAML() (any, error) { return c.wire(), nil }

// UnmarshalYAML implements yaml.Unmarshaler
func (c *CoreType) UnmarshalYAML(node *yaml.Node) error {
	var w coreTypeWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	return assign(c, func() (*CoreType, error) { return w.build(native.Default()) })
}

func assign[T any](dst *T, build func() (*T, error)) error {
	v, err := build()
	if err != nil {
		return err
	}
	*dst = *v
	return nil
}
