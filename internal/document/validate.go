package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/mytrout/buildingblocks/pkg/models"
)

// IssueCode identifies a document level problem.
type IssueCode string

const (
	// CodeOptionalWithParams: one entity mixes Optional and Params fields.
	CodeOptionalWithParams IssueCode = "DOC001"
	// CodeOptionalWithoutValue: an Optional field has no default value.
	CodeOptionalWithoutValue IssueCode = "DOC002"
	// CodeDuplicateFieldName: two fields of one entity share a name.
	CodeDuplicateFieldName IssueCode = "DOC003"
	// CodeDuplicateItemID: two items of one lookup share an id.
	CodeDuplicateItemID IssueCode = "DOC004"
	// CodeDuplicateTypeID: two declared types share an id.
	CodeDuplicateTypeID IssueCode = "DOC005"
	// CodeNilEntry: a list contains an empty entry.
	CodeNilEntry IssueCode = "DOC006"
	// CodeParamsNotLast: a Params field is not the entity's last field.
	CodeParamsNotLast IssueCode = "DOC007"
	// CodeMissingApplication: the document has no application.
	CodeMissingApplication IssueCode = "DOC008"
)

// Severity says whether an issue blocks generation.
type Severity string

const (
	// SeverityError blocks generation.
	SeverityError Severity = "error"
	// SeverityWarning is reported but does not block.
	SeverityWarning Severity = "warning"
)

// Issue is one problem found by Validate.
type Issue struct {
	Code     IssueCode `json:"code"`
	Severity Severity  `json:"severity"`
	// Path locates the value, e.g. "entities[2].fields[0]".
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s %s: %s", i.Severity, i.Code, i.Path, i.Message)
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks the invariants that no single model constructor can see.
// Issues are sorted by path then code.
func Validate(doc *Document) []Issue {
	if doc == nil {
		return []Issue{{Code: CodeNilEntry, Severity: SeverityError, Path: "$", Message: "document is empty"}}
	}

	v := &validator{typeIDs: make(map[uuid.UUID]string)}

	if doc.Application == nil {
		v.add(CodeMissingApplication, SeverityWarning, "application", "no application is described")
	}

	for i, c := range doc.Concepts {
		path := fmt.Sprintf("concepts[%d]", i)
		if c == nil {
			v.nilEntry(path)
			continue
		}
		if c.ConceptID() != uuid.Nil {
			v.typeID(c.ConceptID(), path)
		}
	}

	for i, l := range doc.Lookups {
		path := fmt.Sprintf("lookups[%d]", i)
		if l == nil {
			v.nilEntry(path)
			continue
		}
		v.typeID(l.LookupID(), path)
		v.lookup(l, path)
	}

	for i, e := range doc.Entities {
		path := fmt.Sprintf("entities[%d]", i)
		if e == nil {
			v.nilEntry(path)
			continue
		}
		v.typeID(e.EntityID(), path)
		v.entity(e, path)
	}

	for i, r := range doc.Relationships {
		if r == nil {
			v.nilEntry(fmt.Sprintf("relationships[%d]", i))
		}
	}

	sort.SliceStable(v.issues, func(a, b int) bool {
		if v.issues[a].Path != v.issues[b].Path {
			return v.issues[a].Path < v.issues[b].Path
		}
		return v.issues[a].Code < v.issues[b].Code
	})
	return v.issues
}

type validator struct {
	issues  []Issue
	typeIDs map[uuid.UUID]string
}

func (v *validator) add(code IssueCode, sev Severity, path, format string, args ...any) {
	v.issues = append(v.issues, Issue{Code: code, Severity: sev, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) nilEntry(path string) {
	v.add(CodeNilEntry, SeverityError, path, "entry is empty")
}

func (v *validator) typeID(id uuid.UUID, path string) {
	if first, ok := v.typeIDs[id]; ok {
		v.add(CodeDuplicateTypeID, SeverityError, path, "id %s is already used by %s", id, first)
		return
	}
	v.typeIDs[id] = path
}

func (v *validator) lookup(l *models.Lookup, path string) {
	seen := make(map[int]int)
	for i, item := range l.Items() {
		if first, ok := seen[item.ID()]; ok {
			v.add(CodeDuplicateItemID, SeverityError, fmt.Sprintf("%s.items[%d]", path, i),
				"item id %d is already used by items[%d]", item.ID(), first)
			continue
		}
		seen[item.ID()] = i
	}
}

func (v *validator) entity(e *models.Entity, path string) {
	fields := e.Fields()
	names := make(map[string]int)
	var optional, params []string

	for i, f := range fields {
		fpath := fmt.Sprintf("%s.fields[%d]", path, i)

		key := strings.ToLower(f.Name())
		if first, ok := names[key]; ok {
			v.add(CodeDuplicateFieldName, SeverityError, fpath, "field %q is already declared by fields[%d]", f.Name(), first)
		} else {
			names[key] = i
		}

		mods := f.Modifiers()
		if mods.Has(models.FieldOptional) {
			optional = append(optional, f.Name())
			if f.OptionalValue() == nil {
				v.add(CodeOptionalWithoutValue, SeverityWarning, fpath, "optional field %q has no default value", f.Name())
			}
		}
		if mods.Has(models.FieldParamArray) {
			params = append(params, f.Name())
			if i != len(fields)-1 {
				v.add(CodeParamsNotLast, SeverityError, fpath, "params field %q must be the last field", f.Name())
			}
		}
	}

	if len(optional) > 0 && len(params) > 0 {
		v.add(CodeOptionalWithParams, SeverityError, path,
			"entity %q mixes optional fields (%s) with params fields (%s)",
			e.Name(), strings.Join(optional, ", "), strings.Join(params, ", "))
	}
}
