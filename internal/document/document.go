// Package document loads a complete model description (the application plus
// its concepts, lookups, entities and relationships) from YAML or JSON, checks
// the invariants that span more than one value, and writes it back out.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mytrout/buildingblocks/pkg/models"
)

// Format is a document encoding.
type Format string

const (
	// FormatJSON is indented JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// Document is one model description. Every member is optional so partial
// documents (a shared lookup library, say) load too.
type Document struct {
	Application   *models.Application    `json:"application,omitempty" yaml:"application,omitempty"`
	Concepts      []*models.Concept      `json:"concepts,omitempty" yaml:"concepts,omitempty"`
	Lookups       []*models.Lookup       `json:"lookups,omitempty" yaml:"lookups,omitempty"`
	Entities      []*models.Entity       `json:"entities,omitempty" yaml:"entities,omitempty"`
	Relationships []*models.Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`
}

// FormatFromPath picks the format from the file extension. A trailing ".gz"
// is ignored.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".gz")))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported document extension %q", ext)
	}
}

// ParseFormat parses a format name as given on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported document format %q", s)
	}
}

// Load reads and decodes the document at path. Files ending in ".gz" are
// decompressed first.
func Load(path string) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("document path cannot be empty")
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".gz") {
		if data, err = Decompress(data); err != nil {
			return nil, fmt.Errorf("failed to decompress document %s: %w", path, err)
		}
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode decodes data in the given format. Model validation errors are
// returned unwrapped enough for errors.As to find the guard error.
func Decode(data []byte, format Format) (*Document, error) {
	if data == nil {
		return nil, fmt.Errorf("data cannot be nil")
	}

	doc := &Document{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("failed to decode json document: %w", err)
		}
	case FormatYAML:
		if len(bytes.TrimSpace(data)) == 0 {
			return doc, nil
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("failed to decode yaml document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
	return doc, nil
}

// Count is the number of top-level values of each kind.
type Count struct {
	Concepts      int `json:"concepts"`
	Lookups       int `json:"lookups"`
	Entities      int `json:"entities"`
	Fields        int `json:"fields"`
	Relationships int `json:"relationships"`
}

// Count tallies the document.
func (d *Document) Count() Count {
	c := Count{
		Concepts:      len(d.Concepts),
		Lookups:       len(d.Lookups),
		Entities:      len(d.Entities),
		Relationships: len(d.Relationships),
	}
	for _, e := range d.Entities {
		if e != nil {
			c.Fields += len(e.Fields())
		}
	}
	return c
}

// Types returns a CoreType for every concept, lookup and entity declared in
// the document, in declaration order.
func (d *Document) Types() ([]*models.CoreType, error) {
	var out []*models.CoreType
	for _, c := range d.Concepts {
		if c != nil {
			out = append(out, c.CoreType())
		}
	}
	for _, l := range d.Lookups {
		if l == nil {
			continue
		}
		ct, err := models.NewLookupType(l)
		if err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	for _, e := range d.Entities {
		if e == nil {
			continue
		}
		ct, err := models.NewEntityType(e)
		if err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, nil
}
