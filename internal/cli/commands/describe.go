package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mytrout/buildingblocks/internal/cli/ui"
	"github.com/mytrout/buildingblocks/internal/document"
	"github.com/mytrout/buildingblocks/pkg/models"
)

// typeSummary is one row of the type listing.
type typeSummary struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Kind      string `json:"kind" yaml:"kind"`
	ID        string `json:"id" yaml:"id"`
}

func kindOf(ct *models.CoreType) string {
	switch {
	case ct.IsConcept():
		return "concept"
	case ct.IsEntity():
		return "entity"
	case ct.IsLookup():
		return "lookup"
	case ct.IsGeneric():
		return "generic"
	default:
		return "native"
	}
}

func summarize(ct *models.CoreType) typeSummary {
	return typeSummary{
		Name:      ct.Name(),
		Namespace: ct.Namespace(),
		Kind:      kindOf(ct),
		ID:        ct.ID().String(),
	}
}

func newDescribeCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <file> [type]",
		Short: "List the types a model document declares, or show one in detail",
		Long: `Without a type name, list every concept, lookup and entity in the document.
With a type name, show that type's members: fields for an entity, items for a
lookup. Type names match case-insensitively.

Examples:
  bbmodel describe model.yml
  bbmodel describe model.yml Customer
  bbmodel describe -o yaml model.yml AccountStatus`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			doc, err := document.Load(path)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ModelError(path, err, s.colorOff()))
				return err
			}

			types, err := doc.Types()
			if err != nil {
				return err
			}
			s.logger.Debug("document loaded", zap.String("file", path), zap.Int("types", len(types)))

			if len(args) == 1 {
				return s.listTypes(cmd.OutOrStdout(), path, types)
			}

			name := args[1]
			for _, ct := range types {
				if strings.EqualFold(ct.Name(), name) {
					return s.describeType(cmd.OutOrStdout(), ct)
				}
			}

			names := make([]string, 0, len(types))
			for _, ct := range types {
				names = append(names, ct.Name())
			}
			fmt.Fprint(cmd.ErrOrStderr(), ui.TypeNotFoundError(name, path, ui.Suggest(name, names, nil), s.colorOff()))
			return fmt.Errorf("type %q not found in %s", name, path)
		},
	}
	return cmd
}

func (s *session) encode(w io.Writer, v any) error {
	switch s.cfg.Output.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", s.cfg.Output.Format)
}

func (s *session) listTypes(w io.Writer, path string, types []*models.CoreType) error {
	rows := make([]typeSummary, 0, len(types))
	for _, ct := range types {
		rows = append(rows, summarize(ct))
	}

	if s.cfg.Output.Format != "table" {
		return s.encode(w, rows)
	}

	noColor := s.colorOff()
	ui.Header(w, fmt.Sprintf("Types in %s", path), noColor)
	t := ui.NewTable(w, noColor, "Name", "Kind", "Namespace", "Id")
	for _, r := range rows {
		t.AddRow(r.Name, r.Kind, r.Namespace, r.ID)
	}
	t.Render()
	return nil
}

func (s *session) describeType(w io.Writer, ct *models.CoreType) error {
	if s.cfg.Output.Format != "table" {
		switch {
		case ct.IsEntity():
			return s.encode(w, ct.Entity())
		case ct.IsLookup():
			return s.encode(w, ct.Lookup())
		default:
			return s.encode(w, ct)
		}
	}

	noColor := s.colorOff()
	sum := summarize(ct)

	ui.Header(w, sum.Name, noColor)
	kv := ui.NewKeyValueTable(w, noColor)
	kv.AddRow("Kind", sum.Kind)
	kv.AddRow("Id", sum.ID)
	if sum.Namespace != "" {
		kv.AddRow("Namespace", sum.Namespace)
	}

	switch {
	case ct.IsEntity():
		e := ct.Entity()
		kv.AddRow("Description", e.Description())
		kv.AddRow("Modifiers", e.Modifiers().String())
		if base := e.BaseCoreType(); base != nil {
			kv.AddRow("Base type", base.Name())
		}
		kv.Render()
		fmt.Fprintln(w)

		t := ui.NewTable(w, noColor, "Field", "Type", "Modifiers", "Description")
		for _, f := range e.Fields() {
			t.AddRow(f.Name(), f.FieldType().Name(), f.Modifiers().String(), f.ShortDescription())
		}
		t.Render()

	case ct.IsLookup():
		l := ct.Lookup()
		kv.AddRow("Description", l.Description())
		kv.AddRow("Modifiers", l.Modifiers().String())
		kv.Render()
		fmt.Fprintln(w)

		t := ui.NewTable(w, noColor, "Item", "Name", "Description", "Remarks")
		for _, item := range l.Items() {
			t.AddRow(strconv.Itoa(item.ID()), item.Name(), item.Description(), item.Remarks())
		}
		t.Render()

	default:
		kv.Render()
	}
	return nil
}
