package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, true, "Name", "Type", "Modifiers")

	table.AddRow("CustomerId", "Guid", "None")
	table.AddRow("Tags", "List<String>", "Params")
	table.AddRow("Notes", "String")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Name        Type          Modifiers" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != strings.Repeat("─", 10)+"  "+strings.Repeat("─", 12)+"  "+strings.Repeat("─", 9) {
		t.Errorf("unexpected separator %q", lines[1])
	}
	if lines[3] != "Tags        List<String>  Params" {
		t.Errorf("unexpected row %q", lines[3])
	}
	if lines[4] != "Notes       String        " {
		t.Errorf("short rows should pad to the last column, got %q", lines[4])
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
}

func TestTable_UnicodeWidths(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, true, "Name", "Type")
	table.AddRow("Größe", "Decimal")
	table.AddRow("Id", "Guid")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[3] != "Id     Guid" {
		t.Errorf("expected rune-based padding, got %q", lines[3])
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewTable(&buf, true).Render()
	if buf.Len() != 0 {
		t.Errorf("table without headers should render nothing, got %q", buf.String())
	}
}

func TestKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	kv := NewKeyValueTable(&buf, true)
	kv.AddRow("Name", "Customer")
	kv.AddRow("Namespace", "Entities")
	kv.Render()

	want := "Name:      Customer\nNamespace: Entities\n"
	if buf.String() != want {
		t.Errorf("KeyValueTable rendered %q, want %q", buf.String(), want)
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "Entités", true)
	want := "Entités\n" + strings.Repeat("─", 7) + "\n"
	if buf.String() != want {
		t.Errorf("Header() = %q, want %q", buf.String(), want)
	}
}
