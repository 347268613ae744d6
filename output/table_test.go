package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dsaxton/pq-utils/reader"
)

// tableContentRows counts rendered rows, skipping the border lines the
// table writer draws between them.
func tableContentRows(out string) int {
	count := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") {
			count++
		}
	}
	return count
}

func TestWriteSchemaTable(t *testing.T) {
	cols := []reader.Column{
		{Name: "id", PhysicalType: "INT64"},
		{Name: "name", PhysicalType: "BYTE_ARRAY", LogicalType: "STRING", UTF8: true},
		{Name: "score", PhysicalType: "DOUBLE"},
	}

	var buf bytes.Buffer
	WriteSchemaTable(&buf, cols)
	out := buf.String()

	for _, want := range []string{
		"Column name", "Physical type", "Logical type",
		"id", "INT64",
		"name", "BYTE_ARRAY", "STRING",
		"score", "DOUBLE",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// Header row plus one content row per column.
	if got := tableContentRows(out); got != len(cols)+1 {
		t.Errorf("table has %d content rows, want %d:\n%s", got, len(cols)+1, out)
	}
}

func TestWriteSchemaTable_NestedNames(t *testing.T) {
	cols := []reader.Column{
		{Name: "id", PhysicalType: "INT64"},
		{Name: "address.street", PhysicalType: "BYTE_ARRAY", LogicalType: "STRING", UTF8: true},
	}

	var buf bytes.Buffer
	WriteSchemaTable(&buf, cols)

	if !strings.Contains(buf.String(), "address.street") {
		t.Errorf("table output missing dotted column name:\n%s", buf.String())
	}
}

func TestWriteSchemaTable_NoColumns(t *testing.T) {
	var buf bytes.Buffer
	WriteSchemaTable(&buf, nil)

	// Header only.
	if got := tableContentRows(buf.String()); got != 1 {
		t.Errorf("table has %d content rows, want 1:\n%s", got, buf.String())
	}
}
