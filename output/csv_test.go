package output

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
)

func TestCSVFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	err := formatter.Format(userCols, sourceOf(
		makeRow(int64(1), "alice"),
		makeRow(int64(2), "bob"),
		makeRow(int64(3), "carol"),
	))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "id,name\n1,alice\n2,bob\n3,carol\n"
	if got := buf.String(); got != want {
		t.Errorf("Format() output = %q, want %q", got, want)
	}
}

func TestCSVFormatter_EmptySource(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	if err := formatter.Format(userCols, sourceOf()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// Header only.
	if got := buf.String(); got != "id,name\n" {
		t.Errorf("Format() output = %q, want header only", got)
	}
}

func TestCSVFormatter_SpecialCharacters(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	values := []string{
		"value,with,commas",
		`value "with" quotes`,
		"value\nwith\nnewlines",
	}

	err := formatter.Format(userCols, sourceOf(
		makeRow(int64(1), values[0]),
		makeRow(int64(2), values[1]),
		makeRow(int64(3), values[2]),
	))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	// The output must survive a round trip through a CSV reader.
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("parsed %d records, want 4", len(records))
	}

	for i, want := range values {
		if got := records[i+1][1]; got != want {
			t.Errorf("record %d name = %q, want %q", i+1, got, want)
		}
	}
}

func TestCSVFormatter_NullsAsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	err := formatter.Format(userCols, sourceOf(makeRow(int64(1), nil)))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got := buf.String(); got != "id,name\n1,\n" {
		t.Errorf("Format() output = %q, want %q", got, "id,name\n1,\n")
	}
}

func TestCSVFormatter_SourceError(t *testing.T) {
	sourceErr := errors.New("decode failed")

	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	err := formatter.Format(userCols, &errSource{err: sourceErr})
	if !errors.Is(err, sourceErr) {
		t.Errorf("Format() error = %v, want %v", err, sourceErr)
	}
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	formatter := NewCSVFormatter(&first)
	formatter.SetOutput(&second)

	if err := formatter.Format(userCols, sourceOf(makeRow(int64(1), "alice"))); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if first.Len() != 0 {
		t.Errorf("original writer received %d bytes, want 0", first.Len())
	}
	if second.Len() == 0 {
		t.Errorf("replacement writer received no output")
	}
}
