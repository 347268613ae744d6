// Package output provides formatters for converting parquet rows to various output formats.
//
// This package defines the Formatter interface and provides implementations
// for common output formats. Formatters consume rows from a RowSource and
// project each parquet value according to the format's type policy.
//
// # Supported Formats
//
//   - CSV: Comma-separated values with header row, streamed row by row
//   - JSON: A single JSON array holding every row, written in one piece
//   - JSON Lines: One JSON object per line (suitable for streaming)
//
// A schema table renderer is also provided for printing column metadata.
//
// # Basic Usage
//
// Using the CSV formatter:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(r.Columns(), r.Rows()); err != nil {
//	    log.Fatal(err)
//	}
//
// Using the JSON formatter:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//	if err := formatter.Format(r.Columns(), r.Rows()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewJSONLFormatter(os.Stdout)
//
//	file, err := os.Create("output.jsonl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(cols, rows); err != nil {
//	    log.Fatal(err)
//	}
//
// # Formatter Interface
//
// Implement custom formatters by satisfying the Formatter interface:
//
//	type Formatter interface {
//	    Format(cols []reader.Column, src RowSource) error
//	    SetOutput(w io.Writer)
//	}
//
// # Type Handling
//
// CSV renders every value as text: strings verbatim, numbers and booleans
// in their natural decimal and true/false forms, nulls as empty fields,
// and raw byte arrays as hex. JSON keeps native types where one exists:
// strings, exact integers, finite floats, booleans, and null. A NaN or
// infinite float has no JSON representation and fails the conversion with
// a NonFiniteError rather than producing lossy output.
package output
