package output

import (
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/dsaxton/pq-utils/reader"
)

// RowSource supplies parquet rows one at a time, returning io.EOF once the
// sequence is exhausted. *reader.Rows satisfies it.
type RowSource interface {
	Next() (parquet.Row, error)
}

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to consume a row source and write every
// row in the target format, and SetOutput to change the output destination.
// The cols slice describes the leaf columns in file order and must align
// with the column indexes carried by row values.
type Formatter interface {
	// Format writes rows from src in the formatter's specific format
	Format(cols []reader.Column, src RowSource) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
