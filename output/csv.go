package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/dsaxton/pq-utils/reader"
)

// CSVFormatter outputs rows as CSV with a header record.
//
// Rows are written as they arrive, so memory use stays flat regardless of
// file size. Quoting and escaping of separators, quotes, and newlines are
// left to encoding/csv.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes one header record with the column names, then one record
// per row in source order.
func (c *CSVFormatter) Format(cols []reader.Column, src RowSource) error {
	csvWriter := csv.NewWriter(c.writer)

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Name
	}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if err := csvWriter.Write(projectCSV(cols, row)); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
