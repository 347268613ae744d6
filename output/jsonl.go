package output

import (
	"errors"
	"io"

	"github.com/goccy/go-json"

	"github.com/dsaxton/pq-utils/reader"
)

// JSONLFormatter outputs rows as JSON Lines (one JSON object per line).
//
// Rows are encoded as they arrive, keeping memory use flat no matter how
// many rows the file holds. Lines written before a mid-stream failure
// remain on the output; the caller signals the failure through its exit
// status.
type JSONLFormatter struct {
	writer io.Writer
}

// NewJSONLFormatter creates a new JSON Lines formatter
func NewJSONLFormatter(w io.Writer) *JSONLFormatter {
	return &JSONLFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONLFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON Lines (one JSON object per line)
func (j *JSONLFormatter) Format(cols []reader.Column, src RowSource) error {
	encoder := json.NewEncoder(j.writer)

	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		obj, err := projectJSON(cols, row)
		if err != nil {
			return err
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
}
