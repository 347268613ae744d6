package output

import (
	"errors"
	"io"

	"github.com/goccy/go-json"

	"github.com/dsaxton/pq-utils/reader"
)

// JSONFormatter outputs rows as a single JSON array of objects.
//
// Every row is projected into memory before anything is written, and the
// array goes out in one piece. A projection failure therefore never leaves
// a partial array behind.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON array formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes every row as one JSON array. An empty source yields [].
func (j *JSONFormatter) Format(cols []reader.Column, src RowSource) error {
	objs := make([]map[string]any, 0)

	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		obj, err := projectJSON(cols, row)
		if err != nil {
			return err
		}
		objs = append(objs, obj)
	}

	encoder := json.NewEncoder(j.writer)
	return encoder.Encode(objs)
}
