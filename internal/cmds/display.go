package cmds

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/dsaxton/pq-utils/output"
	"github.com/dsaxton/pq-utils/reader"
)

// displayData prints rows from the parquet file at path to w in the given
// format. A negative limit prints every row; otherwise iteration stops
// after limit rows and the rest of the file is never read.
func displayData(w io.Writer, path, format string, limit int64) error {
	var formatter output.Formatter
	switch format {
	case "csv":
		formatter = output.NewCSVFormatter(w)
	case "json":
		formatter = output.NewJSONFormatter(w)
	case "jsonl":
		formatter = output.NewJSONLFormatter(w)
	default:
		return fmt.Errorf("unsupported format %q (supported: csv, json, jsonl)", format)
	}

	r, err := reader.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	cols := r.Columns()
	log.Debug("opened parquet file",
		zap.String("path", path),
		zap.Int("columns", len(cols)),
		zap.Int64("rows", r.NumRows()))

	rows := r.Rows()
	defer func() { _ = rows.Close() }()
	if limit >= 0 {
		rows.Limit(limit)
	}

	start := time.Now()
	if err := formatter.Format(cols, rows); err != nil {
		return err
	}
	log.Debug("wrote output",
		zap.String("format", format),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}

// displaySchema prints the column table of the parquet file at path.
func displaySchema(w io.Writer, path string) error {
	r, err := reader.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	cols := r.Columns()
	log.Debug("opened parquet file",
		zap.String("path", path),
		zap.Int("columns", len(cols)))

	output.WriteSchemaTable(w, cols)
	return nil
}

// displayRowCount prints the row count recorded in the file metadata.
func displayRowCount(w io.Writer, path string) error {
	r, err := reader.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	_, err = fmt.Fprintln(w, r.NumRows())
	return err
}
