// Package reader provides functionality for reading Apache Parquet files.
//
// It uses the parquet-go library to open files and exposes their schema
// as column descriptors and their data as a row iterator.
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// rowBatchSize bounds how many rows are decoded per read from a row group.
const rowBatchSize = 128

// Reader reads parquet files and exposes their schema and rows.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// Open creates a new parquet reader for the specified file path.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
//
// Example:
//
//	r, err := reader.Open("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// Schema returns the parquet file schema.
//
// The schema contains metadata about the columns, types, and structure
// of the parquet file.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// NumRows returns the total row count recorded in the file metadata.
// No row data is read.
func (r *Reader) NumRows() int64 {
	return r.pqFile.NumRows()
}

// Rows returns an iterator over every row in the file, covering all row
// groups in file order.
//
// The iterator is single-pass and must be closed when done. Unlike loading
// the file into memory, iteration decodes rows in small batches, so it is
// suitable for files of any size.
func (r *Reader) Rows() *Rows {
	return &Rows{groups: r.pqFile.RowGroups(), limit: -1}
}

// Close closes the parquet reader and releases associated resources.
//
// Should be called when done reading to avoid resource leaks. It is safe
// to call Close multiple times.
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// Rows iterates over the rows of a parquet file one at a time.
type Rows struct {
	groups  []parquet.RowGroup
	cur     parquet.Rows
	buf     []parquet.Row
	count   int   // rows decoded into buf
	next    int   // index of the next buffered row to hand out
	limit   int64 // rows left to serve, -1 when unbounded
	readErr error // decode error held back until buffered rows are served
	done    bool
}

// Limit truncates the iteration after n rows. Batch reads never request
// more rows than the remaining limit, so rows past the cutoff are not
// decoded. A negative n leaves the iteration unbounded.
func (it *Rows) Limit(n int64) {
	it.limit = n
}

// Next returns the next row, or io.EOF when the sequence is exhausted.
//
// The returned row shares the iterator's decode buffers and is only valid
// until the following call to Next.
func (it *Rows) Next() (parquet.Row, error) {
	if it.done || it.limit == 0 {
		return nil, io.EOF
	}

	if it.next >= it.count {
		if err := it.fill(); err != nil {
			it.done = true
			return nil, err
		}
	}

	row := it.buf[it.next]
	it.next++
	if it.limit > 0 {
		it.limit--
	}
	return row, nil
}

// fill decodes the next batch of rows, advancing to the next row group as
// the current one drains. Returns io.EOF once every group is exhausted.
//
// A decode error that arrives together with rows is held back in readErr so
// the rows are served first; the error surfaces on the following fill. Rows
// read up to a failure therefore come with a non-nil error after them, never
// with a silent truncation.
func (it *Rows) fill() error {
	it.next, it.count = 0, 0

	if it.readErr != nil {
		err := it.readErr
		it.readErr = nil
		return err
	}

	for {
		if it.cur == nil {
			if len(it.groups) == 0 {
				return io.EOF
			}
			it.cur = it.groups[0].Rows()
			it.groups = it.groups[1:]
		}

		n, err := it.cur.ReadRows(it.batch())
		if n > 0 {
			it.count = n
			switch {
			case errors.Is(err, io.EOF):
				it.closeCurrent()
			case err != nil:
				it.closeCurrent()
				it.readErr = fmt.Errorf("failed to read row: %w", err)
			}
			return nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			it.closeCurrent()
			return fmt.Errorf("failed to read row: %w", err)
		}
		it.closeCurrent()
	}
}

// batch returns the decode buffer, shortened to the remaining limit so a
// bounded iteration never reads ahead of its cutoff.
func (it *Rows) batch() []parquet.Row {
	if it.buf == nil {
		it.buf = make([]parquet.Row, rowBatchSize)
	}
	if it.limit >= 0 && it.limit < int64(len(it.buf)) {
		return it.buf[:it.limit]
	}
	return it.buf
}

func (it *Rows) closeCurrent() {
	if it.cur != nil {
		_ = it.cur.Close()
		it.cur = nil
	}
}

// Close releases the underlying row group reader. The iterator returns
// io.EOF from any further Next calls. It is safe to call Close multiple
// times.
func (it *Rows) Close() error {
	it.done = true
	it.groups = nil
	if it.cur != nil {
		err := it.cur.Close()
		it.cur = nil
		return err
	}
	return nil
}
