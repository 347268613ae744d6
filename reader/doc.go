// Package reader provides functionality for reading Apache Parquet files.
//
// This package wraps the parquet-go library behind a small surface: opening
// and validating a file, describing its columns, and iterating its rows one
// at a time without loading the file into memory.
//
// # Basic Usage
//
// Reading a parquet file row by row:
//
//	r, err := reader.Open("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	rows := r.Rows()
//	defer rows.Close()
//
//	for {
//	    row, err := rows.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("%v\n", row)
//	}
//
// # Bounded Iteration
//
// Limit caps how many rows an iterator produces. Rows past the cutoff are
// never decoded, so peeking at the head of a large file is cheap:
//
//	rows := r.Rows()
//	rows.Limit(10)
//
// # Schema Introspection
//
// Columns flattens the file schema into one descriptor per leaf column,
// with dot-notation names for nested fields:
//
//	for _, col := range r.Columns() {
//	    fmt.Printf("%s: %s %s\n", col.Name, col.PhysicalType, col.LogicalType)
//	}
//
// # Resource Management
//
// Always call Close() when done reading to release file handles:
//
//	r, err := reader.Open("data.parquet")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
// The package uses github.com/parquet-go/parquet-go for the underlying
// parquet file operations.
package reader
