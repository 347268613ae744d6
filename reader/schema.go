package reader

import (
	"github.com/parquet-go/parquet-go"
)

// Column describes a single leaf column of a parquet file.
type Column struct {
	Name         string `json:"name"`
	PhysicalType string `json:"physical_type"`
	LogicalType  string `json:"logical_type"`
	UTF8         bool   `json:"utf8"`
}

// Columns returns descriptors for every leaf column, one per column in
// file-declared order. The position of each descriptor matches the column
// index carried by values in rows read from the file.
//
// For nested types, column names use dot notation (e.g., "address.street").
func (r *Reader) Columns() []Column {
	var cols []Column
	for _, field := range r.pqFile.Schema().Fields() {
		cols = appendColumns(cols, field, "")
	}
	return cols
}

// appendColumns recursively collects leaf descriptors from a field.
// The prefix parameter is used to build dot-notation names for nested fields.
func appendColumns(cols []Column, field parquet.Field, prefix string) []Column {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}

	// Groups contribute no descriptor of their own, only their leaves.
	if children := field.Fields(); len(children) > 0 {
		for _, child := range children {
			cols = appendColumns(cols, child, name)
		}
		return cols
	}

	return append(cols, Column{
		Name:         name,
		PhysicalType: physicalTypeName(field.Type()),
		LogicalType:  logicalTypeName(field.Type()),
		UTF8:         isStringType(field.Type()),
	})
}

// physicalTypeName returns the parquet physical type name of a leaf type.
func physicalTypeName(typ parquet.Type) string {
	if typ == nil {
		return "UNKNOWN"
	}

	switch typ.Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// logicalTypeName returns the logical type annotation of a leaf type, or
// an empty string when the column carries none.
func logicalTypeName(typ parquet.Type) string {
	if typ == nil {
		return ""
	}

	logicalType := typ.LogicalType()
	if logicalType == nil {
		return ""
	}

	return logicalType.String()
}

// isStringType reports whether a leaf column holds text: a byte array
// annotated as STRING, ENUM, or JSON.
func isStringType(typ parquet.Type) bool {
	if typ == nil {
		return false
	}

	logicalType := typ.LogicalType()
	if logicalType == nil {
		return false
	}

	return logicalType.UTF8 != nil || logicalType.Enum != nil || logicalType.Json != nil
}
