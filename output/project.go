package output

import (
	"fmt"
	"math"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/dsaxton/pq-utils/reader"
)

// NonFiniteError reports a float value that has no JSON representation.
type NonFiniteError struct {
	Column string
	Value  float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("column %q holds %v, which cannot be represented in JSON", e.Column, e.Value)
}

// projectCSV renders one row as a CSV record. String columns pass through
// verbatim; every other kind uses its natural textual form.
func projectCSV(cols []reader.Column, row parquet.Row) []string {
	record := make([]string, 0, len(cols))
	for _, v := range row {
		record = append(record, csvValue(columnOf(cols, v), v))
	}
	return record
}

// projectJSON builds the JSON object for one row, keyed by column name.
// Values keep their native JSON types where one exists; float columns fail
// with *NonFiniteError when the value is NaN or infinite.
func projectJSON(cols []reader.Column, row parquet.Row) (map[string]any, error) {
	obj := make(map[string]any, len(cols))
	for _, v := range row {
		col := columnOf(cols, v)
		val, err := jsonValue(col, v)
		if err != nil {
			return nil, err
		}
		obj[col.Name] = val
	}
	return obj, nil
}

// columnOf picks the descriptor a value belongs to via its column index.
func columnOf(cols []reader.Column, v parquet.Value) reader.Column {
	if i := v.Column(); i >= 0 && i < len(cols) {
		return cols[i]
	}
	return reader.Column{}
}

// csvValue converts a single value to its CSV field string.
func csvValue(col reader.Column, v parquet.Value) string {
	if v.IsNull() {
		return ""
	}

	switch v.Kind() {
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'g', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	case parquet.ByteArray:
		if col.UTF8 {
			return string(v.ByteArray())
		}
		return fmt.Sprintf("%X", v.ByteArray())
	case parquet.FixedLenByteArray:
		return fmt.Sprintf("%X", v.ByteArray())
	default:
		return v.String()
	}
}

// jsonValue converts a single value to its JSON representation.
func jsonValue(col reader.Column, v parquet.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}

	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean(), nil
	case parquet.Int32:
		return v.Int32(), nil
	case parquet.Int64:
		return v.Int64(), nil
	case parquet.Float:
		return finiteFloat(col, float64(v.Float()))
	case parquet.Double:
		return finiteFloat(col, v.Double())
	case parquet.ByteArray:
		if col.UTF8 {
			return string(v.ByteArray()), nil
		}
		return fmt.Sprintf("%X", v.ByteArray()), nil
	case parquet.FixedLenByteArray:
		return fmt.Sprintf("%X", v.ByteArray()), nil
	default:
		// INT96 and any future kinds fall back to their textual form.
		return v.String(), nil
	}
}

func finiteFloat(col reader.Column, f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &NonFiniteError{Column: col.Name, Value: f}
	}
	return f, nil
}
