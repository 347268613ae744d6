package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/dsaxton/pq-utils/reader"
)

// WriteSchemaTable renders column descriptors as an aligned text table:
// one row per column holding its name, physical type, and logical type
// (blank when the column carries no annotation).
func WriteSchemaTable(w io.Writer, cols []reader.Column) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Column name", "Physical type", "Logical type"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, col := range cols {
		table.Append([]string{col.Name, col.PhysicalType, col.LogicalType})
	}

	table.Render()
}
