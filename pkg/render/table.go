package render

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// NewTable returns a simple table to output information.
func NewTable(writer io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)

	// Disable line between header and content.
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetRowSeparator(" ")
	table.SetColumnSeparator("")
	table.SetCenterSeparator(" ")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	// Keep underscores in column names, eg. "CREATION_TIME" rather than "CREATION TIME".
	table.SetAutoFormatHeaders(false)
	// Turn off wrapping because it seems to wrap even if the column is set to be wide enough.
	table.SetAutoWrapText(false)

	return table
}

// Table writes rows as a table, cells are formatted with FormatCell.
func Table(w io.Writer, rows *Rows, maxCellWidth int) {
	header := make([]string, len(rows.Columns()))
	for i, col := range rows.Columns() {
		header[i] = strings.ToUpper(col)
	}
	table := NewTable(w, header)
	for rows.Next() {
		row := rows.Row()
		cells := make([]string, len(row))
		for i, val := range row {
			cells[i] = FormatCell(val, maxCellWidth)
		}
		table.Append(cells)
	}
	table.Render()
}
