package parser

import (
	"io"
	"strings"
	"text/tabwriter"
)

// writeTable renders rows as column-aligned text, one line per row. Short rows
// are padded with empty cells so every line has the same number of columns.
func writeTable(w io.Writer, rows [][]string) error {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	cells := make([]string, width)
	for _, row := range rows {
		for i := range cells {
			cells[i] = ""
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		if _, err := io.WriteString(tw, strings.Join(cells, "\t")+"\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}
