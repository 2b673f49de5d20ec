package printer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders aligned columnar output with tabwriter, kubectl style:
// upper-cased headers, three-space gutters, no borders.
type Table struct {
	writer  *tabwriter.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a table writing to out.
func NewTable(out io.Writer) *Table {
	return &Table{writer: tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)}
}

// SetHeaders sets the column headers.
func (t *Table) SetHeaders(headers ...string) {
	t.headers = headers
}

// AddRow appends one data row; values are stringified with %v.
func (t *Table) AddRow(values ...any) {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = fmt.Sprintf("%v", v)
	}
	t.rows = append(t.rows, row)
}

// Render flushes the table.
func (t *Table) Render() error {
	if len(t.rows) == 0 && len(t.headers) == 0 {
		return nil
	}
	if len(t.headers) > 0 {
		_, _ = fmt.Fprintln(t.writer, strings.ToUpper(strings.Join(t.headers, "\t")))
	}
	for _, row := range t.rows {
		_, _ = fmt.Fprintln(t.writer, strings.Join(row, "\t"))
	}
	return t.writer.Flush()
}

// Truncate shortens a string to maxLen with an ellipsis.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// OrDefault returns value, or the placeholder when it is empty.
func OrDefault(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
