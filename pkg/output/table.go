package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/sysupdate/pkg/utils"
)

// Table formats rows into columns sized to their widest cell.
// Widths are measured in terminal cells, so emoji and CJK text align.
type Table struct {
	headers   []string
	widths    []int
	rows      [][]string
	separator string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	t := &Table{headers: headers, widths: make([]int, len(headers)), separator: "  "}
	for i, h := range headers {
		t.widths[i] = utils.DisplayWidth(h)
	}
	return t
}

// AddRow appends a row. Missing cells are rendered empty; extra cells are dropped.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]string, len(t.headers))
	copy(row, cells)
	for i, c := range row {
		if w := utils.DisplayWidth(c); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// Render writes the header, a dashed separator line and every row.
// Trailing padding is trimmed from each line.
func (t *Table) Render(w io.Writer) error {
	lines := [][]string{t.headers, t.dashes()}
	lines = append(lines, t.rows...)
	for _, cells := range lines {
		if _, err := fmt.Fprintln(w, t.formatLine(cells)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) dashes() []string {
	d := make([]string, len(t.widths))
	for i, width := range t.widths {
		d[i] = strings.Repeat("-", width)
	}
	return d
}

func (t *Table) formatLine(cells []string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = utils.ToWidth(c, t.widths[i])
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}
