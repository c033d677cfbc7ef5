package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Render lays the table out and returns it as text: the head, the head
// separator line, then the body rows with separator lines between them.
// Every cell is left-justified to its column width. Leading and trailing
// newlines are trimmed.
func (t *Table) Render() (string, error) {
	widths, err := t.ColumnWidths()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if t.head != nil {
		if err := t.writeRow(&b, t.head, widths); err != nil {
			return "", err
		}
		if t.headSep != "" {
			b.WriteString(separatorLine(t.headSep, widths))
		}
	}

	var between string
	if t.rowSep != "" {
		between = separatorLine(t.rowSep, widths)
	}
	for i, row := range t.rows {
		if i > 0 {
			b.WriteString(between)
		}
		if err := t.writeRow(&b, row, widths); err != nil {
			return "", err
		}
	}
	return strings.Trim(b.String(), "\n"), nil
}

// HeadLines returns how many leading lines of the rendering belong to the
// head, its separator line included.
func (t *Table) HeadLines() (int, error) {
	if t.head == nil {
		return 0, nil
	}
	widths, err := t.ColumnWidths()
	if err != nil {
		return 0, err
	}
	var b strings.Builder
	if err := t.writeRow(&b, t.head, widths); err != nil {
		return 0, err
	}
	n := strings.Count(b.String(), "\n")
	if t.headSep != "" {
		n++
	}
	return n, nil
}

// Lines returns the rendering split into lines.
func (t *Table) Lines() ([]string, error) {
	out, err := t.Render()
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// String implements fmt.Stringer. A layout error is rendered in place of
// the table.
func (t *Table) String() string {
	out, err := t.Render()
	if err != nil {
		return "<table: " + err.Error() + ">"
	}
	return out
}

// Log writes the rendering of Copy(rows, columns) to w.
func (t *Table) Log(w io.Writer, rows, columns []int) error {
	c, err := t.Copy(rows, columns)
	if err != nil {
		return err
	}
	out, err := c.Render()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// writeRow renders one row of cells. Cells wrapping onto several lines
// are walked in lock step; cells that run out of lines are blank for the
// rest of the row.
func (t *Table) writeRow(b *strings.Builder, cells []*Cell, widths []int) error {
	lines := make([][]string, len(cells))
	height := 0
	for i, c := range cells {
		c.fill = t.fill
		c.maxWidth = widths[i]
		ls, err := c.Lines()
		if err != nil {
			return err
		}
		lines[i] = ls
		height = max(height, len(ls))
	}
	for l := 0; l < height; l++ {
		for i := range cells {
			var text string
			if l < len(lines[i]) {
				text = lines[i][l]
			}
			b.WriteString(padRight(text, widths[i]))
			if i < len(cells)-1 {
				b.WriteString(t.colSep)
			} else {
				b.WriteByte('\n')
			}
		}
	}
	return nil
}

// separatorLine draws the fill character of sep across every column and
// the full sep at each crossing.
func separatorLine(sep string, widths []int) string {
	_, size := utf8.DecodeRuneInString(sep)
	fill := sep[size:]
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat(fill, w)
	}
	return strings.Join(parts, sep) + "\n"
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
