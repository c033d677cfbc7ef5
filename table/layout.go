package table

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ColumnWidths returns the width assigned to each column under the
// current width limit.
func (t *Table) ColumnWidths() ([]int, error) {
	return t.layout(t.maxWidth)
}

// TotalWidth returns the rendered width of the table: its column widths
// plus the separators between them. An empty table is 0 wide.
func (t *Table) TotalWidth() (int, error) {
	widths, err := t.ColumnWidths()
	if err != nil {
		return 0, err
	}
	return t.span(widths), nil
}

// NaturalWidth is the width the table takes without a width limit.
func (t *Table) NaturalWidth() (int, error) {
	widths, err := t.layout(NoLimit)
	if err != nil {
		return 0, err
	}
	return t.span(widths), nil
}

// MinWidth returns the narrowest width the table can be bound to: three
// characters per column plus the separators.
func (t *Table) MinWidth() int {
	n := t.ColumnCount()
	if n == 0 {
		return 0
	}
	return minCellWidth*n + t.sepWidth()*(n-1)
}

func (t *Table) sepWidth() int {
	return utf8.RuneCountInString(t.colSep)
}

func (t *Table) span(widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	total := t.sepWidth() * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return total
}

// layout computes column widths for a width limit of maxWidth. Each column
// is as wide as its widest cell plus the padding space of the separator
// that follows it; the last column has no separator to pad. Columns are at
// least 3 wide. Over the limit, the widest column loses one character at a
// time until the table fits.
func (t *Table) layout(maxWidth int) ([]int, error) {
	n := t.ColumnCount()
	if n == 0 {
		return nil, nil
	}
	if maxWidth != NoLimit && maxWidth < t.MinWidth() {
		return nil, errors.Wrapf(ErrOutOfRange, "max width %d below minimum of %d for %d columns",
			maxWidth, t.MinWidth(), n)
	}

	pad := t.sepWidth() - 1
	widths := make([]int, n)
	for i := range widths {
		widths[i] = minCellWidth
	}
	measure := func(cells []*Cell) error {
		for i, c := range cells {
			w, err := c.Width()
			if err != nil {
				return err
			}
			if w+pad > widths[i] {
				widths[i] = w + pad
			}
		}
		return nil
	}
	if err := measure(t.head); err != nil {
		return nil, err
	}
	for _, row := range t.rows {
		if err := measure(row); err != nil {
			return nil, err
		}
	}
	if last := n - 1; widths[last] > minCellWidth {
		widths[last] = max(widths[last]-pad, minCellWidth)
	}

	if maxWidth == NoLimit {
		return widths, nil
	}
	budget := maxWidth - t.sepWidth()*(n-1)
	for sum(widths) > budget {
		i := widest(widths)
		if widths[i] <= minCellWidth {
			break
		}
		widths[i]--
	}
	return widths, nil
}

func sum(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total
}

// widest returns the index of the first widest column.
func widest(widths []int) int {
	at := 0
	for i, w := range widths {
		if w > widths[at] {
			at = i
		}
	}
	return at
}
