package table

import (
	"github.com/pkg/errors"
)

// AddHead writes data into the head starting at column index, replacing
// the heading cells it covers. End starts after the last heading, or at
// the first column when the table has no head yet; a new head starts out
// with an empty heading per column. Rows grow when the head becomes wider
// than them.
func (t *Table) AddHead(index int, data ...any) error {
	base := t.head
	if base == nil {
		base = t.emptyCells(t.ColumnCount())
		if index == End {
			index = 0
		}
	}
	index, err := insertionPoint("head", index, len(base))
	if err != nil {
		return err
	}

	head := make([]*Cell, 0, max(len(base), index+len(data)))
	head = append(head, base[:index]...)
	head = append(head, t.newCells(data)...)
	if rest := index + len(data); rest < len(base) {
		head = append(head, base[rest:]...)
	}
	t.head = head
	t.restore()
	return nil
}

// AddRow inserts a row of data before row index, or after the last row
// for End. Adding an empty row to an empty table creates one column.
func (t *Table) AddRow(index int, data ...any) error {
	index, err := insertionPoint("row", index, t.RowCount())
	if err != nil {
		return err
	}
	if len(data) == 0 && t.RowCount() == 0 {
		data = []any{nil}
	}

	rows := make([][]*Cell, 0, len(t.rows)+1)
	rows = append(rows, t.rows[:index]...)
	rows = append(rows, t.newCells(data))
	rows = append(rows, t.rows[index:]...)
	t.rows = rows
	t.restore()
	return nil
}

// AddColumn inserts a column of data before column index, or after the
// last column for End. Rows are added when data is longer than the table.
// A non-nil head becomes the column heading, creating the head row if
// needed; on a table with a head a nil head leaves the heading empty.
func (t *Table) AddColumn(index int, head any, data ...any) error {
	columns := t.ColumnCount()
	index, err := insertionPoint("column", index, columns)
	if err != nil {
		return err
	}

	if t.RowCount() == 0 && len(data) == 0 {
		t.rows = append(t.rows, t.emptyCells(columns))
	}
	for len(data) > t.RowCount() {
		t.rows = append(t.rows, t.emptyCells(columns))
	}
	for i, row := range t.rows {
		var v any
		if i < len(data) {
			v = data[i]
		}
		t.rows[i] = insertCell(row, index, t.newCell(v))
	}

	switch {
	case t.head != nil:
		t.head = insertCell(t.head, index, t.newCell(head))
	case head != nil:
		t.head = insertCell(t.emptyCells(columns), index, t.newCell(head))
	}
	t.restore()
	return nil
}

// RemoveHead drops the whole head when called without indexes. With
// indexes, the heading cells at those columns are emptied in place so the
// head keeps its width.
func (t *Table) RemoveHead(index ...int) error {
	if len(index) == 0 {
		t.head = nil
		return nil
	}
	targets, err := indexSet("head", index, len(t.head))
	if err != nil {
		return err
	}
	for i := range targets {
		t.head[i] = t.newCell(nil)
	}
	return nil
}

// RemoveRow removes the rows at index, or the last row when called
// without indexes. The remaining rows close the gap. The head is dropped
// along with the last row.
func (t *Table) RemoveRow(index ...int) error {
	return t.removeRows(true, index)
}

// RemoveRowKeepHead is RemoveRow, except that the head survives the
// removal of the last row.
func (t *Table) RemoveRowKeepHead(index ...int) error {
	return t.removeRows(false, index)
}

func (t *Table) removeRows(dropHead bool, index []int) error {
	index, err := defaultLast("row", index, t.RowCount())
	if err != nil {
		return err
	}
	targets, err := indexSet("row", index, t.RowCount())
	if err != nil {
		return err
	}

	rows := make([][]*Cell, 0, len(t.rows))
	for i, row := range t.rows {
		if !targets[i] {
			rows = append(rows, row)
		}
	}
	t.rows = rows
	if dropHead && len(t.rows) == 0 {
		t.head = nil
	}
	t.normalize()
	return nil
}

// RemoveColumn removes the columns at index, or the last column when
// called without indexes, from every row and from the head. Removing the
// last column empties the table.
func (t *Table) RemoveColumn(index ...int) error {
	index, err := defaultLast("column", index, t.ColumnCount())
	if err != nil {
		return err
	}
	targets, err := indexSet("column", index, t.ColumnCount())
	if err != nil {
		return err
	}

	for r, row := range t.rows {
		t.rows[r] = dropCells(row, targets)
	}
	if t.head != nil {
		t.head = dropCells(t.head, targets)
	}
	t.normalize()
	return nil
}

// ClearColumn empties the body cells of the columns at index, or of the
// last column when called without indexes. The columns and their headings
// stay.
func (t *Table) ClearColumn(index ...int) error {
	index, err := defaultLast("column", index, t.ColumnCount())
	if err != nil {
		return err
	}
	targets, err := indexSet("column", index, t.ColumnCount())
	if err != nil {
		return err
	}
	for _, row := range t.rows {
		for i := range targets {
			row[i] = t.newCell(nil)
		}
	}
	return nil
}

// restore pads every row and the head with empty cells to the widest of
// them, then drops a table left without columns.
func (t *Table) restore() {
	t.padTo(0)
	t.normalize()
}

// padTo pads the rows and the head with empty cells to the widest of them,
// and to at least columns cells.
func (t *Table) padTo(columns int) {
	width := max(columns, len(t.head))
	for _, row := range t.rows {
		width = max(width, len(row))
	}
	for i, row := range t.rows {
		t.rows[i] = t.padCells(row, width)
	}
	if t.head != nil {
		t.head = t.padCells(t.head, width)
	}
}

// normalize keeps rows and columns empty together: a table whose rows
// and head have no cells has no rows and no head.
func (t *Table) normalize() {
	if t.ColumnCount() == 0 {
		t.rows = nil
		t.head = nil
	}
}

func (t *Table) padCells(cells []*Cell, width int) []*Cell {
	for len(cells) < width {
		cells = append(cells, t.newCell(nil))
	}
	return cells
}

func (t *Table) emptyCells(n int) []*Cell {
	return t.padCells(make([]*Cell, 0, n+1), n)
}

func insertCell(cells []*Cell, index int, c *Cell) []*Cell {
	out := make([]*Cell, 0, len(cells)+1)
	out = append(out, cells[:index]...)
	out = append(out, c)
	return append(out, cells[index:]...)
}

func dropCells(cells []*Cell, targets map[int]bool) []*Cell {
	out := make([]*Cell, 0, len(cells))
	for i, c := range cells {
		if !targets[i] {
			out = append(out, c)
		}
	}
	return out
}

// insertionPoint resolves End and checks that index lies in [0, count].
func insertionPoint(kind string, index, count int) (int, error) {
	if index == End {
		return count, nil
	}
	if index < 0 || index > count {
		return 0, errors.Wrapf(ErrOutOfRange, "%s index %d out of range [0, %d]", kind, index, count)
	}
	return index, nil
}

// defaultLast substitutes the last position for an empty index list.
func defaultLast(kind string, index []int, count int) ([]int, error) {
	if len(index) > 0 {
		return index, nil
	}
	if count == 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "no %s to remove", kind)
	}
	return []int{count - 1}, nil
}

// indexSet checks every index against [0, count) and collapses
// duplicates.
func indexSet(kind string, index []int, count int) (map[int]bool, error) {
	set := make(map[int]bool, len(index))
	for _, i := range index {
		if i < 0 || i >= count {
			return nil, errors.Wrapf(ErrOutOfRange, "%s index %d out of range [0, %d)", kind, i, count)
		}
		set[i] = true
	}
	return set, nil
}
