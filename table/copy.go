package table

import "github.com/pkg/errors"

// Copy returns a new table with the same configuration and copies of the
// selected cells. A nil rows or columns selects all of them; selections
// keep the given order and may repeat an index. The copy shares no cell
// with t.
func (t *Table) Copy(rows, columns []int) (*Table, error) {
	if err := checkSelection("row", rows, t.RowCount()); err != nil {
		return nil, err
	}
	if err := checkSelection("column", columns, t.ColumnCount()); err != nil {
		return nil, err
	}

	c := &Table{
		fill:     t.fill,
		maxWidth: t.maxWidth,
		headSep:  t.headSep,
		rowSep:   t.rowSep,
		colSep:   t.colSep,
	}
	if rows == nil {
		rows = sequence(t.RowCount())
	}
	if columns == nil {
		columns = sequence(t.ColumnCount())
	}

	for _, r := range rows {
		row := make([]*Cell, len(columns))
		for i, col := range columns {
			row[i] = t.rows[r][col].Copy()
		}
		c.rows = append(c.rows, row)
	}
	if t.head != nil {
		c.head = make([]*Cell, len(columns))
		for i, col := range columns {
			c.head[i] = t.head[col].Copy()
		}
	}
	c.normalize()
	return c, nil
}

// Clone copies the whole table.
func (t *Table) Clone() *Table {
	c, _ := t.Copy(nil, nil)
	return c
}

func checkSelection(kind string, index []int, count int) error {
	for _, i := range index {
		if i < 0 || i >= count {
			return errors.Wrapf(ErrIndex, "%s %d exceeds %d %ss", kind, i, count, kind)
		}
	}
	return nil
}

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
