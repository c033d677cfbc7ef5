// Package table lays out rows of values, nested tables included, as
// fixed-width, column-aligned plain text.
package table

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Default separators.
const (
	DefaultHeadSeparator   = "+="
	DefaultRowSeparator    = "+-"
	DefaultColumnSeparator = "|"
)

// End appends when passed as the index of an add operation.
const End = -1

// Table is a rectangular grid of cells with an optional head row. Every
// row, and the head when present, always has ColumnCount cells.
type Table struct {
	rows [][]*Cell
	head []*Cell

	fill     string
	maxWidth int
	headSep  string // cross and fill character, "" when disabled
	rowSep   string // cross and fill character, "" when disabled
	colSep   string // separator character plus one padding space
}

// Option configures a Table built by New.
type Option func(*builder) error

type builder struct {
	data     [][]any
	rows     int
	columns  int
	maxWidth int
	fill     string
	headSep  string
	rowSep   string
	colSep   string
}

// WithData seeds the table with rows of values. Short rows are padded.
// Combined with WithSize, data beyond the requested size is dropped.
func WithData(data [][]any) Option {
	return func(b *builder) error {
		b.data = data
		return nil
	}
}

// WithSize creates a table of empty cells. A zero dimension next to a
// non-zero one becomes 1.
func WithSize(rows, columns int) Option {
	return func(b *builder) error {
		if rows < 0 {
			return errors.Wrapf(ErrOutOfRange, "number of rows can't be negative: %d", rows)
		}
		if columns < 0 {
			return errors.Wrapf(ErrOutOfRange, "number of columns can't be negative: %d", columns)
		}
		b.rows, b.columns = rows, columns
		return nil
	}
}

// WithMaxWidth bounds the rendered width of the table.
func WithMaxWidth(w int) Option {
	return func(b *builder) error {
		b.maxWidth = w
		return nil
	}
}

// WithFill sets the text shown in empty cells.
func WithFill(fill string) Option {
	return func(b *builder) error {
		b.fill = fill
		return nil
	}
}

// WithHeadSeparator sets the line drawn under the head. See
// SetHeadSeparator.
func WithHeadSeparator(sep string) Option {
	return func(b *builder) error {
		b.headSep = sep
		return nil
	}
}

// WithRowSeparator sets the line drawn between rows. See SetRowSeparator.
func WithRowSeparator(sep string) Option {
	return func(b *builder) error {
		b.rowSep = sep
		return nil
	}
}

// WithColumnSeparator sets the character drawn between columns.
func WithColumnSeparator(sep string) Option {
	return func(b *builder) error {
		b.colSep = sep
		return nil
	}
}

// New builds a table. Without options it is empty, with the default
// separators and no width limit.
func New(opts ...Option) (*Table, error) {
	b := builder{
		headSep: DefaultHeadSeparator,
		rowSep:  DefaultRowSeparator,
		colSep:  DefaultColumnSeparator,
	}
	for _, opt := range opts {
		if err := opt(&b); err != nil {
			return nil, err
		}
	}

	t := &Table{fill: b.fill}
	if err := t.SetHeadSeparator(b.headSep); err != nil {
		return nil, err
	}
	if err := t.SetRowSeparator(b.rowSep); err != nil {
		return nil, err
	}
	if err := t.SetColumnSeparator(b.colSep); err != nil {
		return nil, err
	}

	rows, columns := b.rows, b.columns
	if columns != 0 && rows == 0 {
		rows = 1
	} else if rows != 0 && columns == 0 {
		columns = 1
	}
	for i, data := range b.data {
		if rows != 0 && i >= rows {
			break
		}
		if columns != 0 && len(data) > columns {
			data = data[:columns]
		}
		t.rows = append(t.rows, t.newCells(data))
	}
	for len(t.rows) < rows {
		t.rows = append(t.rows, nil)
	}
	t.padTo(columns)
	t.normalize()

	if err := t.SetMaxWidth(b.maxWidth); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNew is New for static configurations; it panics on error.
func MustNew(opts ...Option) *Table {
	t, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) GoString() string {
	return fmt.Sprintf("<Table %d rows and %d columns>", t.RowCount(), t.ColumnCount())
}

// RowCount returns the number of body rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the number of columns. A table whose rows were all
// removed while keeping the head has the head's column count.
func (t *Table) ColumnCount() int {
	switch {
	case len(t.rows) > 0:
		return len(t.rows[0])
	case t.head != nil:
		return len(t.head)
	default:
		return 0
	}
}

// HasHead reports whether a head row is present.
func (t *Table) HasHead() bool {
	return t.head != nil
}

// Cell returns the body cell at row r, column c.
func (t *Table) Cell(r, c int) (*Cell, error) {
	if r < 0 || r >= t.RowCount() {
		return nil, errors.Wrapf(ErrIndex, "row %d of %d", r, t.RowCount())
	}
	if c < 0 || c >= t.ColumnCount() {
		return nil, errors.Wrapf(ErrIndex, "column %d of %d", c, t.ColumnCount())
	}
	return t.rows[r][c], nil
}

// HeadCell returns the head cell of column c.
func (t *Table) HeadCell(c int) (*Cell, error) {
	if t.head == nil {
		return nil, errors.Wrap(ErrIndex, "table has no head")
	}
	if c < 0 || c >= len(t.head) {
		return nil, errors.Wrapf(ErrIndex, "head column %d of %d", c, len(t.head))
	}
	return t.head[c], nil
}

// Fill returns the text shown in empty cells.
func (t *Table) Fill() string {
	return t.fill
}

// SetFill sets the text shown in empty cells and pushes it into every
// cell of the table.
func (t *Table) SetFill(fill string) {
	t.fill = fill
	t.eachCell(func(c *Cell) { c.SetFill(fill) })
}

// MaxWidth returns the width limit, or NoLimit.
func (t *Table) MaxWidth() int {
	return t.maxWidth
}

// SetMaxWidth bounds the rendered width of the table, shrinking the
// widest columns first, and pushes the resulting column widths into the
// cells. A width below MinWidth is rejected and leaves the table as it
// was.
func (t *Table) SetMaxWidth(w int) error {
	if w < 0 {
		return errors.Wrapf(ErrOutOfRange, "max width can't be negative: %d", w)
	}
	widths, err := t.layout(w)
	if err != nil {
		return err
	}
	t.maxWidth = w
	for _, row := range t.rows {
		applyWidths(row, widths)
	}
	applyWidths(t.head, widths)
	return nil
}

// HeadSeparator returns the head separator, "" when disabled.
func (t *Table) HeadSeparator() string {
	return t.headSep
}

// SetHeadSeparator sets the line under the head. The first character is
// drawn where it crosses a column separator, the second fills the rest.
// One character is used for both; "" disables the line.
func (t *Table) SetHeadSeparator(sep string) error {
	s, err := lineSeparator("head", sep)
	if err != nil {
		return err
	}
	t.headSep = s
	return nil
}

// RowSeparator returns the row separator, "" when disabled.
func (t *Table) RowSeparator() string {
	return t.rowSep
}

// SetRowSeparator sets the line between body rows, with the same rules as
// SetHeadSeparator.
func (t *Table) SetRowSeparator(sep string) error {
	s, err := lineSeparator("row", sep)
	if err != nil {
		return err
	}
	t.rowSep = s
	return nil
}

// ColumnSeparator returns the single character drawn between columns.
func (t *Table) ColumnSeparator() string {
	return strings.TrimSuffix(t.colSep, " ")
}

// SetColumnSeparator sets the character drawn between columns. It is
// always followed by one space.
func (t *Table) SetColumnSeparator(sep string) error {
	if utf8.RuneCountInString(sep) != 1 {
		return errors.Wrapf(ErrInvalidArgument, "column separator must be one character, got %q", sep)
	}
	t.colSep = sep + " "
	return nil
}

func lineSeparator(name, sep string) (string, error) {
	switch utf8.RuneCountInString(sep) {
	case 0:
		return "", nil
	case 1:
		return sep + sep, nil
	case 2:
		return sep, nil
	default:
		return "", errors.Wrapf(ErrInvalidArgument, "%s separator must be at most two characters, got %q", name, sep)
	}
}

// newCells wraps values in cells carrying the table fill.
func (t *Table) newCells(data []any) []*Cell {
	cells := make([]*Cell, len(data))
	for i, v := range data {
		cells[i] = t.newCell(v)
	}
	return cells
}

func (t *Table) newCell(v any) *Cell {
	c := NewCell(v)
	c.SetFill(t.fill)
	return c
}

func (t *Table) eachCell(fn func(*Cell)) {
	for _, c := range t.head {
		fn(c)
	}
	for _, row := range t.rows {
		for _, c := range row {
			fn(c)
		}
	}
}

func applyWidths(cells []*Cell, widths []int) {
	for i, c := range cells {
		if i < len(widths) {
			c.maxWidth = widths[i]
		}
	}
}
