package table

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// NoLimit leaves a width unconstrained.
const NoLimit = 0

// minCellWidth is the narrowest a constrained cell can be: one visible
// character plus the ".." marker, or a one digit integer shorthand.
const minCellWidth = 3

// Cell holds one value together with the width it has to fit in.
type Cell struct {
	value    Value
	fill     string
	maxWidth int
}

// NewCell creates an unconstrained cell holding ValueOf(v).
func NewCell(v any) *Cell {
	return &Cell{value: ValueOf(v)}
}

func (c *Cell) GoString() string {
	return fmt.Sprintf("<Cell value=%q>", c.Value().String())
}

// Raw returns the stored value, None included.
func (c *Cell) Raw() Value {
	return c.value
}

// Value returns the stored value, or the fill text when it is None.
func (c *Cell) Value() Value {
	if c.value.IsNone() {
		return String(c.fill)
	}
	return c.value
}

// SetValue replaces the stored value with ValueOf(v).
func (c *Cell) SetValue(v any) {
	c.value = ValueOf(v)
}

// Fill returns the text shown in place of None.
func (c *Cell) Fill() string {
	return c.fill
}

// SetFill sets the text shown in place of None.
func (c *Cell) SetFill(fill string) {
	c.fill = fill
}

// MaxWidth returns the width limit, or NoLimit.
func (c *Cell) MaxWidth() int {
	return c.maxWidth
}

// SetMaxWidth constrains the cell to w characters. NoLimit clears the
// constraint; anything below 3 is rejected.
func (c *Cell) SetMaxWidth(w int) error {
	if w != NoLimit && w < minCellWidth {
		return errors.Wrapf(ErrOutOfRange, "max width too small: %d < %d", w, minCellWidth)
	}
	c.maxWidth = w
	return nil
}

// Width is the natural width of the cell: the longest line of its text,
// or the unconstrained width of a nested table drawn with the cell's fill.
// A width limit pushed into a nested table by an earlier layout does not
// count, so the column can grow back.
func (c *Cell) Width() (int, error) {
	v := c.Value()
	if t, ok := v.Table(); ok {
		t.SetFill(c.fill)
		return t.NaturalWidth()
	}
	return textWidth(v.String()), nil
}

// Lines renders the value truncated to the cell width, one entry per
// output line. A nested table first takes over the fill and the width of
// the cell, then lays itself out within it. Calling Lines again with the
// same configuration yields the same lines.
func (c *Cell) Lines() ([]string, error) {
	v := c.Value()
	if t, ok := v.Table(); ok {
		if err := c.configureNested(t); err != nil {
			return nil, err
		}
		out, err := t.Render()
		if err != nil {
			return nil, err
		}
		return strings.Split(out, "\n"), nil
	}
	return strings.Split(truncateValue(v, c.maxWidth), "\n"), nil
}

// configureNested pushes the cell's fill and width into a nested table.
func (c *Cell) configureNested(t *Table) error {
	t.SetFill(c.fill)
	if err := t.SetMaxWidth(c.maxWidth); err != nil {
		return errors.Wrap(err, "nested table")
	}
	return nil
}

// String returns the rendered lines joined by newlines.
func (c *Cell) String() string {
	lines, err := c.Lines()
	if err != nil {
		return "<cell: " + err.Error() + ">"
	}
	return strings.Join(lines, "\n")
}

// Copy returns an independent cell. Nested tables are copied too, and so are
// slices and maps held as opaque values. Anything an opaque value points to
// is shared.
func (c *Cell) Copy() *Cell {
	return &Cell{
		value:    c.value.copy(),
		fill:     c.fill,
		maxWidth: c.maxWidth,
	}
}
