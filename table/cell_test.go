package table_test

import (
	"errors"
	"testing"

	"github.com/deevus/texttable/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellLines(t *testing.T, v any, width int) []string {
	t.Helper()
	c := table.NewCell(v)
	require.NoError(t, c.SetMaxWidth(width))
	lines, err := c.Lines()
	require.NoError(t, err)
	return lines
}

func TestCell_Value_FillSubstitutesNone(t *testing.T) {
	c := table.NewCell(nil)
	c.SetFill("n/a")

	assert.True(t, c.Raw().IsNone())
	s, ok := c.Value().Text()
	assert.True(t, ok)
	assert.Equal(t, "n/a", s)
}

func TestCell_Value_EmptyStringIsNotNone(t *testing.T) {
	c := table.NewCell("")
	c.SetFill("n/a")

	assert.False(t, c.Raw().IsNone())
	assert.Equal(t, "", c.Value().String())
}

func TestCell_SetMaxWidth(t *testing.T) {
	c := table.NewCell("x")

	assert.NoError(t, c.SetMaxWidth(3))
	assert.Equal(t, 3, c.MaxWidth())
	assert.NoError(t, c.SetMaxWidth(table.NoLimit))
	assert.Equal(t, table.NoLimit, c.MaxWidth())

	for _, w := range []int{1, 2, -1} {
		err := c.SetMaxWidth(w)
		assert.True(t, errors.Is(err, table.ErrOutOfRange), "width %d: %v", w, err)
		assert.Contains(t, err.Error(), "max width too small")
	}
	assert.Equal(t, table.NoLimit, c.MaxWidth(), "rejected width must not stick")
}

func TestCell_Width(t *testing.T) {
	tests := []struct {
		value any
		want  int
	}{
		{nil, 0},
		{"", 0},
		{"hello", 5},
		{"ab\nabcd\nabc", 4},
		{1234, 4},
		{-12, 3},
		{2.5, 3},
		{2.0, 3},
		{[]int{1, 2}, 5},
	}
	for _, tt := range tests {
		w, err := table.NewCell(tt.value).Width()
		require.NoError(t, err)
		assert.Equal(t, tt.want, w, "value %v", tt.value)
	}
}

func TestCell_Width_NestedTable(t *testing.T) {
	inner := table.MustNew(table.WithData([][]any{{"a", "b"}}))
	w, err := table.NewCell(inner).Width()
	require.NoError(t, err)
	assert.Equal(t, 8, w)
}

func TestCell_Lines_Unconstrained(t *testing.T) {
	assert.Equal(t, []string{"hello world"}, cellLines(t, "hello world", table.NoLimit))
	assert.Equal(t, []string{"0.14285714285714285"}, cellLines(t, 1.0/7, table.NoLimit))
	assert.Equal(t, []string{"1e+32"}, cellLines(t, 1e32, table.NoLimit))
	assert.Equal(t, []string{"a", "b"}, cellLines(t, "a\nb", table.NoLimit))
}

func TestCell_Lines_WordWrap(t *testing.T) {
	lines := cellLines(t, "hello world foo", 7)

	assert.Equal(t, []string{"hello", "world", "foo"}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 7)
	}
}

func TestCell_Lines_WordWrap_PacksWords(t *testing.T) {
	assert.Equal(t, []string{"a bb", "ccc", "d"}, cellLines(t, "a bb ccc d", 5))
	assert.Equal(t, []string{"hello", "world foo"}, cellLines(t, "hello world foo", 11))
}

func TestCell_Lines_WordWrap_ExactFit(t *testing.T) {
	assert.Equal(t, []string{"abcdefg", "hi"}, cellLines(t, "abcdefg hi", 7))
}

func TestCell_Lines_HardTruncate(t *testing.T) {
	assert.Equal(t, []string{"super.."}, cellLines(t, "supercalifragilistic", 7))
	assert.Equal(t, []string{"ok su.."}, cellLines(t, "ok supercalifragilistic", 7))
}

func TestCell_Lines_MultilineText(t *testing.T) {
	assert.Equal(t, []string{"fits", "far", "too", "long"}, cellLines(t, "fits\nfar too long", 7))
}

func TestCell_Lines_IntegerShorthand(t *testing.T) {
	tests := []struct {
		value any
		width int
		want  string
	}{
		{1234567, 6, "1234e3"},
		{1234567, 7, "1234567"},
		{-1234567, 6, "-123e4"},
		{12345, 3, "1e4"},
		{12345678901, 3, "1.."},
		{uint8(200), 3, "200"},
	}
	for _, tt := range tests {
		assert.Equal(t, []string{tt.want}, cellLines(t, tt.value, tt.width), "%v at %d", tt.value, tt.width)
	}
}

func TestCell_Lines_FloatRounding(t *testing.T) {
	tests := []struct {
		value float64
		width int
		want  string
	}{
		{1.0 / 7, 5, "0.14"},
		{3.14159, 4, "3.1"},
		{-10.0 / 7, 5, "-1.4"},
		{2.5, 6, "2.5"},
		{123456.789, 5, "123e3"},
		{2.5, 3, "2"},
		{12345678.9, 5, "123e5"},
	}
	for _, tt := range tests {
		assert.Equal(t, []string{tt.want}, cellLines(t, tt.value, tt.width), "%v at %d", tt.value, tt.width)
	}
}

func TestCell_Lines_OpaqueUsesTextPath(t *testing.T) {
	assert.Equal(t, []string{"[1 2 3]"}, cellLines(t, []int{1, 2, 3}, 7))
	assert.Equal(t, []string{"[1 2 3", "4]"}, cellLines(t, []int{1, 2, 3, 4}, 7))
}

func TestCell_Lines_Idempotent(t *testing.T) {
	for _, v := range []any{"hello world foo", 1234567, 1.0 / 7, nil} {
		c := table.NewCell(v)
		c.SetFill("-")
		require.NoError(t, c.SetMaxWidth(6))

		first, err := c.Lines()
		require.NoError(t, err)
		second, err := c.Lines()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestCell_Lines_NestedTakesWidthAndFill(t *testing.T) {
	inner := table.MustNew(table.WithSize(1, 2), table.WithColumnSeparator("|"))
	c := table.NewCell(inner)
	c.SetFill("-")
	require.NoError(t, c.SetMaxWidth(8))

	lines, err := c.Lines()
	require.NoError(t, err)

	assert.Equal(t, []string{"-  | -  "}, lines)
	assert.Equal(t, "-", inner.Fill())
	assert.Equal(t, 8, inner.MaxWidth())
}

func TestCell_Lines_NestedTooNarrow(t *testing.T) {
	inner := table.MustNew(table.WithSize(1, 3))
	c := table.NewCell(inner)
	require.NoError(t, c.SetMaxWidth(5))

	_, err := c.Lines()
	assert.True(t, errors.Is(err, table.ErrOutOfRange), "got %v", err)
}

func TestCell_Copy_Independent(t *testing.T) {
	inner := table.MustNew(table.WithData([][]any{{"a"}}))
	c := table.NewCell(inner)
	dup := c.Copy()

	got, ok := dup.Raw().Table()
	require.True(t, ok)
	assert.NotSame(t, inner, got)

	cell, err := got.Cell(0, 0)
	require.NoError(t, err)
	cell.SetValue("b")

	orig, err := inner.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", orig.Value().String())
}

func TestTruncate(t *testing.T) {
	s, err := table.Truncate("hello world foo", 7)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\nfoo", s)

	_, err = table.Truncate("x", 2)
	assert.True(t, errors.Is(err, table.ErrOutOfRange))
}
