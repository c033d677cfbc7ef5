package widgets

import (
	"strings"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"

	"github.com/deevus/texttable/table"
)

const tabSeparator = " | "

// TabBar is a horizontal tab navigation widget.
type TabBar struct {
	labels []string
	active int
}

// NewTabBar creates a TabBar with the given labels. Active defaults to 0.
func NewTabBar(labels []string) *TabBar {
	return &TabBar{labels: labels}
}

// Len returns the number of tabs.
func (tb *TabBar) Len() int {
	return len(tb.labels)
}

// Active returns the currently active tab index.
func (tb *TabBar) Active() int {
	return tb.active
}

// SetActive sets the active tab index. Out-of-range values are ignored.
func (tb *TabBar) SetActive(i int) {
	if i >= 0 && i < len(tb.labels) {
		tb.active = i
	}
}

// Next advances to the next tab, wrapping around.
func (tb *TabBar) Next() {
	if len(tb.labels) == 0 {
		return
	}
	tb.active = (tb.active + 1) % len(tb.labels)
}

// Prev moves to the previous tab, wrapping around.
func (tb *TabBar) Prev() {
	if len(tb.labels) == 0 {
		return
	}
	tb.active = (tb.active - 1 + len(tb.labels)) % len(tb.labels)
}

// Fit returns the labels shortened so the bar fits in width. Labels are
// cut the way a table cell of the per-label budget would cut them; when
// the budget is below the narrowest cell the labels are left alone and
// the bar is clipped instead.
func (tb *TabBar) Fit(width int) []string {
	n := len(tb.labels)
	if n == 0 {
		return nil
	}
	natural := len(tabSeparator) * (n - 1)
	for _, l := range tb.labels {
		natural += len([]rune(l)) + 2
	}
	if natural <= width {
		return tb.labels
	}

	budget := (width - len(tabSeparator)*(n-1) - 2*n) / n
	out := make([]string, n)
	for i, l := range tb.labels {
		fitted, err := table.Truncate(l, budget)
		if err != nil {
			return tb.labels
		}
		out[i], _, _ = strings.Cut(fitted, "\n")
	}
	return out
}

// Draw renders the tab bar as a single row: " data.csv | users.json "
// Active tab is rendered with reverse video.
func (tb *TabBar) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, 1, tb)

	col := uint16(0)
	for i, label := range tb.Fit(int(ctx.Max.Width)) {
		if i > 0 {
			for _, ch := range ctx.Characters(tabSeparator) {
				s.WriteCell(col, 0, vaxis.Cell{Character: ch})
				col += uint16(ch.Width)
			}
		}

		style := vaxis.Style{}
		if i == tb.active {
			style.Attribute |= vaxis.AttrReverse
		}

		text := " " + label + " "
		for _, ch := range ctx.Characters(text) {
			s.WriteCell(col, 0, vaxis.Cell{Character: ch, Style: style})
			col += uint16(ch.Width)
		}
	}

	return s, nil
}
