package widgets

import (
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// WidthGauge shows how much of the available width a table takes.
//
//	Width [████████░░░░░░░░░░░░]  42/100  min 13
type WidthGauge struct {
	Used     int // rendered table width
	Limit    int // width the table may take, 0 for none
	Min      int // narrowest the table can get
	BarWidth int // character width of the [████░░░░] portion (excluding brackets)
}

const (
	barFilled = '█' // U+2588
	barEmpty  = '░' // U+2591
)

// Percent returns Used as a share of Limit, capped to [0, 100]. Without a
// limit the gauge is full.
func (g *WidthGauge) Percent() float64 {
	if g.Limit <= 0 {
		return 100
	}
	pct := float64(g.Used) / float64(g.Limit) * 100
	return max(0, min(pct, 100))
}

// barColor turns yellow once the table is pressed against its limit, and
// red when the limit is down to the minimum.
func (g *WidthGauge) barColor() vaxis.Color {
	switch {
	case g.Limit > 0 && g.Limit <= g.Min:
		return vaxis.IndexColor(1) // red
	case g.Limit > 0 && g.Used >= g.Limit:
		return vaxis.IndexColor(3) // yellow
	default:
		return vaxis.IndexColor(2) // green
	}
}

// Draw renders the gauge as a single row.
func (g *WidthGauge) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, 1, g)

	col := uint16(0)
	write := func(text string, style vaxis.Style) {
		for _, ch := range ctx.Characters(text) {
			s.WriteCell(col, 0, vaxis.Cell{Character: ch, Style: style})
			col += uint16(ch.Width)
		}
	}

	write("Width ", vaxis.Style{Attribute: vaxis.AttrBold})
	write("[", vaxis.Style{})

	filled := int(g.Percent() / 100 * float64(g.BarWidth))
	color := g.barColor()
	for i := 0; i < g.BarWidth; i++ {
		if i < filled {
			write(string(barFilled), vaxis.Style{Foreground: color})
		} else {
			write(string(barEmpty), vaxis.Style{Foreground: vaxis.IndexColor(8)}) // dim for empty
		}
	}

	limit := "-"
	if g.Limit > 0 {
		limit = fmt.Sprint(g.Limit)
	}
	write(fmt.Sprintf("] %4d/%s", g.Used, limit), vaxis.Style{})
	write(fmt.Sprintf("  min %d", g.Min), vaxis.Style{Attribute: vaxis.AttrDim})

	return s, nil
}
