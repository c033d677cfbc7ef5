package widgets

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// TextBlock draws pre-rendered lines, clipped to the surface and shifted
// by a scroll offset. The first Head lines stay pinned at the top while
// the rest scrolls beneath them.
type TextBlock struct {
	Lines []string
	Head  int // pinned lines, rendered with AttrBold
	Top   int // first scrolled line shown
	Left  int // first column shown
}

// Scroll moves the offset by dy lines and dx columns, keeping at least one
// line and one column in view.
func (b *TextBlock) Scroll(dy, dx int) {
	b.Top = clamp(b.Top+dy, 0, max(b.bodyLen()-1, 0))
	b.Left = clamp(b.Left+dx, 0, max(b.widest()-1, 0))
}

// Clamp pulls the offset back into range after Lines changed.
func (b *TextBlock) Clamp() {
	b.Scroll(0, 0)
}

func (b *TextBlock) head() int {
	return min(b.Head, len(b.Lines))
}

func (b *TextBlock) bodyLen() int {
	return len(b.Lines) - b.head()
}

func (b *TextBlock) widest() int {
	w := 0
	for _, l := range b.Lines {
		w = max(w, len([]rune(l)))
	}
	return w
}

// visible returns the lines to draw, pinned head first.
func (b *TextBlock) visible() []string {
	h := b.head()
	out := append([]string(nil), b.Lines[:h]...)
	if top := h + b.Top; top < len(b.Lines) {
		out = append(out, b.Lines[top:]...)
	}
	return out
}

// Draw renders the visible lines.
func (b *TextBlock) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	lines := b.visible()
	height := uint16(len(lines))
	if height > ctx.Max.Height {
		height = ctx.Max.Height
	}

	s := vxfw.NewSurface(ctx.Max.Width, height, b)
	for row := uint16(0); row < height; row++ {
		style := vaxis.Style{}
		if int(row) < b.head() {
			style.Attribute = vaxis.AttrBold
		}
		writeLine(&s, ctx, row, lines[row], b.Left, style)
	}
	return s, nil
}

// writeLine writes s into row, skipping the first skip columns and
// stopping at the surface edge.
func writeLine(surf *vxfw.Surface, ctx vxfw.DrawContext, row uint16, s string, skip int, style vaxis.Style) {
	pos := -skip
	for _, ch := range ctx.Characters(s) {
		if pos >= 0 {
			if pos+ch.Width > int(surf.Size.Width) {
				break
			}
			surf.WriteCell(uint16(pos), row, vaxis.Cell{
				Character: ch,
				Style:     style,
			})
		}
		pos += ch.Width
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
