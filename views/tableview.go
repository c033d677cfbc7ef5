package views

import (
	"context"
	"fmt"
	"sync"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/richtext"

	"github.com/deevus/texttable/internal"
	"github.com/deevus/texttable/table"
	"github.com/deevus/texttable/widgets"
)

const (
	widthStep  = 4 // columns per -/+ press
	scrollStep = 8 // columns per h/l press
	gaugeWidth = 20
)

// TableViewParams holds configuration for creating a TableView.
type TableViewParams struct {
	Source   internal.Source
	StaleTTL time.Duration
	Width    int // initial width limit, 0 to follow the terminal
}

// TableView displays one table source.
type TableView struct {
	source   internal.Source
	staleTTL time.Duration

	mu       sync.Mutex
	table    *table.Table
	loaded   bool
	loadedAt time.Time
	loadErr  error

	// Layout state
	width     int // limit chosen with -/+, 0 follows the terminal
	limit     int // limit applied by the last layout
	rendered  bool
	renderErr error
	block     widgets.TextBlock
	gauge     widgets.WidthGauge
}

// NewTableView creates a TableView backed by the given params.
func NewTableView(p TableViewParams) *TableView {
	return &TableView{
		source:   p.Source,
		staleTTL: p.StaleTTL,
		width:    p.Width,
	}
}

// Name returns the source name.
func (tv *TableView) Name() string {
	return tv.source.Name()
}

// Load reads the table from the source. A failed reload keeps the table
// loaded before it.
func (tv *TableView) Load(ctx context.Context) error {
	t, err := tv.source.Load(ctx)

	tv.mu.Lock()
	defer tv.mu.Unlock()
	if err != nil {
		tv.loadErr = err
		return err
	}
	tv.table = t
	tv.loaded = true
	tv.loadedAt = time.Now()
	tv.loadErr = nil
	tv.rendered = false
	return nil
}

// Loaded reports whether a table has been successfully loaded.
func (tv *TableView) Loaded() bool {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.loaded
}

// Stale reports whether the loaded table is older than the configured TTL.
func (tv *TableView) Stale() bool {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	if !tv.loaded {
		return true
	}
	return time.Since(tv.loadedAt) > tv.staleTTL
}

// Table returns the loaded table, or nil.
func (tv *TableView) Table() *table.Table {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.table
}

// Width returns the width limit applied by the last draw.
func (tv *TableView) Width() int {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.limit
}

// Lines returns the rendered lines shown by the last draw.
func (tv *TableView) Lines() []string {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.block.Lines
}

// Title is the summary line drawn above the table.
func (tv *TableView) Title() string {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.title()
}

func (tv *TableView) title() string {
	if tv.table == nil {
		return tv.source.Name()
	}
	return fmt.Sprintf("%s  %d rows x %d columns  width %d",
		tv.source.Name(), tv.table.RowCount(), tv.table.ColumnCount(), tv.gauge.Used)
}

// layout binds the table to the width limit and re-renders it when the
// limit changed. The limit never drops below the table minimum; wider
// tables scroll.
func (tv *TableView) layout(avail int) {
	limit := tv.width
	if limit == 0 {
		limit = avail
	}
	limit = max(limit, tv.table.MinWidth())
	if tv.rendered && limit == tv.limit {
		return
	}
	tv.rendered = true
	tv.limit = limit
	tv.renderErr = nil

	if err := tv.table.SetMaxWidth(limit); err != nil {
		tv.renderErr = err
		return
	}
	lines, err := tv.table.Lines()
	if err != nil {
		tv.renderErr = err
		return
	}
	head, err := tv.table.HeadLines()
	if err != nil {
		tv.renderErr = err
		return
	}
	used, err := tv.table.TotalWidth()
	if err != nil {
		tv.renderErr = err
		return
	}

	tv.block.Lines = lines
	tv.block.Head = head
	tv.block.Clamp()
	tv.gauge = widgets.WidthGauge{
		Used:     used,
		Limit:    limit,
		Min:      tv.table.MinWidth(),
		BarWidth: gaugeWidth,
	}
}

// current is the width the table was last drawn at, or its natural width
// before the first draw.
func (tv *TableView) current() int {
	if tv.rendered && tv.renderErr == nil {
		return tv.gauge.Used
	}
	w, err := tv.table.NaturalWidth()
	if err != nil {
		return tv.table.MinWidth()
	}
	return w
}

// narrow takes widthStep columns off the limit, down to the table minimum.
func (tv *TableView) narrow() {
	tv.width = max(tv.current()-widthStep, tv.table.MinWidth(), 1)
}

// widen adds widthStep columns to the limit, up to the natural width.
func (tv *TableView) widen() {
	natural, err := tv.table.NaturalWidth()
	if err != nil {
		return
	}
	tv.width = max(min(tv.current()+widthStep, natural), 1)
}

// Draw renders the title, the width gauge and the visible part of the
// table, or a loading state if no table has arrived.
func (tv *TableView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	tv.mu.Lock()
	defer tv.mu.Unlock()

	if !tv.loaded {
		if tv.loadErr != nil {
			return drawErrorState(ctx, tv, tv.loadErr)
		}
		return drawLoadingState(ctx, tv)
	}
	tv.layout(int(ctx.Max.Width))

	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, tv)
	row := func(y uint16, w vxfw.Widget) error {
		if y >= ctx.Max.Height {
			return nil
		}
		surf, err := w.Draw(ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1}))
		if err != nil {
			return err
		}
		s.AddChild(0, int(y), surf)
		return nil
	}

	title := richtext.New([]vaxis.Segment{
		{Text: tv.title(), Style: vaxis.Style{Attribute: vaxis.AttrBold}},
	})
	if err := row(0, title); err != nil {
		return vxfw.Surface{}, err
	}
	if err := row(1, &tv.gauge); err != nil {
		return vxfw.Surface{}, err
	}
	if ctx.Max.Height <= 2 {
		return s, nil
	}

	if tv.renderErr != nil {
		msg := richtext.New([]vaxis.Segment{
			{Text: "Error: " + tv.renderErr.Error(), Style: vaxis.Style{Foreground: vaxis.IndexColor(1)}},
		})
		if err := row(2, msg); err != nil {
			return vxfw.Surface{}, err
		}
		return s, nil
	}

	bodyCtx := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: ctx.Max.Height - 2})
	bodySurf, err := tv.block.Draw(bodyCtx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, 2, bodySurf)

	return s, nil
}

// HandleEvent scrolls with j/k/h/l and changes the width limit with -/+.
// 0 goes back to following the terminal width.
func (tv *TableView) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	key, ok := ev.(vaxis.Key)
	if !ok {
		return nil, nil
	}

	tv.mu.Lock()
	defer tv.mu.Unlock()
	if !tv.loaded {
		return nil, nil
	}

	switch {
	case key.Matches('j'):
		tv.block.Scroll(1, 0)
	case key.Matches('k'):
		tv.block.Scroll(-1, 0)
	case key.Matches('l'):
		tv.block.Scroll(0, scrollStep)
	case key.Matches('h'):
		tv.block.Scroll(0, -scrollStep)
	case key.Matches('-'):
		tv.narrow()
	case key.Matches('+'), key.Matches('='):
		tv.widen()
	case key.Matches('0'):
		tv.width = 0
	default:
		return nil, nil
	}
	return vxfw.ConsumeAndRedraw(), nil
}
