package app

import (
	"context"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/deevus/texttable/internal"
	"github.com/deevus/texttable/views"
	"github.com/deevus/texttable/widgets"
)

// maxNumberedTabs is the number of tabs reachable with the 1-9 keys.
const maxNumberedTabs = 9

// Params holds configuration for creating an App.
type Params struct {
	Sources  *internal.Sources
	StaleTTL time.Duration
	Width    int // initial width limit for every view, 0 to follow the terminal
}

// App is the root vxfw widget for the table viewer. It shows one tab per
// source.
type App struct {
	tabBar    *widgets.TabBar
	views     []*views.TableView
	postEvent func(vaxis.Event)
}

// New creates the root App widget with a view per source.
func New(p Params) *App {
	var src []internal.Source
	if p.Sources != nil {
		src = p.Sources.All()
	}

	a := &App{}
	labels := make([]string, 0, len(src))
	for _, s := range src {
		labels = append(labels, s.Name())
		a.views = append(a.views, views.NewTableView(views.TableViewParams{
			Source:   s,
			StaleTTL: p.StaleTTL,
			Width:    p.Width,
		}))
	}
	a.tabBar = widgets.NewTabBar(labels)
	return a
}

// SetPostEvent sets the function used to post events to the vaxis event loop.
// Must be called before LoadAll.
func (a *App) SetPostEvent(fn func(vaxis.Event)) {
	a.postEvent = fn
}

// ActiveTab returns the current tab index.
func (a *App) ActiveTab() int {
	return a.tabBar.Active()
}

// SetTab switches to the given tab index.
func (a *App) SetTab(i int) {
	a.tabBar.SetActive(i)
}

// Views returns the table views in tab order.
func (a *App) Views() []*views.TableView {
	return a.views
}

// Load loads every view concurrently and waits for them. Failed views
// show their error; the first failure is returned.
func (a *App) Load(ctx context.Context) error {
	var g errgroup.Group
	for tab, v := range a.views {
		g.Go(func() error {
			err := v.Load(ctx)
			logLoad(tab, v, err)
			return err
		})
	}
	return g.Wait()
}

// LoadAll loads data for all views in parallel using goroutines.
// Each view posts a ViewLoaded event when done.
func (a *App) LoadAll(ctx context.Context) {
	for tab, v := range a.views {
		go func() {
			err := v.Load(ctx)
			if a.postEvent != nil {
				a.postEvent(views.ViewLoaded{Tab: tab, Err: err})
			}
		}()
	}
}

// LoadActiveView reloads the table of the currently active view.
func (a *App) LoadActiveView(ctx context.Context) error {
	v := a.activeView()
	if v == nil {
		return nil
	}
	err := v.Load(ctx)
	logLoad(a.tabBar.Active(), v, err)
	return err
}

func logLoad(tab int, v *views.TableView, err error) {
	if err != nil {
		log.Error().Err(err).Int("tab", tab).Str("source", v.Name()).Msg("error loading table")
		return
	}
	log.Debug().Int("tab", tab).Str("source", v.Name()).Msg("table loaded")
}

func (a *App) activeView() *views.TableView {
	if len(a.views) == 0 {
		return nil
	}
	return a.views[a.tabBar.Active()]
}

// Draw renders the tab bar and active view.
func (a *App) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, a)
	if ctx.Max.Height == 0 {
		return s, nil
	}

	// Tab bar (1 row)
	tabCtx := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1})
	tabSurf, err := a.tabBar.Draw(tabCtx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, 0, tabSurf)

	v := a.activeView()
	if v == nil {
		return s, nil
	}

	// Active view (remaining space)
	viewCtx := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: ctx.Max.Height - 1})
	viewSurf, err := v.Draw(viewCtx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, 1, viewSurf)

	return s, nil
}

// CaptureEvent handles global keybindings before views process them.
func (a *App) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Key:
		if ev.Matches('q') {
			return vxfw.QuitCmd{}, nil
		}
		if len(a.views) == 0 {
			return nil, nil
		}

		prev := a.tabBar.Active()
		switch {
		case ev.Matches('r'):
			_ = a.LoadActiveView(context.Background())
			return vxfw.ConsumeAndRedraw(), nil
		case ev.Matches('R'):
			_ = a.Load(context.Background())
			return vxfw.ConsumeAndRedraw(), nil
		case ev.Matches(vaxis.KeyTab):
			a.tabBar.Next()
		case ev.Matches(vaxis.KeyTab, vaxis.ModShift):
			a.tabBar.Prev()
		default:
			tab, ok := numberedTab(ev)
			if !ok || tab >= len(a.views) {
				return nil, nil
			}
			a.tabBar.SetActive(tab)
		}
		if a.tabBar.Active() != prev {
			a.refetchIfStale()
		}
		return vxfw.ConsumeAndRedraw(), nil
	}
	return nil, nil
}

// numberedTab maps the keys 1-9 to tab indexes 0-8.
func numberedTab(ev vaxis.Key) (int, bool) {
	for i := range maxNumberedTabs {
		if ev.Matches(rune('1' + i)) {
			return i, true
		}
	}
	return 0, false
}

// refetchIfStale reloads the active view's table if it has become stale.
func (a *App) refetchIfStale() {
	v := a.activeView()
	if v == nil || !v.Stale() {
		return
	}
	err := v.Load(context.Background())
	logLoad(a.tabBar.Active(), v, err)
}

// HandleEvent delegates to the active view, and handles custom events.
func (a *App) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vxfw.Init:
		if a.postEvent != nil {
			a.LoadAll(context.Background())
		}
		return nil, nil
	case views.ViewLoaded:
		if ev.Err != nil {
			log.Error().Err(ev.Err).Int("tab", ev.Tab).Msg("error loading table")
		}
		return vxfw.RedrawCmd{}, nil
	default:
		if v := a.activeView(); v != nil {
			return v.HandleEvent(ev, phase)
		}
	}
	return nil, nil
}
