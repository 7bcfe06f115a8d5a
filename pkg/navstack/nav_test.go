package navstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.ReleaseThreshold = 0.25
	return cfg
}

func TestNewPanicsOnEmptyRoutes(t *testing.T) {
	assert.PanicsWithValue(t, ErrEmptyRoutes, func() {
		New([]string{}, DefaultConfig())
	})
}

func TestTryNewEmptyRoutes(t *testing.T) {
	nav, err := TryNew([]string(nil), DefaultConfig())
	assert.Nil(t, nav)
	assert.ErrorIs(t, err, ErrEmptyRoutes)

	nav, err = TryNew([]string{"home"}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "home", nav.Top())
}

func TestSingleRouteNeverDrags(t *testing.T) {
	h := newHarness(t, 300, 400)
	routes := []string{"home"}

	for _, p := range dragFrames(Pos{X: 20, Y: 100}, 40, 40, 40) {
		resp := showNav(h, p, routes, scenarioConfig(), Request{})
		assert.True(t, resp.Action.IsNone())
		assert.Zero(t, resp.Offset)
	}
	assert.True(t, h.ctx.Dragged().IsZero())
}

func TestDragPastThresholdReturns(t *testing.T) {
	h := newHarness(t, 300, 400)
	routes := []string{"home", "profile"}
	frames := dragFrames(Pos{X: 20, Y: 100}, 40, 40, 40)

	var resp Response[string]
	for _, p := range frames[:len(frames)-1] {
		resp = showNav(h, p, routes, scenarioConfig(), Request{})
	}
	assert.Equal(t, Dragging(), resp.Action)
	assert.Equal(t, float32(120), resp.Offset)

	resp = showNav(h, frames[len(frames)-1], routes, scenarioConfig(), Request{})
	require.Equal(t, Returning(ReturnDrag), resp.Action)

	last := resp.Offset
	for i := 0; i < 100 && resp.Action.Kind == ActionReturning; i++ {
		resp = showNav(h, idle(), routes, scenarioConfig(), Request{})
		assert.GreaterOrEqual(t, resp.Offset, last)
		last = resp.Offset
	}
	require.Equal(t, Returned(ReturnDrag), resp.Action)
	assert.Equal(t, float32(300), resp.Offset)

	// The one-frame signal clears on the next frame.
	resp = showNav(h, idle(), routes, scenarioConfig(), Request{})
	assert.True(t, resp.Action.IsNone())
	assert.Zero(t, resp.Offset)
}

func TestDragBelowThresholdResets(t *testing.T) {
	h := newHarness(t, 300, 400)
	routes := []string{"home", "profile"}
	frames := dragFrames(Pos{X: 20, Y: 100}, 10, 10)

	var resp Response[string]
	for _, p := range frames[:len(frames)-1] {
		resp = showNav(h, p, routes, scenarioConfig(), Request{})
	}
	assert.Equal(t, float32(20), resp.Offset)

	resp = showNav(h, frames[len(frames)-1], routes, scenarioConfig(), Request{})
	require.Equal(t, Resetting(), resp.Action)

	for i := 0; i < 100 && !resp.Action.IsNone(); i++ {
		resp = showNav(h, idle(), routes, scenarioConfig(), Request{})
		assert.NotEqual(t, ActionReturned, resp.Action.Kind)
	}
	assert.True(t, resp.Action.IsNone())
	assert.Zero(t, resp.Offset)
}

func TestNavigateDuringDragIsDeferred(t *testing.T) {
	h := newHarness(t, 300, 400)
	routes := []string{"home", "profile"}
	origin := Pos{X: 20, Y: 100}
	navigating := Request{Navigating: true}

	showNav(h, press(origin), routes, scenarioConfig(), Request{})
	resp := showNav(h, holdAt(origin, Pos{X: 40, Y: 100}, Pos{X: 20}), routes, scenarioConfig(), Request{})
	require.Equal(t, Dragging(), resp.Action)

	resp = showNav(h, holdAt(origin, Pos{X: 50, Y: 100}, Pos{X: 10}), routes, scenarioConfig(), navigating)
	assert.Equal(t, Dragging(), resp.Action)
	assert.Equal(t, float32(30), resp.Offset)

	// Released below the threshold; the pending request now takes effect.
	resp = showNav(h, release(Pos{X: 50, Y: 100}), routes, scenarioConfig(), navigating)
	assert.Equal(t, Navigating(), resp.Action)

	for i := 0; i < 100 && resp.Action.Kind == ActionNavigating; i++ {
		resp = showNav(h, idle(), routes, scenarioConfig(), navigating)
	}
	assert.Equal(t, Navigated(), resp.Action)
	assert.Zero(t, resp.Offset)
}

func TestNavigatingSettlesExactlyAtRest(t *testing.T) {
	h := newHarness(t, 300, 400)
	routes := []string{"home", "profile"}

	resp := showNav(h, idle(), routes, DefaultConfig(), Request{Navigating: true})
	require.Equal(t, Navigating(), resp.Action)
	assert.Less(t, resp.Offset, float32(300))
	assert.True(t, h.ctx.RepaintRequested())

	frames := 1
	for resp.Action.Kind == ActionNavigating {
		resp = showNav(h, idle(), routes, DefaultConfig(), Request{Navigating: true})
		frames++
		require.Less(t, frames, 100)
	}
	assert.Equal(t, Navigated(), resp.Action)
	assert.Equal(t, float32(0), resp.Offset)

	resp = showNav(h, idle(), routes, DefaultConfig(), Request{})
	assert.True(t, resp.Action.IsNone())
}

func TestReturningRequestAnimatesOut(t *testing.T) {
	h := newHarness(t, 300, 400)
	routes := []string{"home", "profile"}
	req := Request{Returning: true}

	resp := showNav(h, idle(), routes, DefaultConfig(), req)
	require.Equal(t, Returning(ReturnClick), resp.Action)
	for i := 0; i < 100 && resp.Action.Kind == ActionReturning; i++ {
		resp = showNav(h, idle(), routes, DefaultConfig(), req)
	}
	assert.Equal(t, Returned(ReturnClick), resp.Action)
	assert.Equal(t, float32(300), resp.Offset)

	// The returned frame shows the previous view in the normal layer.
	require.Len(t, h.comp.panes, 1)
	assert.True(t, h.comp.panes[0].Layer.IsParent())
	assert.Equal(t, "body:home", resp.Body)
	assert.Equal(t, "title:home", resp.Title)
	assert.False(t, resp.HasBackground)
}

func TestIdleSurfaceIsUnchangedWithoutInput(t *testing.T) {
	h := newHarness(t, 300, 400)
	routes := []string{"home", "profile"}
	nav := New(routes, DefaultConfig())
	id := nav.ID(h.root)

	showNav(h, idle(), routes, DefaultConfig(), Request{})
	before, ok := h.ctx.LoadSurface(id)
	require.True(t, ok)

	for i := 0; i < 5; i++ {
		showNav(h, idle(), routes, DefaultConfig(), Request{})
		after, _ := h.ctx.LoadSurface(id)
		assert.Equal(t, before, after)
		assert.False(t, h.ctx.RepaintRequested())
	}
}

func TestTransitionLayering(t *testing.T) {
	h := newHarness(t, 300, 400)
	routes := []string{"home", "profile"}
	origin := Pos{X: 20, Y: 100}

	showNav(h, press(origin), routes, scenarioConfig(), Request{})
	assert.Len(t, h.comp.panes, 1, "idle surface renders only the foreground")
	assert.Equal(t, ParentLayer, h.comp.panes[0].Layer)

	resp := showNav(h, holdAt(origin, Pos{X: 140, Y: 100}, Pos{X: 120}), routes, scenarioConfig(), Request{})
	require.Equal(t, Dragging(), resp.Action)
	require.Len(t, h.comp.panes, 2)

	bg, fg := h.comp.panes[0], h.comp.panes[1]
	assert.Equal(t, LayerBackground, bg.Layer.Order)
	assert.Equal(t, RectFromSize(0, 0, 120, 400), bg.Clip)
	assert.InDelta(t, -54, bg.Translate.X, 0.01)

	assert.Equal(t, LayerForeground, fg.Layer.Order)
	assert.Equal(t, Pos{X: 120}, fg.Translate)
	assert.Equal(t, RectFromSize(120, 0, 180, 400), fg.Clip)

	require.Len(t, h.comp.dims, 1)
	assert.Equal(t, uint8(20), h.comp.dims[0].color.A)

	assert.Equal(t, "body:home", resp.Background)
	assert.Equal(t, "body:profile", resp.Body)
	assert.Equal(t, "title:profile", resp.Title)

	// Layer identities are stable between frames.
	firstFg := fg.Layer
	showNav(h, holdAt(origin, Pos{X: 150, Y: 100}, Pos{X: 10}), routes, scenarioConfig(), Request{})
	assert.Equal(t, firstFg, h.comp.panes[1].Layer)
}

func TestNestedSurfaceTakesOverClaim(t *testing.T) {
	h := newHarness(t, 300, 400)
	outer := New([]string{"root"}, DefaultConfig())
	foreign := outer.DragID(h.root)
	origin := Pos{X: 20, Y: 100}

	var innerResp Response[string]
	var innerDrag Id
	render := func(f *Frame, _ Pane, region Region, routes []string) RouteResponse[string] {
		if region != RegionBody {
			return RouteResponse[string]{}
		}
		cfg := DefaultConfig()
		cfg.IDSource = "inner"
		inner := New([]string{"list", "detail"}, cfg)
		inner.TakeDragFrom = []Id{foreign}
		innerDrag = inner.DragID(f.ID)
		innerResp = Show(f, inner, Request{}, renderTop)
		return RouteResponse[string]{Response: innerResp.Body}
	}

	f := h.begin(press(origin))
	Show(f, outer, Request{}, render)
	h.end()

	f = h.begin(holdAt(origin, Pos{X: 60, Y: 100}, Pos{X: 40}))
	h.ctx.SetDragged(foreign)
	resp := Show(f, outer, Request{}, render)
	h.end()

	assert.True(t, resp.Action.IsNone(), "single route outer never drags")
	assert.Equal(t, innerDrag, h.ctx.Dragged())
	assert.Equal(t, Dragging(), innerResp.Action)
	assert.Equal(t, float32(40), innerResp.Offset)
}

func TestForeignClaimResetsDisplacedSurface(t *testing.T) {
	h := newHarness(t, 300, 400)
	routes := []string{"home", "profile"}
	origin := Pos{X: 20, Y: 100}

	showNav(h, press(origin), routes, scenarioConfig(), Request{})
	resp := showNav(h, holdAt(origin, Pos{X: 60, Y: 100}, Pos{X: 40}), routes, scenarioConfig(), Request{})
	require.Equal(t, Dragging(), resp.Action)

	f := h.begin(holdAt(origin, Pos{X: 70, Y: 100}, Pos{X: 10}))
	h.ctx.SetDragged(NewId("scroll-area"))
	resp = Show(f, New(routes, scenarioConfig()), Request{}, renderTop)
	h.end()

	assert.Equal(t, Resetting(), resp.Action)
	_, ok := h.ctx.Gesture(New(routes, scenarioConfig()).DragID(h.root))
	assert.False(t, ok)
}

func TestVerticalDragDoesNotNavigate(t *testing.T) {
	h := newHarness(t, 300, 400)
	routes := []string{"home", "profile"}
	origin := Pos{X: 20, Y: 100}

	for _, p := range verticalDragFrames(origin, 30, 30) {
		resp := showNav(h, p, routes, scenarioConfig(), Request{})
		assert.NotEqual(t, ActionDragging, resp.Action.Kind)
		assert.Zero(t, resp.Offset)
	}
}

func TestStaleSurfacesAreEvicted(t *testing.T) {
	h := newHarness(t, 300, 400)
	h.ctx.StaleFrames = 2
	nav := New([]string{"home"}, DefaultConfig())

	showNav(h, idle(), nav.Routes(), DefaultConfig(), Request{})
	_, ok := h.ctx.LoadSurface(nav.ID(h.root))
	require.True(t, ok)

	for i := 0; i < 4; i++ {
		h.begin(idle())
		h.end()
	}
	_, ok = h.ctx.LoadSurface(nav.ID(h.root))
	assert.False(t, ok)
}

func TestVerticalDragReachesSheetInsideStack(t *testing.T) {
	h := newHarness(t, 300, 400)
	routes := []string{"home", "profile"}
	nav := New(routes, scenarioConfig())

	var sheetResp Response[string]
	var sheetDrag Id
	render := func(f *Frame, _ Pane, region Region, routes []string) RouteResponse[string] {
		if region != RegionBody {
			return RouteResponse[string]{}
		}
		sheet := NewSheet("profile", "share", DefaultSheetConfig())
		sheetDrag = sheet.ID(f.ID).With("drag")
		sheetResp = ShowSheet(f, sheet, Request{}, renderTop)
		return RouteResponse[string]{Response: sheetResp.Body}
	}

	frames := verticalDragFrames(Pos{X: 50, Y: 300}, 30, 30)
	var resp Response[string]
	for _, p := range frames[:len(frames)-1] {
		f := h.begin(p)
		resp = Show(f, nav, Request{}, render)
		h.end()
	}

	assert.True(t, resp.Action.IsNone())
	assert.Zero(t, resp.Offset)
	assert.Equal(t, sheetDrag, h.ctx.Dragged())
	assert.Equal(t, Dragging(), sheetResp.Action)
	assert.Equal(t, float32(260), sheetResp.Offset)
}
