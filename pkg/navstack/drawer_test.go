package navstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawerHarness struct {
	*harness
	drawer *Drawer[string]
}

func newDrawerHarness(t *testing.T) *drawerHarness {
	return &drawerHarness{
		harness: newHarness(t, 300, 400),
		drawer:  NewDrawer("home", "menu", DefaultDrawerConfig(200)),
	}
}

func (h *drawerHarness) show(p Pointer, req Request) DrawerResponse[string] {
	f := h.begin(p)
	resp := ShowDrawer(f, h.drawer, req, renderTop)
	h.end()
	return resp
}

func (h *drawerHarness) settle(resp DrawerResponse[string], req Request) DrawerResponse[string] {
	for i := 0; i < 100 && resp.Action.IsTransitioning(); i++ {
		resp = h.show(idle(), req)
	}
	return resp
}

func TestDrawerClosedRendersOnlyBackground(t *testing.T) {
	h := newDrawerHarness(t)
	resp := h.show(idle(), Request{})

	assert.False(t, resp.HasDrawer)
	assert.Equal(t, "body:home", resp.Background)
	require.Len(t, h.comp.panes, 1)
	assert.Equal(t, ParentLayer, h.comp.panes[0].Layer)
	assert.Empty(t, h.comp.dims)
}

func TestDrawerDragOpens(t *testing.T) {
	h := newDrawerHarness(t)
	frames := dragFrames(Pos{X: 10, Y: 100}, 50, 50, 50)

	var resp DrawerResponse[string]
	for _, p := range frames[:len(frames)-1] {
		resp = h.show(p, Request{})
	}
	require.Equal(t, Dragging(), resp.Action)
	assert.Equal(t, float32(150), resp.Offset)
	assert.True(t, resp.HasDrawer)
	assert.Equal(t, Pos{X: -50}, h.comp.panes[1].Translate)

	resp = h.show(frames[len(frames)-1], Request{})
	require.Equal(t, Navigating(), resp.Action)

	resp = h.settle(resp, Request{})
	assert.Equal(t, Navigated(), resp.Action)
	assert.Equal(t, float32(200), resp.Offset)

	resp = h.show(idle(), Request{})
	assert.True(t, resp.Action.IsNone())
	assert.Equal(t, float32(200), resp.Offset)
	assert.Equal(t, "body:menu", resp.Drawer)
}

func TestDrawerShortDragCloses(t *testing.T) {
	h := newDrawerHarness(t)
	frames := dragFrames(Pos{X: 10, Y: 100}, 10, 5)

	var resp DrawerResponse[string]
	for _, p := range frames {
		resp = h.show(p, Request{})
	}
	require.Equal(t, Returning(ReturnDrag), resp.Action)

	resp = h.settle(resp, Request{})
	assert.Equal(t, Returned(ReturnDrag), resp.Action)
	assert.Equal(t, float32(0), resp.Offset)
}

func TestFocusedDrawerClosesOnBackgroundClick(t *testing.T) {
	h := newDrawerHarness(t)
	resp := h.settle(h.show(idle(), Request{Navigating: true}), Request{Navigating: true})
	require.Equal(t, Navigated(), resp.Action)
	h.show(idle(), Request{})
	h.drawer.Focused = true

	resp = h.show(click(Pos{X: 100, Y: 100}), Request{})
	assert.True(t, resp.Action.IsNone(), "clicks inside the drawer are content")

	resp = h.show(click(Pos{X: 250, Y: 100}), Request{})
	require.Equal(t, Returning(ReturnClick), resp.Action)

	resp = h.settle(resp, Request{})
	assert.Equal(t, Returned(ReturnClick), resp.Action)
	assert.Equal(t, float32(0), resp.Offset)

	resp = h.show(idle(), Request{})
	assert.True(t, resp.Action.IsNone())
	assert.Equal(t, float32(0), resp.Offset)
	assert.False(t, resp.HasDrawer)
}

func TestFocusedDrawerDragCloses(t *testing.T) {
	h := newDrawerHarness(t)
	h.settle(h.show(idle(), Request{Navigating: true}), Request{Navigating: true})
	h.show(idle(), Request{})
	h.drawer.Focused = true

	frames := dragFrames(Pos{X: 150, Y: 100}, -40, -40)
	var resp DrawerResponse[string]
	for _, p := range frames[:len(frames)-1] {
		resp = h.show(p, Request{})
	}
	require.Equal(t, Dragging(), resp.Action)
	assert.Equal(t, float32(120), resp.Offset)

	resp = h.show(frames[len(frames)-1], Request{})
	assert.Equal(t, Returning(ReturnDrag), resp.Action)
}

func TestFocusedDrawerOwnsDragsOverStack(t *testing.T) {
	h := newHarness(t, 300, 400)
	drawer := NewDrawer("home", "menu", DefaultDrawerConfig(200))
	nav := New([]string{"home", "profile"}, scenarioConfig())

	var navResp Response[string]
	render := func(f *Frame, pane Pane, region Region, routes []string) RouteResponse[string] {
		if routes[0] == "menu" {
			return renderTop(f, pane, region, routes)
		}
		navResp = Show(f, nav, Request{}, renderTop)
		return RouteResponse[string]{Response: navResp.Body}
	}
	show := func(p Pointer, req Request) DrawerResponse[string] {
		f := h.begin(p)
		resp := ShowDrawer(f, drawer, req, render)
		h.end()
		return resp
	}

	resp := show(idle(), Request{Navigating: true})
	for i := 0; i < 100 && resp.Action.IsTransitioning(); i++ {
		resp = show(idle(), Request{Navigating: true})
	}
	require.Equal(t, Navigated(), resp.Action)
	show(idle(), Request{})
	drawer.Focused = true

	// A back swipe over the open drawer belongs to the drawer, not the stack.
	back := dragFrames(Pos{X: 100, Y: 200}, 40, 40)
	show(back[0], Request{})
	for _, p := range back[1 : len(back)-1] {
		resp = show(p, Request{})
		assert.Equal(t, drawer.DragID(h.root), h.ctx.Dragged())
		assert.True(t, navResp.Action.IsNone())
		assert.Zero(t, navResp.Offset)
	}
	assert.Equal(t, Dragging(), resp.Action)
	assert.Equal(t, float32(200), resp.Offset, "open is the drawer's limit")

	resp = show(back[len(back)-1], Request{})
	assert.True(t, resp.Action.IsNone())
	assert.Equal(t, float32(200), resp.Offset)
	assert.True(t, navResp.Action.IsNone())

	frames := dragFrames(Pos{X: 150, Y: 200}, -40, -40)
	for _, p := range frames[:len(frames)-1] {
		resp = show(p, Request{})
		assert.Zero(t, navResp.Offset)
	}
	resp = show(frames[len(frames)-1], Request{})
	require.Equal(t, Returning(ReturnDrag), resp.Action)

	for i := 0; i < 100 && resp.Action.Kind == ActionReturning; i++ {
		resp = show(idle(), Request{})
	}
	assert.Equal(t, Returned(ReturnDrag), resp.Action)
	assert.Equal(t, float32(0), resp.Offset)
	assert.Equal(t, []string{"home", "profile"}, nav.Routes())
}
