package navstack

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

type dimCall struct {
	layer LayerID
	rect  Rect
	color color.RGBA
}

// recorder is a Compositor that remembers what it was asked to do during the
// current frame.
type recorder struct {
	panes []Pane
	dims  []dimCall
	depth int
}

func (r *recorder) BeginPane(p Pane) {
	r.depth++
	r.panes = append(r.panes, p)
}

func (r *recorder) EndPane(p Pane) Rect {
	r.depth--
	return p.Rect
}

func (r *recorder) Dim(layer LayerID, rect Rect, c color.RGBA) {
	r.dims = append(r.dims, dimCall{layer: layer, rect: rect, color: c})
}

func (r *recorder) reset() {
	r.panes = nil
	r.dims = nil
}

type harness struct {
	t    *testing.T
	ctx  *Context
	comp *recorder
	area Rect
	root Id
}

func newHarness(t *testing.T, w, h float32) *harness {
	return &harness{
		t:    t,
		ctx:  NewContext(),
		comp: &recorder{},
		area: RectFromSize(0, 0, w, h),
		root: NewId("test-root"),
	}
}

// begin starts a frame with p and returns the surface frame.
func (h *harness) begin(p Pointer) *Frame {
	h.ctx.BeginFrame(p)
	h.comp.reset()
	return &Frame{Ctx: h.ctx, Comp: h.comp, Area: h.area, ID: h.root}
}

// end finishes a frame and checks panes were balanced.
func (h *harness) end() bool {
	require.Zero(h.t, h.comp.depth, "unbalanced panes")
	return h.ctx.EndFrame()
}

func idle() Pointer {
	return Pointer{}
}

func press(at Pos) Pointer {
	return Pointer{Down: true, HasOrigin: true, Origin: at, HasPos: true, Pos: at}
}

func holdAt(origin, pos, delta Pos) Pointer {
	return Pointer{Down: true, HasOrigin: true, Origin: origin, HasPos: true, Pos: pos, Delta: delta}
}

func release(at Pos) Pointer {
	return Pointer{HasPos: true, Pos: at}
}

func click(at Pos) Pointer {
	return Pointer{HasPos: true, Pos: at, Clicked: true}
}

// dragFrames returns the pointer for every frame of a press at origin
// followed by moves of deltas along x, then the release.
func dragFrames(origin Pos, deltas ...float32) []Pointer {
	frames := []Pointer{press(origin)}
	pos := origin
	for _, d := range deltas {
		pos = pos.Add(Pos{X: d})
		frames = append(frames, holdAt(origin, pos, Pos{X: d}))
	}
	return append(frames, release(pos))
}

func verticalDragFrames(origin Pos, deltas ...float32) []Pointer {
	frames := []Pointer{press(origin)}
	pos := origin
	for _, d := range deltas {
		pos = pos.Add(Pos{Y: d})
		frames = append(frames, holdAt(origin, pos, Pos{Y: d}))
	}
	return append(frames, release(pos))
}

func renderTop(_ *Frame, _ Pane, region Region, routes []string) RouteResponse[string] {
	return RouteResponse[string]{Response: region.String() + ":" + routes[len(routes)-1]}
}

func showNav(h *harness, p Pointer, routes []string, cfg Config, req Request) Response[string] {
	f := h.begin(p)
	resp := Show(f, New(routes, cfg), req, renderTop)
	h.end()
	return resp
}
