package navstack

import "image/color"

// LayerOrder is the compositing order of a layer.
type LayerOrder int

const (
	// LayerParent draws into whatever layer the surface itself is in.
	LayerParent LayerOrder = iota
	LayerBackground
	LayerForeground
)

// LayerID names a compositing layer. Hosts keep layer resources keyed by it,
// so a stable LayerID keeps scroll and hit-testing state intact between
// frames. The zero value is the parent layer.
type LayerID struct {
	Order LayerOrder
	ID    Id
}

// ParentLayer is the surface's normal compositing layer.
var ParentLayer = LayerID{}

func (l LayerID) IsParent() bool {
	return l.Order == LayerParent
}

// Pane is where one render callback draws.
type Pane struct {
	Layer     LayerID
	Rect      Rect // Content rect in untranslated surface coordinates
	Clip      Rect // Visible part, in final screen coordinates
	Translate Pos  // Applied to everything drawn in the pane
}

// Compositor is the host's layer compositing capability.
type Compositor interface {
	// BeginPane directs subsequent drawing into the pane's layer.
	BeginPane(p Pane)
	// EndPane finishes the pane and returns the bounding rect of what was
	// drawn, in untranslated coordinates.
	EndPane(p Pane) Rect
	// Dim blends a translucent black rect over layer.
	Dim(layer LayerID, r Rect, c color.RGBA)
}

// Region is the part of a route view the render callback is asked for.
type Region int

const (
	RegionBody Region = iota
	RegionTitle
)

func (r Region) String() string {
	if r == RegionTitle {
		return "title"
	}
	return "body"
}

// Frame is the context handed to a surface (and to render callbacks, for
// nested surfaces) for one frame.
type Frame struct {
	Ctx  *Context
	Comp Compositor
	Area Rect // Rect available to the surface
	ID   Id   // Parent id; surface ids derive from it
}

// Child returns a frame for content drawn inside pane.
func (f *Frame) Child(p Pane, discriminator any) *Frame {
	return &Frame{
		Ctx:  f.Ctx,
		Comp: f.Comp,
		Area: p.Rect,
		ID:   f.ID.With(discriminator),
	}
}

// RouteResponse is what a render callback returns.
type RouteResponse[T any] struct {
	Response T
	// CanTakeDragFrom lists nested surfaces whose drags the enclosing
	// surface may take over.
	CanTakeDragFrom []Id
}

// RenderFunc draws region of the view whose top is the last element of routes.
// It may run twice in one frame: once for the previous view and once for the
// current one.
type RenderFunc[R, T any] func(f *Frame, pane Pane, region Region, routes []R) RouteResponse[T]

// layerPlan is the per-frame layering decision for a stack surface.
type layerPlan struct {
	background    bool
	bgPane        Pane
	dim           color.RGBA
	fgPane        Pane
	fgShowsPopped bool
}

// planLayers decides layering for a horizontal or vertical stack surface
// whose foreground slides away from rest toward displaced.
func planLayers(id Id, area Rect, st SurfaceState, t Travel, cfg Config) layerPlan {
	var plan layerPlan

	offset := st.Offset - t.Rest
	move := t.Axis.Vector(offset)

	if !st.Action.IsTransitioning() {
		plan.fgPane = Pane{Layer: ParentLayer, Rect: area, Clip: area}
		plan.fgShowsPopped = st.Action.Kind == ActionReturned
		return plan
	}

	// Foreground covers what remains after sliding by offset.
	fgClip := area.Translate(move).Intersect(area)
	plan.fgPane = Pane{
		Layer:     LayerID{Order: LayerForeground, ID: id.With("fg")},
		Rect:      area,
		Clip:      fgClip,
		Translate: move,
	}

	// Background is exposed between the area edge and the foreground.
	var bgClip Rect
	if t.Axis == AxisVertical {
		bgClip, _ = area.SplitTopBottomAtY(area.Min.Y + offset)
	} else {
		bgClip, _ = area.SplitLeftRightAtX(area.Min.X + offset)
	}

	// Parallax uses last frame's measured background size as the estimate.
	extent := t.Axis.Extent(area)
	if st.HasPoppedRect {
		extent = t.Axis.Extent(st.PoppedRect)
	}
	progress := t.Progress(st.Offset)
	shift := -(1 - progress) * extent * cfg.Parallax

	plan.background = true
	plan.bgPane = Pane{
		Layer:     LayerID{Order: LayerBackground, ID: id.With("bg")},
		Rect:      area,
		Clip:      bgClip,
		Translate: t.Axis.Vector(shift),
	}
	plan.dim = color.RGBA{A: uint8(progress*float32(cfg.MaxDim) + 0.5)}
	return plan
}

// popped returns the stack without its top, or the stack itself when it
// holds a single route.
func popped[R any](routes []R) []R {
	if len(routes) < 2 {
		return routes
	}
	return routes[:len(routes)-1]
}
