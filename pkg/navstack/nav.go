// Package navstack implements the transition engine of a navigation stack
// for immediate-mode GUIs: a surface that shows the top of a route stack,
// animates pushes and pops, and lets the user drag back to the previous view.
//
// Each frame the host calls Context.BeginFrame with the pointer, shows its
// surfaces, reacts to the reported Action (pop its stack on Returned, clear
// its navigating flag on Navigated) and calls Context.EndFrame to learn
// whether an animation needs another frame right away.
//
//	ctx := navstack.NewContext()
//	for running {
//	    ctx.BeginFrame(pointer)
//	    nav := navstack.New(routes, navstack.DefaultConfig())
//	    resp := navstack.Show(frame, nav, router.Request(), render)
//	    router.Handle(resp.Action)
//	    if ctx.EndFrame() {
//	        scheduleFrame()
//	    }
//	}
package navstack

// Nav is a stack navigator over a borrowed route stack.
type Nav[R any] struct {
	routes []R
	cfg    Config

	// TakeDragFrom lists surfaces whose in-progress drags this navigator may
	// take over, in addition to those reported by its foreground view.
	TakeDragFrom []Id
}

// New creates a navigator. It panics if routes is empty.
func New[R any](routes []R, cfg Config) *Nav[R] {
	n, err := TryNew(routes, cfg)
	if err != nil {
		panic(err)
	}
	return n
}

// TryNew creates a navigator, or returns ErrEmptyRoutes.
func TryNew[R any](routes []R, cfg Config) (*Nav[R], error) {
	if len(routes) == 0 {
		return nil, ErrEmptyRoutes
	}
	return &Nav[R]{routes: routes, cfg: cfg}, nil
}

// Routes returns the borrowed stack.
func (n *Nav[R]) Routes() []R {
	return n.routes
}

// Top returns the current route.
func (n *Nav[R]) Top() R {
	return n.routes[len(n.routes)-1]
}

// ID returns the surface id the navigator uses under parent.
func (n *Nav[R]) ID(parent Id) Id {
	return parent.With("nav").With(n.cfg.IDSource)
}

// DragID returns the id under which the navigator claims gestures.
func (n *Nav[R]) DragID(parent Id) Id {
	return n.ID(parent).With("drag")
}

// Response is the result of showing a surface for one frame.
type Response[T any] struct {
	// Action is the surface's transition after this frame. Returned and
	// Navigated are reported exactly once.
	Action Action

	// Offset is the animation offset after this frame.
	Offset float32

	// Body is the foreground body result.
	Body T

	// Title is the foreground title result, valid when HasTitle.
	Title    T
	HasTitle bool

	// Background is the previous view's body result, valid when
	// HasBackground.
	Background    T
	HasBackground bool
}

// Show runs one frame of the navigator: gesture interpretation, host
// requests, animation and layered rendering.
func Show[R, T any](f *Frame, n *Nav[R], req Request, render RenderFunc[R, T]) Response[T] {
	ctx := f.Ctx
	id := n.ID(f.ID)
	cfg := n.cfg
	axis := cfg.Axis

	travel := Travel{
		Axis:      axis,
		Rest:      cfg.RestOffset,
		Displaced: cfg.RestOffset + axis.Extent(f.Area),
	}

	state, ok := ctx.LoadSurface(id)
	if !ok {
		state = SurfaceState{Offset: travel.Rest}
	}
	before := state.Action

	// Single route stacks have nothing to return to.
	if len(n.routes) > 1 && acceptsGestures(state.Action) {
		drag := Drag{
			ID:           n.DragID(f.ID),
			ContentRect:  f.Area,
			Directions:   cfg.directions(),
			Angle:        cfg.Angle,
			OffsetToRest: travel.FromRest(state.Offset),
			Threshold:    cfg.ReleaseThreshold * axis.Extent(f.Area),
		}
		takeFrom := append(append([]Id(nil), n.TakeDragFrom...), state.TakeDragFrom...)
		state.ApplyDrag(drag.Handle(ctx, takeFrom))
		abandonLostDrag(ctx, &state, drag.ID)
	}

	state.ApplyRequest(req, travel)

	if state.Advance(travel, axis.Along(ctx.Pointer().Delta)) {
		ctx.RequestRepaint()
	}

	if state.Action != before {
		ctx.logger.Debug("Navigation action changed",
			"surface", id.String(), "from", before.String(), "to", state.Action.String(), "offset", state.Offset)
	}

	var resp Response[T]
	plan := planLayers(id, f.Area, state, travel, cfg)

	if plan.background {
		prev := popped(n.routes)
		f.Comp.BeginPane(plan.bgPane)
		bg := render(f.Child(plan.bgPane, "bg"), plan.bgPane, RegionBody, prev)
		state.PoppedRect = f.Comp.EndPane(plan.bgPane)
		state.HasPoppedRect = true
		f.Comp.Dim(plan.bgPane.Layer, plan.bgPane.Clip, plan.dim)
		resp.Background, resp.HasBackground = bg.Response, true
	}

	fgRoutes := n.routes
	if plan.fgShowsPopped {
		fgRoutes = popped(n.routes)
	}

	f.Comp.BeginPane(plan.fgPane)
	child := f.Child(plan.fgPane, "fg")
	if cfg.ShowTitle {
		title := render(child, plan.fgPane, RegionTitle, fgRoutes)
		resp.Title, resp.HasTitle = title.Response, true
	}
	body := render(child, plan.fgPane, RegionBody, fgRoutes)
	f.Comp.EndPane(plan.fgPane)

	resp.Body = body.Response
	state.TakeDragFrom = body.CanTakeDragFrom

	ctx.StoreSurface(id, state)

	resp.Action = state.Action
	resp.Offset = state.Offset
	return resp
}

// acceptsGestures reports whether a surface in action a interprets drags.
// Programmatic animations run to completion undisturbed.
func acceptsGestures(a Action) bool {
	switch a.Kind {
	case ActionNone, ActionDragging, ActionResetting:
		return true
	default:
		return false
	}
}

// abandonLostDrag resets a surface left in Dragging after its claim went to
// another surface while it sat at rest, which Drag reports as no outcome.
func abandonLostDrag(ctx *Context, state *SurfaceState, dragID Id) {
	if state.Action.Kind != ActionDragging {
		return
	}
	if ctx.Dragged() == dragID {
		return
	}
	state.Action = Resetting()
}
