package navstack

import "image/color"

// Drawer is a side drawer sliding in from the left edge over a background
// route. Closed is offset 0, open is Config.DrawerWidth.
//
// A closed drawer opens with a left-to-right drag; released past the
// threshold it finishes opening (Navigating), otherwise it closes again. When
// Focused (open and the host's focus), any direction is accepted and a
// release past the threshold closes it (Returning), otherwise it springs back
// open.
type Drawer[R any] struct {
	bg      R
	drawer  R
	cfg     Config
	Focused bool
}

// NewDrawer creates a drawer over bg.
func NewDrawer[R any](bg, drawer R, cfg Config) *Drawer[R] {
	cfg.Axis = AxisHorizontal
	return &Drawer[R]{bg: bg, drawer: drawer, cfg: cfg}
}

// ID returns the surface id the drawer uses under parent.
func (d *Drawer[R]) ID(parent Id) Id {
	return parent.With("nav-drawer").With(d.cfg.IDSource)
}

// DragID returns the id under which the drawer claims gestures.
func (d *Drawer[R]) DragID(parent Id) Id {
	return d.ID(parent).With("drag")
}

// DrawerResponse is the result of showing a drawer for one frame.
type DrawerResponse[T any] struct {
	Action Action
	Offset float32

	// Background is the background route's result.
	Background T

	// Drawer is the drawer route's result, valid when HasDrawer.
	Drawer    T
	HasDrawer bool
}

// ShowDrawer runs one frame of the drawer. A closed drawer handles drags after
// the background renders so it can take over drags its nested surfaces allow.
// A focused drawer handles them first, leaving the background none.
func ShowDrawer[R, T any](f *Frame, d *Drawer[R], req Request, render RenderFunc[R, T]) DrawerResponse[T] {
	ctx := f.Ctx
	id := d.ID(f.ID)
	cfg := d.cfg
	area := f.Area
	width := cfg.DrawerWidth

	// Open is where the drawer settles; closing is a return.
	travel := Travel{
		Axis:          AxisHorizontal,
		Rest:          width,
		Displaced:     0,
		StayDisplaced: true,
	}

	state, ok := ctx.LoadSurface(id)
	if !ok {
		state = SurfaceState{Offset: travel.Displaced}
	}
	before := state.Action

	handleDrag := func(takeFrom []Id) {
		if !acceptsGestures(state.Action) {
			return
		}
		drag := Drag{
			ID:          d.DragID(f.ID),
			ContentRect: area,
			Directions:  DragLeftToRight,
			Angle:       cfg.Angle,
			Threshold:   cfg.ReleaseThreshold * width,
		}
		if d.Focused {
			drag.Directions = DragAllDirections
			drag.Angle = Balanced
			drag.OffsetToRest = abs32(state.Offset - width)
		} else {
			drag.OffsetToRest = state.Offset
		}

		res := drag.Handle(ctx, takeFrom)
		switch {
		case res.Outcome == DragOutcomeReleased && !d.Focused:
			if res.ThresholdMet {
				state.Action = Navigating()
			} else {
				state.Action = Returning(ReturnDrag)
			}
		default:
			state.ApplyDrag(res)
		}
		abandonLostDrag(ctx, &state, drag.ID)

		// An unfocused drawer's home is closed.
		if !d.Focused && state.Action.Kind == ActionResetting {
			state.Action = Returning(ReturnDrag)
		}
	}

	// A focused drawer is modal and claims before the background can.
	if d.Focused {
		handleDrag(nil)
	}

	var resp DrawerResponse[T]
	bgPane := Pane{Layer: ParentLayer, Rect: area, Clip: area}
	if state.Offset != 0 {
		bgPane.Layer = LayerID{Order: LayerBackground, ID: id.With("bg")}
	}
	f.Comp.BeginPane(bgPane)
	bg := render(f.Child(bgPane, "bg"), bgPane, RegionBody, []R{d.bg})
	f.Comp.EndPane(bgPane)
	if state.Offset != 0 {
		var alpha float32
		if width > 0 {
			alpha = state.Offset / width * float32(cfg.MaxDim)
		}
		f.Comp.Dim(bgPane.Layer, area, color.RGBA{A: uint8(clamp(alpha, 0, 255) + 0.5)})
	}
	resp.Background = bg.Response

	if !d.Focused {
		handleDrag(bg.CanTakeDragFrom)
	}

	if req.Navigating {
		if state.Action.Kind != ActionNavigating && state.Action.Kind != ActionDragging {
			state.Action = Navigating()
		}
	} else if req.Returning && state.Action.Kind != ActionReturning {
		state.Offset = width
		state.Action = Returning(ReturnClick)
	}

	p := ctx.Pointer()
	if state.Offset != 0 && p.Clicked && p.HasPos && area.Contains(p.Pos) && p.Pos.X-area.Min.X >= state.Offset {
		state.Action = Returning(ReturnClick)
	}

	if state.Advance(travel, p.Delta.X) {
		ctx.RequestRepaint()
	}

	if state.Action != before {
		ctx.logger.Debug("Drawer action changed",
			"surface", id.String(), "from", before.String(), "to", state.Action.String(), "offset", state.Offset)
	}

	if state.Offset != 0 {
		drawerRect := RectFromSize(area.Min.X, area.Min.Y, width, area.Height())
		clip, _ := area.SplitLeftRightAtX(area.Min.X + state.Offset)
		pane := Pane{
			Layer:     LayerID{Order: LayerForeground, ID: id.With("fg")},
			Rect:      drawerRect,
			Clip:      clip,
			Translate: Pos{X: state.Offset - width},
		}
		f.Comp.BeginPane(pane)
		out := render(f.Child(pane, "fg"), pane, RegionBody, []R{d.drawer})
		f.Comp.EndPane(pane)
		resp.Drawer, resp.HasDrawer = out.Response, true
	}

	ctx.StoreSurface(id, state)

	resp.Action = state.Action
	resp.Offset = state.Offset
	return resp
}
