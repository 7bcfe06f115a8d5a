package navstack

import "image/color"

// Sheet is a modal bottom sheet showing a foreground route over a background
// route. It rests with its top edge at Config.Split percent of the area and
// is dismissed by dragging it down.
type Sheet[R any] struct {
	bg  R
	fg  R
	cfg Config
}

// NewSheet creates a sheet over bg.
func NewSheet[R any](bg, fg R, cfg Config) *Sheet[R] {
	cfg.Axis = AxisVertical
	return &Sheet[R]{bg: bg, fg: fg, cfg: cfg}
}

// ID returns the surface id the sheet uses under parent.
func (s *Sheet[R]) ID(parent Id) Id {
	return parent.With("bottom_sheet").With(s.cfg.IDSource)
}

// ShowSheet runs one frame of the sheet. The background route gets both
// regions; the foreground only its body. A click on the uncovered background
// starts Returning(Click).
func ShowSheet[R, T any](f *Frame, s *Sheet[R], req Request, render RenderFunc[R, T]) Response[T] {
	ctx := f.Ctx
	id := s.ID(f.ID)
	cfg := s.cfg
	area := f.Area

	travel := Travel{
		Axis:          AxisVertical,
		Rest:          area.Min.Y + float32(cfg.Split)*area.Height()/100,
		Displaced:     area.Max.Y,
		StayDisplaced: true,
	}

	state, ok := ctx.LoadSurface(id)
	if !ok {
		state = SurfaceState{Offset: travel.Rest}
	}
	before := state.Action

	bgRect, contentRect := area.SplitTopBottomAtY(state.Offset)

	if acceptsGestures(state.Action) {
		drag := Drag{
			ID:           id.With("drag"),
			ContentRect:  contentRect,
			Directions:   DragVertical,
			Angle:        cfg.Angle,
			OffsetToRest: travel.FromRest(state.Offset),
			Threshold:    cfg.ReleaseThreshold * (travel.Displaced - travel.Rest),
		}
		state.ApplyDrag(drag.Handle(ctx, nil))
		abandonLostDrag(ctx, &state, drag.ID)
	}

	state.ApplyRequest(req, travel)

	p := ctx.Pointer()
	if p.Clicked && p.HasPos && bgRect.Contains(p.Pos) && state.Action.Kind != ActionReturning {
		state.Action = Returning(ReturnClick)
	}

	if state.Advance(travel, p.Delta.Y) {
		ctx.RequestRepaint()
	}

	if state.Action != before {
		ctx.logger.Debug("Sheet action changed",
			"surface", id.String(), "from", before.String(), "to", state.Action.String(), "offset", state.Offset)
	}

	var resp Response[T]
	bgRoutes := []R{s.bg}

	// Background darkens as the sheet rises.
	bgPane := Pane{Layer: LayerID{Order: LayerBackground, ID: id.With("bg")}, Rect: area, Clip: area}
	f.Comp.BeginPane(bgPane)
	bgFrame := f.Child(bgPane, "bg")
	title := render(bgFrame, bgPane, RegionTitle, bgRoutes)
	bg := render(bgFrame, bgPane, RegionBody, bgRoutes)
	state.PoppedRect = f.Comp.EndPane(bgPane)
	state.HasPoppedRect = true
	dim := (1 - travel.Progress(state.Offset)) * float32(cfg.MaxDim)
	f.Comp.Dim(bgPane.Layer, area, color.RGBA{A: uint8(dim + 0.5)})
	resp.Title, resp.HasTitle = title.Response, true
	resp.Background, resp.HasBackground = bg.Response, true

	_, contentRect = area.SplitTopBottomAtY(state.Offset)
	fgPane := Pane{
		Layer: LayerID{Order: LayerForeground, ID: id.With("fg")},
		Rect:  contentRect,
		Clip:  contentRect,
	}
	fgRoutes := []R{s.fg}
	if state.Action.Kind == ActionReturned {
		fgRoutes = bgRoutes
	}
	f.Comp.BeginPane(fgPane)
	body := render(f.Child(fgPane, "fg"), fgPane, RegionBody, fgRoutes)
	f.Comp.EndPane(fgPane)
	resp.Body = body.Response

	ctx.StoreSurface(id, state)

	resp.Action = state.Action
	resp.Offset = state.Offset
	return resp
}
