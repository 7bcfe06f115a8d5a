package main

import (
	"image/color"
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
)

type screen int

const (
	screenLibrary screen = iota
	screenArtist
	screenAlbum
)

func (s screen) String() string {
	switch s {
	case screenLibrary:
		return "Library"
	case screenArtist:
		return "Artist"
	case screenAlbum:
		return "Album"
	}
	return ""
}

func (s screen) next() (screen, bool) {
	if s >= screenAlbum {
		return s, false
	}
	return s + 1, true
}

var screenColors = map[screen]color.RGBA{
	screenLibrary: {R: 0x26, G: 0x2a, B: 0x33, A: 0xff},
	screenArtist:  {R: 0x2b, G: 0x33, B: 0x2a, A: 0xff},
	screenAlbum:   {R: 0x33, G: 0x2a, B: 0x30, A: 0xff},
}

var (
	rowColor   = color.RGBA{R: 0x4a, G: 0x4f, B: 0x5a, A: 0xff}
	sheetColor = color.RGBA{R: 0xe8, G: 0xe8, B: 0xec, A: 0xff}
	menuColor  = color.RGBA{R: 0x11, G: 0x12, B: 0x16, A: 0xff}
)

// panel is a route of the outer surfaces: the drawer over the main panel,
// and the sheet over the stack.
type panel int

const (
	panelMain panel = iota
	panelMenu
	panelStack
	panelSheet
)

// Body rows, top to bottom.
const (
	rowNext = iota
	rowSheet
	rowMenu
	rowCount
)

const (
	rowHeight  float32 = 64
	rowSpacing float32 = 8
)

type painter interface {
	FillRect(r navstack.Rect, col color.RGBA)
}

type titleDrawer interface {
	Draw(rect navstack.Rect, routes []string, p navstack.Pointer) bool
}

type demo struct {
	cfgs   navstack.Configs
	router *router.Router[screen]
	paint  painter
	title  titleDrawer
	logger *slog.Logger

	drawerOpen bool
	drawerReq  navstack.Request
	sheetOpen  bool
	sheetReq   navstack.Request

	// Frame in which the stack last ran; a surface runs once per frame.
	stackFrame uint64
	stackShown bool
}

func newDemo(cfgs navstack.Configs, paint painter, title titleDrawer) *demo {
	if title == nil {
		cfgs.Stack.ShowTitle = false
	}
	return &demo{
		cfgs:   cfgs,
		router: router.New(screenLibrary),
		paint:  paint,
		title:  title,
		logger: navstack.GetLogger(),
	}
}

// frame draws everything for one frame.
func (d *demo) frame(f *navstack.Frame) bool {
	drawer := navstack.NewDrawer(panelMain, panelMenu, d.cfgs.Drawer)
	drawer.Focused = d.drawerOpen

	resp := navstack.ShowDrawer(f, drawer, d.drawerReq, d.renderPanel)
	switch resp.Action.Kind {
	case navstack.ActionNavigated:
		d.drawerOpen = true
		d.drawerReq = navstack.Request{}
		d.logger.Info("Menu opened")
	case navstack.ActionReturned:
		d.drawerOpen = false
		d.drawerReq = navstack.Request{}
		d.logger.Info("Menu closed", "cause", resp.Action.Cause.String())
	}
	return true
}

// back closes the innermost open surface.
func (d *demo) back() {
	switch {
	case d.drawerOpen:
		d.drawerReq = navstack.Request{Returning: true}
	case d.sheetOpen:
		d.sheetReq = navstack.Request{Returning: true}
	default:
		d.router.GoBack()
	}
}

func (d *demo) renderPanel(f *navstack.Frame, pane navstack.Pane, region navstack.Region, routes []panel) navstack.RouteResponse[struct{}] {
	switch routes[len(routes)-1] {
	case panelMain:
		if d.sheetOpen {
			d.showSheet(f)
		} else {
			d.showStack(f)
		}
	case panelStack:
		if region == navstack.RegionBody {
			d.showStack(f)
		}
	case panelSheet:
		d.drawSheet(f, pane)
	case panelMenu:
		d.drawMenu(f, pane)
	}
	return navstack.RouteResponse[struct{}]{}
}

func (d *demo) showSheet(f *navstack.Frame) {
	sheet := navstack.NewSheet(panelStack, panelSheet, d.cfgs.Sheet)
	resp := navstack.ShowSheet(f, sheet, d.sheetReq, d.renderPanel)
	switch resp.Action.Kind {
	case navstack.ActionNavigated:
		d.sheetReq = navstack.Request{}
	case navstack.ActionReturned:
		d.sheetOpen = false
		d.sheetReq = navstack.Request{}
		d.logger.Info("Sheet dismissed", "cause", resp.Action.Cause.String())
	}
}

func (d *demo) showStack(f *navstack.Frame) {
	frame := f.Ctx.Frame()
	if d.stackShown && d.stackFrame == frame {
		return
	}
	d.stackFrame, d.stackShown = frame, true

	nav := navstack.New(d.router.Routes(), d.cfgs.Stack)
	resp := navstack.Show(f, nav, d.router.Request(), d.renderScreen)
	if d.router.Handle(resp.Action) {
		d.logger.Info("Returned", "screen", d.router.Top().String(), "depth", len(d.router.Routes()))
	}
}

func (d *demo) renderScreen(f *navstack.Frame, pane navstack.Pane, region navstack.Region, routes []screen) navstack.RouteResponse[struct{}] {
	top := routes[len(routes)-1]
	p := d.screenPointer(f, pane, top)

	titleRect, body := pane.Rect, pane.Rect
	if d.cfgs.Stack.ShowTitle {
		titleRect, body = pane.Rect.SplitTopBottomAtY(pane.Rect.Min.Y + float32(constants.DefaultTitleHeight))
	}

	if region == navstack.RegionTitle {
		d.paint.FillRect(titleRect, screenColors[top])
		names := make([]string, len(routes))
		for i, s := range routes {
			names[i] = s.String()
		}
		if d.title.Draw(titleRect, names, p) {
			d.router.GoBack()
		}
		return navstack.RouteResponse[struct{}]{}
	}

	d.paint.FillRect(body, screenColors[top])
	rows := bodyRows(body)
	for i, r := range rows {
		if i == rowNext {
			if _, ok := top.next(); !ok {
				continue
			}
		}
		d.paint.FillRect(r, rowColor)
	}

	switch {
	case clickedIn(p, pane, rows[rowNext]):
		if next, ok := top.next(); ok {
			d.router.Navigate(next)
			d.logger.Info("Navigate", "screen", next.String())
		}
	case clickedIn(p, pane, rows[rowSheet]):
		d.sheetOpen = true
		d.sheetReq = navstack.Request{Navigating: true}
	case clickedIn(p, pane, rows[rowMenu]):
		d.drawerReq = navstack.Request{Navigating: true}
	}
	return navstack.RouteResponse[struct{}]{}
}

// screenPointer returns the pointer a screen may react to: only the settled
// top screen with nothing covering it gets input.
func (d *demo) screenPointer(f *navstack.Frame, pane navstack.Pane, top screen) navstack.Pointer {
	if d.drawerOpen || d.sheetOpen || pane.Translate != (navstack.Pos{}) {
		return navstack.Pointer{}
	}
	if top != d.router.Top() || d.router.IsNavigating() || d.router.IsReturning() {
		return navstack.Pointer{}
	}
	return f.Ctx.Pointer()
}

func (d *demo) drawSheet(f *navstack.Frame, pane navstack.Pane) {
	d.paint.FillRect(pane.Rect, sheetColor)
	rows := bodyRows(pane.Rect)
	d.paint.FillRect(rows[0], rowColor)
	if d.sheetReq == (navstack.Request{}) && clickedIn(f.Ctx.Pointer(), pane, rows[0]) {
		d.sheetReq = navstack.Request{Returning: true}
	}
}

func (d *demo) drawMenu(f *navstack.Frame, pane navstack.Pane) {
	d.paint.FillRect(pane.Rect, menuColor)
	rows := bodyRows(pane.Rect)
	d.paint.FillRect(rows[0], rowColor)
	if d.drawerOpen && clickedIn(f.Ctx.Pointer(), pane, rows[0]) {
		d.drawerReq = navstack.Request{Returning: true}
	}
}

// bodyRows lays out rowCount rows from the top of body.
func bodyRows(body navstack.Rect) []navstack.Rect {
	rows := make([]navstack.Rect, rowCount)
	y := body.Min.Y + rowSpacing
	for i := range rows {
		rows[i] = navstack.RectFromSize(body.Min.X+rowSpacing, y, body.Width()-2*rowSpacing, rowHeight)
		y += rowHeight + rowSpacing
	}
	return rows
}

func clickedIn(p navstack.Pointer, pane navstack.Pane, r navstack.Rect) bool {
	return p.Clicked && p.HasPos && r.Translate(pane.Translate).Contains(p.Pos)
}
