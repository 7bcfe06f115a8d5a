// Package sdlhost runs navstack surfaces in an SDL2 window: it turns SDL
// events into navstack pointers, composites transition layers on render
// targets and paints the default navigation title.
//
// # Basic Usage
//
//	if err := sdlhost.Init(); err != nil { ... }
//	defer sdlhost.Quit()
//
//	win, err := sdlhost.OpenWindow("demo", 0, 0, sdlhost.WindowOptions{})
//	host := sdlhost.NewHost(win)
//	defer host.Close()
//
//	err = host.Run(ctx, func(f *navstack.Frame) bool {
//	    resp := navstack.Show(f, navstack.New(r.Routes(), cfg), r.Request(), render)
//	    r.Handle(resp.Action)
//	    return true
//	})
package sdlhost

import (
	"context"
	"image/color"
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// idleWaitMs bounds how long an idle host blocks waiting for events, so
// cancellation is noticed.
const idleWaitMs = 250

// FrameFunc draws one frame. Returning false stops the host.
type FrameFunc func(f *navstack.Frame) bool

// Host owns the per-window navstack context and drives frames: it draws
// continuously while a surface animates or a press is held, and otherwise
// sleeps until the next event.
type Host struct {
	Window     *Window
	Input      *Input
	Compositor *Compositor
	Ctx        *navstack.Context
	Root       navstack.Id
	Background color.RGBA

	sources []PointerSource
	logger  *slog.Logger
}

// NewHost creates a host for w. Extra pointer sources are polled before
// every frame.
func NewHost(w *Window, sources ...PointerSource) *Host {
	width, height := w.Size()
	return &Host{
		Window:     w,
		Input:      NewInput(width, height),
		Compositor: NewCompositor(w.Renderer),
		Ctx:        navstack.NewContext(),
		Root:       navstack.NewId(w.Title),
		Background: color.RGBA{R: 0x1b, G: 0x1b, B: 0x1f, A: 0xff},
		sources:    sources,
		logger:     internal.GetInternalLogger(),
	}
}

// Run drives frames until draw returns false, the window is closed or ctx is
// done. It returns the first compositor failure.
func (h *Host) Run(ctx context.Context, draw FrameFunc) error {
	busy := true
	for {
		if ctx.Err() != nil {
			return nil
		}

		h.pump(busy)
		if h.Input.QuitRequested() {
			h.logger.Debug("Quit requested")
			return nil
		}
		if h.Input.Resized() {
			width, height := h.Window.Size()
			h.logger.Debug("Window resized", "width", width, "height", height)
		}
		h.Input.Poll(h.sources...)

		more, ok, err := h.Frame(draw)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		busy = more || h.Input.IsDown() || len(h.sources) > 0
	}
}

// Frame draws and presents a single frame. more reports that an animation
// wants another frame immediately; ok is false once draw asked to stop.
func (h *Host) Frame(draw FrameFunc) (more, ok bool, err error) {
	h.Ctx.BeginFrame(h.Input.Frame())
	h.Compositor.BeginFrame(h.Background)
	h.Window.RenderBackground()

	f := &navstack.Frame{
		Ctx:  h.Ctx,
		Comp: h.Compositor,
		Area: h.Window.Area(),
		ID:   h.Root,
	}
	ok = draw(f)

	err = h.Compositor.EndFrame()
	more = h.Ctx.EndFrame()
	h.Window.Present()
	return more, ok, err
}

// pump drains pending events. An idle host blocks for the first one.
func (h *Host) pump(busy bool) {
	var e sdl.Event
	if busy {
		e = sdl.PollEvent()
	} else {
		e = sdl.WaitEventTimeout(idleWaitMs)
	}
	for ; e != nil; e = sdl.PollEvent() {
		h.Input.HandleEvent(e)
	}
}

// BackRequested reports a pending back key press.
func (h *Host) BackRequested() bool {
	return h.Input.BackRequested()
}

func (h *Host) Close() {
	h.Compositor.Close()
	h.Window.Close()
}
