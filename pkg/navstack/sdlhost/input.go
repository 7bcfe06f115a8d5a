package sdlhost

import (
	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/veandco/go-sdl2/sdl"
)

// PointerSource feeds pointer events from outside the SDL event queue, such
// as an evdev touchscreen.
type PointerSource interface {
	Poll(t *navstack.PointerTracker)
}

// Input translates SDL events into pointer state and back requests.
type Input struct {
	tracker navstack.PointerTracker
	width   float32
	height  float32
	finger  sdl.FingerID
	touched bool
	back    bool
	quit    bool
	resized bool
}

// NewInput creates an Input for a drawable of width x height pixels, used to
// scale normalized touch coordinates.
func NewInput(width, height int32) *Input {
	return &Input{width: float32(width), height: float32(height)}
}

// HandleEvent folds e into the input state. It reports whether e was
// relevant to the frame loop.
func (in *Input) HandleEvent(e sdl.Event) bool {
	switch e := e.(type) {
	case *sdl.QuitEvent:
		in.quit = true

	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT {
			return false
		}
		pos := navstack.Pos{X: float32(e.X), Y: float32(e.Y)}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			in.tracker.Press(pos)
		} else {
			in.tracker.Release(pos)
		}

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID {
			return false
		}
		in.tracker.Move(navstack.Pos{X: float32(e.X), Y: float32(e.Y)})

	case *sdl.TouchFingerEvent:
		return in.handleFinger(e)

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return false
		}
		switch e.Keysym.Sym {
		case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_AC_BACK:
			in.back = true
		default:
			return false
		}

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_FOCUS_LOST:
			in.tracker.Cancel()
		case sdl.WINDOWEVENT_LEAVE:
			in.tracker.Leave()
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			in.width, in.height = float32(e.Data1), float32(e.Data2)
			in.resized = true
		}

	default:
		return false
	}
	return true
}

// handleFinger follows the first finger down and ignores the rest until it
// lifts.
func (in *Input) handleFinger(e *sdl.TouchFingerEvent) bool {
	pos := navstack.Pos{X: e.X * in.width, Y: e.Y * in.height}

	switch e.Type {
	case sdl.FINGERDOWN:
		if in.touched {
			return false
		}
		in.touched, in.finger = true, e.FingerID
		in.tracker.Press(pos)
	case sdl.FINGERMOTION:
		if !in.touched || e.FingerID != in.finger {
			return false
		}
		in.tracker.Move(pos)
	case sdl.FINGERUP:
		if !in.touched || e.FingerID != in.finger {
			return false
		}
		in.touched = false
		in.tracker.Release(pos)
	default:
		return false
	}
	return true
}

// Poll lets extra sources contribute to this frame's pointer.
func (in *Input) Poll(sources ...PointerSource) {
	for _, s := range sources {
		s.Poll(&in.tracker)
	}
}

// Frame returns the pointer for the frame about to begin.
func (in *Input) Frame() navstack.Pointer {
	return in.tracker.Frame()
}

// IsDown reports whether a press is in progress.
func (in *Input) IsDown() bool {
	return in.tracker.IsDown()
}

// BackRequested reports and clears a pending back key press.
func (in *Input) BackRequested() bool {
	back := in.back
	in.back = false
	return back
}

// Resized reports and clears a pending window size change.
func (in *Input) Resized() bool {
	resized := in.resized
	in.resized = false
	return resized
}

// QuitRequested reports whether the window was asked to close.
func (in *Input) QuitRequested() bool {
	return in.quit
}
