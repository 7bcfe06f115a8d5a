package navstack

import "github.com/BrandonKowalski/navstack/pkg/navstack/constants"

// PointerTracker folds raw press, move and release events from an input
// source into one Pointer per frame. Hosts feed it events as they arrive and
// call Frame once before Context.BeginFrame.
type PointerTracker struct {
	down    bool
	origin  Pos
	hasPos  bool
	pos     Pos
	delta   Pos
	clicked bool
	dragged bool
}

// Press starts a press at p.
func (t *PointerTracker) Press(p Pos) {
	t.move(p)
	t.down = true
	t.origin = p
	t.dragged = false
}

// Move records motion to p.
func (t *PointerTracker) Move(p Pos) {
	t.move(p)
}

// Release ends the current press at p. A press that never travelled beyond
// the click tolerance becomes a click.
func (t *PointerTracker) Release(p Pos) {
	t.move(p)
	if t.down && !t.dragged {
		t.clicked = true
	}
	t.down = false
}

// Cancel drops the current press without producing a click, as when the
// window loses focus mid-gesture.
func (t *PointerTracker) Cancel() {
	t.down = false
	t.dragged = false
}

// Leave forgets the pointer position, as when a mouse leaves the window.
func (t *PointerTracker) Leave() {
	if !t.down {
		t.hasPos = false
	}
}

// IsDown reports whether a press is in progress.
func (t *PointerTracker) IsDown() bool {
	return t.down
}

func (t *PointerTracker) move(p Pos) {
	if t.hasPos {
		t.delta = t.delta.Add(p.Sub(t.pos))
	}
	t.pos, t.hasPos = p, true

	if t.down && !t.dragged {
		d := p.Sub(t.origin)
		t.dragged = d.X*d.X+d.Y*d.Y > constants.ClickTolerance*constants.ClickTolerance
	}
}

// Frame returns the pointer for the frame about to begin and resets the
// per-frame motion and click.
func (t *PointerTracker) Frame() Pointer {
	p := Pointer{
		Down:      t.down,
		HasOrigin: t.down,
		Origin:    t.origin,
		HasPos:    t.hasPos,
		Pos:       t.pos,
		Delta:     t.delta,
		Clicked:   t.clicked,
	}
	t.delta = Pos{}
	t.clicked = false
	return p
}
