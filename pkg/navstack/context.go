package navstack

import (
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
)

// Pointer is the host's view of the primary pointer for one frame.
type Pointer struct {
	Down      bool // Primary button or finger is held
	HasOrigin bool // Origin is valid
	Origin    Pos  // Where the current press started
	HasPos    bool // Pos is valid
	Pos       Pos  // Latest pointer position
	Delta     Pos  // Movement since the previous frame
	Clicked   bool // A press was released this frame without becoming a drag
}

// DecidedlyDragging reports whether the held pointer has travelled far enough
// from its press origin to no longer be a click.
func (p Pointer) DecidedlyDragging() bool {
	if !p.Down || !p.HasOrigin || !p.HasPos {
		return false
	}
	d := p.Pos.Sub(p.Origin)
	return d.X*d.X+d.Y*d.Y > constants.ClickTolerance*constants.ClickTolerance
}

type surfaceSlot struct {
	state    SurfaceState
	lastSeen uint64
}

// Context is the per-GUI keyed store shared by every surface: surface states,
// gesture states, the single drag claim and the repaint request. It is owned
// by the host and passed into each frame. A Context is not safe for
// concurrent use; all surfaces run on the frame loop.
type Context struct {
	// StaleFrames is how many frames a surface state survives without being
	// requested. Zero keeps states forever.
	StaleFrames uint64

	frame    uint64
	pointer  Pointer
	dragged  Id
	stopped  Id
	repaint  bool
	surfaces map[Id]*surfaceSlot
	gestures map[Id]GestureState
	logger   *slog.Logger
}

// NewContext creates an empty store.
func NewContext() *Context {
	return &Context{
		StaleFrames: constants.DefaultStaleFrames,
		surfaces:    make(map[Id]*surfaceSlot),
		gestures:    make(map[Id]GestureState),
		logger:      internal.GetInternalLogger(),
	}
}

// BeginFrame records the pointer for this frame. A claimed drag whose pointer
// is no longer down is stopped: DragStopped reports its owner for this frame.
func (c *Context) BeginFrame(p Pointer) {
	c.frame++
	c.pointer = p
	c.stopped = NoId
	c.repaint = false

	if !c.dragged.IsZero() && !p.Down {
		c.StopDragging()
	}
}

// EndFrame evicts surfaces that have not been requested for StaleFrames
// frames and reports whether another frame should be scheduled immediately.
func (c *Context) EndFrame() bool {
	if c.StaleFrames > 0 {
		for id, slot := range c.surfaces {
			if c.frame-slot.lastSeen > c.StaleFrames {
				delete(c.surfaces, id)
				c.logger.Debug("Evicted stale surface", "surface", id.String())
			}
		}
	}
	return c.repaint
}

// Frame returns the number of frames begun so far.
func (c *Context) Frame() uint64 {
	return c.frame
}

func (c *Context) Pointer() Pointer {
	return c.pointer
}

// Dragged returns the owner of the active drag, or NoId.
func (c *Context) Dragged() Id {
	return c.dragged
}

// SetDragged claims the active drag for id.
func (c *Context) SetDragged(id Id) {
	if c.dragged != id {
		c.logger.Debug("Drag claimed", "owner", id.String(), "previous", c.dragged.String())
	}
	c.dragged = id
}

// StopDragging releases the current claim. The released owner is reported by
// DragStopped until the next frame begins.
func (c *Context) StopDragging() {
	if c.dragged.IsZero() {
		return
	}
	c.logger.Debug("Drag stopped", "owner", c.dragged.String())
	c.stopped = c.dragged
	c.dragged = NoId
}

// DragStopped returns the owner whose drag ended this frame, or NoId.
func (c *Context) DragStopped() Id {
	return c.stopped
}

// RequestRepaint asks the host to schedule another frame immediately.
func (c *Context) RequestRepaint() {
	c.repaint = true
}

func (c *Context) RepaintRequested() bool {
	return c.repaint
}

// LoadSurface returns the stored state for id and marks it as requested.
func (c *Context) LoadSurface(id Id) (SurfaceState, bool) {
	slot, ok := c.surfaces[id]
	if !ok {
		return SurfaceState{}, false
	}
	slot.lastSeen = c.frame
	return slot.state, true
}

// StoreSurface saves the state for id.
func (c *Context) StoreSurface(id Id, s SurfaceState) {
	slot, ok := c.surfaces[id]
	if !ok {
		slot = &surfaceSlot{}
		c.surfaces[id] = slot
	}
	slot.state = s
	slot.lastSeen = c.frame
}

// Gesture returns the gesture recorded under the drag id.
func (c *Context) Gesture(id Id) (GestureState, bool) {
	g, ok := c.gestures[id]
	return g, ok
}

func (c *Context) setGesture(id Id, g GestureState) {
	c.gestures[id] = g
}

func (c *Context) removeGesture(id Id) {
	delete(c.gestures, id)
}
