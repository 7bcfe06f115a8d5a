package navstack

import "fmt"

// ReturnCause records what started a return.
type ReturnCause int

const (
	ReturnDrag  ReturnCause = iota // A released drag met the threshold
	ReturnClick                    // The host asked to go back
)

func (c ReturnCause) String() string {
	if c == ReturnClick {
		return "click"
	}
	return "drag"
}

// ActionKind classifies the transition a surface is in.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDragging
	ActionReturning
	ActionResetting
	ActionReturned
	ActionNavigating
	ActionNavigated
)

// Action is the current transition of a surface. The zero value is idle.
// Cause is only meaningful for Returning and Returned.
type Action struct {
	Kind  ActionKind
	Cause ReturnCause
}

func Dragging() Action                   { return Action{Kind: ActionDragging} }
func Returning(cause ReturnCause) Action { return Action{Kind: ActionReturning, Cause: cause} }
func Resetting() Action                  { return Action{Kind: ActionResetting} }
func Returned(cause ReturnCause) Action  { return Action{Kind: ActionReturned, Cause: cause} }
func Navigating() Action                 { return Action{Kind: ActionNavigating} }
func Navigated() Action                  { return Action{Kind: ActionNavigated} }

func (a Action) IsNone() bool { return a.Kind == ActionNone }

// IsTransitioning reports whether the previous view is (partly) visible:
// every state except idle and the one-frame Returned/Navigated signals.
func (a Action) IsTransitioning() bool {
	switch a.Kind {
	case ActionDragging, ActionResetting, ActionReturning, ActionNavigating:
		return true
	default:
		return false
	}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionDragging:
		return "dragging"
	case ActionReturning:
		return fmt.Sprintf("returning(%s)", a.Cause)
	case ActionResetting:
		return "resetting"
	case ActionReturned:
		return fmt.Sprintf("returned(%s)", a.Cause)
	case ActionNavigating:
		return "navigating"
	case ActionNavigated:
		return "navigated"
	default:
		return "none"
	}
}

// SurfaceState is the persisted record of one surface.
type SurfaceState struct {
	Offset float32
	Action Action

	// PoppedRect is the bounding rect the background layer measured last
	// frame, valid when HasPoppedRect.
	PoppedRect    Rect
	HasPoppedRect bool

	// TakeDragFrom lists surfaces whose drags this surface may take over,
	// as reported by the foreground view last frame.
	TakeDragFrom []Id
}

// Request carries host navigate/return signals for one frame.
type Request struct {
	// Navigating is set while a route has just been pushed and the host is
	// waiting for Navigated.
	Navigating bool
	// Returning is set while the host is waiting for Returned after asking
	// to go back.
	Returning bool
}

// Travel describes the offsets a surface moves between.
type Travel struct {
	Axis      Axis
	Rest      float32 // Offset when settled
	Displaced float32 // Offset when the foreground is fully out of view

	// StayDisplaced keeps the offset at Displaced after Returned instead of
	// settling at Rest. Surfaces the host keeps showing after a return (a
	// closed drawer) need it; stacks pop their top and settle.
	StayDisplaced bool
}

// Progress returns how far offset is from rest toward displaced, in [0, 1].
func (t Travel) Progress(offset float32) float32 {
	span := t.Displaced - t.Rest
	if span == 0 {
		return 0
	}
	return clamp((offset-t.Rest)/span, 0, 1)
}

// Clamp limits offset to the interval between Rest and Displaced.
func (t Travel) Clamp(offset float32) float32 {
	return clamp(offset, t.Rest, t.Displaced)
}

// FromRest returns the unsigned distance of offset from rest.
func (t Travel) FromRest(offset float32) float32 {
	return abs32(offset - t.Rest)
}

// ApplyDrag folds a drag outcome into s. Dragging enters Dragging; a release
// that met the threshold starts Returning(Drag), otherwise Resetting; an
// unrelated gesture resets.
func (s *SurfaceState) ApplyDrag(r DragResult) {
	switch r.Outcome {
	case DragOutcomeDragging:
		s.Action = Dragging()
	case DragOutcomeReleased:
		if r.ThresholdMet {
			s.Action = Returning(ReturnDrag)
		} else {
			s.Action = Resetting()
		}
	case DragOutcomeUnrelated:
		s.Action = Resetting()
	}
}

// ApplyRequest folds host signals into s. Navigating re-arms from the
// displaced offset unless already navigating or dragging; a drag in progress
// always wins. Returning arms Returning(Click) unless already returning.
func (s *SurfaceState) ApplyRequest(req Request, t Travel) {
	if req.Navigating {
		if s.Action.Kind != ActionNavigating && s.Action.Kind != ActionDragging {
			s.Offset = t.Displaced
			s.Action = Navigating()
		}
		return
	}
	if req.Returning && s.Action.Kind != ActionReturning {
		s.Action = Returning(ReturnClick)
	}
}

// Advance runs one frame of the current action. dragDelta is the pointer
// motion along the travel axis. It returns true when the offset moved by
// animation, meaning another frame must be scheduled.
func (s *SurfaceState) Advance(t Travel, dragDelta float32) bool {
	switch s.Action.Kind {
	case ActionDragging:
		s.Offset = t.Clamp(s.Offset + dragDelta)
		return false

	case ActionReturning:
		if stepToward(&s.Offset, t.Displaced) {
			return true
		}
		s.Action = Returned(s.Action.Cause)
		return true

	case ActionResetting:
		if stepToward(&s.Offset, t.Rest) {
			return true
		}
		s.Action = Action{}
		return true

	case ActionNavigating:
		if stepToward(&s.Offset, t.Rest) {
			return true
		}
		s.Action = Navigated()
		return true

	case ActionReturned:
		// Reported last frame; settle.
		if t.StayDisplaced {
			s.Offset = t.Displaced
		} else {
			s.Offset = t.Rest
		}
		s.Action = Action{}
		return false

	case ActionNavigated:
		s.Offset = t.Rest
		s.Action = Action{}
		return false
	}
	return false
}
