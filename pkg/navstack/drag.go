package navstack

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
)

// DragDirection is a set of gesture directions.
type DragDirection uint8

const (
	DragLeftToRight DragDirection = 1 << iota
	DragRightToLeft
	DragVertical

	DragNone          DragDirection = 0
	DragHorizontal                  = DragLeftToRight | DragRightToLeft
	DragAllDirections               = DragLeftToRight | DragRightToLeft | DragVertical
)

// Contains reports whether every direction in o is in d.
func (d DragDirection) Contains(o DragDirection) bool {
	return o != DragNone && d&o == o
}

// Intersects reports whether d and o share a direction.
func (d DragDirection) Intersects(o DragDirection) bool {
	return d&o != 0
}

func (d DragDirection) String() string {
	if d == DragNone {
		return "none"
	}
	var parts []string
	if d&DragLeftToRight != 0 {
		parts = append(parts, "left-to-right")
	}
	if d&DragRightToLeft != 0 {
		parts = append(parts, "right-to-left")
	}
	if d&DragVertical != 0 {
		parts = append(parts, "vertical")
	}
	return strings.Join(parts, "|")
}

// DragAngle decides when a diagonal motion counts as vertical.
// The zero value is balanced.
type DragAngle struct {
	verticalBias uint8
}

// Balanced classifies by whichever axis moved further.
var Balanced = DragAngle{}

// VerticalNTimesEasier classifies as vertical unless the horizontal motion
// exceeds n times the vertical motion. It keeps scrolls from being read as
// navigation swipes.
func VerticalNTimesEasier(n uint8) DragAngle {
	return DragAngle{verticalBias: n}
}

func (a DragAngle) IsBalanced() bool {
	return a.verticalBias <= 1
}

func (a DragAngle) String() string {
	if a.IsBalanced() {
		return "balanced"
	}
	return fmt.Sprintf("vertical-%dx", a.verticalBias)
}

func (a DragAngle) isVertical(dx, dy float32) bool {
	if a.IsBalanced() {
		return abs32(dy) > abs32(dx)
	}
	return abs32(dy)*float32(a.verticalBias) > abs32(dx)
}

// Classify reads the motion from origin to current as a single direction.
// It returns false when the motion is inside the deadzone on both axes or the
// direction is not in allowed.
func Classify(origin, current Pos, allowed DragDirection, angle DragAngle) (DragDirection, bool) {
	dx := origin.X - current.X
	dy := origin.Y - current.Y

	if abs32(dx) < constants.DragDeadzone && abs32(dy) < constants.DragDeadzone {
		return DragNone, false
	}

	var dir DragDirection
	switch {
	case angle.isVertical(dx, dy):
		dir = DragVertical
	case dx >= 0:
		dir = DragRightToLeft
	default:
		dir = DragLeftToRight
	}

	if !allowed.Contains(dir) {
		return DragNone, false
	}
	return dir, true
}

// GestureState is the transient record of one claimed gesture.
type GestureState struct {
	Origin    Pos
	Direction DragDirection
}

// DragOutcome is what a surface's drag handler observed this frame.
type DragOutcome int

const (
	DragOutcomeNone DragOutcome = iota
	// DragOutcomeDragging: the surface owns the gesture and it moves in an
	// accepted direction.
	DragOutcomeDragging
	// DragOutcomeReleased: the surface's gesture ended; see ThresholdMet.
	DragOutcomeReleased
	// DragOutcomeUnrelated: another surface owns the gesture, or the released
	// gesture never matched this surface.
	DragOutcomeUnrelated
)

// DragResult is the outcome of Drag.Handle.
type DragResult struct {
	Outcome      DragOutcome
	ThresholdMet bool
}

func (r DragResult) String() string {
	switch r.Outcome {
	case DragOutcomeDragging:
		return "dragging"
	case DragOutcomeReleased:
		return fmt.Sprintf("released(threshold_met=%t)", r.ThresholdMet)
	case DragOutcomeUnrelated:
		return "unrelated"
	default:
		return "none"
	}
}

// Drag interprets the pointer for one surface for one frame.
type Drag struct {
	ID           Id
	ContentRect  Rect
	Directions   DragDirection
	Angle        DragAngle
	OffsetToRest float32 // Distance of the surface's offset from rest
	Threshold    float32 // Absolute distance from rest a release must reach
}

// Handle runs the gesture ownership protocol against the context.
//
// A new gesture is claimed when nothing owns the drag, the press started
// inside ContentRect and the motion classifies into Directions. A gesture
// owned by a surface listed in canTakeFrom is taken over once it moves in an
// accepted direction. A gesture owned by anyone else is unrelated to this
// surface.
func (d *Drag) Handle(ctx *Context, canTakeFrom []Id) DragResult {
	p := ctx.Pointer()

	// Motion this surface cannot interpret stays free for nested surfaces.
	if ctx.Dragged().IsZero() && p.DecidedlyDragging() && d.ContentRect.Contains(p.Origin) {
		if _, ok := Classify(p.Origin, p.Pos, d.Directions, d.Angle); ok {
			ctx.SetDragged(d.ID)
		}
	}

	var res DragResult
	if dragged := ctx.Dragged(); !dragged.IsZero() {
		canTake := dragged != d.ID && containsId(canTakeFrom, dragged)
		if canTake || dragged == d.ID {
			if d.follow(ctx, canTake) {
				res = DragResult{Outcome: DragOutcomeDragging}
			}
		} else {
			ctx.removeGesture(d.ID)
			if d.OffsetToRest > 0 {
				res = DragResult{Outcome: DragOutcomeUnrelated}
			}
		}
	}

	if ctx.Dragged() == d.ID && !p.Down {
		ctx.StopDragging()
	}

	if ctx.DragStopped() == d.ID {
		if g, ok := ctx.Gesture(d.ID); ok {
			if d.ContentRect.Contains(g.Origin) && d.Directions.Contains(g.Direction) {
				res = DragResult{
					Outcome:      DragOutcomeReleased,
					ThresholdMet: d.OffsetToRest >= d.Threshold,
				}
			} else {
				res = DragResult{Outcome: DragOutcomeUnrelated}
			}
		}
		ctx.removeGesture(d.ID)
	}

	return res
}

// follow records the gesture when it moves in an accepted direction and
// takes over the claim when allowed.
func (d *Drag) follow(ctx *Context, takeOver bool) bool {
	p := ctx.Pointer()
	if !p.HasOrigin || !p.HasPos {
		return false
	}
	if !d.ContentRect.Contains(p.Origin) {
		return false
	}

	dir, ok := Classify(p.Origin, p.Pos, d.Directions, d.Angle)
	if !ok {
		return false
	}

	ctx.setGesture(d.ID, GestureState{Origin: p.Origin, Direction: dir})

	if takeOver {
		ctx.logger.Debug("Drag taken over", "owner", d.ID.String(), "from", ctx.Dragged().String())
		ctx.SetDragged(d.ID)
	}
	return true
}
