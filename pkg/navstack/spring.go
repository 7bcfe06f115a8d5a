package navstack

import "github.com/BrandonKowalski/navstack/pkg/navstack/constants"

// Step moves current one frame toward target. fromLeft reports that current
// approaches target from below. It returns the next value and true while the
// animation is running, or target and false once current is within tolerance
// or the next step would reach or cross target. Steps are a fixed fraction of
// the remaining distance with a minimum size, so an animation over distance d
// finishes in O(log d) frames and never overshoots.
func Step(current, target float32, fromLeft bool) (float32, bool) {
	remaining := target - current
	if !fromLeft {
		remaining = current - target
	}

	// Already there, or on the wrong side of target.
	if remaining <= constants.SpringTolerance {
		return target, false
	}

	step := max(remaining*constants.SpringFactor, constants.SpringMinStep)
	if step >= remaining {
		return target, false
	}

	if fromLeft {
		return current + step, true
	}
	return current - step, true
}

// stepToward animates *offset toward target and reports whether it is still
// moving. On completion *offset is exactly target.
func stepToward(offset *float32, target float32) bool {
	next, moving := Step(*offset, target, *offset < target)
	*offset = next
	return moving
}
