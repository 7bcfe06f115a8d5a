package router

import (
	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
)

type flags uint8

const (
	flagReturning flags = 1 << iota
	flagNavigating
	flagReplacing
)

// Router owns a route stack and the transition flags a surface observes.
// It is never empty.
type Router[R any] struct {
	stack *Stack[R]
	flags flags
}

// New creates a router whose stack holds routes, bottom first.
// It panics when routes is empty.
func New[R any](routes ...R) *Router[R] {
	if len(routes) == 0 {
		panic(navstack.ErrEmptyRoutes)
	}
	return &Router[R]{stack: NewStack(routes...)}
}

func (r *Router[R]) set(f flags, value bool) {
	if value {
		r.flags |= f
	} else {
		r.flags &^= f
	}
}

// IsNavigating reports whether a pushed route is still animating in.
func (r *Router[R]) IsNavigating() bool { return r.flags&flagNavigating != 0 }

// IsReturning reports whether the top route is animating out.
func (r *Router[R]) IsReturning() bool { return r.flags&flagReturning != 0 }

// IsReplacing reports whether the pushed route will replace the stack.
func (r *Router[R]) IsReplacing() bool { return r.flags&flagReplacing != 0 }

func (r *Router[R]) SetNavigating(value bool) { r.set(flagNavigating, value) }
func (r *Router[R]) SetReturning(value bool)  { r.set(flagReturning, value) }
func (r *Router[R]) SetReplacing(value bool)  { r.set(flagReplacing, value) }

// Navigate pushes route and starts animating to it.
func (r *Router[R]) Navigate(route R) {
	r.SetNavigating(true)
	r.stack.Push(route)
}

// RouteToReplaced pushes route; once it has settled every route below it is
// removed.
func (r *Router[R]) RouteToReplaced(route R) {
	r.SetNavigating(true)
	r.SetReplacing(true)
	r.stack.Push(route)
}

// GoBack starts returning to the previous route and returns it. It does
// nothing when already returning or when there is nothing to return to.
func (r *Router[R]) GoBack() (R, bool) {
	var zero R
	if r.IsReturning() || r.stack.Len() == 1 {
		return zero, false
	}
	r.SetReturning(true)
	return r.Prev()
}

// Pop removes the top route. Call it when a surface reports Returned; Handle
// does so. The last route is never popped.
func (r *Router[R]) Pop() (R, bool) {
	var zero R
	if r.stack.Len() == 1 {
		return zero, false
	}
	r.SetReturning(false)
	return r.stack.Pop()
}

// Top returns the current route.
func (r *Router[R]) Top() R {
	top, _ := r.stack.Peek()
	return top
}

// TopN returns the route n positions below the top.
func (r *Router[R]) TopN(n int) (R, bool) {
	return r.stack.TopN(n)
}

// Prev returns the route beneath the top.
func (r *Router[R]) Prev() (R, bool) {
	return r.stack.TopN(1)
}

// Routes returns the borrowed stack, bottom first.
func (r *Router[R]) Routes() []R {
	return r.stack.Routes()
}

// Request returns the signals for this frame's surface.
func (r *Router[R]) Request() navstack.Request {
	return navstack.Request{
		Navigating: r.IsNavigating(),
		Returning:  r.IsReturning(),
	}
}

// Handle applies a surface's reported action to the stack: Returned pops the
// top route, Navigated clears the navigating flag and completes a pending
// replacement. It reports whether the stack changed.
func (r *Router[R]) Handle(action navstack.Action) bool {
	switch action.Kind {
	case navstack.ActionReturned:
		if _, ok := r.Pop(); ok {
			internal.GetInternalLogger().Debug("Router popped route", "cause", action.Cause.String(), "depth", r.stack.Len())
			return true
		}
		r.SetReturning(false)

	case navstack.ActionNavigated:
		r.SetNavigating(false)
		if r.IsReplacing() {
			r.SetReplacing(false)
			r.stack.KeepTop()
			internal.GetInternalLogger().Debug("Router replaced stack")
			return true
		}
	}
	return false
}
