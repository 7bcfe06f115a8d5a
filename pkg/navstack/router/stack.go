package router

// Stack is an ordered sequence of routes, modified only at the top.
type Stack[R any] struct {
	entries []R
}

// NewStack creates a stack holding routes, bottom first.
func NewStack[R any](routes ...R) *Stack[R] {
	entries := make([]R, len(routes))
	copy(entries, routes)
	return &Stack[R]{entries: entries}
}

// Push adds a route on top.
func (s *Stack[R]) Push(route R) {
	s.entries = append(s.entries, route)
}

// Pop removes and returns the top route.
// Returns false if the stack is empty.
func (s *Stack[R]) Pop() (R, bool) {
	var zero R
	if len(s.entries) == 0 {
		return zero, false
	}
	route := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	return route, true
}

// Peek returns the top route without removing it.
func (s *Stack[R]) Peek() (R, bool) {
	return s.TopN(0)
}

// TopN returns the route n positions below the top: TopN(0) is the top,
// TopN(1) the one beneath it.
func (s *Stack[R]) TopN(n int) (R, bool) {
	var zero R
	i := len(s.entries) - 1 - n
	if n < 0 || i < 0 {
		return zero, false
	}
	return s.entries[i], true
}

// Routes returns the routes bottom first. The slice is borrowed and is only
// valid until the stack is next modified.
func (s *Stack[R]) Routes() []R {
	return s.entries
}

func (s *Stack[R]) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack[R]) Len() int {
	return len(s.entries)
}

// KeepTop removes every route except the top one.
func (s *Stack[R]) KeepTop() {
	if len(s.entries) < 2 {
		return
	}
	top := s.entries[len(s.entries)-1]
	clear(s.entries)
	s.entries = append(s.entries[:0], top)
}
