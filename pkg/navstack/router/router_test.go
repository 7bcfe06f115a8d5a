package router

import (
	"testing"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := NewStack("a", "b")
	s.Push("c")
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a", "b", "c"}, s.Routes())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "c", top)

	below, ok := s.TopN(2)
	assert.True(t, ok)
	assert.Equal(t, "a", below)
	_, ok = s.TopN(3)
	assert.False(t, ok)
	_, ok = s.TopN(-1)
	assert.False(t, ok)

	popped, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "c", popped)

	s.KeepTop()
	assert.Equal(t, []string{"b"}, s.Routes())

	s.Pop()
	assert.True(t, s.IsEmpty())
	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestNewStackCopiesRoutes(t *testing.T) {
	routes := []string{"a", "b"}
	s := NewStack(routes...)
	routes[0] = "z"
	assert.Equal(t, []string{"a", "b"}, s.Routes())
}

func TestNewPanicsOnEmpty(t *testing.T) {
	assert.PanicsWithValue(t, navstack.ErrEmptyRoutes, func() {
		New[string]()
	})
}

func TestGoBack(t *testing.T) {
	r := New("home")
	_, ok := r.GoBack()
	assert.False(t, ok, "nothing to go back to")
	assert.False(t, r.IsReturning())

	r.Navigate("detail")
	assert.True(t, r.IsNavigating())
	r.Handle(navstack.Navigated())
	assert.False(t, r.IsNavigating())

	prev, ok := r.GoBack()
	require.True(t, ok)
	assert.Equal(t, "home", prev)
	assert.Equal(t, navstack.Request{Returning: true}, r.Request())

	_, ok = r.GoBack()
	assert.False(t, ok, "already returning")
}

func TestHandleReturnedPops(t *testing.T) {
	r := New("home", "detail")
	r.GoBack()

	assert.False(t, r.Handle(navstack.Returning(navstack.ReturnClick)))
	assert.Equal(t, "detail", r.Top())

	assert.True(t, r.Handle(navstack.Returned(navstack.ReturnClick)))
	assert.Equal(t, "home", r.Top())
	assert.False(t, r.IsReturning())

	// A stray signal never empties the stack.
	assert.False(t, r.Handle(navstack.Returned(navstack.ReturnDrag)))
	assert.Equal(t, []string{"home"}, r.Routes())
}

func TestHandleDragReturnWithoutGoBack(t *testing.T) {
	r := New("home", "detail")
	assert.True(t, r.Handle(navstack.Returned(navstack.ReturnDrag)))
	assert.Equal(t, "home", r.Top())
}

func TestRouteToReplaced(t *testing.T) {
	r := New("login", "welcome")
	r.RouteToReplaced("home")
	assert.True(t, r.IsReplacing())
	assert.Equal(t, navstack.Request{Navigating: true}, r.Request())

	assert.False(t, r.Handle(navstack.Dragging()))
	assert.Equal(t, 3, len(r.Routes()))

	assert.True(t, r.Handle(navstack.Navigated()))
	assert.Equal(t, []string{"home"}, r.Routes())
	assert.False(t, r.IsReplacing())
	assert.False(t, r.IsNavigating())
}

func TestPrev(t *testing.T) {
	r := New(1, 2, 3)
	prev, ok := r.Prev()
	assert.True(t, ok)
	assert.Equal(t, 2, prev)

	n, ok := r.TopN(2)
	assert.True(t, ok)
	assert.Equal(t, 1, n)
}
