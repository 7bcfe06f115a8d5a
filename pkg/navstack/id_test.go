package navstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdsAreStructural(t *testing.T) {
	root := NewId("window")
	assert.Equal(t, root, NewId("window"))
	assert.Equal(t, root.With("nav").With(""), root.With("nav").With(""))
	assert.NotEqual(t, root.With("fg"), root.With("bg"))
	assert.NotEqual(t, root.With("nav").With("a"), root.With("nav").With("b"))
	assert.NotEqual(t, root.With("x").With("y"), root.With("y").With("x"))
	assert.False(t, root.IsZero())
}

func TestNoId(t *testing.T) {
	assert.True(t, NoId.IsZero())
	assert.Equal(t, "none", NoId.String())
	assert.Len(t, NewId(1).String(), 36)
}

func TestSiblingSurfacesDoNotCollide(t *testing.T) {
	root := NewId("window")
	a := DefaultConfig()
	a.IDSource = "left"
	b := DefaultConfig()
	b.IDSource = "right"

	left := New([]string{"x"}, a)
	right := New([]string{"x"}, b)
	assert.NotEqual(t, left.ID(root), right.ID(root))
	assert.NotEqual(t, left.DragID(root), left.ID(root))

	sheet := NewSheet("x", "y", DefaultSheetConfig())
	drawer := NewDrawer("x", "y", DefaultDrawerConfig(200))
	assert.NotEqual(t, sheet.ID(root), New([]string{"x"}, DefaultConfig()).ID(root))
	assert.NotEqual(t, drawer.ID(root), sheet.ID(root))
}

func TestRectSplits(t *testing.T) {
	r := RectFromSize(10, 20, 100, 200)

	left, right := r.SplitLeftRightAtX(40)
	assert.Equal(t, RectFromSize(10, 20, 30, 200), left)
	assert.Equal(t, RectFromSize(40, 20, 70, 200), right)

	top, bottom := r.SplitTopBottomAtY(500)
	assert.Equal(t, r, top)
	assert.True(t, bottom.IsEmpty())

	assert.True(t, r.Contains(Pos{X: 10, Y: 20}))
	assert.False(t, r.Contains(Pos{X: 110, Y: 20}))
	assert.True(t, r.Intersect(RectFromSize(500, 500, 1, 1)).IsEmpty())
}
