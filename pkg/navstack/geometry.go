package navstack

// Pos is a point in surface coordinates.
type Pos struct {
	X, Y float32
}

func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Pos) Sub(o Pos) Pos {
	return Pos{X: p.X - o.X, Y: p.Y - o.Y}
}

// Rect is an axis aligned rectangle. Min is inclusive, Max exclusive.
type Rect struct {
	Min, Max Pos
}

// RectFromSize builds a rect from its top-left corner and size.
func RectFromSize(x, y, w, h float32) Rect {
	return Rect{Min: Pos{X: x, Y: y}, Max: Pos{X: x + w, Y: y + h}}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

func (r Rect) Contains(p Pos) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Translate moves the rect by d.
func (r Rect) Translate(d Pos) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Intersect returns the overlap of r and o, which may be empty.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Min: Pos{X: max(r.Min.X, o.Min.X), Y: max(r.Min.Y, o.Min.Y)},
		Max: Pos{X: min(r.Max.X, o.Max.X), Y: min(r.Max.Y, o.Max.Y)},
	}
	if out.IsEmpty() {
		return Rect{Min: out.Min, Max: out.Min}
	}
	return out
}

// SplitLeftRightAtX splits r at the absolute x coordinate, clamped to r.
func (r Rect) SplitLeftRightAtX(x float32) (Rect, Rect) {
	x = clamp(x, r.Min.X, r.Max.X)
	left := Rect{Min: r.Min, Max: Pos{X: x, Y: r.Max.Y}}
	right := Rect{Min: Pos{X: x, Y: r.Min.Y}, Max: r.Max}
	return left, right
}

// SplitTopBottomAtY splits r at the absolute y coordinate, clamped to r.
func (r Rect) SplitTopBottomAtY(y float32) (Rect, Rect) {
	y = clamp(y, r.Min.Y, r.Max.Y)
	top := Rect{Min: r.Min, Max: Pos{X: r.Max.X, Y: y}}
	bottom := Rect{Min: Pos{X: r.Min.X, Y: y}, Max: r.Max}
	return top, bottom
}

// Axis is the direction along which a surface animates.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Along returns the component of p on the axis.
func (a Axis) Along(p Pos) float32 {
	if a == AxisVertical {
		return p.Y
	}
	return p.X
}

// Vector returns a displacement of v along the axis.
func (a Axis) Vector(v float32) Pos {
	if a == AxisVertical {
		return Pos{Y: v}
	}
	return Pos{X: v}
}

// Extent returns the size of r along the axis.
func (a Axis) Extent(r Rect) float32 {
	if a == AxisVertical {
		return r.Height()
	}
	return r.Width()
}

func clamp(v, lo, hi float32) float32 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return max(lo, min(v, hi))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
