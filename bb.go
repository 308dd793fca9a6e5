package quadspace

import (
	"fmt"
	"math"
)

// BB is an axis-aligned bounding box. T is the smaller Y since the world
// uses a top-left origin.
type BB struct {
	L, T, R, B float64
}

func NewBB(l, t, r, b float64) BB {
	return BB{L: l, T: t, R: r, B: b}
}

// NewBBForRect builds a box from a top-left corner and a size.
func NewBBForRect(x, y, w, h float64) BB {
	return BB{L: x, T: y, R: x + w, B: y + h}
}

func NewBBForExtents(c Vector, hw, hh float64) BB {
	return BB{
		L: c.X - hw,
		T: c.Y - hh,
		R: c.X + hw,
		B: c.Y + hh,
	}
}

func (bb BB) String() string {
	return fmt.Sprintf("[%v,%v %vx%v]", bb.L, bb.T, bb.Width(), bb.Height())
}

// Intersects is inclusive: boxes sharing only an edge intersect.
func (a BB) Intersects(b BB) bool {
	return a.L <= b.R && b.L <= a.R && a.T <= b.B && b.T <= a.B
}

func (bb BB) Contains(other BB) bool {
	return bb.L <= other.L && bb.R >= other.R && bb.T <= other.T && bb.B >= other.B
}

// ContainsVect is inclusive on all four edges.
func (bb BB) ContainsVect(v Vector) bool {
	return bb.L <= v.X && bb.R >= v.X && bb.T <= v.Y && bb.B >= v.Y
}

func (bb BB) Center() Vector {
	return Vector{bb.L, bb.T}.Lerp(Vector{bb.R, bb.B}, 0.5)
}

func (bb BB) Width() float64 {
	return bb.R - bb.L
}

func (bb BB) Height() float64 {
	return bb.B - bb.T
}

// Expand grows the box by half.X horizontally and half.Y vertically on
// every side.
func (bb BB) Expand(half Vector) BB {
	return BB{
		L: bb.L - half.X,
		T: bb.T - half.Y,
		R: bb.R + half.X,
		B: bb.B + half.Y,
	}
}

func (a BB) Merge(b BB) BB {
	return BB{
		math.Min(a.L, b.L),
		math.Min(a.T, b.T),
		math.Max(a.R, b.R),
		math.Max(a.B, b.B),
	}
}

// Quadrant indexes, in the order children are tried during insertion.
const (
	NW = iota
	NE
	SW
	SE
)

// Quadrant returns one of the four equal quarters of bb.
func (bb BB) Quadrant(i int) BB {
	w := bb.Width() / 2
	h := bb.Height() / 2
	switch i {
	case NW:
		return NewBBForRect(bb.L, bb.T, w, h)
	case NE:
		return NewBBForRect(bb.L+w, bb.T, w, h)
	case SW:
		return NewBBForRect(bb.L, bb.T+h, w, h)
	case SE:
		return NewBBForRect(bb.L+w, bb.T+h, w, h)
	default:
		panic("Unknown quadrant")
	}
}
