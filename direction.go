package quadspace

import "math"

// Direction names the side of an entity that another entity touches.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// Opposite is the direction as seen from the other entity.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	default:
		return DirectionNone
	}
}

// DirectionFunc classifies where b lies relative to a.
type DirectionFunc func(a, b *Entity) Direction

// CenterDirection compares the center delta on each axis. The larger
// displacement wins and ties go to the vertical axis.
func CenterDirection(a, b *Entity) Direction {
	d := a.center.Sub(b.center)
	if math.Abs(d.X) > math.Abs(d.Y) {
		if d.X > 0 {
			return DirectionLeft
		}
		return DirectionRight
	}
	if d.Y > 0 {
		return DirectionUp
	}
	return DirectionDown
}

// MinkowskiDirection weighs the center delta by the combined half sizes, so
// that wide, flat boxes resting on each other report a vertical contact even
// when their centers are far apart horizontally.
func MinkowskiDirection(a, b *Entity) Direction {
	w := 0.5 * (a.w + b.w)
	h := 0.5 * (a.h + b.h)
	d := a.center.Sub(b.center)

	wy := w * d.Y
	hx := h * d.X

	if wy > hx {
		if wy > -hx {
			return DirectionUp
		}
		return DirectionRight
	}
	if wy > -hx {
		return DirectionLeft
	}
	return DirectionDown
}
