package quadspace

import (
	"fmt"
	"math"
)

// Vector is a 2D point or displacement. Y grows downward.
type Vector struct {
	X, Y float64
}

func (v Vector) String() string {
	return fmt.Sprintf("%f,%f", v.X, v.Y)
}

func (v Vector) Equal(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Mult(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Abs returns the vector with both components made non-negative.
func (v Vector) Abs() Vector {
	return Vector{math.Abs(v.X), math.Abs(v.Y)}
}

// Max returns the component-wise maximum of v and other.
func (v Vector) Max(other Vector) Vector {
	return Vector{math.Max(v.X, other.X), math.Max(v.Y, other.Y)}
}

func (v Vector) Lerp(other Vector, t float64) Vector {
	return v.Mult(1.0 - t).Add(other.Mult(t))
}

func Clamp(f, min, max float64) float64 {
	return math.Min(math.Max(f, min), max)
}
