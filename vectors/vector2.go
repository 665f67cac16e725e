// Package vectors implements a small 2D vector library.
//
// Pure operations return a fresh Vector2. Rotate and Equate mutate their
// receiver in place so that every alias of the vector observes the change.
// Nothing is validated: division by zero and zero-length normalization
// produce NaN or Inf, which then propagate silently.
package vectors

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

type Vector2 struct {
	X float64
	Y float64
}

// Create builds a vector from up to two components. Omitted components
// default to 0 and anything past the second is ignored.
func Create(components ...float64) Vector2 {
	var v Vector2
	if len(components) > 0 {
		v.X = components[0]
	}
	if len(components) > 1 {
		v.Y = components[1]
	}
	return v
}

func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normal returns the unit vector pointing the same way as v.
// The zero vector yields (NaN, NaN).
func (v Vector2) Normal() Vector2 {
	magnitude := v.Magnitude()
	return Vector2{X: v.X / magnitude, Y: v.Y / magnitude}
}

// Value returns a detached [x, y] snapshot for callers that want a plain array.
func (v Vector2) Value() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func toDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
