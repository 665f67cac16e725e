package vectors

import (
	"math"
)

type AngleType int

const (
	Acute AngleType = iota
	Obtuse
)

func (a AngleType) String() string {
	switch a {
	case Acute:
		return "acute"
	case Obtuse:
		return "obtuse"
	}
	return "unknown"
}

// Dot calculates the dot product of two vectors
func (v Vector2) Dot(other Vector2) float64 {
	return (v.X * other.X) + (v.Y * other.Y)
}

func (v Vector2) NormalizedDot(other Vector2) float64 {
	return v.Normal().Dot(other.Normal())
}

// Angle returns the angle between v and other in degrees. With Obtuse the
// result is 360 minus the acute angle. Omitting angleType selects Acute.
// A zero vector on either side yields NaN.
func (v Vector2) Angle(other Vector2, angleType ...AngleType) float64 {
	chosen := Acute
	if len(angleType) > 0 {
		chosen = angleType[0]
	}

	// cos(θ) = (A · B) / (|A| * |B|)
	acute := toDegrees(math.Acos(v.Dot(other) / (v.Magnitude() * other.Magnitude())))
	if chosen == Acute {
		return acute
	}
	return 360 - acute
}

// Project returns the orthogonal projection of v onto other.
func (v Vector2) Project(other Vector2) Vector2 {
	magnitude := other.Magnitude()
	return other.Multiply(Scalar(v.Dot(other) / (magnitude * magnitude)))
}

// reflected = incident - 2*(incident·n)*n, with n = unit.Normal()
func (v Vector2) Reflect(unit Vector2) Vector2 {
	n := unit.Normal()
	return v.Subtract(n.Multiply(Scalar(2 * v.Dot(n))))
}

// Distance returns the Euclidean distance between v and other.
func (v Vector2) Distance(other Vector2) float64 {
	dx := math.Abs(other.X - v.X)
	dy := math.Abs(other.Y - v.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// IsEqualTo compares both components exactly, without tolerance.
func (v Vector2) IsEqualTo(other Vector2) bool {
	return v.X == other.X && v.Y == other.Y
}

// Equate overwrites v with the components of src.
func (v *Vector2) Equate(src Vector2) {
	v.X = src.X
	v.Y = src.Y
}
