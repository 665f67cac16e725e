package vectors

import "math"

// Rotate turns v in place by degrees. Positive angles rotate clockwise on a
// screen whose y axis points down. Quarter, half and full turns are applied
// exactly without trigonometry.
func (v *Vector2) Rotate(degrees float64) {
	switch degrees {
	case 90:
		newX := v.Y * -1
		v.Y = v.X
		v.X = newX
	case -90:
		newY := v.X * -1
		v.X = v.Y
		v.Y = newY
	case 180, -180:
		v.Equate(v.Multiply(Scalar(-1)))
	case 360, -360:
	default:
		radians := toRadians(degrees)
		cos := math.Cos(radians)
		sin := math.Sin(radians)
		newX := v.X*cos - v.Y*sin
		newY := v.X*sin + v.Y*cos
		v.X = newX
		v.Y = newY
	}
}
