package vectors

import "cmp"

// Lerp interpolates linearly from p1 to p2. t is not clamped, so values
// outside [0, 1] extrapolate.
func Lerp(p1, p2 Vector2, t float64) Vector2 {
	return Create(
		p1.X+(p2.X-p1.X)*t,
		p1.Y+(p2.Y-p1.Y)*t,
	)
}

// ClampedLerp is Lerp with t clamped to [0, 1].
func ClampedLerp(p1, p2 Vector2, t float64) Vector2 {
	return Lerp(p1, p2, clampValue(t, 0, 1))
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}
