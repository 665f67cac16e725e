package geometry

import (
	"math"

	"github.com/meghashyamc/vectors/vectors"
)

// DistanceFromPointToLine calculates the perpendicular distance from a point
// to the infinite line through lineStart and lineEnd. A degenerate line
// falls back to the distance between point and lineStart.
func DistanceFromPointToLine(point, lineStart, lineEnd vectors.Vector2) float64 {
	// Vector from line start to end
	lineVec := lineEnd.Subtract(lineStart)
	// Vector from line start to point
	pointVec := point.Subtract(lineStart)

	if lineVec.Magnitude() == 0 || pointVec.Magnitude() == 0 {
		return point.Distance(lineStart)
	}

	// Clamp to [-1, 1] to handle floating point precision issues
	cosTheta := math.Max(-1, math.Min(1, pointVec.NormalizedDot(lineVec)))
	return pointVec.Magnitude() * math.Sin(math.Acos(cosTheta))
}
