package geometry

import "github.com/meghashyamc/vectors/vectors"

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Min() vectors.Vector2 {
	return vectors.New(r.X, r.Y)
}

func (r Rect) Max() vectors.Vector2 {
	return vectors.New(r.X+r.Width, r.Y+r.Height)
}

func (r Rect) Center() vectors.Vector2 {
	return vectors.Lerp(r.Min(), r.Max(), 0.5)
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height &&
		other.Y < r.Y+r.Height
}

// Contains reports whether inner lies entirely within r.
func (r Rect) Contains(inner Rect) bool {
	return inner.X >= r.X &&
		inner.Y >= r.Y &&
		inner.X+inner.Width <= r.X+r.Width &&
		inner.Y+inner.Height <= r.Y+r.Height
}

// WallNormal returns the direction of the wall of r that inner has
// crossed, pointing back inside, and false when inner is fully inside.
// Corners combine both walls.
func (r Rect) WallNormal(inner Rect) (vectors.Vector2, bool) {
	var normal vectors.Vector2
	if inner.X < r.X {
		normal.X = 1
	} else if inner.X+inner.Width > r.X+r.Width {
		normal.X = -1
	}
	if inner.Y < r.Y {
		normal.Y = 1
	} else if inner.Y+inner.Height > r.Y+r.Height {
		normal.Y = -1
	}

	if normal.IsEqualTo(vectors.Vector2{}) {
		return normal, false
	}
	return normal, true
}

// Clamp moves inner the least distance needed to fit inside r.
func (r Rect) Clamp(inner Rect) Rect {
	if inner.X < r.X {
		inner.X = r.X
	} else if inner.X+inner.Width > r.X+r.Width {
		inner.X = r.X + r.Width - inner.Width
	}
	if inner.Y < r.Y {
		inner.Y = r.Y
	} else if inner.Y+inner.Height > r.Y+r.Height {
		inner.Y = r.Y + r.Height - inner.Height
	}
	return inner
}
