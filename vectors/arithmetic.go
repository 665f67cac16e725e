package vectors

// Operand is the right-hand side of Multiply and Divide. It is implemented
// only by Scalar and Vector2.
type Operand interface {
	operand() (x, y float64)
}

// Scalar broadcasts a single number to both components.
type Scalar float64

func (s Scalar) operand() (float64, float64) {
	return float64(s), float64(s)
}

func (v Vector2) operand() (float64, float64) {
	return v.X, v.Y
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Subtract returns v - other.
func (v Vector2) Subtract(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Multiply scales v by a Scalar, or takes the component-wise product with a Vector2.
func (v Vector2) Multiply(input Operand) Vector2 {
	switch in := input.(type) {
	case Scalar:
		return Vector2{X: v.X * float64(in), Y: v.Y * float64(in)}
	case Vector2:
		return Vector2{X: v.X * in.X, Y: v.Y * in.Y}
	}
	x, y := input.operand()
	return Vector2{X: v.X * x, Y: v.Y * y}
}

// Divide is the quotient counterpart of Multiply. Zero divisors are not
// guarded and yield Inf or NaN.
func (v Vector2) Divide(input Operand) Vector2 {
	switch in := input.(type) {
	case Scalar:
		return Vector2{X: v.X / float64(in), Y: v.Y / float64(in)}
	case Vector2:
		return Vector2{X: v.X / in.X, Y: v.Y / in.Y}
	}
	x, y := input.operand()
	return Vector2{X: v.X / x, Y: v.Y / y}
}
