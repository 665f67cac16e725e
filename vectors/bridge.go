package vectors

import "github.com/meghashyamc/vectors/sprite"

// ToSpriteProperty writes v into the field pair of s selected by property.
// Other fields are left untouched.
func ToSpriteProperty(s *sprite.Sprite, property sprite.Property, v Vector2) {
	switch property {
	case sprite.Position:
		s.X = v.X
		s.Y = v.Y
	case sprite.Velocity:
		s.VX = v.X
		s.VY = v.Y
	case sprite.Acceleration:
		s.AX = v.X
		s.AY = v.Y
	case sprite.Friction:
		s.FX = v.X
		s.FY = v.Y
	case sprite.Scale:
		s.SX = v.X
		s.SY = v.Y
	}
}

// FromSpriteProperty returns a snapshot of the field pair of s selected by
// property. Later changes to s do not affect the returned vector. An unknown
// property yields the zero vector.
func FromSpriteProperty(s *sprite.Sprite, property sprite.Property) Vector2 {
	switch property {
	case sprite.Position:
		return Create(s.X, s.Y)
	case sprite.Velocity:
		return New(s.VX, s.VY)
	case sprite.Acceleration:
		return New(s.AX, s.AY)
	case sprite.Friction:
		return New(s.FX, s.FY)
	case sprite.Scale:
		return New(s.SX, s.SY)
	}
	return Vector2{}
}
