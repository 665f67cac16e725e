package vectors

import (
	"testing"

	"github.com/meghashyamc/vectors/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSpritePropertyVelocity(t *testing.T) {
	s := sprite.New("ship", 10, 20)
	before := *s

	ToSpriteProperty(s, sprite.Velocity, Create(2, -3))

	assert.Equal(t, 2.0, s.VX)
	assert.Equal(t, -3.0, s.VY)

	before.VX, before.VY = 2, -3
	assert.Equal(t, before, *s)
}

func TestSpritePropertyRoundTrip(t *testing.T) {
	for i, property := range sprite.Properties() {
		t.Run(property.String(), func(t *testing.T) {
			s := &sprite.Sprite{}
			v := New(float64(i)+0.5, -float64(i)-1)

			ToSpriteProperty(s, property, v)
			assert.Equal(t, v, FromSpriteProperty(s, property))

			for _, other := range sprite.Properties() {
				if other != property {
					assert.Equal(t, Vector2{}, FromSpriteProperty(s, other), "%s must be untouched", other)
				}
			}
		})
	}
}

func TestSpritePropertyFieldMapping(t *testing.T) {
	s := &sprite.Sprite{X: 1, Y: 2, VX: 3, VY: 4, AX: 5, AY: 6, FX: 7, FY: 8, SX: 9, SY: 10}

	assert.Equal(t, New(1, 2), FromSpriteProperty(s, sprite.Position))
	assert.Equal(t, New(3, 4), FromSpriteProperty(s, sprite.Velocity))
	assert.Equal(t, New(5, 6), FromSpriteProperty(s, sprite.Acceleration))
	assert.Equal(t, New(7, 8), FromSpriteProperty(s, sprite.Friction))
	assert.Equal(t, New(9, 10), FromSpriteProperty(s, sprite.Scale))
}

func TestFromSpritePropertyIsSnapshot(t *testing.T) {
	s := sprite.New("ball", 1, 2)
	position := FromSpriteProperty(s, sprite.Position)
	require.Equal(t, New(1, 2), position)

	s.X = 50
	assert.Equal(t, New(1, 2), position)

	position.Y = 99
	assert.Equal(t, 2.0, s.Y)
}

func TestUnknownSpriteProperty(t *testing.T) {
	s := sprite.New("ball", 1, 2)
	before := *s

	ToSpriteProperty(s, sprite.Property(42), New(5, 5))
	assert.Equal(t, before, *s)
	assert.Equal(t, Vector2{}, FromSpriteProperty(s, sprite.Property(42)))
}
