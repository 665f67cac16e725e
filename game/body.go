package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/vectors/assets"
	"github.com/meghashyamc/vectors/geometry"
	"github.com/meghashyamc/vectors/sprite"
	"github.com/meghashyamc/vectors/vectors"
)

const (
	arrowSeconds  = 0.5 // Velocity arrow shows where the body will be this far ahead
	hoverDistance = 8.0 // Cursor distance from the velocity line that highlights a body
)

// Body is a sprite the playground moves and draws.
type Body struct {
	sprite  *sprite.Sprite
	image   *ebiten.Image
	hovered bool
}

func NewBody(s *sprite.Sprite) *Body {
	return &Body{
		sprite: s,
		image:  assets.SpriteImage,
	}
}

func (b *Body) Position() vectors.Vector2 {
	return vectors.FromSpriteProperty(b.sprite, sprite.Position)
}

func (b *Body) Velocity() vectors.Vector2 {
	return vectors.FromSpriteProperty(b.sprite, sprite.Velocity)
}

func (b *Body) SetPosition(position vectors.Vector2) {
	vectors.ToSpriteProperty(b.sprite, sprite.Position, position)
}

func (b *Body) SetVelocity(velocity vectors.Vector2) {
	vectors.ToSpriteProperty(b.sprite, sprite.Velocity, velocity)
}

// Update steps the sprite and bounces it off the walls of bounds.
func (b *Body) Update(bounds geometry.Rect) {
	b.sprite.Step(frameTime.Seconds())

	collider := b.Collider()
	normal, crossed := bounds.WallNormal(collider)
	if !crossed {
		return
	}

	velocity := b.Velocity()
	// Only reflect when still heading into the wall
	if velocity.Dot(normal) < 0 {
		b.SetVelocity(velocity.Reflect(normal))
	}

	clamped := bounds.Clamp(collider)
	position := b.Position().Add(vectors.New(clamped.X-collider.X, clamped.Y-collider.Y))
	b.SetPosition(position)
}

// Rotate turns the body's velocity by degrees.
func (b *Body) Rotate(degrees float64) {
	velocity := b.Velocity()
	velocity.Rotate(degrees)
	b.SetVelocity(velocity)
}

// FollowCursor moves the body toward the cursor by rate of the remaining distance.
func (b *Body) FollowCursor(cursor vectors.Vector2, rate float64) {
	b.SetPosition(vectors.ClampedLerp(b.Position(), cursor, rate))
}

// AimAt keeps the current speed but points the velocity at target.
func (b *Body) AimAt(target vectors.Vector2) {
	direction := target.Subtract(b.Position())
	if direction.Magnitude() == 0 {
		return
	}

	velocity := b.Velocity()
	velocity.Equate(direction.Normal().Multiply(vectors.Scalar(velocity.Magnitude())))
	b.SetVelocity(velocity)
}

// UpdateHover marks the body when the cursor is near its velocity line.
func (b *Body) UpdateHover(cursor vectors.Vector2) {
	start := b.Position()
	end := start.Add(b.Velocity().Multiply(vectors.Scalar(arrowSeconds)))
	b.hovered = geometry.DistanceFromPointToLine(cursor, start, end) <= hoverDistance &&
		cursor.Distance(start) <= start.Distance(end)+hoverDistance
}

func (b *Body) Collider() geometry.Rect {
	bounds := b.image.Bounds()
	scale := vectors.FromSpriteProperty(b.sprite, sprite.Scale)
	size := vectors.New(float64(bounds.Dx()), float64(bounds.Dy())).Multiply(scale)
	topLeft := b.Position().Subtract(size.Divide(vectors.Scalar(2)))

	return geometry.NewRect(topLeft.X, topLeft.Y, size.X, size.Y)
}

func (b *Body) Draw(screen *ebiten.Image, selected bool) {
	bounds := b.image.Bounds()
	scale := vectors.FromSpriteProperty(b.sprite, sprite.Scale)
	position := b.Position()
	velocity := b.Velocity()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(scale.X, scale.Y)
	// Point the marker along the velocity
	if velocity.Magnitude() > 0 {
		heading := velocity.Angle(vectors.New(1, 0))
		if velocity.Y < 0 {
			heading = -heading
		}
		op.GeoM.Rotate(heading * math.Pi / 180)
	}
	op.GeoM.Translate(position.X, position.Y)

	if b.hovered || selected {
		op.ColorScale.Scale(1.2, 1.2, 0.8, 1.0) // Slightly yellowish
	}
	screen.DrawImage(b.image, op)

	tip := position.Add(velocity.Multiply(vectors.Scalar(arrowSeconds)))
	arrowColor := color.RGBA{255, 255, 255, 160}
	if selected {
		arrowColor = color.RGBA{255, 220, 80, 255}
	}
	vector.StrokeLine(screen, float32(position.X), float32(position.Y), float32(tip.X), float32(tip.Y), 2, arrowColor, true)
}
