// Package scene loads the sprites a playground starts with from an HJSON file.
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hjson/hjson-go"
	"golang.org/x/image/math/f64"

	"github.com/meghashyamc/vectors/sprite"
	"github.com/meghashyamc/vectors/vectors"
)

// SpriteSpec describes one sprite. Nil pairs keep the sprite defaults.
type SpriteSpec struct {
	Name         string    `json:"name"`
	Position     *f64.Vec2 `json:"position"`
	Velocity     *f64.Vec2 `json:"velocity"`
	Acceleration *f64.Vec2 `json:"acceleration"`
	Friction     *f64.Vec2 `json:"friction"`
	Scale        *f64.Vec2 `json:"scale"`
}

type Scene struct {
	Sprites []SpriteSpec `json:"sprites"`
}

func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	return Parse(data)
}

// Parse decodes HJSON by way of a generic map, then re-encodes it as JSON
// into the typed Scene.
func Parse(data []byte) (*Scene, error) {
	var raw map[string]interface{}
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode scene: %w", err)
	}

	var s Scene
	if err := json.Unmarshal(encoded, &s); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	for i, spec := range s.Sprites {
		if len(spec.Name) == 0 {
			s.Sprites[i].Name = fmt.Sprintf("sprite-%d", i)
		}
	}

	return &s, nil
}

// Build creates a sprite for every spec, writing each configured pair through
// the vector bridge.
func (s *Scene) Build() []*sprite.Sprite {
	sprites := make([]*sprite.Sprite, 0, len(s.Sprites))
	for _, spec := range s.Sprites {
		sp := sprite.New(spec.Name, 0, 0)
		for property, pair := range spec.pairs() {
			if pair != nil {
				vectors.ToSpriteProperty(sp, property, vectors.Create(pair[0], pair[1]))
			}
		}
		sprites = append(sprites, sp)
	}
	return sprites
}

func (spec SpriteSpec) pairs() map[sprite.Property]*f64.Vec2 {
	return map[sprite.Property]*f64.Vec2{
		sprite.Position:     spec.Position,
		sprite.Velocity:     spec.Velocity,
		sprite.Acceleration: spec.Acceleration,
		sprite.Friction:     spec.Friction,
		sprite.Scale:        spec.Scale,
	}
}

// Snapshot captures the current state of sprites as a Scene, so a running
// playground can be written back out.
func Snapshot(sprites []*sprite.Sprite) *Scene {
	s := &Scene{Sprites: make([]SpriteSpec, 0, len(sprites))}
	for _, sp := range sprites {
		s.Sprites = append(s.Sprites, SpriteSpec{
			Name:         sp.Name,
			Position:     pairOf(sp, sprite.Position),
			Velocity:     pairOf(sp, sprite.Velocity),
			Acceleration: pairOf(sp, sprite.Acceleration),
			Friction:     pairOf(sp, sprite.Friction),
			Scale:        pairOf(sp, sprite.Scale),
		})
	}
	return s
}

func pairOf(sp *sprite.Sprite, property sprite.Property) *f64.Vec2 {
	value := vectors.FromSpriteProperty(sp, property).Value()
	return &value
}

// Save writes the scene as HJSON.
func (s *Scene) Save(path string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(encoded, &raw); err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}

	data, err := hjson.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode scene as hjson: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
