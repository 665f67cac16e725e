package scene

import (
	"path/filepath"
	"testing"

	"github.com/meghashyamc/vectors/sprite"
	"github.com/meghashyamc/vectors/vectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "scene.hjson"))
	require.NoError(t, err)
	require.Len(t, s.Sprites, 3)

	assert.Equal(t, "ball", s.Sprites[0].Name)
	require.NotNil(t, s.Sprites[0].Position)
	assert.Equal(t, 100.0, s.Sprites[0].Position[0])
	assert.Nil(t, s.Sprites[0].Acceleration)
	assert.Equal(t, "sprite-2", s.Sprites[2].Name)
}

func TestBuild(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "scene.hjson"))
	require.NoError(t, err)

	sprites := s.Build()
	require.Len(t, sprites, 3)

	ball := sprites[0]
	assert.Equal(t, vectors.New(100, 200), vectors.FromSpriteProperty(ball, sprite.Position))
	assert.Equal(t, vectors.New(120, -80), vectors.FromSpriteProperty(ball, sprite.Velocity))
	assert.Equal(t, vectors.New(0, 0), vectors.FromSpriteProperty(ball, sprite.Acceleration))
	assert.Equal(t, vectors.New(1, 1), vectors.FromSpriteProperty(ball, sprite.Scale), "scale keeps its default")

	drifter := sprites[1]
	assert.Equal(t, vectors.New(10.5, 20), vectors.FromSpriteProperty(drifter, sprite.Position))
	assert.Equal(t, vectors.New(0, 9.8), vectors.FromSpriteProperty(drifter, sprite.Acceleration))
	assert.Equal(t, vectors.New(2, 2), vectors.FromSpriteProperty(drifter, sprite.Friction))
	assert.Equal(t, vectors.New(0.5, 1.5), vectors.FromSpriteProperty(drifter, sprite.Scale))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("{ sprites: [ { position: [1, 2 } ]"))
	assert.Error(t, err)

	_, err = Parse([]byte(`{ sprites: "none" }`))
	assert.Error(t, err)

	_, err = Load(filepath.Join("testdata", "missing.hjson"))
	assert.Error(t, err)
}

func TestSaveSnapshot(t *testing.T) {
	original := sprite.New("ball", 3, 4)
	vectors.ToSpriteProperty(original, sprite.Velocity, vectors.New(-1.5, 2))
	vectors.ToSpriteProperty(original, sprite.Friction, vectors.New(0.25, 0.25))

	path := filepath.Join(t.TempDir(), "saved.hjson")
	require.NoError(t, Snapshot([]*sprite.Sprite{original}).Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	sprites := loaded.Build()
	require.Len(t, sprites, 1)
	assert.Equal(t, *original, *sprites[0])
}
