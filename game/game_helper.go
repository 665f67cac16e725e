package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/vectors/vectors"
)

func getCurrentMousePosition() vectors.Vector2 {
	mouseX, mouseY := ebiten.CursorPosition()
	return vectors.New(float64(mouseX), float64(mouseY))
}

// savedScenePath is where a snapshot of a scene loaded from path is written.
func savedScenePath(path string) string {
	if len(path) == 0 {
		return "scene.saved.hjson"
	}
	return path + ".saved"
}
