package assets

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const spriteSize = 32

var (
	SpriteImage *ebiten.Image
	HUDFont     *text.GoTextFace
)

func init() {
	SpriteImage = drawDisc(spriteSize, color.RGBA{90, 200, 255, 255})

	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	HUDFont = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
}

// drawDisc renders a filled disc with a darker rim and a marker on its
// right edge so rotation stays visible.
func drawDisc(size int, fill color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	center := float32(size) / 2

	rim := color.RGBA{fill.R / 2, fill.G / 2, fill.B / 2, 255}
	vector.DrawFilledCircle(img, center, center, center, rim, true)
	vector.DrawFilledCircle(img, center, center, center-2, fill, true)
	vector.DrawFilledCircle(img, float32(size)-6, center, 3, color.White, true)

	return img
}
