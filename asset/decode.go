package asset

import (
	"image"
	"image/draw"

	"github.com/hearthlight/engine2d/render"
)

// textureFromImage normalizes any decoded image.Image to tightly packed
// RGBA8 and builds a render.Texture, since render.NewTextureFromRGBA only
// accepts that layout.
func textureFromImage(img image.Image) (*render.Texture, error) {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	w, h := bounds.Dx(), bounds.Dy()
	return render.NewTextureFromRGBA(rgba.Pix, w, h, render.FilterNearest)
}
