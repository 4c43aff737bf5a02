package media

import (
	"image"
	"image/draw"
)

// FlattenOnWhite composites an image carrying transparency (alpha channel or
// palette with transparent entries) onto an opaque white background, using
// the alpha channel as the compositing mask. Opaque images pass through
// unchanged; paletted images are expanded to truecolor as a side effect.
func FlattenOnWhite(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}

	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, image.White, image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}
