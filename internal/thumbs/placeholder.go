package thumbs

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"asset-prep/internal/logging"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	placeholderBackground = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	placeholderForeground = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
)

var placeholderLines = []string{"Preview", "Unavailable"}

var (
	faceOnce sync.Once
	faceVal  font.Face
)

// placeholderFace parses the bundled Go Regular font once; the built-in
// bitmap face is the fallback when parsing fails.
func placeholderFace() font.Face {
	faceOnce.Do(func() {
		ft, err := opentype.Parse(goregular.TTF)
		if err == nil {
			faceVal, err = opentype.NewFace(ft, &opentype.FaceOptions{
				Size:    20,
				DPI:     72,
				Hinting: font.HintingFull,
			})
		}
		if err != nil {
			logging.Debug("placeholder font unavailable: %v", err)
			faceVal = basicfont.Face7x13
		}
	})
	return faceVal
}

// writePlaceholder synthesizes the flat-gray "Preview Unavailable" artifact
// at the full envelope size and encodes it at the configured quality.
func (d *Deriver) writePlaceholder(outPath string) error {
	img := image.NewNRGBA(image.Rect(0, 0, d.maxWidth, d.maxHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBackground), image.Point{}, draw.Src)

	face := placeholderFace()
	metrics := face.Metrics()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(placeholderForeground),
		Face: face,
	}

	// Center the two-line label as a block.
	blockTop := fixed.I(d.maxHeight)/2 - metrics.Height
	for i, line := range placeholderLines {
		adv := drawer.MeasureString(line)
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(d.maxWidth)/2 - adv/2,
			Y: blockTop + metrics.Ascent + metrics.Height.Mul(fixed.I(i)),
		}
		drawer.DrawString(line)
	}

	return saveJPEG(img, outPath, d.quality)
}
