package compare

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// background is the canvas color transparent source regions resolve to.
var background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// canvasSize returns the element-wise maximum of the two image dimensions.
func canvasSize(a, b image.Image) (w, h int) {
	ab, bb := a.Bounds(), b.Bounds()
	w = ab.Dx()
	if bb.Dx() > w {
		w = bb.Dx()
	}
	h = ab.Dy()
	if bb.Dy() > h {
		h = bb.Dy()
	}
	return w, h
}

// normalize scales img down to fit within the w×h canvas, preserving aspect
// ratio and never enlarging past the source resolution, then composites it
// centered onto an opaque canvas using the image's alpha channel. The result
// always has bounds (0,0)-(w,h) and no transparency.
func normalize(img image.Image, w, h int) *image.NRGBA {
	fitted := imaging.Fit(img, w, h, imaging.Lanczos)
	canvas := imaging.New(w, h, background)
	return imaging.OverlayCenter(canvas, fitted, 1.0)
}
