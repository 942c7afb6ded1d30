// Package compare implements the export pipeline of the image comparison
// tool: size normalization, compositing onto an opaque canvas, shared-palette
// quantization and looping GIF assembly.
package compare

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"time"
)

// Options control a single export.
type Options struct {
	// Count is the number of A→B alternation cycles. Each cycle
	// contributes two frames.
	Count int
	// Delay is how long each frame is displayed.
	Delay time.Duration
	// Palette derives the shared color table. Nil means MedianCutPalette.
	Palette PaletteFunc
}

// Compose builds the looping comparison animation from two source images.
// Both sources are normalized onto a common opaque canvas and quantized
// against one shared palette so color choices stay stable across the
// alternation.
func Compose(a, b image.Image, opts Options) (*gif.GIF, error) {
	if opts.Count < 1 {
		return nil, &InvalidParameterError{Param: "count", Value: opts.Count}
	}
	if opts.Delay <= 0 {
		return nil, &InvalidParameterError{Param: "delay", Value: opts.Delay}
	}
	paletteFn := opts.Palette
	if paletteFn == nil {
		paletteFn = MedianCutPalette
	}

	w, h := canvasSize(a, b)
	frameA := normalize(a, w, h)
	frameB := normalize(b, w, h)

	pal, err := paletteFn(stack(frameA, frameB))
	if err != nil {
		return nil, err
	}

	pA := quantizeFrame(frameA, pal)
	pB := quantizeFrame(frameB, pal)

	// GIF delays are in centiseconds. Round, but never let a positive
	// delay collapse to zero.
	delay := int((opts.Delay + 5*time.Millisecond) / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, 2*opts.Count),
		Delay:     make([]int, 0, 2*opts.Count),
		LoopCount: 0, // loop forever
		Config: image.Config{
			ColorModel: pal,
			Width:      w,
			Height:     h,
		},
	}
	for i := 0; i < opts.Count; i++ {
		out.Image = append(out.Image, pA, pB)
		out.Delay = append(out.Delay, delay, delay)
	}
	return out, nil
}

// quantizeFrame maps frame onto the shared palette with Floyd–Steinberg
// error diffusion.
func quantizeFrame(frame *image.NRGBA, pal color.Palette) *image.Paletted {
	p := image.NewPaletted(frame.Rect, pal)
	draw.FloydSteinberg.Draw(p, p.Rect, frame, image.Point{})
	return p
}
