package compare

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// maxColors is the GIF color table limit.
const maxColors = 256

// PaletteFunc derives the shared color table, at most 256 entries, from the
// reference image both frames are quantized against.
type PaletteFunc func(image.Image) (color.Palette, error)

// stack builds the palette reference image by placing a above b on one
// canvas. Both inputs must have identical bounds.
func stack(a, b *image.NRGBA) *image.NRGBA {
	w, h := a.Rect.Dx(), a.Rect.Dy()
	s := imaging.New(w, 2*h, background)
	s = imaging.Paste(s, a, image.Pt(0, 0))
	s = imaging.Paste(s, b, image.Pt(0, h))
	return s
}

// MedianCutPalette derives the shared palette with median-cut quantization.
// The same reference image always yields the same table.
func MedianCutPalette(ref image.Image) (color.Palette, error) {
	q := quantize.MedianCutQuantizer{}
	return q.Quantize(make(color.Palette, 0, maxColors), ref), nil
}

// KMeansPalette derives the shared palette by clustering a sample of the
// reference pixels in CIE-Lab space. Cluster seeding is random, so repeated
// runs give visually equivalent rather than identical tables.
func KMeansPalette(ref image.Image) (color.Palette, error) {
	b := ref.Bounds()
	step := samplingStep(b)

	var obs clusters.Observations
	seen := make(map[color.NRGBA]struct{})
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c := color.NRGBAModel.Convert(ref.At(x, y)).(color.NRGBA)
			c.A = 0xff
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			cf, _ := colorful.MakeColor(c)
			l, la, lb := cf.Lab()
			obs = append(obs, clusters.Coordinates{l, la, lb})
		}
	}

	k := maxColors
	if len(obs) < k {
		k = len(obs)
	}
	if k <= 1 {
		// A single-color reference needs no clustering.
		pal := make(color.Palette, 0, 1)
		for c := range seen {
			pal = append(pal, c)
		}
		return pal, nil
	}

	km := kmeans.New()
	cs, err := km.Partition(obs, k)
	if err != nil {
		return nil, err
	}
	pal := make(color.Palette, 0, len(cs))
	for _, c := range cs {
		col := colorful.Lab(c.Center[0], c.Center[1], c.Center[2]).Clamped()
		r, g, bl := col.RGB255()
		pal = append(pal, color.NRGBA{R: r, G: g, B: bl, A: 0xff})
	}
	return pal, nil
}

// samplingStep spaces pixel samples so clustering sees at most a few
// thousand observations regardless of input size.
func samplingStep(b image.Rectangle) int {
	const target = 4096
	step := 1
	for b.Dx()*b.Dy()/(step*step) > target {
		step++
	}
	return step
}
