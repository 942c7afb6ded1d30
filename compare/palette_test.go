package compare

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradient returns a w×h image sweeping red and green across the axes.
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 0x40,
				A: 0xff,
			})
		}
	}
	return img
}

func TestStack(t *testing.T) {
	s := stack(solid(4, 3, red), solid(4, 3, blue))

	require.Equal(t, image.Rect(0, 0, 4, 6), s.Bounds())
	assert.Equal(t, red, s.NRGBAAt(1, 1))
	assert.Equal(t, blue, s.NRGBAAt(1, 4))
}

func TestMedianCutPaletteBounded(t *testing.T) {
	pal, err := MedianCutPalette(gradient(128, 128))
	require.NoError(t, err)

	assert.NotEmpty(t, pal)
	assert.LessOrEqual(t, len(pal), 256)
}

func TestMedianCutPaletteDeterministic(t *testing.T) {
	ref := gradient(64, 64)

	p1, err := MedianCutPalette(ref)
	require.NoError(t, err)
	p2, err := MedianCutPalette(ref)
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
}

func TestKMeansPaletteBounded(t *testing.T) {
	pal, err := KMeansPalette(gradient(128, 128))
	require.NoError(t, err)

	assert.NotEmpty(t, pal)
	assert.LessOrEqual(t, len(pal), 256)
	for _, c := range pal {
		_, _, _, a := c.RGBA()
		assert.EqualValues(t, 0xffff, a)
	}
}

func TestKMeansPaletteSingleColor(t *testing.T) {
	pal, err := KMeansPalette(solid(32, 32, red))
	require.NoError(t, err)

	require.Len(t, pal, 1)
	r, g, b, a := pal[0].RGBA()
	assert.EqualValues(t, 0xffff, r)
	assert.EqualValues(t, 0, g)
	assert.EqualValues(t, 0, b)
	assert.EqualValues(t, 0xffff, a)
}

func TestSamplingStepCapsObservations(t *testing.T) {
	step := samplingStep(image.Rect(0, 0, 2000, 2000))
	assert.Greater(t, step, 1)
	samples := (2000 / step) * (2000 / step)
	assert.LessOrEqual(t, samples, 4900)

	assert.Equal(t, 1, samplingStep(image.Rect(0, 0, 32, 32)))
}
