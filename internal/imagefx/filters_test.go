package imagefx

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func gradientImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(40 + 50*x),
				G: uint8(30 + 40*y),
				B: uint8(90 + 20*x),
				A: 255,
			})
		}
	}
	return img
}

func TestNeutral(t *testing.T) {
	n := Neutral()
	assert.Equal(t, FilterNormal, n.Filter)
	assert.Equal(t, 100, n.Brightness)
	assert.Equal(t, 100, n.Contrast)
	assert.Equal(t, 100, n.Saturation)
	assert.True(t, n.IsNeutral())

	n.Brightness = 120
	assert.False(t, n.IsNeutral())
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0, ClampPercent(-5))
	assert.Equal(t, 0, ClampPercent(0))
	assert.Equal(t, 100, ClampPercent(100))
	assert.Equal(t, 200, ClampPercent(350))
}

func TestApply_NeutralIsIdentity(t *testing.T) {
	src := gradientImage()
	out := Apply(src, Neutral())

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, src.RGBAAt(x, y), out.RGBAAt(x, y))
		}
	}
}

func TestApply_NoirIsGrayscale(t *testing.T) {
	out := Apply(gradientImage(), Adjustments{Filter: FilterNoir, Brightness: 100, Contrast: 100, Saturation: 100})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px := out.RGBAAt(x, y)
			assert.Equal(t, px.R, px.G)
			assert.Equal(t, px.G, px.B)
		}
	}
}

func TestApply_ZeroBrightnessIsBlack(t *testing.T) {
	out := Apply(gradientImage(), Adjustments{Filter: FilterNormal, Brightness: 0, Contrast: 100, Saturation: 100})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px := out.RGBAAt(x, y)
			assert.Equal(t, uint8(0), px.R)
			assert.Equal(t, uint8(0), px.G)
			assert.Equal(t, uint8(0), px.B)
			assert.Equal(t, uint8(255), px.A)
		}
	}
}

func TestApply_ZeroSaturationIsGrayscale(t *testing.T) {
	out := Apply(gradientImage(), Adjustments{Filter: FilterNormal, Brightness: 100, Contrast: 100, Saturation: 0})

	px := out.RGBAAt(2, 1)
	assert.Equal(t, px.R, px.G)
	assert.Equal(t, px.G, px.B)
}

func TestApply_RaisedBrightnessLightens(t *testing.T) {
	src := gradientImage()
	out := Apply(src, Adjustments{Filter: FilterNormal, Brightness: 150, Contrast: 100, Saturation: 100})

	before := src.RGBAAt(1, 1)
	after := out.RGBAAt(1, 1)
	assert.Greater(t, after.R, before.R)
	assert.Greater(t, after.G, before.G)
}

func TestApply_DeterministicComposition(t *testing.T) {
	adj := Adjustments{Filter: FilterChrome, Brightness: 120, Contrast: 90, Saturation: 140}
	a := Apply(gradientImage(), adj)
	b := Apply(gradientImage(), adj)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestFilters_NormalFirst(t *testing.T) {
	assert.Equal(t, FilterNormal, Filters[0])
	assert.Contains(t, Filters, FilterNoir)
}
