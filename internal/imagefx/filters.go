package imagefx

import (
	"image"
	"image/color"
)

// Filter is a named stylistic preset. Presets sit first in the render
// pipeline, before the continuous tone adjustments.
type Filter string

const (
	FilterNormal  Filter = "Normal"
	FilterNoir    Filter = "Noir"
	FilterChrome  Filter = "Chrome"
	FilterFade    Filter = "Fade"
	FilterMono    Filter = "Mono"
	FilterProcess Filter = "Process"
	FilterTonal   Filter = "Tonal"
)

// Filters lists the presets in the order the filter strip shows them.
var Filters = []Filter{
	FilterNormal,
	FilterNoir,
	FilterChrome,
	FilterFade,
	FilterMono,
	FilterProcess,
	FilterTonal,
}

// Adjustments is the full per-session edit state: one preset plus three
// percentage sliders where 100 is neutral, clamped to 0..200.
type Adjustments struct {
	Filter     Filter
	Brightness int
	Contrast   int
	Saturation int
}

// Neutral returns the state every edit session starts from.
func Neutral() Adjustments {
	return Adjustments{
		Filter:     FilterNormal,
		Brightness: 100,
		Contrast:   100,
		Saturation: 100,
	}
}

func (a Adjustments) IsNeutral() bool {
	return a == Neutral()
}

// ClampPercent bounds a slider value to the 0..200 range.
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 200 {
		return 200
	}
	return v
}

type rgb struct {
	r, g, b float64
}

func luminance(c rgb) float64 {
	return 0.299*c.r + 0.587*c.g + 0.114*c.b
}

func grayscale(c rgb) rgb {
	l := luminance(c)
	return rgb{l, l, l}
}

func scale(c rgb, f float64) rgb {
	return rgb{c.r * f, c.g * f, c.b * f}
}

func contrast(c rgb, f float64) rgb {
	return rgb{
		(c.r-128)*f + 128,
		(c.g-128)*f + 128,
		(c.b-128)*f + 128,
	}
}

func saturate(c rgb, f float64) rgb {
	l := luminance(c)
	return rgb{
		l + (c.r-l)*f,
		l + (c.g-l)*f,
		l + (c.b-l)*f,
	}
}

// applyPreset evaluates the named filter on one pixel. The identity preset
// passes the pixel through untouched.
func applyPreset(c rgb, f Filter) rgb {
	switch f {
	case FilterNoir:
		return contrast(grayscale(c), 1.3)
	case FilterMono:
		return grayscale(c)
	case FilterChrome:
		return contrast(saturate(c, 1.3), 1.1)
	case FilterFade:
		return scale(saturate(c, 0.7), 1.1)
	case FilterProcess:
		// cool shift toward blue
		return rgb{c.r * 0.95, c.g, c.b*1.05 + 8}
	case FilterTonal:
		return scale(grayscale(c), 1.08)
	default:
		return c
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Apply composites the preset and the three tone adjustments over the source
// in one pass: preset first, then brightness, contrast, saturation, matching
// the order of the combined transform string the renderer builds.
func Apply(src image.Image, adj Adjustments) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)

	bf := float64(adj.Brightness) / 100
	cf := float64(adj.Contrast) / 100
	sf := float64(adj.Saturation) / 100

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := src.At(x, y).RGBA()
			c := rgb{float64(r >> 8), float64(g >> 8), float64(b >> 8)}

			c = applyPreset(c, adj.Filter)
			c = scale(c, bf)
			c = contrast(c, cf)
			c = saturate(c, sf)

			dst.SetRGBA(x, y, color.RGBA{
				R: clampChannel(c.r),
				G: clampChannel(c.g),
				B: clampChannel(c.b),
				A: uint8(a >> 8),
			})
		}
	}
	return dst
}
