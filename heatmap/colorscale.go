package heatmap

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ColorScale resolves an intensity bucket (0..9) to a CSS color.
type ColorScale func(intensity int) string

// NewColorScale builds the 10-entry palette for the given base color.
// Bucket 0 is always the cell background verbatim. Buckets 1..7 are blended
// in CIE LAB space from a lightened, desaturated variant of the base up to
// the base color itself, so each step reads as a roughly even visual step.
// Buckets 8 and 9 sit above the base as brightened, saturated variants,
// so the base color anchors the scale just below the top.
func NewColorScale(baseColor, cellBackground string) ColorScale {
	base, err := colorful.Hex(baseColor)
	if err != nil {
		// color syntax is not validated here; fall back to the default
		// so the scale stays total
		base, _ = colorful.Hex(defaultBaseColor)
	}

	l, a, b := base.Lab()
	low := colorful.Lab(l+(0.95-l)*0.8, a*0.2, b*0.2).Clamped()

	var palette [10]string
	palette[0] = cellBackground
	for i := 1; i <= 7; i++ {
		t := float64(i-1) / 6
		palette[i] = low.BlendLab(base, t).Clamped().Hex()
	}
	palette[8] = brightenSaturate(base, 0.06, 1.25)
	palette[9] = brightenSaturate(base, 0.12, 1.5)

	return func(intensity int) string {
		if intensity < 0 {
			intensity = 0
		}
		if intensity > 9 {
			intensity = 9
		}
		return palette[intensity]
	}
}

// brightenSaturate lifts the LAB lightness by lighten and scales the HCL
// chroma by saturate, clamping the result back into sRGB.
func brightenSaturate(c colorful.Color, lighten, saturate float64) string {
	h, chroma, l := c.Hcl()
	return colorful.Hcl(h, chroma*saturate, l+lighten).Clamped().Hex()
}
