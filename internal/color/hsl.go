package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBToHSL converts to hue degrees plus saturation and lightness percentages.
// Values keep full precision; rounding for display is up to the caller.
func RGBToHSL(c RGB) HSL {
	// go-colorful returns h in [0,360) and zero hue/saturation for achromatic input
	h, s, l := c.colorful().Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToRGB converts back to RGB, rounding each channel to the nearest integer.
// Hue is taken modulo 360, saturation and lightness are clamped to [0, 100].
func HSLToRGB(c HSL) RGB {
	h := normalizeHue(c.H)
	s := clampPercent(c.S) / 100
	l := clampPercent(c.L) / 100
	return fromColorful(colorful.Hsl(h, s, l))
}

// HSL is shorthand for RGBToHSL
func (c RGB) HSL() HSL {
	return RGBToHSL(c)
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
