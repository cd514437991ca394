package color

import (
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrMalformedColor is returned for any color text that does not match its expected pattern
var ErrMalformedColor = errors.New("malformed color input")

// RGB is the canonical color representation, all conversions go through it
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL holds hue in degrees and saturation/lightness as percentages
type HSL struct {
	H float64 `json:"h"` // [0, 360)
	S float64 `json:"s"` // [0, 100]
	L float64 `json:"l"` // [0, 100]
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// RGBFromInts builds an RGB triple, clamping each channel into [0, 255]
func RGBFromInts(r, g, b int) RGB {
	return RGB{R: clampByte(r), G: clampByte(g), B: clampByte(b)}
}

// Ints returns the channels as ints
func (c RGB) Ints() [3]int {
	return [3]int{int(c.R), int(c.G), int(c.B)}
}

// colorful converts to go-colorful's [0,1] float representation
func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// fromColorful scales a [0,1] color back to bytes, rounding to nearest
func fromColorful(c colorful.Color) RGB {
	return RGB{R: unitToByte(c.R), G: unitToByte(c.G), B: unitToByte(c.B)}
}

func unitToByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return clampByte(int(math.Round(v * 255.0)))
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
