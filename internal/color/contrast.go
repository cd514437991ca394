package color

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownTextSize is returned by ParseTextSize for anything but large/normal
var ErrUnknownTextSize = errors.New("unknown text size")

// TextSize selects which WCAG threshold applies
type TextSize int

const (
	Large TextSize = iota
	Normal
)

// WCAG 2.0 AA minimums
const (
	LargeTextThreshold  = 3.0
	NormalTextThreshold = 4.5
)

// Relative luminance weights (ITU-R BT.709)
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Result pairs a contrast ratio with its accessibility verdict
type Result struct {
	Ratio        float64 `json:"ratio"`
	IsAccessible bool    `json:"accessible"`
}

// ParseTextSize accepts "large" or "normal" (case-insensitive)
func ParseTextSize(s string) (TextSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "large":
		return Large, nil
	case "normal":
		return Normal, nil
	default:
		return Large, fmt.Errorf("%w %q: use large or normal", ErrUnknownTextSize, s)
	}
}

// String returns the lowercase name of the size
func (s TextSize) String() string {
	if s == Normal {
		return "normal"
	}
	return "large"
}

// Threshold returns the minimum ratio for this size
func (s TextSize) Threshold() float64 {
	if s == Normal {
		return NormalTextThreshold
	}
	return LargeTextThreshold
}

// Accepts reports whether ratio meets the threshold, inclusive
func (s TextSize) Accepts(ratio float64) bool {
	return ratio >= s.Threshold()
}

// Toggle flips between large and normal
func (s TextSize) Toggle() TextSize {
	if s == Normal {
		return Large
	}
	return Normal
}

// Calculate computes the contrast ratio of two colors and checks it against the size threshold.
// The result does not depend on argument order.
func Calculate(a, b RGB, size TextSize) Result {
	ratio := ContrastRatio(a, b)
	return Result{
		Ratio:        ratio,
		IsAccessible: size.Accepts(ratio),
	}
}

// ContrastRatio returns (lighter + 0.05) / (darker + 0.05), in [1, 21]
func ContrastRatio(a, b RGB) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// Luminance returns the WCAG relative luminance, 0 for black and 1 for white
func Luminance(c RGB) float64 {
	col := c.colorful()
	return lumaR*linearize(col.R) + lumaG*linearize(col.G) + lumaB*linearize(col.B)
}

// linearize undoes the sRGB gamma curve for one [0,1] channel
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
