package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/balkashynov/contrast/internal/color"
)

// Format is the representation a color is shown and typed in
type Format int

const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
)

// Formats lists every display format in cycling order
var Formats = []Format{FormatHex, FormatRGB, FormatHSL}

// ParseFormat accepts hex, rgb or hsl (case-insensitive)
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex", "":
		return FormatHex, nil
	case "rgb":
		return FormatRGB, nil
	case "hsl":
		return FormatHSL, nil
	default:
		return FormatHex, fmt.Errorf("unknown format %q: use hex, rgb or hsl", s)
	}
}

// String returns the label used in the UI
func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatHSL:
		return "HSL"
	default:
		return "Hex"
	}
}

// Next cycles Hex -> RGB -> HSL -> Hex
func (f Format) Next() Format {
	return Formats[(int(f)+1)%len(Formats)]
}

// FormatColor renders a color in the given format
func FormatColor(c color.RGB, f Format) string {
	switch f {
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case FormatHSL:
		hsl := color.RGBToHSL(c)
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)",
			FormatHue(hsl.H),
			ToPrecision(hsl.S, 3),
			ToPrecision(hsl.L, 3))
	default:
		return color.RGBToHex(c)
	}
}

// FormatHue shows hue with at most one decimal
func FormatHue(h float64) string {
	return strconv.FormatFloat(math.Round(h*10)/10, 'f', -1, 64)
}

// FormatRatio rounds a contrast ratio to 3 decimals and drops trailing zeros
func FormatRatio(ratio float64) string {
	return strconv.FormatFloat(math.Round(ratio*1000)/1000, 'f', -1, 64)
}

// ToPrecision formats v with the given number of significant digits,
// keeping trailing zeros ("0.00", "50.0", "100")
func ToPrecision(v float64, digits int) string {
	if v == 0 {
		return strconv.FormatFloat(0, 'f', digits-1, 64)
	}
	r := RoundSignificant(v, digits)
	decimals := digits - 1 - magnitude(r)
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(r, 'f', decimals, 64)
}

// RoundSignificant rounds v to the given number of significant digits
func RoundSignificant(v float64, digits int) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(digits-1-magnitude(v)))
	return math.Round(v*p) / p
}

// magnitude is the power of ten of the leading digit
func magnitude(v float64) int {
	return int(math.Floor(math.Log10(math.Abs(v))))
}
