package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/balkashynov/contrast/internal/color"
)

var (
	rgbRegex = regexp.MustCompile(`(?i)^(?:rgb\(\s*)?(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)?$`)
	hslRegex = regexp.MustCompile(`(?i)^(?:hsl\(\s*)?(\d{1,3}(?:\.\d+)?)(?:deg)?\s*,\s*(\d{1,3}(?:\.\d+)?)%?\s*,\s*(\d{1,3}(?:\.\d+)?)%?\s*\)?$`)
)

// Parse parses input strictly in the given format.
// There is no fallback between formats: rgb/hsl text that does not match
// its own pattern is reported as malformed rather than retried as hex.
func Parse(input string, format Format) (color.RGB, error) {
	switch format {
	case FormatRGB:
		return ParseRGB(input)
	case FormatHSL:
		return ParseHSL(input)
	default:
		return ParseHex(input)
	}
}

// ParseAny detects the format of input and parses it
func ParseAny(input string) (color.RGB, Format, error) {
	format, err := Detect(input)
	if err != nil {
		return color.Black, FormatHex, err
	}
	rgb, err := Parse(input, format)
	return rgb, format, err
}

// Detect guesses which representation a piece of free-form text is written in
func Detect(input string) (Format, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	switch {
	case strings.HasPrefix(s, "rgb("):
		return FormatRGB, nil
	case strings.HasPrefix(s, "hsl("), strings.Contains(s, "%"):
		return FormatHSL, nil
	case strings.Contains(s, ","):
		return FormatRGB, nil
	case len(strings.TrimPrefix(s, "#")) == 6:
		return FormatHex, nil
	}

	return FormatHex, fmt.Errorf("%w: cannot tell the format of %q", color.ErrMalformedColor, input)
}

// ParseHex parses "#rrggbb" or "rrggbb"
func ParseHex(input string) (color.RGB, error) {
	return color.HexToRGB(strings.TrimSpace(input))
}

// ParseRGB parses "rgb(r, g, b)" or a bare "r, g, b"
func ParseRGB(input string) (color.RGB, error) {
	matches := rgbRegex.FindStringSubmatch(strings.TrimSpace(input))
	if len(matches) != 4 {
		return color.Black, fmt.Errorf("%w: %q does not look like rgb(r, g, b)", color.ErrMalformedColor, input)
	}

	var channels [3]int
	for i, m := range matches[1:] {
		v, err := strconv.Atoi(m)
		if err != nil {
			return color.Black, fmt.Errorf("%w: invalid channel %q", color.ErrMalformedColor, m)
		}
		if v > 255 {
			return color.Black, fmt.Errorf("%w: channel %d must be between 0 and 255", color.ErrMalformedColor, v)
		}
		channels[i] = v
	}

	return color.RGBFromInts(channels[0], channels[1], channels[2]), nil
}

// ParseHSL parses "hsl(h, s%, l%)" or a bare "h, s%, l%".
// Saturation and lightness are rounded to 3 significant digits before
// conversion, the same precision they are displayed with.
func ParseHSL(input string) (color.RGB, error) {
	hsl, err := ParseHSLValues(input)
	if err != nil {
		return color.Black, err
	}
	return color.HSLToRGB(hsl), nil
}

// ParseHSLValues parses hsl text without converting it
func ParseHSLValues(input string) (color.HSL, error) {
	matches := hslRegex.FindStringSubmatch(strings.TrimSpace(input))
	if len(matches) != 4 {
		return color.HSL{}, fmt.Errorf("%w: %q does not look like hsl(h, s%%, l%%)", color.ErrMalformedColor, input)
	}

	var values [3]float64
	for i, m := range matches[1:] {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return color.HSL{}, fmt.Errorf("%w: invalid component %q", color.ErrMalformedColor, m)
		}
		values[i] = v
	}

	if values[1] > 100 || values[2] > 100 {
		return color.HSL{}, fmt.Errorf("%w: saturation and lightness must be between 0 and 100", color.ErrMalformedColor)
	}

	return color.HSL{
		H: values[0],
		S: RoundSignificant(values[1], 3),
		L: RoundSignificant(values[2], 3),
	}, nil
}
