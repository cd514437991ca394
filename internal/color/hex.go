package color

import (
	"fmt"
	"regexp"
	"strconv"
)

var hexRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// HexToRGB parses a 6-digit hex color with an optional leading '#'.
// Malformed input yields Black together with an error wrapping ErrMalformedColor,
// so callers that ignore the error still get a usable value.
func HexToRGB(hex string) (RGB, error) {
	matches := hexRegex.FindStringSubmatch(hex)
	if len(matches) != 4 {
		return Black, fmt.Errorf("%w: %q is not a 6-digit hex color", ErrMalformedColor, hex)
	}

	var channels [3]uint8
	for i, pair := range matches[1:] {
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return Black, fmt.Errorf("%w: %q: %v", ErrMalformedColor, hex, err)
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// RGBToHex formats a color as '#' followed by 6 lowercase hex digits
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Hex is shorthand for RGBToHex
func (c RGB) Hex() string {
	return RGBToHex(c)
}
