// Package colour provides colour normalisation, WCAG contrast maths and
// contrast-driven colour adjustment for the clinic UI theme.
package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Fallback is returned by Normalise for anything it cannot read.
const Fallback = "#000000"

var (
	hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)
)

// namedColours is the small fixed set of CSS keywords the engine understands.
var namedColours = map[string]string{
	"white":       "#ffffff",
	"black":       "#000000",
	"red":         "#ff0000",
	"green":       "#008000",
	"blue":        "#0000ff",
	"transparent": "#000000",
}

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Normalise converts a colour string to canonical lowercase "#rrggbb".
//
// Accepted forms are 6- and 3-digit hex, rgb()/rgba() (alpha ignored), the
// keywords white, black, red, green, blue and transparent. Anything else,
// including the empty string, yields Fallback.
func Normalise(input string) string {
	rgb, ok := parse(input)
	if !ok {
		return Fallback
	}
	return rgb.Hex()
}

// RGBToHex formats channel values as "#rrggbb", clamping each to [0, 255].
func RGBToHex(r, g, b int) string {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}.Hex()
}

// HexToRGB parses any colour form accepted by Normalise.
// ok is false when the input is not a recognised colour.
func HexToRGB(input string) (rgb RGB, ok bool) {
	return parse(input)
}

// IsCanonical reports whether s is already in "#rrggbb" lowercase form.
func IsCanonical(s string) bool {
	return len(s) == 7 && hexPattern.MatchString(s) && strings.ToLower(s) == s
}

func parse(input string) (RGB, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return RGB{}, false
	}

	if m := hexPattern.FindStringSubmatch(s); m != nil {
		digits := strings.ToLower(m[1])
		if len(digits) == 3 {
			digits = string([]byte{
				digits[0], digits[0],
				digits[1], digits[1],
				digits[2], digits[2],
			})
		}
		// Pattern guarantees valid hex digits.
		v, _ := strconv.ParseUint(digits, 16, 32) //nolint:errcheck
		return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
	}

	if m := rgbPattern.FindStringSubmatch(strings.ToLower(s)); m != nil {
		return RGB{
			R: clampChannel(atoiSaturating(m[1])),
			G: clampChannel(atoiSaturating(m[2])),
			B: clampChannel(atoiSaturating(m[3])),
		}, true
	}

	if hex, ok := namedColours[strings.ToLower(s)]; ok {
		return parse(hex)
	}

	return RGB{}, false
}

// atoiSaturating parses a run of decimal digits, saturating on overflow.
func atoiSaturating(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 255
	}
	return n
}

// clampChannel restricts a channel value to [0, 255].
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v) // #nosec G115 -- clamped to 0-255
}
