package colour

const (
	// adjustStep is the per-channel change applied on each attempt.
	adjustStep = 10
	// adjustAttempts bounds the search.
	adjustAttempts = 20
)

// AdjustForContrast walks fg towards black (light mode) or white (dark mode)
// until it reaches minRatio against bg.
//
// A foreground that already passes is returned unchanged, as is one that
// cannot be parsed. Every channel moves by the same step on each attempt and
// is clamped to [0, 255]. When the attempts run out the result is "#000000"
// in light mode and "#ffffff" in dark mode. The search is greedy: it stops at
// the first passing colour, not the one closest to the original.
func AdjustForContrast(fg, bg string, minRatio float64, mode Mode) string {
	if MeetsContrastStandard(fg, bg, minRatio) {
		return fg
	}

	rgb, ok := HexToRGB(fg)
	if !ok {
		return fg
	}

	step := -adjustStep
	if mode == ModeDark {
		step = adjustStep
	}

	r, g, b := int(rgb.R), int(rgb.G), int(rgb.B)
	for range adjustAttempts {
		r = int(clampChannel(r + step))
		g = int(clampChannel(g + step))
		b = int(clampChannel(b + step))

		candidate := RGBToHex(r, g, b)
		if MeetsContrastStandard(candidate, bg, minRatio) {
			return candidate
		}
	}

	if mode == ModeDark {
		return "#ffffff"
	}
	return "#000000"
}
