package colour

import "math"

// WCAG 2.x contrast thresholds.
const (
	// MinContrastAA is the AA threshold for normal text.
	MinContrastAA = 4.5
	// MinContrastAALarge is the AA threshold for large text.
	MinContrastAALarge = 3.0
	// MinContrastAAA is the AAA threshold for normal text.
	MinContrastAAA = 7.0

	// MinRatio and MaxRatio bound every contrast ratio.
	MinRatio = 1.0
	MaxRatio = 21.0
)

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect linearises an sRGB channel in [0, 1].
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatioRGB is ContrastRatio for already-parsed colours.
func ContrastRatioRGB(c1, c2 RGB) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatio calculates the WCAG 2.0 contrast ratio between two colour strings.
// Returns a value between 1 and 21, where 21 is black against white.
// If either colour cannot be parsed the result is 1, the worst possible
// contrast, so that callers treat it as failing every real threshold.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 string) float64 {
	rgb1, ok1 := HexToRGB(c1)
	rgb2, ok2 := HexToRGB(c2)
	if !ok1 || !ok2 {
		return MinRatio
	}
	return ContrastRatioRGB(rgb1, rgb2)
}

// MeetsContrastStandard reports whether fg on bg reaches minRatio.
func MeetsContrastStandard(fg, bg string, minRatio float64) bool {
	return ContrastRatio(fg, bg) >= minRatio
}

// Level names the highest WCAG level a ratio satisfies for normal text.
func Level(ratio float64) string {
	switch {
	case ratio >= MinContrastAAA:
		return "AAA"
	case ratio >= MinContrastAA:
		return "AA"
	case ratio >= MinContrastAALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}
