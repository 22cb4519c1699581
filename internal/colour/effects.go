package colour

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// DefaultShadowOpacity is the base opacity of the first shadow layer.
	DefaultShadowOpacity = 0.1
	// DefaultGradientAngle is the gradient direction in degrees.
	DefaultGradientAngle = 135.0
)

// OptimisedShadow returns a two-layer CSS box-shadow for the mode.
// Dark backgrounds swallow faint shadows, so dark mode multiplies the
// opacities by 3 and 2; light mode uses the base opacity and half of it.
func OptimisedShadow(mode Mode, opacity float64) string {
	op1, op2 := opacity, opacity*0.5
	if mode == ModeDark {
		op1, op2 = opacity*3, opacity*2
	}
	return fmt.Sprintf("0 4px 6px -1px rgba(0, 0, 0, %s), 0 2px 4px -2px rgba(0, 0, 0, %s)",
		formatNumber(op1), formatNumber(op2))
}

// OptimisedGradient returns a CSS linear-gradient between two colours.
// Both endpoints are first run through AdjustForContrast against the
// mode's canonical background at the AA threshold, so the gradient stays
// legible when text or icons sit next to it.
func OptimisedGradient(c1, c2 string, mode Mode, angle float64) string {
	bg := mode.Background()
	start := AdjustForContrast(c1, bg, MinContrastAA, mode)
	end := AdjustForContrast(c2, bg, MinContrastAA, mode)
	return fmt.Sprintf("linear-gradient(%sdeg, %s 0%%, %s 100%%)", formatNumber(angle), start, end)
}

// formatNumber prints v with at most four decimals and no trailing zeros.
func formatNumber(v float64) string {
	rounded := math.Round(v*10000) / 10000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
