package theme

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/moeen/hemam-theme/internal/colour"
)

const (
	// hoverBlend is how far the hover variant moves towards black or white.
	hoverBlend = 0.1
	// mutedBlend is how far muted text moves towards the background.
	mutedBlend = 0.35
)

// CSSVariables returns the custom properties for one mode of the theme.
func CSSVariables(s *AdvancedThemeSettings, mode colour.Mode) map[string]string {
	t := s.Theme(mode)

	vars := map[string]string{
		"--brand-primary":       colour.Normalise(t.PrimaryColor),
		"--brand-primary-hover": HoverVariant(t.PrimaryColor, mode),
		"--brand-secondary":     colour.Normalise(t.SecondaryColor),
		"--background":          colour.Normalise(t.BackgroundColor),
		"--foreground":          colour.Normalise(t.TextColor),
		"--text":                colour.Normalise(t.TextColor),
		"--text-muted":          blend(t.TextColor, t.BackgroundColor, mutedBlend),
		"--contrast-min-ratio":  fmt.Sprintf("%g", t.ContrastMinRatio),
	}

	for i, a := range t.AccentColors {
		vars[fmt.Sprintf("--accent-%d", i+1)] = colour.Normalise(a)
	}

	if t.DynamicShadows {
		vars["--shadow-md"] = colour.OptimisedShadow(mode, colour.DefaultShadowOpacity)
	}
	if t.GradientSupport {
		end := t.SecondaryColor
		if len(t.AccentColors) > 0 {
			end = t.AccentColors[0]
		}
		vars["--gradient-brand"] = colour.OptimisedGradient(t.PrimaryColor, end, mode, colour.DefaultGradientAngle)
	}

	return vars
}

// RenderCSS renders vars as a declaration block under selector, sorted by name.
func RenderCSS(selector string, vars map[string]string) string {
	if selector == "" {
		selector = ":root"
	}

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		fmt.Fprintf(&b, "  %s: %s;\n", name, vars[name])
	}
	b.WriteString("}\n")
	return b.String()
}

// HoverVariant darkens c for light mode and lightens it for dark mode,
// blending in CIE Lab so the hue stays put.
func HoverVariant(c string, mode colour.Mode) string {
	target := "#000000"
	if mode == colour.ModeDark {
		target = "#ffffff"
	}
	return blend(c, target, hoverBlend)
}

// blend mixes a towards b by t in Lab space. Unreadable input yields a.
func blend(a, b string, t float64) string {
	ca, err := colorful.Hex(colour.Normalise(a))
	if err != nil {
		return colour.Normalise(a)
	}
	cb, err := colorful.Hex(colour.Normalise(b))
	if err != nil {
		return colour.Normalise(a)
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
