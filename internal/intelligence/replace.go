// Package intelligence applies the theme's colour rules to rendered UI
// components: avoid-list replacement, adaptive accents and the component
// style analysis that ties contrast repair and effects together.
package intelligence

import (
	"strings"

	"github.com/moeen/hemam-theme/internal/colour"
	"github.com/moeen/hemam-theme/internal/theme"
)

// ShouldAvoidColour reports whether c is on the avoid list.
// Matching is exact apart from case and surrounding whitespace; a colour one
// digit away from a listed entry is not caught.
func ShouldAvoidColour(c string, avoid []string) bool {
	needle := strings.ToLower(strings.TrimSpace(c))
	for _, a := range avoid {
		if strings.ToLower(strings.TrimSpace(a)) == needle {
			return true
		}
	}
	return false
}

// ReplacementColour substitutes an avoided colour for the mode.
// Colours not on the mode's avoid list come back unchanged. Avoided colours
// use the mode's replacement table and fall back to the primary colour.
func ReplacementColour(original string, mode colour.Mode, s *theme.AdvancedThemeSettings) string {
	t := s.Theme(mode)
	if !ShouldAvoidColour(original, t.AvoidColors) {
		return original
	}

	key := strings.ToLower(strings.TrimSpace(original))
	for from, to := range t.Replacements {
		if strings.ToLower(strings.TrimSpace(from)) == key {
			return t.Role(to)
		}
	}
	return t.PrimaryColor
}
