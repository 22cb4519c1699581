package intelligence

import (
	"github.com/moeen/hemam-theme/internal/colour"
	"github.com/moeen/hemam-theme/internal/theme"
)

// AdaptiveAccent picks the accent with the highest contrast against bg among
// those that reach the mode's threshold. Earlier candidates win ties. When no
// candidate qualifies the first one is returned, so the result is not
// guaranteed to pass. An empty candidate list yields the primary colour.
func AdaptiveAccent(bg string, mode colour.Mode, s *theme.AdvancedThemeSettings) string {
	t := s.Theme(mode)
	if len(t.AccentColors) == 0 {
		return t.PrimaryColor
	}

	best := t.AccentColors[0]
	bestRatio := 0.0
	for _, accent := range t.AccentColors {
		ratio := colour.ContrastRatio(accent, bg)
		if ratio > bestRatio && ratio >= t.ContrastMinRatio {
			best, bestRatio = accent, ratio
		}
	}
	return best
}
