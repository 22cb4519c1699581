package intelligence

import (
	"fmt"

	"github.com/moeen/hemam-theme/internal/colour"
	"github.com/moeen/hemam-theme/internal/settings"
	"github.com/moeen/hemam-theme/internal/theme"
)

// CSS properties read from a component.
const (
	PropColor           = "color"
	PropBackgroundColor = "background-color"
	PropBackgroundVar   = "--background"
	PropBorderColor     = "border-color"
)

// StyleSource exposes a component's computed style.
// PropertyValue returns "" for properties that are not set.
type StyleSource interface {
	PropertyValue(name string) string
}

// MapStyle is a StyleSource backed by a plain map.
type MapStyle map[string]string

// PropertyValue implements StyleSource.
func (m MapStyle) PropertyValue(name string) string {
	return m[name]
}

// Analysis is the outcome of analysing one component.
type Analysis struct {
	// OriginalColor is the normalised foreground as read.
	OriginalColor string `json:"originalColor"`
	// Color is the foreground after any adjustment or replacement.
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor,omitempty"`
	Shadow          string `json:"shadow,omitempty"`
	Gradient        string `json:"gradient,omitempty"`
	Accent          string `json:"accent,omitempty"`

	// ContrastRatio is measured on the original colours.
	ContrastRatio float64 `json:"contrastRatio"`
	// FinalContrastRatio is measured on Color against BackgroundColor.
	FinalContrastRatio float64 `json:"finalContrastRatio"`
	// MeetsStandard reports whether Color passes the mode's threshold.
	MeetsStandard bool `json:"meetsStandard"`

	// Adjustments lists the changes made, in order, for display.
	Adjustments []string `json:"adjustments"`
}

// Changed reports whether the analysis altered the foreground colour.
func (a Analysis) Changed() bool {
	return len(a.Adjustments) > 0
}

// Analyse reads a component's colours and applies the enabled colour
// intelligence stages for mode. It never modifies el. A nil s means the
// built-in defaults.
func Analyse(el StyleSource, mode colour.Mode, s *theme.AdvancedThemeSettings) Analysis {
	if s == nil {
		s = theme.Defaults()
	}
	t := s.Theme(mode)
	ci := s.ColorIntelligence

	rawColor := el.PropertyValue(PropColor)
	rawBackground := el.PropertyValue(PropBackgroundColor)
	if rawBackground == "" {
		rawBackground = el.PropertyValue(PropBackgroundVar)
	}
	if rawBackground == "" {
		rawBackground = t.BackgroundColor
	}
	rawBorder := el.PropertyValue(PropBorderColor)

	fg := colour.Normalise(rawColor)
	bg := colour.Normalise(rawBackground)

	result := Analysis{
		OriginalColor:   fg,
		BackgroundColor: bg,
		Adjustments:     []string{},
	}
	if rawBorder != "" {
		result.BorderColor = colour.Normalise(rawBorder)
	}

	result.ContrastRatio = colour.ContrastRatio(fg, bg)
	passes := result.ContrastRatio >= t.ContrastMinRatio

	adjusted := fg
	if !passes && ci.AutoContrast {
		adjusted = colour.AdjustForContrast(fg, bg, t.ContrastMinRatio, mode)
		if adjusted != fg {
			result.Adjustments = append(result.Adjustments,
				fmt.Sprintf("تم تعديل اللون من %s إلى %s لتحسين التباين", rawColor, adjusted))
		}
	}

	if ci.DynamicReplacement && ShouldAvoidColour(adjusted, t.AvoidColors) {
		adjusted = ReplacementColour(adjusted, mode, s)
		result.Adjustments = append(result.Adjustments,
			fmt.Sprintf("تم استبدال اللون %s بلون حديث: %s", rawColor, adjusted))
	}

	if ci.ShadowOptimization && t.DynamicShadows {
		result.Shadow = colour.OptimisedShadow(mode, colour.DefaultShadowOpacity)
	}

	if ci.GradientOptimization && t.GradientSupport && len(t.AccentColors) > 0 {
		result.Gradient = colour.OptimisedGradient(t.PrimaryColor, t.AccentColors[0], mode, colour.DefaultGradientAngle)
	}

	if ci.AdaptiveAccent {
		result.Accent = AdaptiveAccent(bg, mode, s)
	}

	result.Color = adjusted
	result.FinalContrastRatio = colour.ContrastRatio(adjusted, bg)
	result.MeetsStandard = result.FinalContrastRatio >= t.ContrastMinRatio
	return result
}

// Analyser analyses components against settings from a Provider.
type Analyser struct {
	provider settings.Provider
}

// NewAnalyser returns an Analyser reading settings from p.
// A nil p uses the built-in defaults.
func NewAnalyser(p settings.Provider) *Analyser {
	if p == nil {
		p = settings.Static{}
	}
	return &Analyser{provider: p}
}

// Analyse runs Analyse with the provider's current settings.
func (a *Analyser) Analyse(el StyleSource, mode colour.Mode) Analysis {
	return Analyse(el, mode, a.provider.Load())
}

// AnalyseAll analyses several components against one settings snapshot.
func (a *Analyser) AnalyseAll(els []StyleSource, mode colour.Mode) []Analysis {
	s := a.provider.Load()
	out := make([]Analysis, len(els))
	for i, el := range els {
		out[i] = Analyse(el, mode, s)
	}
	return out
}
