package theme

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/moeen/hemam-theme/internal/colour"
)

// ErrInvalidSettings wraps every validation failure.
var ErrInvalidSettings = errors.New("invalid theme settings")

// Validate checks the settings invariants and reports every violation.
func (s *AdvancedThemeSettings) Validate() error {
	var problems []error

	if s.Mode != ModeRealTime {
		problems = append(problems, fmt.Errorf("mode must be %q, got %q", ModeRealTime, s.Mode))
	}

	for _, mode := range []colour.Mode{colour.ModeLight, colour.ModeDark} {
		problems = append(problems, s.Theme(mode).validate(mode, s.ColorIntelligence.AdaptiveAccent)...)
	}

	for i, r := range s.Rules {
		if !r.RuleType.Valid() {
			problems = append(problems, fmt.Errorf("rules[%d]: unknown rule type %q", i, r.RuleType))
		}
		if !r.Action.Valid() {
			problems = append(problems, fmt.Errorf("rules[%d]: unknown action %q", i, r.Action))
		}
		if r.Threshold != nil && !validRatio(*r.Threshold) {
			problems = append(problems, fmt.Errorf("rules[%d]: threshold %v outside [1, 21]", i, *r.Threshold))
		}
		for _, c := range r.ColorsToAvoid {
			if !validColour(c) {
				problems = append(problems, fmt.Errorf("rules[%d]: invalid colour %q", i, c))
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(problems...))
}

func (c ThemeColorConfig) validate(mode colour.Mode, adaptiveAccent bool) []error {
	var problems []error
	field := func(name, value string) {
		if !validColour(value) {
			problems = append(problems, fmt.Errorf("%s.%s: invalid colour %q", mode, name, value))
		}
	}

	field("primaryColor", c.PrimaryColor)
	field("secondaryColor", c.SecondaryColor)
	field("backgroundColor", c.BackgroundColor)
	field("textColor", c.TextColor)
	for i, a := range c.AccentColors {
		field(fmt.Sprintf("accentColors[%d]", i), a)
	}
	for i, a := range c.AvoidColors {
		field(fmt.Sprintf("avoidColors[%d]", i), a)
	}

	if !validRatio(c.ContrastMinRatio) {
		problems = append(problems, fmt.Errorf("%s.contrastMinRatio: %v outside [1, 21]", mode, c.ContrastMinRatio))
	}

	if adaptiveAccent && len(c.AccentColors) == 0 {
		problems = append(problems, fmt.Errorf("%s.accentColors: must not be empty while adaptive accent is enabled", mode))
	}

	avoided := make(map[string]bool, len(c.AvoidColors))
	for _, a := range c.AvoidColors {
		avoided[colour.Normalise(a)] = true
	}
	if avoided[colour.Normalise(c.PrimaryColor)] {
		problems = append(problems, fmt.Errorf("%s.primaryColor %s is on the avoid list", mode, c.PrimaryColor))
	}
	if avoided[colour.Normalise(c.SecondaryColor)] {
		problems = append(problems, fmt.Errorf("%s.secondaryColor %s is on the avoid list", mode, c.SecondaryColor))
	}

	for _, from := range slices.Sorted(maps.Keys(c.Replacements)) {
		to := c.Replacements[from]
		if !validColour(from) {
			problems = append(problems, fmt.Errorf("%s.replacements: invalid colour %q", mode, from))
		}
		resolved := c.Role(to)
		if !validColour(resolved) {
			problems = append(problems, fmt.Errorf("%s.replacements[%s]: invalid replacement %q", mode, from, to))
			continue
		}
		if avoided[colour.Normalise(resolved)] {
			problems = append(problems, fmt.Errorf("%s.replacements[%s]: replacement %s is itself avoided", mode, from, resolved))
		}
	}

	return problems
}

// Normalise rewrites every colour field into canonical "#rrggbb" form.
// Call Validate first: unreadable colours become "#000000" here.
func (s *AdvancedThemeSettings) Normalise() {
	s.Themes.Light.normalise()
	s.Themes.Dark.normalise()
	for i := range s.Rules {
		normaliseAll(s.Rules[i].ColorsToAvoid)
	}
}

func (c *ThemeColorConfig) normalise() {
	c.PrimaryColor = colour.Normalise(c.PrimaryColor)
	c.SecondaryColor = colour.Normalise(c.SecondaryColor)
	c.BackgroundColor = colour.Normalise(c.BackgroundColor)
	c.TextColor = colour.Normalise(c.TextColor)
	normaliseAll(c.AccentColors)
	normaliseAll(c.AvoidColors)

	if c.Replacements != nil {
		out := make(map[string]string, len(c.Replacements))
		for from, to := range c.Replacements {
			if !isRole(to) {
				to = colour.Normalise(to)
			}
			out[colour.Normalise(from)] = to
		}
		c.Replacements = out
	}
}

func normaliseAll(colours []string) {
	for i, c := range colours {
		colours[i] = colour.Normalise(c)
	}
}

func isRole(v string) bool {
	switch v {
	case RolePrimary, RoleSecondary, RoleBackground, RoleText:
		return true
	}
	return false
}

func validColour(c string) bool {
	_, ok := colour.HexToRGB(c)
	return ok
}

func validRatio(r float64) bool {
	return r >= colour.MinRatio && r <= colour.MaxRatio
}
