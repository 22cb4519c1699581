// Package theme defines the clinic UI theme configuration: per-mode colour
// palettes, contrast thresholds, avoid-lists, colour intelligence switches
// and declarative theme rules.
package theme

import (
	"github.com/moeen/hemam-theme/internal/colour"
)

// ThemeColorConfig is the palette and behaviour of one theme mode.
type ThemeColorConfig struct {
	// PrimaryColor and SecondaryColor are the protected brand colours.
	PrimaryColor   string `json:"primaryColor" yaml:"primaryColor"`
	SecondaryColor string `json:"secondaryColor" yaml:"secondaryColor"`

	// AccentColors is the ordered candidate list for adaptive accents.
	AccentColors []string `json:"accentColors" yaml:"accentColors"`

	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
	TextColor       string `json:"textColor" yaml:"textColor"`

	// ContrastMinRatio is the WCAG threshold enforced for this mode.
	ContrastMinRatio float64 `json:"contrastMinRatio" yaml:"contrastMinRatio"`

	EnsureVisibility       bool `json:"ensureVisibility" yaml:"ensureVisibility"`
	HandleHiddenComponents bool `json:"handleHiddenComponents" yaml:"handleHiddenComponents"`
	DynamicShadows         bool `json:"dynamicShadows" yaml:"dynamicShadows"`
	GradientSupport        bool `json:"gradientSupport" yaml:"gradientSupport"`

	// AvoidColors must never be rendered as-is in this mode.
	AvoidColors []string `json:"avoidColors,omitempty" yaml:"avoidColors,omitempty"`

	// Replacements maps an avoided colour to its substitute. A value is
	// either a hex colour or one of the role names "primary", "secondary",
	// "background" and "text". Data saved without this key gets the
	// mode's default table on load; an empty table is kept as empty.
	Replacements map[string]string `json:"replacements" yaml:"replacements"`
}

// Role resolves a replacement value: role names map to this palette's
// colours, anything else is returned as given.
func (c ThemeColorConfig) Role(value string) string {
	switch value {
	case RolePrimary:
		return c.PrimaryColor
	case RoleSecondary:
		return c.SecondaryColor
	case RoleBackground:
		return c.BackgroundColor
	case RoleText:
		return c.TextColor
	default:
		return value
	}
}

// Replacement role names.
const (
	RolePrimary    = "primary"
	RoleSecondary  = "secondary"
	RoleBackground = "background"
	RoleText       = "text"
)

// ColorIntelligenceConfig gates each optimiser stage.
type ColorIntelligenceConfig struct {
	AutoContrast         bool `json:"autoContrast" yaml:"autoContrast"`
	AdaptiveAccent       bool `json:"adaptiveAccent" yaml:"adaptiveAccent"`
	DynamicReplacement   bool `json:"dynamicReplacement" yaml:"dynamicReplacement"`
	ModernPalette        bool `json:"modernPalette" yaml:"modernPalette"`
	GradientOptimization bool `json:"gradientOptimization" yaml:"gradientOptimization"`
	ShadowOptimization   bool `json:"shadowOptimization" yaml:"shadowOptimization"`
	ContextAware         bool `json:"contextAware" yaml:"contextAware"`
	RealTimeUpdate       bool `json:"realTimeUpdate" yaml:"realTimeUpdate"`
}

// RuleType classifies a ThemeRule.
type RuleType string

// Known rule types.
const (
	RuleContrastCheck                 RuleType = "contrastCheck"
	RuleHiddenComponentFix            RuleType = "hiddenComponentFix"
	RuleAvoidColors                   RuleType = "avoidColors"
	RuleAdaptiveAccent                RuleType = "adaptiveAccent"
	RuleGradientAndShadowOptimization RuleType = "gradientAndShadowOptimization"
	RuleRealTimeMonitoring            RuleType = "realTimeMonitoring"
	RuleContextAwareAdjustment        RuleType = "contextAwareAdjustment"
	RuleReport                        RuleType = "report"
)

// Valid reports whether t is a known rule type.
func (t RuleType) Valid() bool {
	switch t {
	case RuleContrastCheck, RuleHiddenComponentFix, RuleAvoidColors, RuleAdaptiveAccent,
		RuleGradientAndShadowOptimization, RuleRealTimeMonitoring, RuleContextAwareAdjustment, RuleReport:
		return true
	}
	return false
}

// RuleAction is what a rule does when it fires.
type RuleAction string

// Known rule actions.
const (
	ActionAutoAdjust           RuleAction = "autoAdjust"
	ActionForceAdjust          RuleAction = "forceAdjust"
	ActionReplace              RuleAction = "replace"
	ActionDynamicApply         RuleAction = "dynamicApply"
	ActionMonitorNewComponents RuleAction = "monitorNewComponents"
	ActionGenerate             RuleAction = "generate"
)

// Valid reports whether a is a known rule action.
func (a RuleAction) Valid() bool {
	switch a {
	case ActionAutoAdjust, ActionForceAdjust, ActionReplace, ActionDynamicApply,
		ActionMonitorNewComponents, ActionGenerate:
		return true
	}
	return false
}

// ThemeRule is a declarative rule record.
type ThemeRule struct {
	RuleType            RuleType   `json:"ruleType" yaml:"ruleType"`
	Action              RuleAction `json:"action" yaml:"action"`
	Target              string     `json:"target" yaml:"target"`
	Threshold           *float64   `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	ColorsToAvoid       []string   `json:"colorsToAvoid,omitempty" yaml:"colorsToAvoid,omitempty"`
	ReplacementStrategy string     `json:"replacementStrategy,omitempty" yaml:"replacementStrategy,omitempty"`
}

// Themes holds one palette per mode.
type Themes struct {
	Light ThemeColorConfig `json:"light" yaml:"light"`
	Dark  ThemeColorConfig `json:"dark" yaml:"dark"`
}

// ModeRealTime is the only supported settings mode.
const ModeRealTime = "real-time"

// AdvancedThemeSettings is the full persisted theme configuration.
type AdvancedThemeSettings struct {
	Mode                   string                  `json:"mode" yaml:"mode"`
	Themes                 Themes                  `json:"themes" yaml:"themes"`
	CentralizedColorSystem bool                    `json:"centralizedColorSystem" yaml:"centralizedColorSystem"`
	ColorIntelligence      ColorIntelligenceConfig `json:"colorIntelligence" yaml:"colorIntelligence"`
	Rules                  []ThemeRule             `json:"rules" yaml:"rules"`
}

// Theme returns the palette for mode. Unknown modes get the light palette.
func (s *AdvancedThemeSettings) Theme(mode colour.Mode) ThemeColorConfig {
	if mode == colour.ModeDark {
		return s.Themes.Dark
	}
	return s.Themes.Light
}

// Rule returns the first rule of the given type.
func (s *AdvancedThemeSettings) Rule(t RuleType) (ThemeRule, bool) {
	for _, r := range s.Rules {
		if r.RuleType == t {
			return r, true
		}
	}
	return ThemeRule{}, false
}

// Clone returns a deep copy of s.
func (s *AdvancedThemeSettings) Clone() *AdvancedThemeSettings {
	if s == nil {
		return nil
	}
	out := *s
	out.Themes.Light = s.Themes.Light.clone()
	out.Themes.Dark = s.Themes.Dark.clone()
	if s.Rules != nil {
		out.Rules = make([]ThemeRule, len(s.Rules))
		for i, r := range s.Rules {
			out.Rules[i] = r.clone()
		}
	}
	return &out
}

func (c ThemeColorConfig) clone() ThemeColorConfig {
	out := c
	out.AccentColors = cloneStrings(c.AccentColors)
	out.AvoidColors = cloneStrings(c.AvoidColors)
	if c.Replacements != nil {
		out.Replacements = make(map[string]string, len(c.Replacements))
		for k, v := range c.Replacements {
			out.Replacements[k] = v
		}
	}
	return out
}

func (r ThemeRule) clone() ThemeRule {
	out := r
	if r.Threshold != nil {
		v := *r.Threshold
		out.Threshold = &v
	}
	out.ColorsToAvoid = cloneStrings(r.ColorsToAvoid)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
