package theme

import "github.com/moeen/hemam-theme/internal/colour"

// DefaultContrastMinRatio is the WCAG AA threshold for normal text.
const DefaultContrastMinRatio = colour.MinContrastAA

// Defaults returns a fresh copy of the built-in theme settings.
func Defaults() *AdvancedThemeSettings {
	aa := DefaultContrastMinRatio

	return &AdvancedThemeSettings{
		Mode: ModeRealTime,
		Themes: Themes{
			Light: ThemeColorConfig{
				PrimaryColor:           "#ff9800",
				SecondaryColor:         "#6b4e16",
				AccentColors:           []string{"#ff9800", "#ffb400", "#ff6b6b"},
				BackgroundColor:        "#ffffff",
				TextColor:              "#1a1a1a",
				ContrastMinRatio:       aa,
				EnsureVisibility:       true,
				HandleHiddenComponents: true,
				DynamicShadows:         true,
				GradientSupport:        true,
				AvoidColors:            []string{"#ffff00", "#f5f5f5"},
				Replacements:           map[string]string{},
			},
			Dark: ThemeColorConfig{
				PrimaryColor:           "#ff9800",
				SecondaryColor:         "#ffb400",
				AccentColors:           []string{"#ffb400", "#ff9800", "#4fc3f7"},
				BackgroundColor:        "#121212",
				TextColor:              "#e0e0e0",
				ContrastMinRatio:       aa,
				EnsureVisibility:       true,
				HandleHiddenComponents: true,
				DynamicShadows:         true,
				GradientSupport:        true,
				AvoidColors:            []string{"#000080", "#00008b", "#222222"},
				Replacements: map[string]string{
					"#000080": RolePrimary,
					"#00008b": RolePrimary,
					"#222222": "#3a3a3a",
				},
			},
		},
		CentralizedColorSystem: true,
		ColorIntelligence: ColorIntelligenceConfig{
			AutoContrast:         true,
			AdaptiveAccent:       true,
			DynamicReplacement:   true,
			ModernPalette:        true,
			GradientOptimization: true,
			ShadowOptimization:   true,
			ContextAware:         true,
			RealTimeUpdate:       true,
		},
		Rules: []ThemeRule{
			{RuleType: RuleContrastCheck, Action: ActionAutoAdjust, Target: "all", Threshold: &aa},
			{RuleType: RuleHiddenComponentFix, Action: ActionForceAdjust, Target: "hidden"},
			{
				RuleType:            RuleAvoidColors,
				Action:              ActionReplace,
				Target:              "dark",
				ColorsToAvoid:       []string{"#000080", "#00008b", "#222222"},
				ReplacementStrategy: "modernPalette",
			},
			{RuleType: RuleAdaptiveAccent, Action: ActionDynamicApply, Target: "accents"},
			{RuleType: RuleGradientAndShadowOptimization, Action: ActionDynamicApply, Target: "surfaces"},
			{RuleType: RuleRealTimeMonitoring, Action: ActionMonitorNewComponents, Target: "all"},
			{RuleType: RuleContextAwareAdjustment, Action: ActionAutoAdjust, Target: "context"},
			{RuleType: RuleReport, Action: ActionGenerate, Target: "adjustments"},
		},
	}
}
