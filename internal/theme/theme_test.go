package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/moeen/hemam-theme/internal/colour"
)

func TestDefaultsValid(t *testing.T) {
	s := Defaults()
	if err := s.Validate(); err != nil {
		t.Fatalf("Defaults() invalid: %v", err)
	}

	for _, mode := range []colour.Mode{colour.ModeLight, colour.ModeDark} {
		th := s.Theme(mode)
		for _, c := range append([]string{th.PrimaryColor, th.SecondaryColor, th.BackgroundColor, th.TextColor}, th.AccentColors...) {
			if !colour.IsCanonical(c) {
				t.Errorf("%s: default colour %q not canonical", mode, c)
			}
		}
	}

	if got := s.Theme(colour.ModeDark).PrimaryColor; got != "#ff9800" {
		t.Errorf("dark primary = %s, want #ff9800", got)
	}
	if diff := cmp.Diff([]string{"#ff9800", "#ffb400", "#ff6b6b"}, s.Theme(colour.ModeLight).AccentColors); diff != "" {
		t.Errorf("light accents mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultsIndependent(t *testing.T) {
	a := Defaults()
	b := Defaults()
	a.Themes.Light.AccentColors[0] = "#123456"
	*a.Rules[0].Threshold = 7
	if b.Themes.Light.AccentColors[0] == "#123456" || *b.Rules[0].Threshold == 7 {
		t.Error("Defaults() returned shared state")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *AdvancedThemeSettings)
		wantMsg string
	}{
		{
			name:    "bad mode",
			mutate:  func(s *AdvancedThemeSettings) { s.Mode = "batch" },
			wantMsg: `mode must be "real-time"`,
		},
		{
			name:    "ratio too low",
			mutate:  func(s *AdvancedThemeSettings) { s.Themes.Light.ContrastMinRatio = 0.5 },
			wantMsg: "light.contrastMinRatio",
		},
		{
			name:    "ratio too high",
			mutate:  func(s *AdvancedThemeSettings) { s.Themes.Dark.ContrastMinRatio = 22 },
			wantMsg: "dark.contrastMinRatio",
		},
		{
			name:    "invalid primary",
			mutate:  func(s *AdvancedThemeSettings) { s.Themes.Light.PrimaryColor = "orange-ish" },
			wantMsg: "light.primaryColor: invalid colour",
		},
		{
			name:    "empty accents with adaptive accent",
			mutate:  func(s *AdvancedThemeSettings) { s.Themes.Dark.AccentColors = nil },
			wantMsg: "dark.accentColors: must not be empty",
		},
		{
			name: "primary on avoid list",
			mutate: func(s *AdvancedThemeSettings) {
				s.Themes.Dark.AvoidColors = append(s.Themes.Dark.AvoidColors, "#FF9800")
			},
			wantMsg: "dark.primaryColor #ff9800 is on the avoid list",
		},
		{
			name: "secondary on avoid list",
			mutate: func(s *AdvancedThemeSettings) {
				s.Themes.Light.AvoidColors = append(s.Themes.Light.AvoidColors, "#6b4e16")
			},
			wantMsg: "light.secondaryColor",
		},
		{
			name: "replacement is itself avoided",
			mutate: func(s *AdvancedThemeSettings) {
				s.Themes.Dark.Replacements["#222222"] = "#000080"
			},
			wantMsg: "is itself avoided",
		},
		{
			name: "replacement not a colour or role",
			mutate: func(s *AdvancedThemeSettings) {
				s.Themes.Dark.Replacements["#222222"] = "tertiary"
			},
			wantMsg: `invalid replacement "tertiary"`,
		},
		{
			name:    "unknown rule type",
			mutate:  func(s *AdvancedThemeSettings) { s.Rules[0].RuleType = "sparkle" },
			wantMsg: `unknown rule type "sparkle"`,
		},
		{
			name:    "unknown action",
			mutate:  func(s *AdvancedThemeSettings) { s.Rules[1].Action = "explode" },
			wantMsg: `unknown action "explode"`,
		},
		{
			name: "rule threshold out of range",
			mutate: func(s *AdvancedThemeSettings) {
				v := 30.0
				s.Rules[0].Threshold = &v
			},
			wantMsg: "threshold 30 outside",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(s)
			err := s.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("error %v does not wrap ErrInvalidSettings", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateAllowsEmptyAccentsWhenAdaptiveDisabled(t *testing.T) {
	s := Defaults()
	s.ColorIntelligence.AdaptiveAccent = false
	s.Themes.Light.AccentColors = nil
	if err := s.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNormalise(t *testing.T) {
	s := Defaults()
	s.Themes.Light.PrimaryColor = "#F90"
	s.Themes.Light.AccentColors = []string{"rgb(255, 180, 0)"}
	s.Themes.Dark.Replacements = map[string]string{"#000080": RolePrimary, "#222": "#3A3A3A"}

	s.Normalise()

	if s.Themes.Light.PrimaryColor != "#ff9900" {
		t.Errorf("primary = %s", s.Themes.Light.PrimaryColor)
	}
	if s.Themes.Light.AccentColors[0] != "#ffb400" {
		t.Errorf("accent = %s", s.Themes.Light.AccentColors[0])
	}
	want := map[string]string{"#000080": RolePrimary, "#222222": "#3a3a3a"}
	if diff := cmp.Diff(want, s.Themes.Dark.Replacements); diff != "" {
		t.Errorf("replacements mismatch (-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	s := Defaults()
	c := s.Clone()
	if diff := cmp.Diff(s, c); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	c.Themes.Dark.AvoidColors[0] = "#010101"
	c.Themes.Dark.Replacements["#010101"] = RolePrimary
	*c.Rules[0].Threshold = 3
	c.Rules[2].ColorsToAvoid[0] = "#020202"

	if s.Themes.Dark.AvoidColors[0] == "#010101" {
		t.Error("avoid list shared with clone")
	}
	if _, ok := s.Themes.Dark.Replacements["#010101"]; ok {
		t.Error("replacements shared with clone")
	}
	if *s.Rules[0].Threshold == 3 {
		t.Error("threshold shared with clone")
	}
	if s.Rules[2].ColorsToAvoid[0] == "#020202" {
		t.Error("rule colours shared with clone")
	}

	var nilSettings *AdvancedThemeSettings
	if nilSettings.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestRoleAndRule(t *testing.T) {
	s := Defaults()
	dark := s.Theme(colour.ModeDark)
	if dark.Role(RolePrimary) != dark.PrimaryColor || dark.Role(RoleText) != dark.TextColor {
		t.Error("role lookup failed")
	}
	if dark.Role("#3a3a3a") != "#3a3a3a" {
		t.Error("literal colour should pass through")
	}

	r, ok := s.Rule(RuleContrastCheck)
	if !ok || r.Action != ActionAutoAdjust || r.Threshold == nil || *r.Threshold != 4.5 {
		t.Errorf("Rule(contrastCheck) = %+v, %v", r, ok)
	}
	if _, ok := (&AdvancedThemeSettings{}).Rule(RuleReport); ok {
		t.Error("expected no rule on empty settings")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := Defaults()
	s.Themes.Light.PrimaryColor = "#e46c0a"

	data, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	s := Defaults()
	s.ColorIntelligence.ModernPalette = false

	data, err := s.EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	got, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeShallowMerge(t *testing.T) {
	data := []byte(`{
		"colorIntelligence": {"autoContrast": true},
		"somethingNew": 42
	}`)

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := Defaults()
	// The whole colorIntelligence object is replaced, not merged field by field.
	want.ColorIntelligence = ColorIntelligenceConfig{AutoContrast: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMissingReplacements(t *testing.T) {
	tests := []struct {
		name   string
		decode func([]byte) (*AdvancedThemeSettings, error)
		data   string
		want   map[string]string
	}{
		{
			name:   "json absent",
			decode: Decode,
			data:   `{"themes":{"light":{"primaryColor":"#ff9800"},"dark":{"primaryColor":"#ff9800"}}}`,
			want:   Defaults().Themes.Dark.Replacements,
		},
		{
			name:   "json null",
			decode: Decode,
			data:   `{"themes":{"light":{},"dark":{"replacements":null}}}`,
			want:   Defaults().Themes.Dark.Replacements,
		},
		{
			name:   "json empty",
			decode: Decode,
			data:   `{"themes":{"light":{},"dark":{"replacements":{}}}}`,
			want:   map[string]string{},
		},
		{
			name:   "yaml absent",
			decode: DecodeYAML,
			data:   "themes:\n  light: {}\n  dark:\n    primaryColor: '#ff9800'\n",
			want:   Defaults().Themes.Dark.Replacements,
		},
		{
			name:   "yaml empty",
			decode: DecodeYAML,
			data:   "themes:\n  light: {}\n  dark:\n    replacements: {}\n",
			want:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.decode([]byte(tt.data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Themes.Dark.Replacements); diff != "" {
				t.Errorf("dark replacements mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(map[string]string{}, got.Themes.Light.Replacements); diff != "" {
				t.Errorf("light replacements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{{{"},
		{name: "array", data: "[1,2]"},
		{name: "wrong field type", data: `{"themes": "dark"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := DecodeYAML([]byte("mode: [unterminated")); err == nil {
		t.Error("expected YAML error")
	}
}

func TestCSSVariables(t *testing.T) {
	s := Defaults()

	light := CSSVariables(s, colour.ModeLight)
	if light["--brand-primary"] != "#ff9800" {
		t.Errorf("--brand-primary = %s", light["--brand-primary"])
	}
	if light["--background"] != "#ffffff" || light["--accent-3"] != "#ff6b6b" {
		t.Errorf("unexpected light variables: %v", light)
	}
	if light["--shadow-md"] != colour.OptimisedShadow(colour.ModeLight, 0.1) {
		t.Errorf("--shadow-md = %s", light["--shadow-md"])
	}
	if !strings.HasPrefix(light["--gradient-brand"], "linear-gradient(135deg, ") {
		t.Errorf("--gradient-brand = %s", light["--gradient-brand"])
	}

	dark := CSSVariables(s, colour.ModeDark)
	if dark["--background"] != "#121212" {
		t.Errorf("dark --background = %s", dark["--background"])
	}

	s.Themes.Dark.DynamicShadows = false
	s.Themes.Dark.GradientSupport = false
	dark = CSSVariables(s, colour.ModeDark)
	if _, ok := dark["--shadow-md"]; ok {
		t.Error("shadow emitted with dynamic shadows disabled")
	}
	if _, ok := dark["--gradient-brand"]; ok {
		t.Error("gradient emitted with gradient support disabled")
	}
}

func TestHoverVariant(t *testing.T) {
	primary := "#ff9800"
	lightHover := HoverVariant(primary, colour.ModeLight)
	darkHover := HoverVariant(primary, colour.ModeDark)

	base, _ := colour.HexToRGB(primary)
	lh, _ := colour.HexToRGB(lightHover)
	dh, _ := colour.HexToRGB(darkHover)

	if colour.RelativeLuminance(lh) >= colour.RelativeLuminance(base) {
		t.Errorf("light hover %s should be darker than %s", lightHover, primary)
	}
	if colour.RelativeLuminance(dh) <= colour.RelativeLuminance(base) {
		t.Errorf("dark hover %s should be lighter than %s", darkHover, primary)
	}
}

func TestRenderCSS(t *testing.T) {
	got := RenderCSS("", map[string]string{"--b": "2", "--a": "1"})
	want := ":root {\n  --a: 1;\n  --b: 2;\n}\n"
	if got != want {
		t.Errorf("RenderCSS =\n%q\nwant\n%q", got, want)
	}
}
