package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSet(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		value string
		check func(t *testing.T, s *AdvancedThemeSettings)
	}{
		{
			name: "string via alias", path: "dark.primaryColor", value: "#E46C0A",
			check: func(t *testing.T, s *AdvancedThemeSettings) {
				if s.Themes.Dark.PrimaryColor != "#E46C0A" {
					t.Errorf("primary = %s", s.Themes.Dark.PrimaryColor)
				}
			},
		},
		{
			name: "full path number", path: "themes.light.contrastMinRatio", value: "7",
			check: func(t *testing.T, s *AdvancedThemeSettings) {
				if s.Themes.Light.ContrastMinRatio != 7 {
					t.Errorf("ratio = %v", s.Themes.Light.ContrastMinRatio)
				}
			},
		},
		{
			name: "bool", path: "intelligence.autoContrast", value: "false",
			check: func(t *testing.T, s *AdvancedThemeSettings) {
				if s.ColorIntelligence.AutoContrast {
					t.Error("autoContrast still true")
				}
			},
		},
		{
			name: "top level bool", path: "centralizedColorSystem", value: "false",
			check: func(t *testing.T, s *AdvancedThemeSettings) {
				if s.CentralizedColorSystem {
					t.Error("centralizedColorSystem still true")
				}
			},
		},
		{
			name: "list", path: "light.accentColors", value: "#111111, #222222,",
			check: func(t *testing.T, s *AdvancedThemeSettings) {
				if diff := cmp.Diff([]string{"#111111", "#222222"}, s.Themes.Light.AccentColors); diff != "" {
					t.Errorf("accents mismatch:\n%s", diff)
				}
			},
		},
		{
			name: "table", path: "light.replacements", value: "#ffff00=secondary, #f5f5f5=#eeeeee",
			check: func(t *testing.T, s *AdvancedThemeSettings) {
				want := map[string]string{"#ffff00": "secondary", "#f5f5f5": "#eeeeee"}
				if diff := cmp.Diff(want, s.Themes.Light.Replacements); diff != "" {
					t.Errorf("replacements mismatch:\n%s", diff)
				}
			},
		},
		{
			name: "table entry", path: "light.replacements.#ffff00", value: "text",
			check: func(t *testing.T, s *AdvancedThemeSettings) {
				if s.Themes.Light.Replacements["#ffff00"] != "text" {
					t.Errorf("replacements = %v", s.Themes.Light.Replacements)
				}
			},
		},
		{
			name: "remove table entry", path: "dark.replacements.#222222", value: "",
			check: func(t *testing.T, s *AdvancedThemeSettings) {
				if _, ok := s.Themes.Dark.Replacements["#222222"]; ok {
					t.Error("entry not removed")
				}
				if s.Themes.Dark.Replacements["#000080"] != RolePrimary {
					t.Error("other entries lost")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			if err := s.Set(tt.path, tt.value); err != nil {
				t.Fatalf("Set(%q, %q): %v", tt.path, tt.value, err)
			}
			tt.check(t, s)
		})
	}
}

func TestSetLeavesOthersAlone(t *testing.T) {
	s := Defaults()
	if err := s.Set("dark.textColor", "#ffffff"); err != nil {
		t.Fatal(err)
	}

	want := Defaults()
	want.Themes.Dark.TextColor = "#ffffff"
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("unexpected changes (-want +got):\n%s", diff)
	}
}

func TestSetErrors(t *testing.T) {
	tests := []struct {
		path  string
		value string
	}{
		{"dark.nope", "x"},
		{"nope.primaryColor", "x"},
		{"intelligence.autoContrast", "maybe"},
		{"light.contrastMinRatio", "high"},
		{"light.replacements", "#ffff00"},
		{"rules.0.action", "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			s := Defaults()
			if err := s.Set(tt.path, tt.value); err == nil {
				t.Errorf("Set(%q, %q) should fail", tt.path, tt.value)
			}
			if diff := cmp.Diff(Defaults(), s); diff != "" {
				t.Errorf("failed Set modified settings:\n%s", diff)
			}
		})
	}
}

func TestDecodeAuto(t *testing.T) {
	fromJSON, err := DecodeAuto([]byte(`  {"centralizedColorSystem": false}`))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	fromYAML, err := DecodeAuto([]byte("centralizedColorSystem: false\n"))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if fromJSON.CentralizedColorSystem || fromYAML.CentralizedColorSystem {
		t.Error("value not decoded")
	}
	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Errorf("formats disagree:\n%s", diff)
	}
}
