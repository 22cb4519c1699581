package colour

import (
	"math"
	"regexp"
	"testing"
)

var samplePalette = []string{
	"#000000", "#ffffff", "#777777", "#ff9800", "#ffb400", "#ff6b6b",
	"#121212", "#000080", "#00008b", "#222222", "#3a3a3a", "#4fc3f7",
	"#abc", "rgb(10, 200, 30)",
}

func TestContrastRatioBlackWhite(t *testing.T) {
	got := ContrastRatio("#ffffff", "#000000")
	if math.Abs(got-21) > 1e-9 {
		t.Errorf("ContrastRatio(white, black) = %v, want 21", got)
	}
}

func TestContrastRatioKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 string
		want   float64
	}{
		{name: "grey 777 on white", c1: "#777777", c2: "#ffffff", want: 4.48},
		{name: "grey 595959 on white", c1: "#595959", c2: "#ffffff", want: 7.0},
		{name: "shorthand equals long form", c1: "#fff", c2: "#000", want: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContrastRatio(tt.c1, tt.c2)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("ContrastRatio(%s, %s) = %.4f, want about %.2f", tt.c1, tt.c2, got, tt.want)
			}
		})
	}
}

func TestContrastRatioProperties(t *testing.T) {
	for _, a := range samplePalette {
		if got := ContrastRatio(a, a); math.Abs(got-1) > 1e-12 {
			t.Errorf("self contrast of %s = %v, want 1", a, got)
		}
		for _, b := range samplePalette {
			ab := ContrastRatio(a, b)
			ba := ContrastRatio(b, a)
			if ab != ba {
				t.Errorf("ContrastRatio not symmetric for %s/%s: %v vs %v", a, b, ab, ba)
			}
			if ab < MinRatio || ab > MaxRatio+1e-9 {
				t.Errorf("ContrastRatio(%s, %s) = %v out of bounds", a, b, ab)
			}
		}
	}
}

func TestContrastRatioUnparsable(t *testing.T) {
	if got := ContrastRatio("garbage", "#ffffff"); got != 1 {
		t.Errorf("ContrastRatio(garbage, white) = %v, want 1", got)
	}
	if got := ContrastRatio("#000000", ""); got != 1 {
		t.Errorf("ContrastRatio(black, empty) = %v, want 1", got)
	}
}

func TestMeetsContrastStandard(t *testing.T) {
	if !MeetsContrastStandard("#000000", "#ffffff", MinContrastAA) {
		t.Error("black on white should pass AA")
	}
	if MeetsContrastStandard("#777777", "#ffffff", MinContrastAA) {
		t.Error("#777777 on white should fail AA")
	}
	if !MeetsContrastStandard("#777777", "#ffffff", MinContrastAALarge) {
		t.Error("#777777 on white should pass AA large")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{21, "AAA"},
		{7, "AAA"},
		{5, "AA"},
		{3.5, "AA Large"},
		{1, "Fail"},
	}
	for _, tt := range tests {
		if got := Level(tt.ratio); got != tt.want {
			t.Errorf("Level(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}

func TestAdjustForContrastLightScenario(t *testing.T) {
	got := AdjustForContrast("#777777", "#ffffff", MinContrastAA, ModeLight)
	if got != "#6d6d6d" {
		t.Errorf("AdjustForContrast(#777777, white) = %s, want #6d6d6d", got)
	}
	if !MeetsContrastStandard(got, "#ffffff", MinContrastAA) {
		t.Errorf("adjusted colour %s does not meet AA", got)
	}
}

func TestAdjustForContrastDarkLightens(t *testing.T) {
	got := AdjustForContrast("#444444", DarkBackground, MinContrastAA, ModeDark)
	if !MeetsContrastStandard(got, DarkBackground, MinContrastAA) {
		t.Fatalf("adjusted colour %s does not meet AA on %s", got, DarkBackground)
	}
	rgb, _ := HexToRGB(got)
	if rgb.R <= 0x44 {
		t.Errorf("dark mode should lighten, got %s", got)
	}
}

func TestAdjustForContrastUnchanged(t *testing.T) {
	tests := []struct {
		name string
		fg   string
		bg   string
	}{
		{name: "already compliant", fg: "#000000", bg: "#ffffff"},
		{name: "already compliant shorthand", fg: "#000", bg: "#fff"},
		{name: "unparsable foreground", fg: "nope", bg: "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustForContrast(tt.fg, tt.bg, MinContrastAA, ModeLight); got != tt.fg {
				t.Errorf("AdjustForContrast(%q, %q) = %q, want input unchanged", tt.fg, tt.bg, got)
			}
		})
	}
}

func TestAdjustForContrastFallback(t *testing.T) {
	// Nothing reaches 21:1 against mid grey, so the budget runs out.
	if got := AdjustForContrast("#808080", "#808080", 21, ModeLight); got != "#000000" {
		t.Errorf("light fallback = %s, want #000000", got)
	}
	if got := AdjustForContrast("#808080", "#808080", 21, ModeDark); got != "#ffffff" {
		t.Errorf("dark fallback = %s, want #ffffff", got)
	}
	// Unparsable background never passes.
	if got := AdjustForContrast("#808080", "garbage", MinContrastAA, ModeLight); got != "#000000" {
		t.Errorf("unparsable background = %s, want #000000", got)
	}
}

func TestAdjustForContrastConvergence(t *testing.T) {
	for _, mode := range []Mode{ModeLight, ModeDark} {
		fallback := "#000000"
		if mode == ModeDark {
			fallback = "#ffffff"
		}
		for _, fg := range samplePalette {
			for _, bg := range samplePalette {
				got := AdjustForContrast(fg, bg, MinContrastAA, mode)
				if !MeetsContrastStandard(got, bg, MinContrastAA) && got != fallback {
					t.Errorf("%s: AdjustForContrast(%s, %s) = %s neither passes nor is the fallback", mode, fg, bg, got)
				}
			}
		}
	}
}

func TestOptimisedShadow(t *testing.T) {
	tests := []struct {
		mode    Mode
		opacity float64
		want    string
	}{
		{ModeLight, 0.1, "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.05)"},
		{ModeDark, 0.1, "0 4px 6px -1px rgba(0, 0, 0, 0.3), 0 2px 4px -2px rgba(0, 0, 0, 0.2)"},
		{ModeLight, 0.25, "0 4px 6px -1px rgba(0, 0, 0, 0.25), 0 2px 4px -2px rgba(0, 0, 0, 0.125)"},
	}
	for _, tt := range tests {
		if got := OptimisedShadow(tt.mode, tt.opacity); got != tt.want {
			t.Errorf("OptimisedShadow(%s, %v) =\n  %s\nwant\n  %s", tt.mode, tt.opacity, got, tt.want)
		}
	}
}

func TestOptimisedGradient(t *testing.T) {
	pattern := regexp.MustCompile(`^linear-gradient\(135deg, (#[0-9a-f]{6}) 0%, (#[0-9a-f]{6}) 100%\)$`)

	for _, mode := range []Mode{ModeLight, ModeDark} {
		got := OptimisedGradient("#ff9800", "#4fc3f7", mode, DefaultGradientAngle)
		m := pattern.FindStringSubmatch(got)
		if m == nil {
			t.Fatalf("%s: unexpected gradient %q", mode, got)
		}
		for _, c := range m[1:] {
			if !MeetsContrastStandard(c, mode.Background(), MinContrastAA) {
				t.Errorf("%s: gradient endpoint %s not legible on %s", mode, c, mode.Background())
			}
		}
	}

	if got := OptimisedGradient("#000000", "#111111", ModeLight, 90); got != "linear-gradient(90deg, #000000 0%, #111111 100%)" {
		t.Errorf("compliant endpoints changed: %s", got)
	}
}
