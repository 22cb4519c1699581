package document

import (
	"math"

	"github.com/moeen/hemam-theme/internal/colour"
	"github.com/moeen/hemam-theme/internal/intelligence"
	"github.com/moeen/hemam-theme/internal/theme"
)

// ElementReport is the analysis of one text-bearing element.
type ElementReport struct {
	Path     string                `json:"path"`
	Text     string                `json:"text"`
	Analysis intelligence.Analysis `json:"analysis"`
}

// Audit analyses every text-bearing element of d for mode.
func Audit(d *Document, mode colour.Mode, s *theme.AdvancedThemeSettings) []ElementReport {
	if s == nil {
		s = theme.Defaults()
	}

	elements := d.Elements(mode)
	reports := make([]ElementReport, 0, len(elements))
	for _, el := range elements {
		reports = append(reports, ElementReport{
			Path:     el.Path,
			Text:     el.Text,
			Analysis: intelligence.Analyse(el, mode, s),
		})
	}
	return reports
}

// Summary totals an audit.
type Summary struct {
	Elements int `json:"elements"`
	// Failing counts elements whose original colours miss the threshold.
	Failing int `json:"failing"`
	// Adjusted counts elements the analyser changed.
	Adjusted int `json:"adjusted"`
	// Unresolved counts elements still below the threshold after analysis.
	Unresolved int `json:"unresolved"`
	// LowestRatio is the worst original contrast ratio seen.
	LowestRatio float64 `json:"lowestRatio"`
}

// Summarise totals reports against minRatio.
func Summarise(reports []ElementReport, minRatio float64) Summary {
	sum := Summary{Elements: len(reports), LowestRatio: colour.MaxRatio}
	for _, r := range reports {
		a := r.Analysis
		if a.ContrastRatio < minRatio {
			sum.Failing++
		}
		if a.Changed() {
			sum.Adjusted++
		}
		if !a.MeetsStandard {
			sum.Unresolved++
		}
		sum.LowestRatio = math.Min(sum.LowestRatio, a.ContrastRatio)
	}
	if len(reports) == 0 {
		sum.LowestRatio = 0
	}
	return sum
}
