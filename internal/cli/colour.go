package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moeen/hemam-theme/internal/colour"
)

func newNormaliseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "normalise <colour>...",
		Aliases: []string{"normalize"},
		Short:   "Convert colours to canonical hex",
		Long: `Convert colours to canonical lowercase #rrggbb.

Accepts #rgb, #rrggbb, rgb()/rgba() and the names white, black, red, green,
blue and transparent. Anything else becomes #000000.`,
		Example: `  hemam-theme normalise "#FB0" "rgb(255, 152, 0)" white`,
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				fmt.Fprintln(out, swatch(out, colour.Normalise(arg)))
			}
		},
	}
}

func newContrastCmd() *cobra.Command {
	var minRatio float64
	cmd := &cobra.Command{
		Use:     "contrast <foreground> <background>",
		Short:   "Measure the WCAG contrast ratio of a colour pair",
		Example: `  hemam-theme contrast "#777777" white --min 4.5`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRatio(minRatio); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fg, bg := colour.Normalise(args[0]), colour.Normalise(args[1])
			ratio := colour.ContrastRatio(fg, bg)

			fmt.Fprintf(out, "Foreground: %s\n", swatch(out, fg))
			fmt.Fprintf(out, "Background: %s\n", swatch(out, bg))
			fmt.Fprintf(out, "Ratio:      %.2f:1\n", ratio)
			fmt.Fprintf(out, "Level:      %s\n", colour.Level(ratio))
			fmt.Fprintf(out, "Minimum:    %.2f (%s)\n", minRatio, passFail(ratio >= minRatio))
			if colourOutput(out) {
				fmt.Fprintln(out, colour.Sample(fg, bg, "Sample text"))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&minRatio, "min", colour.MinContrastAA, "minimum contrast ratio to check against")
	return cmd
}

func newAdjustCmd(a *app) *cobra.Command {
	var minRatio float64
	cmd := &cobra.Command{
		Use:   "adjust <foreground> <background>",
		Short: "Repair a foreground colour until it meets a contrast ratio",
		Long: `Step the foreground towards black (light mode) or white (dark mode) until
it reaches the minimum contrast against the background. When stepping does
not get there, the mode's fallback colour is printed instead.`,
		Example: `  hemam-theme adjust "#777777" white
  hemam-theme adjust "#333333" "#121212" --mode dark --min 7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRatio(minRatio); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fg, bg := colour.Normalise(args[0]), colour.Normalise(args[1])
			adjusted := colour.AdjustForContrast(fg, bg, minRatio, a.mode())

			a.logger.Debug("adjusted colour", "from", fg, "to", adjusted,
				"before", colour.ContrastRatio(fg, bg), "after", colour.ContrastRatio(adjusted, bg))

			fmt.Fprintln(out, swatch(out, adjusted))
			return nil
		},
	}
	cmd.Flags().Float64Var(&minRatio, "min", colour.MinContrastAA, "minimum contrast ratio")
	return cmd
}

func checkRatio(r float64) error {
	if r < colour.MinRatio || r > colour.MaxRatio {
		return fmt.Errorf("minimum ratio %.2f is outside %.0f..%.0f", r, colour.MinRatio, colour.MaxRatio)
	}
	return nil
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
