package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moeen/hemam-theme/internal/colour"
	"github.com/moeen/hemam-theme/internal/intelligence"
)

func newAccentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accent <background>",
		Short: "Pick the most legible accent colour for a background",
		Long: `Pick the accent with the highest contrast against the background among the
theme's accents that meet its minimum ratio. When none do, the first accent
is returned.`,
		Example: `  hemam-theme accent "#121212" --mode dark`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.settings()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			accent := intelligence.AdaptiveAccent(colour.Normalise(args[0]), a.mode(), repo.Load())
			fmt.Fprintln(out, swatch(out, accent))
			return nil
		},
	}
}

func newReplaceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replace <colour>",
		Short: "Swap a colour the theme avoids for its replacement",
		Long: `Print the replacement for a colour on the active mode's avoid list.
Colours the theme does not avoid are printed unchanged.`,
		Example: `  hemam-theme replace "#000080" --mode dark`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.settings()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			c := colour.Normalise(args[0])
			replaced := intelligence.ReplacementColour(c, a.mode(), repo.Load())
			if replaced != c {
				a.logger.Info("colour replaced", "from", c, "to", replaced)
			}
			fmt.Fprintln(out, swatch(out, replaced))
			return nil
		},
	}
}

func newAnalyseCmd(a *app) *cobra.Command {
	var (
		style  = intelligence.MapStyle{}
		format string
	)
	var fg, bg, border, bgVar string

	cmd := &cobra.Command{
		Use:     "analyse",
		Aliases: []string{"analyze"},
		Short:   "Analyse a component's colours against the theme",
		Long: `Run the full colour intelligence pipeline on one component: contrast
repair, avoid-list replacement, shadow, gradient and accent suggestions.`,
		Example: `  hemam-theme analyse --color "#777777" --background white
  hemam-theme analyse --color "#000080" --mode dark -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format, formatText, formatJSON, formatYAML); err != nil {
				return err
			}
			for prop, v := range map[string]string{
				intelligence.PropColor:           fg,
				intelligence.PropBackgroundColor: bg,
				intelligence.PropBorderColor:     border,
				intelligence.PropBackgroundVar:   bgVar,
			} {
				if v != "" {
					style[prop] = v
				}
			}

			repo, err := a.settings()
			if err != nil {
				return err
			}
			result := intelligence.NewAnalyser(repo).Analyse(style, a.mode())

			out := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return writeJSON(out, result)
			case formatYAML:
				return writeYAML(out, result)
			}

			fmt.Fprintf(out, "Colour:      %s\n", swatch(out, result.Color))
			fmt.Fprintf(out, "Background:  %s\n", swatch(out, result.BackgroundColor))
			if result.BorderColor != "" {
				fmt.Fprintf(out, "Border:      %s\n", swatch(out, result.BorderColor))
			}
			fmt.Fprintf(out, "Contrast:    %.2f:1 -> %.2f:1 (%s)\n",
				result.ContrastRatio, result.FinalContrastRatio, passFail(result.MeetsStandard))
			if result.Accent != "" {
				fmt.Fprintf(out, "Accent:      %s\n", swatch(out, result.Accent))
			}
			if result.Shadow != "" {
				fmt.Fprintf(out, "Shadow:      %s\n", result.Shadow)
			}
			if result.Gradient != "" {
				fmt.Fprintf(out, "Gradient:    %s\n", result.Gradient)
			}
			if result.Changed() {
				fmt.Fprintf(out, "Adjustments:\n  %s\n", strings.Join(result.Adjustments, "\n  "))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&fg, "color", "", "foreground colour")
	f.StringVar(&bg, "background", "", "background colour (default: --background-var, then the theme background)")
	f.StringVar(&border, "border", "", "border colour")
	f.StringVar(&bgVar, "background-var", "", "value of the --background custom property")
	f.StringVarP(&format, "format", "f", formatText, "output format (text, json, yaml)")
	_ = cmd.MarkFlagRequired("color")
	return cmd
}
