package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moeen/hemam-theme/internal/theme"
)

func newCSSCmd(a *app) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the theme as CSS custom properties",
		Long: `Print the active mode's theme as a block of CSS custom properties:
brand colours, text and background, accents, shadow and gradient.`,
		Example: `  hemam-theme css --mode dark --selector '[data-theme="dark"]' > dark.css`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.settings()
			if err != nil {
				return err
			}
			vars := theme.CSSVariables(repo.Load(), a.mode())
			fmt.Fprint(cmd.OutOrStdout(), theme.RenderCSS(selector, vars))
			return nil
		},
	}

	cmd.Flags().StringVar(&selector, "selector", ":root", "CSS selector the properties are declared under")
	return cmd
}
