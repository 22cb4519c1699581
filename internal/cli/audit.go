package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moeen/hemam-theme/internal/colour"
	"github.com/moeen/hemam-theme/internal/document"
)

// errAuditFailed marks a --strict audit that found unreadable text.
var errAuditFailed = errors.New("audit found text below the contrast threshold")

func newAuditCmd(a *app) *cobra.Command {
	var (
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "audit <file.html|https://url>",
		Short: "Audit the text colours of an HTML page",
		Long: `Resolve the colours of every element that renders text from the page's
<style> blocks and inline styles, then analyse each one against the theme.
@media (prefers-color-scheme) blocks follow --mode.

Remote pages are fetched over HTTPS only.`,
		Example: `  hemam-theme audit index.html
  hemam-theme audit https://example.com --mode dark -f json
  hemam-theme audit build/index.html --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, formatTable, formatJSON); err != nil {
				return err
			}

			doc, err := document.Load(cmd.Context(), args[0], document.WithLogger(a.logger.Named("document")))
			if err != nil {
				return err
			}
			repo, err := a.settings()
			if err != nil {
				return err
			}
			s := repo.Load()
			mode := a.mode()

			reports := document.Audit(doc, mode, s)
			summary := document.Summarise(reports, s.Theme(mode).ContrastMinRatio)
			a.logger.Debug("audit complete", "source", args[0], "elements", summary.Elements, "failing", summary.Failing)

			out := cmd.OutOrStdout()
			if format == formatJSON {
				if err := writeJSON(out, struct {
					Source   string                   `json:"source"`
					Mode     colour.Mode              `json:"mode"`
					Summary  document.Summary         `json:"summary"`
					Elements []document.ElementReport `json:"elements"`
				}{args[0], mode, summary, reports}); err != nil {
					return err
				}
			} else {
				table := NewTable([]string{"ELEMENT", "TEXT", "COLOUR", "BACKGROUND", "RATIO", "LEVEL", "SUGGESTED"})
				table.SetColumnMaxWidth(0, 40)
				table.SetColumnMaxWidth(1, 30)
				for _, r := range reports {
					an := r.Analysis
					suggested := ""
					if an.Changed() {
						suggested = swatch(out, an.Color)
					}
					table.AddRow([]string{
						r.Path,
						r.Text,
						swatch(out, an.OriginalColor),
						swatch(out, an.BackgroundColor),
						fmt.Sprintf("%.2f", an.ContrastRatio),
						colour.Level(an.ContrastRatio),
						suggested,
					})
				}
				fmt.Fprint(out, table.Render())
				fmt.Fprintf(out, "\n%d elements, %d below %.1f:1, %d adjusted, lowest ratio %.2f:1\n",
					summary.Elements, summary.Failing, s.Theme(mode).ContrastMinRatio, summary.Adjusted, summary.LowestRatio)
			}

			if strict && summary.Failing > 0 {
				return fmt.Errorf("%w: %d of %d elements", errAuditFailed, summary.Failing, summary.Elements)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any element fails the contrast threshold")
	return cmd
}
