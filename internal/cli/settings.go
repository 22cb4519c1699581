package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moeen/hemam-theme/internal/compression"
	"github.com/moeen/hemam-theme/internal/security"
	"github.com/moeen/hemam-theme/internal/theme"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the saved theme settings",
		Long: `Show, edit, validate, export and import the theme settings held in the
configured store. Nothing is written unless the result validates.`,
	}

	cmd.AddCommand(
		newSettingsShowCmd(a),
		newSettingsSetCmd(a),
		newSettingsResetCmd(a),
		newSettingsValidateCmd(),
		newSettingsExportCmd(a),
		newSettingsImportCmd(a),
	)
	return cmd
}

func newSettingsShowCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the active settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format, formatJSON, formatYAML, formatTable); err != nil {
				return err
			}
			repo, err := a.settings()
			if err != nil {
				return err
			}
			s := repo.Load()

			out := cmd.OutOrStdout()
			switch format {
			case formatYAML:
				return writeYAML(out, s)
			case formatTable:
				renderSettings(out, s)
				return nil
			default:
				return writeJSON(out, s)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format (json, yaml, table)")
	return cmd
}

func renderSettings(out io.Writer, s *theme.AdvancedThemeSettings) {
	palette := NewTable([]string{"SETTING", "LIGHT", "DARK"})
	row := func(name string, get func(theme.ThemeColorConfig) string) {
		palette.AddRow([]string{name, get(s.Themes.Light), get(s.Themes.Dark)})
	}
	colourRow := func(name string, get func(theme.ThemeColorConfig) string) {
		row(name, func(c theme.ThemeColorConfig) string { return swatch(out, get(c)) })
	}
	colourRow("primary", func(c theme.ThemeColorConfig) string { return c.PrimaryColor })
	colourRow("secondary", func(c theme.ThemeColorConfig) string { return c.SecondaryColor })
	colourRow("background", func(c theme.ThemeColorConfig) string { return c.BackgroundColor })
	colourRow("text", func(c theme.ThemeColorConfig) string { return c.TextColor })
	row("accents", func(c theme.ThemeColorConfig) string { return strings.Join(c.AccentColors, " ") })
	row("avoid", func(c theme.ThemeColorConfig) string { return strings.Join(c.AvoidColors, " ") })
	row("contrast min", func(c theme.ThemeColorConfig) string { return fmt.Sprintf("%g", c.ContrastMinRatio) })
	row("shadows", func(c theme.ThemeColorConfig) string { return onOff(c.DynamicShadows) })
	row("gradients", func(c theme.ThemeColorConfig) string { return onOff(c.GradientSupport) })
	fmt.Fprint(out, palette.Render())

	ci := s.ColorIntelligence
	fmt.Fprintf(out, "\nIntelligence: autoContrast=%s adaptiveAccent=%s dynamicReplacement=%s shadowOptimization=%s gradientOptimization=%s\n",
		onOff(ci.AutoContrast), onOff(ci.AdaptiveAccent), onOff(ci.DynamicReplacement),
		onOff(ci.ShadowOptimization), onOff(ci.GradientOptimization))

	rules := NewTable([]string{"RULE", "ACTION", "TARGET", "THRESHOLD"})
	for _, r := range s.Rules {
		threshold := ""
		if r.Threshold != nil {
			threshold = fmt.Sprintf("%g", *r.Threshold)
		}
		rules.AddRow([]string{string(r.RuleType), string(r.Action), r.Target, threshold})
	}
	fmt.Fprintf(out, "\n%s", rules.Render())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func newSettingsSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Change one setting",
		Long: `Change one setting addressed by its JSON path. "light.", "dark." and
"intelligence." are shorthands for "themes.light.", "themes.dark." and
"colorIntelligence.". Lists take comma-separated items; replacement tables
take from=to pairs, or a single entry can be addressed directly.`,
		Example: `  hemam-theme settings set dark.primaryColor "#e46c0a"
  hemam-theme settings set light.accentColors "#ff9800,#ffb400"
  hemam-theme settings set dark.replacements.#000080 secondary
  hemam-theme settings set intelligence.autoContrast false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.settings()
			if err != nil {
				return err
			}
			s := repo.Load()
			if err := s.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := repo.Persist(s); err != nil {
				return fmt.Errorf("settings not saved: %w", err)
			}
			a.logger.Info("setting updated", "path", args[0], "value", args[1])
			return nil
		},
	}
}

func newSettingsResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard saved settings and return to the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.settings()
			if err != nil {
				return err
			}
			repo.Reset()
			fmt.Fprintln(cmd.OutOrStdout(), "Theme settings reset to defaults")
			return nil
		},
	}
}

func newSettingsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a settings file without importing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSettingsFile(args[0])
			if err != nil {
				return err
			}
			if err := s.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", args[0])
			return nil
		},
	}
}

func newSettingsExportCmd(a *app) *cobra.Command {
	var (
		format   string
		compress bool
	)
	cmd := &cobra.Command{
		Use:   "export <file|->",
		Short: "Write the active settings to a file",
		Long: `Write the active settings as JSON or YAML. The format follows the file
extension unless --format is given. Files ending in .xz or .gz are
compressed accordingly; --compress xz-compresses any other name.`,
		Example: `  hemam-theme settings export theme.json
  hemam-theme settings export theme.yaml.xz
  hemam-theme settings export - -f yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if format == "" {
				format = formatFromPath(path)
			}
			if err := checkFormat(format, formatJSON, formatYAML); err != nil {
				return err
			}

			repo, err := a.settings()
			if err != nil {
				return err
			}
			s := repo.Load()

			var data []byte
			if format == formatYAML {
				data, err = s.EncodeYAML()
			} else {
				data, err = s.Encode()
				data = append(data, '\n')
			}
			if err != nil {
				return err
			}

			if path == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			packing := compression.FromPath(path)
			if packing == compression.None && compress {
				packing = compression.Xz
			}
			data, err = compression.Compress(data, packing)
			if err != nil {
				return err
			}

			if err := os.WriteFile(path, data, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			a.logger.Info("settings exported", "path", path, "format", format, "compression", packing)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (json, yaml; default from extension)")
	cmd.Flags().BoolVar(&compress, "compress", false, "xz-compress the output")
	return cmd
}

func newSettingsImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load settings from a file and save them",
		Long: `Load settings from a JSON or YAML file, optionally xz, gzip or bzip2
compressed, and save them. Keys missing from the file keep their default
values. The file is rejected if it does not validate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSettingsFile(args[0])
			if err != nil {
				return err
			}
			repo, err := a.settings()
			if err != nil {
				return err
			}
			if err := repo.Persist(s); err != nil {
				return fmt.Errorf("settings not imported: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported theme settings from %s\n", args[0])
			return nil
		},
	}
}

// readSettingsFile reads, decompresses and decodes a settings file.
func readSettingsFile(path string) (*theme.AdvancedThemeSettings, error) {
	f, err := os.Open(path) // #nosec G304 - user-supplied settings file
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := security.ReadAllLimited(f, security.MaxSettingsSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	data, _, err := compression.Decompress(raw, security.MaxSettingsSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var s *theme.AdvancedThemeSettings
	switch formatFromPath(compression.StripExtension(path)) {
	case formatYAML:
		s, err = theme.DecodeYAML(data)
	default:
		s, err = theme.DecodeAuto(data)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(compression.StripExtension(path))) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}
