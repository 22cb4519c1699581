// Package cli provides the command-line interface for hemam-theme.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/moeen/hemam-theme/internal/colour"
	"github.com/moeen/hemam-theme/internal/config"
	"github.com/moeen/hemam-theme/internal/settings"
	"github.com/moeen/hemam-theme/internal/store"
	"github.com/moeen/hemam-theme/internal/version"
)

const appName = "hemam-theme"

// Output formats accepted by -f/--format.
const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// app carries state shared by every command of one invocation.
type app struct {
	flags   *config.Flags
	verbose bool
	quiet   bool

	cfg    config.Config
	logger hclog.Logger
	kv     store.KV
	repo   *settings.Repository
}

// NewRootCmd builds the command tree. Each call returns an independent tree,
// so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{logger: hclog.NewNullLogger()})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Colour contrast and theme adjustment engine",
		Long: `hemam-theme keeps UI colours legible. It measures WCAG contrast, repairs
failing foreground colours, swaps colours the theme avoids and derives
accents, shadows and gradients for light and dark modes.

Theme settings are stored in a key-value backend (file, sqlite or memory)
and can be exported, imported and edited from the command line.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	a.flags = config.RegisterFlags(pf)

	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(
		newVersionCmd(),
		newNormaliseCmd(),
		newContrastCmd(),
		newAdjustCmd(a),
		newAccentCmd(a),
		newReplaceCmd(a),
		newAnalyseCmd(a),
		newAuditCmd(a),
		newCSSCmd(a),
		newSettingsCmd(a),
	)
	a.closeAfter(root)

	return root
}

// closeAfter makes every command close the settings store when it returns.
// PersistentPostRun is skipped when a command fails, so it cannot do this.
func (a *app) closeAfter(cmd *cobra.Command) {
	for _, c := range cmd.Commands() {
		a.closeAfter(c)
	}
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			defer a.close()
			return run(c, args)
		}
	}
}

// Execute runs the CLI and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewBuilder().WithEnvConfig().WithFlags(a.flags).Build()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   appName,
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
	a.logger.Debug("configuration resolved",
		"store", cfg.Store, "path", cfg.StorePath, "key", cfg.SettingsKey, "mode", cfg.Mode)
	return nil
}

// settings opens the configured store on first use.
func (a *app) settings() (*settings.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	kv, err := a.cfg.OpenStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	a.kv = kv
	a.repo = settings.NewRepository(kv,
		settings.WithKey(a.cfg.SettingsKey),
		settings.WithLogger(a.logger.Named("settings")),
	)
	return a.repo, nil
}

func (a *app) close() {
	if a.kv == nil {
		return
	}
	if err := a.kv.Close(); err != nil {
		a.logger.Warn("failed to close settings store", "error", err)
	}
	a.kv, a.repo = nil, nil
}

func (a *app) mode() colour.Mode {
	return a.cfg.Mode
}

// colourOutput reports whether w is a terminal that can show swatches.
func colourOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatch prefixes c with a colour block when w is a terminal.
func swatch(w io.Writer, c string) string {
	if !colourOutput(w) {
		return c
	}
	return colour.Swatch(c, 4) + " " + c
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q (expected one of %v)", format, allowed)
}

func newVersionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format, formatText, formatJSON); err != nil {
				return err
			}
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, json)")
	return cmd
}
