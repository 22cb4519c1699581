// Package config resolves runtime configuration from defaults, environment
// variables and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/moeen/hemam-theme/internal/colour"
	"github.com/moeen/hemam-theme/internal/settings"
	"github.com/moeen/hemam-theme/internal/store"
)

// Environment variables read by WithEnvConfig.
const (
	EnvStore     = "HEMAM_THEME_STORE"
	EnvStorePath = "HEMAM_THEME_STORE_PATH"
	EnvKey       = "HEMAM_THEME_KEY"
	EnvMode      = "HEMAM_THEME_MODE"
	EnvLogLevel  = "HEMAM_THEME_LOG_LEVEL"
)

// Flag names bound by RegisterFlags.
const (
	FlagStore     = "store"
	FlagStorePath = "store-path"
	FlagKey       = "settings-key"
	FlagMode      = "mode"
	FlagLogLevel  = "log-level"
)

// Config holds the resolved runtime configuration.
type Config struct {
	// Store selects the settings backend.
	Store store.Kind
	// StorePath is the backing file; empty means store.DefaultPath.
	StorePath string
	// SettingsKey is the key the settings blob is stored under.
	SettingsKey string
	// Mode is the active theme mode.
	Mode colour.Mode
	// LogLevel is an hclog level name.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store:       store.KindFile,
		SettingsKey: settings.DefaultKey,
		Mode:        colour.ModeLight,
		LogLevel:    hclog.Warn.String(),
	}
}

// Level returns the parsed log level, or Warn when it is not recognised.
func (c Config) Level() hclog.Level {
	if l := hclog.LevelFromString(c.LogLevel); l != hclog.NoLevel {
		return l
	}
	return hclog.Warn
}

// OpenStore opens the configured backend.
func (c Config) OpenStore() (store.KV, error) {
	return store.Open(c.Store, c.StorePath)
}

// Flags holds the values bound by RegisterFlags.
type Flags struct {
	fs        *pflag.FlagSet
	store     string
	storePath string
	key       string
	mode      string
	logLevel  string
}

// RegisterFlags binds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}
	fs.StringVar(&f.store, FlagStore, string(d.Store), "settings backend (memory, file, sqlite)")
	fs.StringVar(&f.storePath, FlagStorePath, "", "settings file or database path (default: user config dir)")
	fs.StringVar(&f.key, FlagKey, d.SettingsKey, "key the settings are stored under")
	fs.StringVarP(&f.mode, FlagMode, "m", string(d.Mode), "theme mode (light, dark)")
	fs.StringVar(&f.logLevel, FlagLogLevel, d.LogLevel, "log level (trace, debug, info, warn, error)")
	return f
}

// Builder assembles a Config from its sources.
type Builder struct {
	config Config
	useEnv bool
	flags  *Flags
}

// NewBuilder starts from Default.
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(c Config) *Builder {
	b.config = c
	return b
}

// WithEnvConfig applies the HEMAM_THEME_* environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithFlags applies flags the user set explicitly. Flags override the
// environment.
func (b *Builder) WithFlags(f *Flags) *Builder {
	b.flags = f
	return b
}

// Build resolves and validates the configuration.
func (b *Builder) Build() (Config, error) {
	raw := map[string]string{
		FlagStore:     string(b.config.Store),
		FlagStorePath: b.config.StorePath,
		FlagKey:       b.config.SettingsKey,
		FlagMode:      string(b.config.Mode),
		FlagLogLevel:  b.config.LogLevel,
	}

	if b.useEnv {
		for name, env := range map[string]string{
			FlagStore:     EnvStore,
			FlagStorePath: EnvStorePath,
			FlagKey:       EnvKey,
			FlagMode:      EnvMode,
			FlagLogLevel:  EnvLogLevel,
		} {
			if v := strings.TrimSpace(os.Getenv(env)); v != "" {
				raw[name] = v
			}
		}
	}

	if f := b.flags; f != nil && f.fs != nil {
		for name, v := range map[string]string{
			FlagStore:     f.store,
			FlagStorePath: f.storePath,
			FlagKey:       f.key,
			FlagMode:      f.mode,
			FlagLogLevel:  f.logLevel,
		} {
			if f.fs.Changed(name) {
				raw[name] = v
			}
		}
	}

	kind, err := store.ParseKind(strings.ToLower(raw[FlagStore]))
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	mode, err := colour.ParseMode(raw[FlagMode])
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if hclog.LevelFromString(raw[FlagLogLevel]) == hclog.NoLevel {
		return Config{}, fmt.Errorf("config: invalid log level %q", raw[FlagLogLevel])
	}
	key := raw[FlagKey]
	if key == "" {
		key = settings.DefaultKey
	}

	return Config{
		Store:       kind,
		StorePath:   raw[FlagStorePath],
		SettingsKey: key,
		Mode:        mode,
		LogLevel:    strings.ToLower(raw[FlagLogLevel]),
	}, nil
}

// FromEnv is NewBuilder().WithEnvConfig().Build().
func FromEnv() (Config, error) {
	return NewBuilder().WithEnvConfig().Build()
}
