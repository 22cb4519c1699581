// Package settings loads and saves the theme settings through a key-value
// store. Theme persistence is cosmetic, so nothing here fails loudly:
// unreadable data falls back to the defaults and failed writes are logged.
package settings

import (
	"errors"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/moeen/hemam-theme/internal/store"
	"github.com/moeen/hemam-theme/internal/theme"
)

// DefaultKey is the store key the settings blob lives under.
const DefaultKey = "moeen-theme-settings"

// Provider hands out the active theme settings.
type Provider interface {
	Load() *theme.AdvancedThemeSettings
}

// Repository is a Provider backed by a store.KV. The settings are read on
// first use and held in memory until Save, Reset or Reload.
type Repository struct {
	kv     store.KV
	key    string
	logger hclog.Logger

	mu     sync.Mutex
	cached *theme.AdvancedThemeSettings
}

// Option configures a Repository.
type Option func(*Repository)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(r *Repository) {
		if key != "" {
			r.key = key
		}
	}
}

// WithLogger sets the logger used for load and save warnings.
func WithLogger(l hclog.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRepository returns a Repository over kv.
func NewRepository(kv store.KV, opts ...Option) *Repository {
	r := &Repository{
		kv:     kv,
		key:    DefaultKey,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load returns a copy of the active settings. It never fails: a missing,
// corrupt or invalid blob yields theme.Defaults.
func (r *Repository) Load() *theme.AdvancedThemeSettings {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached == nil {
		r.cached = r.read()
	}
	return r.cached.Clone()
}

func (r *Repository) read() *theme.AdvancedThemeSettings {
	data, err := r.kv.Get(r.key)
	if errors.Is(err, store.ErrNotFound) {
		r.logger.Debug("no saved theme settings, using defaults", "key", r.key)
		return theme.Defaults()
	}
	if err != nil {
		r.logger.Warn("failed to read theme settings, using defaults", "key", r.key, "error", err)
		return theme.Defaults()
	}

	s, err := theme.Decode(data)
	if err != nil {
		r.logger.Warn("saved theme settings are corrupt, using defaults", "key", r.key, "error", err)
		return theme.Defaults()
	}
	if err := s.Validate(); err != nil {
		r.logger.Warn("saved theme settings are invalid, using defaults", "key", r.key, "error", err)
		return theme.Defaults()
	}
	s.Normalise()

	r.logger.Debug("loaded theme settings", "key", r.key)
	return s
}

// Save validates s and writes it in full. Invalid settings and write
// failures are logged and otherwise ignored; the in-memory copy only
// changes when the write succeeds.
func (r *Repository) Save(s *theme.AdvancedThemeSettings) {
	if err := r.Persist(s); err != nil {
		r.logger.Warn("theme settings not saved", "key", r.key, "error", err)
	}
}

// Persist is Save with the error returned, for callers that report it.
func (r *Repository) Persist(s *theme.AdvancedThemeSettings) error {
	if s == nil {
		return errors.New("settings: nil settings")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	out := s.Clone()
	out.Normalise()

	data, err := out.Encode()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.kv.Put(r.key, data); err != nil {
		return err
	}
	r.cached = out
	r.logger.Debug("saved theme settings", "key", r.key, "bytes", len(data))
	return nil
}

// Reset removes the saved blob so the next Load returns the defaults.
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.kv.Delete(r.key); err != nil {
		r.logger.Warn("failed to delete theme settings", "key", r.key, "error", err)
	}
	r.cached = nil
}

// Reload drops the in-memory copy so the next Load reads the store again.
func (r *Repository) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cached = nil
}

// Static is a Provider that always returns a copy of the same settings.
type Static struct {
	Settings *theme.AdvancedThemeSettings
}

// Load implements Provider. A nil Settings yields the defaults.
func (s Static) Load() *theme.AdvancedThemeSettings {
	if s.Settings == nil {
		return theme.Defaults()
	}
	return s.Settings.Clone()
}
