package theme

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// fieldDecoder decodes one top-level field using the supplied decode func.
type fieldDecoder func(decode func(any) error) error

// assign replaces *dst wholesale with the decoded value.
func assign[T any](dst *T) fieldDecoder {
	return func(decode func(any) error) error {
		var v T
		if err := decode(&v); err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func (s *AdvancedThemeSettings) fields() map[string]fieldDecoder {
	return map[string]fieldDecoder{
		"mode":                   assign(&s.Mode),
		"themes":                 s.decodeThemes,
		"centralizedColorSystem": assign(&s.CentralizedColorSystem),
		"colorIntelligence":      assign(&s.ColorIntelligence),
		"rules":                  assign(&s.Rules),
	}
}

// replacementKeys records which modes of a themes object carried a
// replacements key. A null value counts as absent.
type replacementKeys struct {
	Light struct {
		Replacements *map[string]string `json:"replacements" yaml:"replacements"`
	} `json:"light" yaml:"light"`
	Dark struct {
		Replacements *map[string]string `json:"replacements" yaml:"replacements"`
	} `json:"dark" yaml:"dark"`
}

// decodeThemes replaces both palettes, then restores the default
// replacement table of any mode saved before the table existed.
func (s *AdvancedThemeSettings) decodeThemes(decode func(any) error) error {
	var themes Themes
	if err := decode(&themes); err != nil {
		return err
	}
	var keys replacementKeys
	if err := decode(&keys); err != nil {
		return err
	}

	defaults := Defaults().Themes
	if keys.Light.Replacements == nil {
		themes.Light.Replacements = defaults.Light.Replacements
	}
	if keys.Dark.Replacements == nil {
		themes.Dark.Replacements = defaults.Dark.Replacements
	}
	s.Themes = themes
	return nil
}

// Decode parses a persisted JSON blob and merges it shallowly over
// Defaults: each top-level key present in data replaces the default value
// of that key, absent keys keep their defaults, unknown keys are ignored.
func Decode(data []byte) (*AdvancedThemeSettings, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("theme: failed to parse settings: %w", err)
	}

	s := Defaults()
	fields := s.fields()
	for key, msg := range raw {
		set, ok := fields[key]
		if !ok {
			continue
		}
		if err := set(func(v any) error { return json.Unmarshal(msg, v) }); err != nil {
			return nil, fmt.Errorf("theme: failed to parse %q: %w", key, err)
		}
	}
	return s, nil
}

// DecodeYAML is Decode for YAML documents.
func DecodeYAML(data []byte) (*AdvancedThemeSettings, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("theme: failed to parse settings: %w", err)
	}

	s := Defaults()
	fields := s.fields()
	for key, node := range raw {
		set, ok := fields[key]
		if !ok {
			continue
		}
		if err := set(node.Decode); err != nil {
			return nil, fmt.Errorf("theme: failed to parse %q: %w", key, err)
		}
	}
	return s, nil
}

// Encode serialises the whole settings object as indented JSON.
func (s *AdvancedThemeSettings) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("theme: failed to marshal settings: %w", err)
	}
	return data, nil
}

// EncodeYAML serialises the whole settings object as YAML.
func (s *AdvancedThemeSettings) EncodeYAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("theme: failed to marshal settings: %w", err)
	}
	return data, nil
}
