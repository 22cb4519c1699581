package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Path shorthands accepted by Set.
var pathAliases = map[string][]string{
	"light":        {"themes", "light"},
	"dark":         {"themes", "dark"},
	"intelligence": {"colorIntelligence"},
}

// optionalField returns the value Set assumes for a field that omitempty
// dropped, or nil for unknown names.
func optionalField(name string) any {
	switch name {
	case "avoidColors":
		return []any{}
	case "replacements":
		return map[string]any{}
	default:
		return nil
	}
}

// Set assigns one setting addressed by a dotted JSON path such as
// "themes.dark.primaryColor" or, with shorthands, "dark.primaryColor" and
// "intelligence.autoContrast". The value is parsed according to the
// current type: booleans and numbers as such, lists as comma-separated
// items, replacement tables as "from=to" pairs. Replacement entries can be
// addressed directly ("dark.replacements.#000080"); an empty value removes
// one. The result is not validated.
func (s *AdvancedThemeSettings) Set(path, value string) error {
	segs := strings.Split(strings.TrimSpace(path), ".")
	if alias, ok := pathAliases[segs[0]]; ok {
		segs = append(slices.Clone(alias), segs[1:]...)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("theme: failed to marshal settings: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("theme: failed to parse settings: %w", err)
	}

	cur := doc
	for i, seg := range segs[:len(segs)-1] {
		next := cur[seg]
		if next == nil {
			next = optionalField(seg)
		}
		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("theme: unknown setting %q", strings.Join(segs[:i+1], "."))
		}
		cur[seg] = m
		cur = m
	}

	last := segs[len(segs)-1]
	inTable := len(segs) > 1 && segs[len(segs)-2] == "replacements"

	old, ok := cur[last]
	if old == nil && !inTable {
		if opt := optionalField(last); opt != nil {
			old, ok = opt, true
		}
	}
	switch {
	case ok:
	case inTable:
		old = ""
	default:
		return fmt.Errorf("theme: unknown setting %q", path)
	}

	if inTable && strings.TrimSpace(value) == "" {
		delete(cur, last)
	} else {
		parsed, err := parseValue(old, value)
		if err != nil {
			return fmt.Errorf("theme: %s: %w", path, err)
		}
		cur[last] = parsed
	}

	data, err = json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("theme: failed to marshal settings: %w", err)
	}
	updated, err := Decode(data)
	if err != nil {
		return err
	}
	*s = *updated
	return nil
}

func parseValue(old any, value string) (any, error) {
	value = strings.TrimSpace(value)

	switch old.(type) {
	case bool:
		return strconv.ParseBool(value)
	case float64:
		return strconv.ParseFloat(value, 64)
	case []any:
		items := []any{}
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	case map[string]any:
		table := map[string]any{}
		for _, pair := range strings.Split(value, ",") {
			if strings.TrimSpace(pair) == "" {
				continue
			}
			from, to, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("expected from=to pairs, got %q", pair)
			}
			table[strings.TrimSpace(from)] = strings.TrimSpace(to)
		}
		return table, nil
	case nil:
		// Unset optional numbers such as a rule threshold.
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f, nil
		}
		return value, nil
	default:
		return value, nil
	}
}

// DecodeAuto decodes JSON or YAML, picking JSON when the document starts
// with '{'.
func DecodeAuto(data []byte) (*AdvancedThemeSettings, error) {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return Decode(data)
	}
	return DecodeYAML(data)
}
