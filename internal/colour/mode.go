package colour

import (
	"fmt"
	"strings"
)

// Mode selects which half of a theme is active.
// Light mode puts dark text on a light background; dark mode the reverse.
type Mode string

const (
	// ModeLight is a light theme (dark text on light background).
	ModeLight Mode = "light"
	// ModeDark is a dark theme (light text on dark background).
	ModeDark Mode = "dark"
)

// Canonical backgrounds used when a mode needs a reference surface.
const (
	LightBackground = "#ffffff"
	DarkBackground  = "#121212"
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	return string(m)
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

// Background returns the canonical background colour for the mode.
func (m Mode) Background() string {
	if m == ModeDark {
		return DarkBackground
	}
	return LightBackground
}

// ParseMode parses a mode name, ignoring case and surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return "", fmt.Errorf("invalid theme mode %q (expected light or dark)", s)
	}
}
