package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns an ANSI truecolour block for a colour string.
// Width specifies how many characters wide the block should be.
func Swatch(c string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	rgb, _ := HexToRGB(Normalise(c))
	return bgSequence(rgb) + strings.Repeat(" ", width) + ansiReset
}

// Sample renders text in fg on bg, the way the pair would look in the UI.
func Sample(fg, bg, text string) string {
	fgRGB, _ := HexToRGB(Normalise(fg))
	bgRGB, _ := HexToRGB(Normalise(bg))
	return fmt.Sprintf("%s%s%d;%d;%d%s %s %s",
		bgSequence(bgRGB), ansiFgPrefix, fgRGB.R, fgRGB.G, fgRGB.B, ansiSuffix, text, ansiReset)
}

func bgSequence(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}
