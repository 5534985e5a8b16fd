package console

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Color is an ANSI escape sequence selecting a text color.
type Color string

const Reset Color = "\033[0m"

// bright colors only, for readability on dark and light terminals
var stdoutPalette = []Color{
	"\033[1;32m", // green
	"\033[1;34m", // blue
	"\033[1;36m", // cyan
	"\033[1;92m", // high intensity green
	"\033[1;94m", // high intensity blue
	"\033[1;96m", // high intensity cyan
}

var stderrPalette = []Color{
	"\033[1;91m", // high intensity red
	"\033[1;93m", // high intensity yellow
	"\033[1;95m", // high intensity magenta
	"\033[1;31m", // red
	"\033[1;33m", // yellow
	"\033[1;35m", // magenta
}

// ColorFor returns the color of the given stream of the tool at the
// given registry index. Colors repeat once the palette is exhausted.
func ColorFor(index int, stream Stream) Color {
	palette := stdoutPalette
	if stream == Stderr {
		palette = stderrPalette
	}

	if index < 0 {
		index = -index
	}

	return palette[index%len(palette)]
}

type ColorMode string

const (
	ColorAlways ColorMode = "always"
	ColorAuto   ColorMode = "auto"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAlways, ColorAuto, ColorNever:
		return mode, nil
	case "":
		return ColorAlways, nil
	default:
		return "", fmt.Errorf("invalid color mode %q, expected one of: always, auto, never", s)
	}
}

// Enabled reports whether output written to f should be colored.
func (m ColorMode) Enabled(f *os.File) bool {
	switch m {
	case ColorNever:
		return false
	case ColorAuto:
		return f != nil && term.IsTerminal(int(f.Fd()))
	default:
		return true
	}
}
