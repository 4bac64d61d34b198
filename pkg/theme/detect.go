package theme

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Detect picks a theme for the current terminal. Reports are written to
// stderr, so detection inspects stderr rather than stdout.
//
// The plain theme is selected when NO_COLOR is set, when stderr is not a
// terminal, or when the terminal advertises no color support. Otherwise the
// background luminance chooses between the dark and light presets.
func Detect() Theme {
	if os.Getenv("NO_COLOR") != "" {
		return Plain()
	}

	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return Plain()
	}

	output := termenv.NewOutput(os.Stderr)
	if output.ColorProfile() == termenv.Ascii {
		return Plain()
	}

	if output.HasDarkBackground() {
		return Dark()
	}
	return Light()
}
