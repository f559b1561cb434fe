package printers

import (
	"io"

	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

// DetectColor turns color off unless w is a color terminal. NO_COLOR and
// CLICOLOR_FORCE are honored, so output piped to a file stays plain unless
// forced.
func DetectColor(w io.Writer) {
	color.NoColor = termenv.NewOutput(w).EnvColorProfile() == termenv.Ascii
}
