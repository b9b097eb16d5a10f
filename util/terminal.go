package util

import (
	"os"

	"golang.org/x/term"
)

const defaultTerminalWidth = 80

// TerminalWidth returns the column count of the terminal attached to stdout, falling back
// to 80 columns when stdout is not a terminal or its size cannot be determined.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}

	return width
}
