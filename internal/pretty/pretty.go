// ANSI escape codes, emitted only when stdout looks like a terminal.
package pretty

import (
	"os"

	"golang.org/x/term"
)

var colorEnabled = true

const (
	resetCode string = "\x1b[0m"
	greenCode string = "\x1b[32m"
	redCode   string = "\x1b[31m"
	dimCode   string = "\x1b[2m"
)

func AllowDynamic(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SetColorEnabled controls whether the color helpers emit ANSI codes.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func Reset() string {
	if colorEnabled {
		return resetCode
	}
	return ""
}

func Green() string {
	if colorEnabled {
		return greenCode
	}
	return ""
}

func Red() string {
	if colorEnabled {
		return redCode
	}
	return ""
}

func Dim() string {
	if colorEnabled {
		return dimCode
	}
	return ""
}
