package command

import (
	"os"

	"golang.org/x/term"

	"pong/internal/model"
)

// StdoutIsTerminal reports whether standard output is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// useColor resolves the tree color flag. isTerminal is only consulted for
// auto and unset modes.
func useColor(mode model.ColorMode, isTerminal func() bool) bool {
	switch mode {
	case model.ColorAlways:
		return true
	case model.ColorNever:
		return false
	}
	return isTerminal != nil && isTerminal()
}
