package handler

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// fdWriter is satisfied by *os.File and anything else backed by a file
// descriptor.
type fdWriter interface {
	Fd() uintptr
}

// DetermineColorEnabled reports whether colored output should be
// enabled for w. Explicit overrides win: the NO_COLOR convention
// always disables, FORCE_COLOR=1/true/yes always enables. Otherwise
// color is used only when w is an interactive terminal.
func DetermineColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	switch strings.ToLower(os.Getenv("FORCE_COLOR")) {
	case "1", "true", "yes":
		return true
	}

	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
