//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

package lineprogress

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
