//go:build !unix

package lineprogress

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

// cursorHide hides the cursor. Windows 10 and later consoles understand the ANSI sequence.
func cursorHide(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// cursorShow shows the cursor.
func cursorShow(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// terminalColumns gets the current width of the console open on fd.
func terminalColumns(fd uintptr) (int, bool) {
	cols, _, err := term.GetSize(int(fd))
	if err != nil {
		return 0, false
	}

	return cols, true
}
