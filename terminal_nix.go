//go:build unix

package lineprogress

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// cursorHide hides the cursor in Unix-based systems.
func cursorHide(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// cursorShow shows the cursor in Unix-based systems.
func cursorShow(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// terminalColumns gets the current width of the terminal open on fd.
func terminalColumns(fd uintptr) (int, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, false
	}

	return int(ws.Col), true
}
