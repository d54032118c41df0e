package lineprogress

import (
	"os"
	"strconv"
)

// WidthProvider reports the number of columns available for a progress line.
// Zero or less means unknown; bars then use their layout's DefaultScreenWidth.
type WidthProvider interface {
	Width() int
}

// WidthFunc adapts a plain function to a WidthProvider.
type WidthFunc func() int

// Width calls f.
func (f WidthFunc) Width() int {
	return f()
}

// FixedWidth always reports n columns.
func FixedWidth(n int) WidthProvider {
	return WidthFunc(func() int { return n })
}

// TerminalWidth measures the terminal behind f on every call, so resizes are picked up.
// When f isn't a terminal it tries the COLUMNS environment variable, then reports 0.
func TerminalWidth(f *os.File) WidthProvider {
	return WidthFunc(func() int {
		if cols, ok := terminalColumns(f.Fd()); ok && cols > 0 {
			return cols
		}

		if cols, ok := columnsFromEnv(); ok {
			return cols
		}

		return 0
	})
}

func columnsFromEnv() (int, bool) {
	v := os.Getenv("COLUMNS")
	if v == "" {
		return 0, false
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}
