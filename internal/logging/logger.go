// Package logging builds the zerolog logger used by the lineprogress command.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/fireflycons/lineprogress"
)

// TimeFormat is the timestamp layout of console log lines.
const TimeFormat = "15:04:05"

// New returns a console logger writing to w. Debug events are only kept when verbose is set,
// and colour is only used when w is a terminal.
//
// The command passes os.Stdout here: stderr belongs to the progress line, and a log line
// written there would be overwritten by the next draw.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
		NoColor:    !isTerminal(w),
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && lineprogress.IsTerminal(f)
}
