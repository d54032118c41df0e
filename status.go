package lineprogress

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultStatusFormat is the glyph cycle of a plain spinner.
const DefaultStatusFormat = `-\|/`

// StatusBar is an unbounded indicator that cycles through a fixed set of glyphs to show
// that work is still happening. Finishing it prints the elapsed time.
type StatusBar struct {
	label       string
	format      []rune
	index       int // Always < len(format)
	start       time.Time
	lastPrinted int // Bytes written by the last draw
	opts        settings
	out         *sink
	lock        sync.Mutex
	released    bool
}

// NewStatusBar creates a status bar cycling through DefaultStatusFormat. Nothing is drawn
// until the first Increment or Draw.
func NewStatusBar(label string, opts ...Option) *StatusBar {
	s, _ := NewStatusBarWithFormat(label, DefaultStatusFormat, opts...)
	return s
}

// NewStatusBarWithFormat creates a status bar cycling through the glyphs of format.
func NewStatusBarWithFormat(label, format string, opts ...Option) (*StatusBar, error) {
	if err := ValidateStatusFormat(format); err != nil {
		return nil, err
	}

	st := newSettings(opts)
	if st.hideCursor && st.isaTTY {
		cursorHide(st.dest)
	}

	return &StatusBar{
		label:  label,
		format: []rune(format),
		start:  st.now(),
		opts:   st,
		out:    &sink{w: st.dest, logger: st.logger},
	}, nil
}

// Increment moves on to the next glyph, wrapping at the end of the format, and redraws.
func (s *StatusBar) Increment() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.ignored("increment") {
		return
	}

	s.index = (s.index + 1) % len(s.format)
	s.draw()
}

// Draw writes the label and the current glyph over the previous draw.
func (s *StatusBar) Draw() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.ignored("draw") {
		return
	}

	s.draw()
}

// Finish prints the label with the elapsed time right-justified in the status field,
// ends the line and releases the bar.
func (s *StatusBar) Finish() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.ignored("finish") {
		return
	}

	elapsed := max(0, s.opts.now().Sub(s.start))
	clock := SplitSeconds(int(elapsed / time.Second)).Clock()

	// The first pass only measures the line; the second pads it out to the field width.
	measure := fmt.Sprintf("\r%s: %s", s.label, clock)
	s.lastPrinted = len(measure) - 1
	// A line wider than the field gets no padding at all, not a negative-width run of spaces.
	pad := max(0, s.opts.layout.StatusFieldWidth-s.lastPrinted)

	s.out.write([]byte(measure + "\r" + s.label + ": " + strings.Repeat(" ", pad) + clock + "\n"))
	s.release()

	s.opts.logger.Debug().Str("label", s.label).Dur("elapsed", elapsed).Msg("status bar finished")
}

// Free releases the bar without drawing.
func (s *StatusBar) Free() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.ignored("free") {
		return
	}

	s.release()
}

// Glyph returns the glyph the next draw will show.
func (s *StatusBar) Glyph() rune {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.format[s.index]
}

func (s *StatusBar) draw() {
	line := fmt.Sprintf("\r%s: %c", s.label, s.format[s.index])
	s.lastPrinted = len(line) - 1
	s.out.write([]byte(line))
}

func (s *StatusBar) release() {
	s.released = true

	if s.opts.hideCursor && s.opts.isaTTY {
		cursorShow(s.opts.dest)
	}
}

func (s *StatusBar) ignored(op string) bool {
	if s.released {
		s.opts.logger.Debug().Str("label", s.label).Str("op", op).Msg("ignoring call on released status bar")
	}

	return s.released
}
