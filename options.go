package lineprogress

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type (
	settings struct {
		dest       io.Writer        // destination eg stderr
		width      WidthProvider    // Screen width source
		now        func() time.Time // Clock used for elapsed and ETA
		layout     Layout           // Column budget
		logger     zerolog.Logger   // Debug logging, Nop unless set
		hideCursor bool             // Hide the cursor while the bar is live
		isaTTY     bool             // Set once options are applied
	}

	// Option configures a ProgressBar or a StatusBar.
	Option func(*settings)
)

// WithWriter sets the output stream for the bar (default os.Stderr)
func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		s.dest = w
	}
}

// WithWidthProvider sets where the screen width comes from.
// The default queries the terminal behind the output stream, if there is one.
func WithWidthProvider(p WidthProvider) Option {
	return func(s *settings) {
		s.width = p
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

// WithLayout replaces DefaultLayout.
func WithLayout(l Layout) Option {
	return func(s *settings) {
		s.layout = l
	}
}

// WithLogger sets a logger for lifecycle and write failure events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithHiddenCursor hides the terminal cursor until the bar is finished or freed.
// It has no effect when the output stream isn't a terminal.
func WithHiddenCursor() Option {
	return func(s *settings) {
		s.hideCursor = true
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		dest:   os.Stderr,
		now:    time.Now,
		layout: DefaultLayout,
		logger: zerolog.Nop(),
	}

	for _, o := range opts {
		o(&s)
	}

	f, isFile := s.dest.(*os.File)
	s.isaTTY = isFile && IsTerminal(f)

	if s.width == nil {
		if isFile {
			s.width = TerminalWidth(f)
		} else {
			s.width = FixedWidth(0)
		}
	}

	return s
}

// screenWidth asks the provider and falls back to the layout default.
func (s *settings) screenWidth() int {
	if w := s.width.Width(); w > 0 {
		return w
	}

	return s.layout.DefaultScreenWidth
}
