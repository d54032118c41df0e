package lineprogress

import (
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

// DefaultBarFormat draws bars like |=====     |.
const DefaultBarFormat = "|=|"

// ProgressBar is a bounded, single-line progress indicator with an ETA.
// Every change redraws the line in place; nothing runs in the background.
type ProgressBar struct {
	label    string     // Printed before the bar, truncated when the screen is narrow
	max      uint64     // The 100% mark
	value    uint64     // Current progress, may exceed max
	start    time.Time  // Time when the bar was created
	begin    rune       // Left border glyph
	fill     rune       // Glyph for completed pieces
	end      rune       // Right border glyph
	opts     settings   // Destination, width, clock and layout
	out      *sink      // Fire-and-forget writer over opts.dest
	lock     sync.Mutex // Sync calls to draw
	released bool       // Set by Finish or Free
}

// NewProgressBar creates a bar counting up to max using DefaultBarFormat and draws it once.
func NewProgressBar(label string, max uint64, opts ...Option) *ProgressBar {
	p, _ := NewProgressBarWithFormat(label, max, DefaultBarFormat, opts...)
	return p
}

// NewProgressBarWithFormat creates a bar whose format gives the begin, fill and end glyphs,
// e.g. "<->" renders <------    >. Any other length yields ErrInvalidFormat.
func NewProgressBarWithFormat(label string, max uint64, format string, opts ...Option) (*ProgressBar, error) {
	if err := ValidateBarFormat(format); err != nil {
		return nil, err
	}

	glyphs := []rune(format)
	s := newSettings(opts)
	p := &ProgressBar{
		label: label,
		max:   max,
		start: s.now(),
		begin: glyphs[0],
		fill:  glyphs[1],
		end:   glyphs[2],
		opts:  s,
		out:   &sink{w: s.dest, logger: s.logger},
	}

	if s.hideCursor && s.isaTTY {
		cursorHide(s.dest)
	}

	s.logger.Debug().Str("label", label).Uint64("max", max).Msg("progress bar created")
	p.draw()

	return p, nil
}

// SetLabel replaces the label. It shows on the next draw.
func (p *ProgressBar) SetLabel(label string) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.label = label
}

// Update sets the absolute progress value and redraws.
func (p *ProgressBar) Update(value uint64) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.update(value)
}

// Increment advances the bar by one step.
func (p *ProgressBar) Increment() {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.update(p.value + 1)
}

// Finish draws the bar one last time, commits the line with a newline and releases the bar.
func (p *ProgressBar) Finish() {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.ignored("finish") {
		return
	}

	p.draw()
	p.out.write([]byte{'\n'})
	p.release()

	p.opts.logger.Debug().
		Str("label", p.label).
		Uint64("value", p.value).
		Uint64("max", p.max).
		Dur("elapsed", p.elapsed()).
		Msg("progress bar finished")
}

// Free releases the bar without drawing. The current line is left as it is.
func (p *ProgressBar) Free() {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.ignored("free") {
		return
	}

	p.release()
}

// Label returns the current label.
func (p *ProgressBar) Label() string {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.label
}

// Value returns the current progress value.
func (p *ProgressBar) Value() uint64 {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.value
}

// Max returns the 100% mark.
func (p *ProgressBar) Max() uint64 {
	return p.max
}

func (p *ProgressBar) update(value uint64) {
	if p.ignored("update") {
		return
	}

	p.value = value
	p.draw()
}

// ignored reports whether the bar has been released, logging the dropped call.
func (p *ProgressBar) ignored(op string) bool {
	if p.released {
		p.opts.logger.Debug().Str("label", p.label).Str("op", op).Msg("ignoring call on released progress bar")
	}

	return p.released
}

func (p *ProgressBar) release() {
	p.released = true

	if p.opts.hideCursor && p.opts.isaTTY {
		cursorShow(p.opts.dest)
	}
}

// elapsed is the time since creation. A clock that went backwards counts as no time at all.
func (p *ProgressBar) elapsed() time.Duration {
	return max(0, p.opts.now().Sub(p.start))
}

// remainingSeconds extrapolates the time per step seen so far over the steps left.
func (p *ProgressBar) remainingSeconds() int {
	elapsed := p.elapsed().Seconds()
	if p.value > 0 && elapsed > 0 && p.value < p.max {
		return int(elapsed / float64(p.value) * float64(p.max-p.value))
	}

	return 0
}

// geometry fits the current label and value into the current screen width.
func (p *ProgressBar) geometry() Geometry {
	return p.opts.layout.Fit(p.opts.screenWidth(), runewidth.StringWidth(p.label), p.value, p.max)
}

// render builds one full progress line, ending in a carriage return so the next draw overwrites it.
func (p *ProgressBar) render() string {
	g := p.geometry()

	var eta TimeComponents
	if g.Completed {
		eta = SplitSeconds(int(p.elapsed() / time.Second))
	} else {
		eta = SplitSeconds(p.remainingSeconds())
	}

	pieces := max(0, g.Pieces)
	filled := min(max(0, g.Filled), pieces)

	var b strings.Builder
	if g.LabelWidth > 0 {
		// Wide runes can leave the truncated label a column short; pad so the bar stays put.
		b.WriteString(runewidth.FillRight(runewidth.Truncate(p.label, g.LabelWidth, ""), g.LabelWidth))
		b.WriteByte(' ')
	}

	b.WriteRune(p.begin)
	b.WriteString(strings.Repeat(string(p.fill), filled))
	b.WriteString(strings.Repeat(" ", pieces-filled))
	b.WriteRune(p.end)
	b.WriteByte(' ')
	b.WriteString(eta.ETA())
	b.WriteByte('\r')

	return b.String()
}

func (p *ProgressBar) draw() {
	p.out.write([]byte(p.render()))
}
