package lineprogress

import "fmt"

// Layout holds the column budget used to fit a progress line into the screen.
type Layout struct {
	DefaultScreenWidth int // Width assumed when the terminal can't be queried
	MinBarWidth        int // Smallest the bar may get, borders included
	ETAWidth           int // Widest text ETAFormat can yield
	Whitespace         int // Gaps between label, bar and ETA
	BorderWidth        int // Begin + end glyphs of the bar
	StatusFieldWidth   int // Field the status bar right-justifies its elapsed time in
}

// ETAFormat renders hours, minutes and seconds of the ETA field.
const ETAFormat = "ETA:%2dh%02dm%02ds"

// DefaultLayout is the layout every bar uses unless WithLayout says otherwise.
var DefaultLayout = Layout{
	DefaultScreenWidth: 80,
	MinBarWidth:        10,
	ETAWidth:           13,
	Whitespace:         2,
	BorderWidth:        2,
	StatusFieldWidth:   80,
}

// Geometry is the result of fitting one progress line into a screen.
type Geometry struct {
	LabelWidth int  // Columns of label to print, 0 to drop the label
	BarWidth   int  // Columns of the bar including borders, plus the label's space when it is dropped
	Pieces     int  // Columns between the borders, fixed before any give-back
	Filled     int  // Pieces drawn with the fill glyph
	Completed  bool // value >= total
}

// BarWidth returns the width of the bar, borders included, for a label of labelLength columns.
func (l Layout) BarWidth(screenWidth, labelLength int) int {
	return max(l.MinBarWidth, screenWidth-labelLength-l.ETAWidth-l.Whitespace)
}

// LabelWidth returns how many label columns fit next to a bar of barWidth.
// The label is truncated before the bar ever shrinks.
func (l Layout) LabelWidth(screenWidth, labelLength, barWidth int) int {
	if labelLength+1+barWidth+1+l.ETAWidth > screenWidth {
		return max(0, screenWidth-barWidth-l.ETAWidth-l.Whitespace)
	}

	return labelLength
}

// Fit lays out a label of labelLength columns and a bar at value/total into screenWidth columns.
// A total of zero is always complete, so Fit never divides by zero.
func (l Layout) Fit(screenWidth, labelLength int, value, total uint64) Geometry {
	g := Geometry{
		BarWidth:  l.BarWidth(screenWidth, labelLength),
		Completed: value >= total,
	}
	g.LabelWidth = l.LabelWidth(screenWidth, labelLength, g.BarWidth)
	g.Pieces = g.BarWidth - l.BorderWidth

	if g.LabelWidth == 0 {
		// The label's trailing space goes to the bar, but the pieces are already counted,
		// so the drawn line stays one column short of the screen.
		g.BarWidth++
	}
	if g.Completed {
		g.Filled = g.Pieces
	} else {
		g.Filled = int(float64(g.Pieces) * (float64(value) / float64(total)))
	}

	return g
}

// TimeComponents is a duration split into hours, minutes in [0,60) and seconds in [0,60).
type TimeComponents struct {
	Hours   int
	Minutes int
	Seconds int
}

// SplitSeconds converts a whole number of seconds into hours, minutes and seconds.
// Negative input is treated as zero.
func SplitSeconds(total int) TimeComponents {
	if total < 0 {
		total = 0
	}

	return TimeComponents{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// ETA renders the components using ETAFormat.
func (t TimeComponents) ETA() string {
	return fmt.Sprintf(ETAFormat, t.Hours, t.Minutes, t.Seconds)
}

// Clock renders the components as H:MM:SS with the hours padded to three columns.
func (t TimeComponents) Clock() string {
	return fmt.Sprintf("%3d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}
