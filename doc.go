// Package lineprogress draws single-line, self-overwriting progress indicators on stderr.
//
// A ProgressBar tracks value against max and fits its label, bar and ETA into the
// width of the terminal:
//
//	Copying files |==============                 | ETA: 0h01m12s
//
// A StatusBar has no end point. It cycles through a set of glyphs on every Increment and
// prints the elapsed time, right-justified, when finished:
//
//	Scanning: |
//	Scanning:                                                                 0:00:42
//
// # Usage
//
//	bar := lineprogress.NewProgressBar("Copying files", uint64(len(files)))
//	for _, f := range files {
//	    copyFile(f)
//	    bar.Increment()
//	}
//	bar.Finish()
//
// Bars are driven synchronously by one caller. Output errors are never returned; a failed
// write leaves the display stale but does not interrupt the work being tracked.
package lineprogress
