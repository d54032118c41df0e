package lineprogress

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidFormat is returned when a progress bar format isn't exactly three glyphs.
	ErrInvalidFormat = errors.New("progress bar format must be exactly 3 characters (begin, fill, end)")

	// ErrEmptyFormat is returned when a status bar is given nothing to cycle through.
	ErrEmptyFormat = errors.New("status bar format must not be empty")
)

// ValidateBarFormat checks a begin/fill/end format such as "|=|" or "<->".
func ValidateBarFormat(format string) error {
	if utf8.RuneCountInString(format) != 3 {
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, format)
	}

	return nil
}

// ValidateStatusFormat checks a status bar glyph cycle such as `-\|/`.
func ValidateStatusFormat(format string) error {
	if format == "" {
		return ErrEmptyFormat
	}

	return nil
}
