package textmeasure

import "errors"

// Sentinel errors for textmeasure.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("textmeasure: empty font data")
)
