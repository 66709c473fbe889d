package textmeasure

import (
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// baseDirection resolves the base direction of a measured line from its
// first bidi run. Measurement only needs the paragraph-level direction;
// per-run segmentation is a rendering concern.
func baseDirection(s string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	// bidi.Run declares Direction on the pointer receiver.
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript picks the script of the first letter rune, defaulting to
// Latin for neutral-only text.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}
