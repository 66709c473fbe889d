package textmeasure

// Size holds the measured extent of a text block in drawing units.
type Size struct {
	// Width is the advance of the widest line.
	Width float64

	// Height spans from the first line's ascent to the last line's
	// descent, with full line heights between baselines.
	Height float64
}

// Metrics holds font metrics scaled to a specific text height.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive, above the baseline).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below the baseline).
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// LineHeight returns the recommended vertical distance between baselines
// of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
