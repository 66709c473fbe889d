package textmeasure

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// metricsRefSize is the size unit metrics are sampled at before scaling to
// the requested text height.
const metricsRefSize = 64.0

// Heuristic extents used when no face is available. Proportions of the
// text height.
const (
	fallbackAscent  = 0.8
	fallbackDescent = 0.2
	fallbackAdvance = 0.6
)

// Context measures text against one parsed font face. It reuses an
// internal HarfBuzz shaper, which is not safe for concurrent use, so all
// methods serialize on an internal mutex. The kernel's callers are
// single-threaded; the lock is uncontended there.
type Context struct {
	mu     sync.Mutex
	face   *font.Face
	shaper shaping.HarfbuzzShaper
	cfg    config

	// Unit metrics sampled lazily from the face, per drawing unit of
	// text height.
	metricsReady            bool
	unitAscent, unitDescent float64
	unitGap                 float64
}

var (
	defaultOnce sync.Once
	defaultCtx  *Context
)

// Default returns the shared measurement context, lazily initialized on
// first use with the embedded fallback face. It lives for the rest of the
// process and is reused by every text-bounds query.
func Default() *Context {
	defaultOnce.Do(func() {
		ctx, err := New(goregular.TTF)
		if err != nil {
			// The embedded face always parses; fall back to heuristic
			// measurement if it somehow does not.
			ctx = &Context{cfg: defaultConfig()}
		}
		defaultCtx = ctx
	})
	return defaultCtx
}

// New creates a measurement context from TTF or OTF font data.
func New(data []byte, opts ...Option) (*Context, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textmeasure: parse font: %w", err)
	}
	return &Context{face: face, cfg: cfg}, nil
}

// Measure returns the extent of a text block rendered at the given text
// height in drawing units. Lines are split on '\n'; the width is the
// advance of the widest line, the height spans the first line's ascent to
// the last line's descent.
func (c *Context) Measure(text string, height float64) Size {
	if text == "" || height <= 0 {
		return Size{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	lines := strings.Split(text, "\n")
	var width float64
	for _, line := range lines {
		if w := c.lineWidthLocked(line, height); w > width {
			width = w
		}
	}

	m := c.metricsLocked(height)
	return Size{
		Width:  width,
		Height: m.Ascent + m.Descent + float64(len(lines)-1)*m.LineHeight(),
	}
}

// Metrics returns the face's vertical metrics scaled to the given text
// height.
func (c *Context) Metrics(height float64) Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metricsLocked(height)
}

func (c *Context) lineWidthLocked(line string, height float64) float64 {
	if line == "" {
		return 0
	}
	if c.face == nil {
		return fallbackAdvance * height * float64(len([]rune(line)))
	}
	out := c.shapeLocked(line, height)
	return fixedToFloat(out.Advance)
}

func (c *Context) metricsLocked(height float64) Metrics {
	if !c.metricsReady {
		c.sampleMetricsLocked()
	}
	return Metrics{
		Ascent:  c.unitAscent * height,
		Descent: c.unitDescent * height,
		LineGap: c.unitGap * height,
	}
}

// sampleMetricsLocked shapes one reference glyph to obtain the face's line
// bounds, normalized per unit of text height. Line bounds are font-level
// values, so any content would do.
func (c *Context) sampleMetricsLocked() {
	c.metricsReady = true
	if c.face == nil {
		c.unitAscent = fallbackAscent
		c.unitDescent = fallbackDescent
		c.unitGap = 0
		return
	}
	out := c.shapeLocked("M", metricsRefSize)
	c.unitAscent = fixedToFloat(out.LineBounds.Ascent) / metricsRefSize
	// go-text reports descent as a negative offset below the baseline;
	// the kernel keeps it positive.
	c.unitDescent = -fixedToFloat(out.LineBounds.Descent) / metricsRefSize
	c.unitGap = fixedToFloat(out.LineBounds.Gap) / metricsRefSize
}

func (c *Context) shapeLocked(line string, size float64) shaping.Output {
	runes := []rune(line)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(line),
		Face:      c.face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(c.cfg.language),
	}
	return c.shaper.Shape(input)
}

// floatToFixed converts drawing units to 26.6 fixed point.
func floatToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f*64 + 0.5)
}

// fixedToFloat converts 26.6 fixed point to drawing units.
func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
