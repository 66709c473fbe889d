// Package textmeasure provides glyph-accurate text measurement for the
// geometry kernel. Text hit-testing and dimension layout need the width and
// vertical extents of text blocks without ever rasterizing them; this
// package shapes text with HarfBuzz (via go-text/typesetting) against a
// parsed font face and reports sizes in drawing units.
//
// The package owns the kernel's only process-lifetime resource: the shared
// measurement context returned by [Default], lazily initialized on first
// use with an embedded fallback face. Callers with project fonts create
// their own [Context] via [New].
package textmeasure
