// Package geom is the geometry kernel of a 2D drafting application.
//
// # Overview
//
// geom is a stateless library of pure geometry routines. It fits circles
// and arcs through points, interprets DXF-style bulge values embedded in
// polylines, computes the full layout of measurement annotations (linear,
// aligned, angular, radius, diameter, arc-length), performs tolerance-based
// proximity tests used for selection and cursor snapping, and generates
// tessellated outlines for parametric structural cross-sections (I-beam,
// channel, angle, tee, tubes, plate, round bar) with fillet metadata.
//
// # Quick Start
//
//	import "github.com/godraft/geom"
//
//	// Fit an arc through three points.
//	arc, ok := geom.ArcFrom3Points(geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 0))
//
//	// Lay out a linear dimension.
//	g := geom.LinearDimensionGeometry(p1, p2, 20, geom.DirectionAuto, style)
//
//	// Resolve a pointer click against a shape.
//	hit := geom.IsPointNearShape(cursor, &shape, 5)
//
// # Design
//
// Every function takes all required inputs as explicit parameters and owns
// no shape collection; callers keep the drawing. Degenerate inputs (collinear
// triples, unknown profile kinds, zero-length segments) produce absent or
// empty results, never panics. The only process-lifetime resource is the
// lazily initialized text measurement context in the textmeasure subpackage.
//
// # Coordinate System
//
//   - X increases right, Y increases up (drawing units)
//   - Angles in radians, 0 is right, increases counter-clockwise
//
// # Performance
//
// The kernel is called from pointer-move handling and from the render loop,
// many times per frame. Functions are synchronous, allocation-light, and
// O(shape complexity).
package geom
