package geom

import (
	"math"

	"github.com/godraft/geom/textmeasure"
)

// ShapeKind discriminates the variants of [Shape]. Every kernel dispatcher
// switches exhaustively over ShapeKind so that adding a kind fails loudly
// everywhere a strategy is missing.
type ShapeKind int

const (
	KindLine ShapeKind = iota
	KindRectangle
	KindCircle
	KindArc
	KindEllipse
	KindPolyline
	KindSpline
	KindText
	KindPoint
	KindDimension
	KindHatch
)

// String returns the shape kind name used in logs.
func (k ShapeKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindArc:
		return "arc"
	case KindEllipse:
		return "ellipse"
	case KindPolyline:
		return "polyline"
	case KindSpline:
		return "spline"
	case KindText:
		return "text"
	case KindPoint:
		return "point"
	case KindDimension:
		return "dimension"
	case KindHatch:
		return "hatch"
	default:
		return "unknown"
	}
}

// Line is a straight segment between two points.
type Line struct {
	Start, End Point
}

// Rectangle is a rectangle rotated around its center.
type Rectangle struct {
	Center   Point
	Width    float64
	Height   float64
	Rotation float64
}

// Corners returns the four corners in counter-clockwise order,
// rotation applied.
func (r *Rectangle) Corners() [4]Point {
	hw, hh := r.Width/2, r.Height/2
	local := [4]Point{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	var out [4]Point
	for i, p := range local {
		out[i] = p.Rotate(r.Rotation).Add(r.Center)
	}
	return out
}

// Circle is a full circle.
type Circle struct {
	Center Point
	Radius float64
}

// Arc is a circular arc traversed counter-clockwise from StartAngle to
// EndAngle. StartAngle > EndAngle means the arc crosses the 0 angle.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Sweep returns the counter-clockwise angular span in [0, 2π).
func (a *Arc) Sweep() float64 {
	return normalizeAngle(a.EndAngle - a.StartAngle)
}

// StartPoint returns the point at StartAngle.
func (a *Arc) StartPoint() Point {
	return a.Center.Polar(a.Radius, a.StartAngle)
}

// EndPoint returns the point at EndAngle.
func (a *Arc) EndPoint() Point {
	return a.Center.Polar(a.Radius, a.EndAngle)
}

// Ellipse is an axis-pair ellipse rotated around its center.
type Ellipse struct {
	Center   Point
	RadiusX  float64
	RadiusY  float64
	Rotation float64
}

// Polyline is an open or closed sequence of vertices. Bulges, when present,
// bend the edge from vertex i to vertex i+1 into a circular arc: a bulge is
// tan(includedAngle/4), positive for a counter-clockwise turn. An open
// polyline carries at most len(Points)-1 bulges; a closed one carries
// len(Points), the last bulge bending the closing edge.
type Polyline struct {
	Points []Point
	Bulges []float64
	Closed bool
}

// Bulge returns the bulge for the edge starting at vertex i, or 0 when the
// edge is straight or no bulge is stored.
func (p *Polyline) Bulge(i int) float64 {
	if i < 0 || i >= len(p.Bulges) {
		return 0
	}
	return p.Bulges[i]
}

// Spline is a curve defined by control points. The kernel treats the
// control polygon as the proximity and bounds approximation; tessellation
// is the renderer's concern.
type Spline struct {
	Points []Point
	Closed bool
}

// TextAlign is the horizontal anchoring of a text block.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextVAlign is the vertical anchoring of a text block.
type TextVAlign int

const (
	VAlignBaseline TextVAlign = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

// Text is a text block anchored at Position. Height is the glyph height in
// drawing units; Rotation is applied around Position.
type Text struct {
	Position Point
	Content  string
	Height   float64
	Rotation float64
	Align    TextAlign
	VAlign   TextVAlign
}

// PointMarker is a point entity drawn as a small marker of the given size.
type PointMarker struct {
	Position Point
	Size     float64
}

// Hatch is a filled region bounded by a closed polygon. Only the boundary
// participates in proximity tests.
type Hatch struct {
	Boundary []Point
}

// Shape is a tagged union over the drawable entity kinds. Exactly the
// variant field matching Kind is non-nil; all other fields are nil.
type Shape struct {
	Kind ShapeKind

	Line      *Line
	Rect      *Rectangle
	Circle    *Circle
	Arc       *Arc
	Ellipse   *Ellipse
	Polyline  *Polyline
	Spline    *Spline
	Text      *Text
	Marker    *PointMarker
	Dimension *Dimension
	Hatch     *Hatch
}

// LineShape wraps a Line in a Shape.
func LineShape(start, end Point) Shape {
	return Shape{Kind: KindLine, Line: &Line{Start: start, End: end}}
}

// RectangleShape wraps a Rectangle in a Shape.
func RectangleShape(center Point, width, height, rotation float64) Shape {
	return Shape{Kind: KindRectangle, Rect: &Rectangle{Center: center, Width: width, Height: height, Rotation: rotation}}
}

// CircleShape wraps a Circle in a Shape.
func CircleShape(center Point, radius float64) Shape {
	return Shape{Kind: KindCircle, Circle: &Circle{Center: center, Radius: radius}}
}

// ArcShape wraps an Arc in a Shape.
func ArcShape(center Point, radius, startAngle, endAngle float64) Shape {
	return Shape{Kind: KindArc, Arc: &Arc{Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}}
}

// EllipseShape wraps an Ellipse in a Shape.
func EllipseShape(center Point, rx, ry, rotation float64) Shape {
	return Shape{Kind: KindEllipse, Ellipse: &Ellipse{Center: center, RadiusX: rx, RadiusY: ry, Rotation: rotation}}
}

// PolylineShape wraps a Polyline in a Shape.
func PolylineShape(points []Point, bulges []float64, closed bool) Shape {
	return Shape{Kind: KindPolyline, Polyline: &Polyline{Points: points, Bulges: bulges, Closed: closed}}
}

// SplineShape wraps a Spline in a Shape.
func SplineShape(points []Point, closed bool) Shape {
	return Shape{Kind: KindSpline, Spline: &Spline{Points: points, Closed: closed}}
}

// TextShape wraps a Text in a Shape.
func TextShape(t Text) Shape {
	return Shape{Kind: KindText, Text: &t}
}

// PointShape wraps a PointMarker in a Shape.
func PointShape(position Point, size float64) Shape {
	return Shape{Kind: KindPoint, Marker: &PointMarker{Position: position, Size: size}}
}

// DimensionShape wraps a Dimension in a Shape.
func DimensionShape(d Dimension) Shape {
	return Shape{Kind: KindDimension, Dimension: &d}
}

// HatchShape wraps a Hatch in a Shape.
func HatchShape(boundary []Point) Shape {
	return Shape{Kind: KindHatch, Hatch: &Hatch{Boundary: boundary}}
}

// SnapKind identifies a geometric feature of a shape that a dimension
// reference or the cursor snap layer can attach to.
type SnapKind int

const (
	SnapStart SnapKind = iota
	SnapEnd
	SnapMid
	SnapCenter
)

// ResolveSnap returns the point for the given snap feature of a shape.
// ok is false when the shape has no such feature. The calling layer uses
// this to re-measure associative dimensions after referenced geometry
// changes; the kernel itself never looks shapes up.
func ResolveSnap(s *Shape, kind SnapKind) (Point, bool) {
	switch s.Kind {
	case KindLine:
		switch kind {
		case SnapStart:
			return s.Line.Start, true
		case SnapEnd:
			return s.Line.End, true
		case SnapMid:
			return s.Line.Start.Midpoint(s.Line.End), true
		}
	case KindRectangle:
		if kind == SnapCenter {
			return s.Rect.Center, true
		}
	case KindCircle:
		if kind == SnapCenter {
			return s.Circle.Center, true
		}
	case KindArc:
		a := s.Arc
		switch kind {
		case SnapStart:
			return a.StartPoint(), true
		case SnapEnd:
			return a.EndPoint(), true
		case SnapMid:
			return a.Center.Polar(a.Radius, a.StartAngle+a.Sweep()/2), true
		case SnapCenter:
			return a.Center, true
		}
	case KindEllipse:
		if kind == SnapCenter {
			return s.Ellipse.Center, true
		}
	case KindPolyline:
		pts := s.Polyline.Points
		if len(pts) == 0 {
			return Point{}, false
		}
		switch kind {
		case SnapStart:
			return pts[0], true
		case SnapEnd:
			return pts[len(pts)-1], true
		}
	case KindSpline:
		pts := s.Spline.Points
		if len(pts) == 0 {
			return Point{}, false
		}
		switch kind {
		case SnapStart:
			return pts[0], true
		case SnapEnd:
			return pts[len(pts)-1], true
		}
	case KindText:
		if kind == SnapStart || kind == SnapCenter {
			return s.Text.Position, true
		}
	case KindPoint:
		return s.Marker.Position, true
	case KindDimension:
		pts := s.Dimension.Points
		if len(pts) == 0 {
			return Point{}, false
		}
		switch kind {
		case SnapStart:
			return pts[0], true
		case SnapEnd:
			return pts[len(pts)-1], true
		}
	case KindHatch:
		pts := s.Hatch.Boundary
		if len(pts) == 0 {
			return Point{}, false
		}
		if kind == SnapStart {
			return pts[0], true
		}
	}
	return Point{}, false
}

// SnapPoints returns the candidate points the cursor snap layer should
// consider for a shape: endpoints, midpoints, centers and quadrants.
func SnapPoints(s *Shape) []Point {
	switch s.Kind {
	case KindLine:
		l := s.Line
		return []Point{l.Start, l.End, l.Start.Midpoint(l.End)}
	case KindRectangle:
		c := s.Rect.Corners()
		return []Point{s.Rect.Center, c[0], c[1], c[2], c[3]}
	case KindCircle:
		c := s.Circle
		return []Point{
			c.Center,
			c.Center.Polar(c.Radius, 0),
			c.Center.Polar(c.Radius, math.Pi/2),
			c.Center.Polar(c.Radius, math.Pi),
			c.Center.Polar(c.Radius, 3*math.Pi/2),
		}
	case KindArc:
		a := s.Arc
		return []Point{
			a.Center,
			a.StartPoint(),
			a.EndPoint(),
			a.Center.Polar(a.Radius, a.StartAngle+a.Sweep()/2),
		}
	case KindEllipse:
		e := s.Ellipse
		return []Point{
			e.Center,
			Pt(e.RadiusX, 0).Rotate(e.Rotation).Add(e.Center),
			Pt(-e.RadiusX, 0).Rotate(e.Rotation).Add(e.Center),
			Pt(0, e.RadiusY).Rotate(e.Rotation).Add(e.Center),
			Pt(0, -e.RadiusY).Rotate(e.Rotation).Add(e.Center),
		}
	case KindPolyline:
		return append([]Point(nil), s.Polyline.Points...)
	case KindSpline:
		return append([]Point(nil), s.Spline.Points...)
	case KindText:
		return []Point{s.Text.Position}
	case KindPoint:
		return []Point{s.Marker.Position}
	case KindDimension:
		return append([]Point(nil), s.Dimension.Points...)
	case KindHatch:
		return append([]Point(nil), s.Hatch.Boundary...)
	default:
		return nil
	}
}

// ShapeBounds returns the axis-aligned bounding box of a shape.
// ok is false for shapes with no extent (empty polylines, dimensions with
// too few points).
func ShapeBounds(s *Shape) (Bounds, bool) {
	switch s.Kind {
	case KindLine:
		return BoundsOf([]Point{s.Line.Start, s.Line.End}), true
	case KindRectangle:
		c := s.Rect.Corners()
		return BoundsOf(c[:]), true
	case KindCircle:
		c := s.Circle
		return Bounds{
			Min: Pt(c.Center.X-c.Radius, c.Center.Y-c.Radius),
			Max: Pt(c.Center.X+c.Radius, c.Center.Y+c.Radius),
		}, true
	case KindArc:
		return arcBounds(s.Arc), true
	case KindEllipse:
		e := s.Ellipse
		sin, cos := math.Sincos(e.Rotation)
		ex := math.Hypot(e.RadiusX*cos, e.RadiusY*sin)
		ey := math.Hypot(e.RadiusX*sin, e.RadiusY*cos)
		return Bounds{
			Min: Pt(e.Center.X-ex, e.Center.Y-ey),
			Max: Pt(e.Center.X+ex, e.Center.Y+ey),
		}, true
	case KindPolyline:
		if len(s.Polyline.Points) == 0 {
			return Bounds{}, false
		}
		return BoundsOf(TessellatePolyline(s.Polyline, defaultArcSegments)), true
	case KindSpline:
		if len(s.Spline.Points) == 0 {
			return Bounds{}, false
		}
		return BoundsOf(s.Spline.Points), true
	case KindText:
		return textBounds(s.Text), true
	case KindPoint:
		m := s.Marker
		half := m.Size / 2
		return Bounds{
			Min: Pt(m.Position.X-half, m.Position.Y-half),
			Max: Pt(m.Position.X+half, m.Position.Y+half),
		}, true
	case KindDimension:
		g, ok := DimensionGeometryFor(s.Dimension)
		if !ok {
			return Bounds{}, false
		}
		pts := []Point{g.Line[0], g.Line[1], g.TextPosition}
		for _, ext := range g.Extensions {
			pts = append(pts, ext[0], ext[1])
		}
		if g.HasArc {
			b := arcBounds(&Arc{Center: g.ArcCenter, Radius: g.ArcRadius, StartAngle: g.ArcStartAngle, EndAngle: g.ArcEndAngle})
			return BoundsOf(pts).Union(b), true
		}
		return BoundsOf(pts), true
	case KindHatch:
		if len(s.Hatch.Boundary) == 0 {
			return Bounds{}, false
		}
		return BoundsOf(s.Hatch.Boundary), true
	default:
		return Bounds{}, false
	}
}

// arcBounds bounds an arc by its endpoints plus every quadrant extreme the
// sweep crosses.
func arcBounds(a *Arc) Bounds {
	pts := []Point{a.StartPoint(), a.EndPoint()}
	for q := 0; q < 4; q++ {
		angle := float64(q) * math.Pi / 2
		if angleInSweep(angle, a.StartAngle, a.EndAngle) {
			pts = append(pts, a.Center.Polar(a.Radius, angle))
		}
	}
	return BoundsOf(pts)
}

// textBounds returns the corners of the measured text box, rotation applied,
// as an axis-aligned bounding box.
func textBounds(t *Text) Bounds {
	box := textLocalBounds(t)
	corners := []Point{
		box.Min,
		Pt(box.Max.X, box.Min.Y),
		box.Max,
		Pt(box.Min.X, box.Max.Y),
	}
	for i, c := range corners {
		corners[i] = c.Rotate(t.Rotation).Add(t.Position)
	}
	return BoundsOf(corners)
}

// textLocalBounds measures a text block and returns its box in the block's
// unrotated frame, relative to the anchor position. Width is the widest
// line; height spans max ascent to max descent across all lines.
func textLocalBounds(t *Text) Bounds {
	ctx := textmeasure.Default()
	size := ctx.Measure(t.Content, t.Height)
	metrics := ctx.Metrics(t.Height)

	var x0 float64
	switch t.Align {
	case AlignCenter:
		x0 = -size.Width / 2
	case AlignRight:
		x0 = -size.Width
	default:
		x0 = 0
	}

	var yTop float64
	switch t.VAlign {
	case VAlignTop:
		yTop = 0
	case VAlignMiddle:
		yTop = size.Height / 2
	case VAlignBottom:
		yTop = size.Height
	default: // baseline
		yTop = metrics.Ascent
	}

	return Bounds{
		Min: Pt(x0, yTop-size.Height),
		Max: Pt(x0+size.Width, yTop),
	}
}
